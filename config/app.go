package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads a local .env file if one is present. Missing files are fine;
// in deployed environments everything comes from real environment variables.
func LoadEnv() {
	_ = godotenv.Load()
}

// GetListenAddr returns the address the HTTP server binds to.
func GetListenAddr() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return ":" + port
}

// GetYouTubeAPIKey returns the YouTube Data API key. An empty key is allowed;
// metadata resolution then fails with an upstream error instead of at startup.
func GetYouTubeAPIKey() string {
	return os.Getenv("YOUTUBE_API_KEY")
}

// GetTranslateFunctionURL returns the endpoint of the translate-text edge
// function. Defaults to the function deployed alongside the Supabase project.
func GetTranslateFunctionURL() string {
	if u := os.Getenv("TRANSLATE_FUNCTION_URL"); u != "" {
		return u
	}
	return GetSupabaseURL() + "/functions/v1/translate-text"
}

// GetJWTSecret returns the secret used to verify Supabase-issued JWTs.
func GetJWTSecret() []byte {
	return []byte(os.Getenv("SUPABASE_JWT_SECRET"))
}
