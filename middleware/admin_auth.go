package middleware

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	supa "github.com/supabase-community/supabase-go"

	"videohub/catalog-api/models"
)

// SupabaseClaims are the claims we read from a Supabase-issued access token.
// The subject is the auth user's UUID.
type SupabaseClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// AdminOnly verifies the bearer token against the Supabase JWT secret and
// checks the user_roles table for an admin assignment.
func AdminOnly(db *supa.Client, secret []byte, logger *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "Missing bearer token",
			})
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims := new(SupabaseClaims)
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return secret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			logger.Warnf("Rejected invalid token: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "Invalid or expired token",
			})
		}

		userID := claims.Subject
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "Token has no subject",
			})
		}

		body, _, err := db.From("user_roles").
			Select("role", "", false).
			Eq("user_id", userID).
			Eq("role", models.RoleAdmin).
			Execute()
		if err != nil {
			logger.Errorf("Failed to check admin role for user %s: %v", userID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  "error",
				"message": "Could not verify permissions",
			})
		}

		var roles []models.UserRole
		if err := json.Unmarshal(body, &roles); err != nil || len(roles) == 0 {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status":  "error",
				"message": "Admin role required",
			})
		}

		c.Locals("userid", userID)
		return c.Next()
	}
}
