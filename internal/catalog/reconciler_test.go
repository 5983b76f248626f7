package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videohub/catalog-api/internal/youtube"
)

func TestApplyResolvedMetadataOverwritesAuthoritativeFields(t *testing.T) {
	session := NewEditSession()
	session.Draft.VideoURL = "https://youtu.be/dQw4w9WgXcQ"
	session.Draft.Thumbnail = "https://example.com/old.jpg"
	session.Draft.Duration = "1:00"
	session.Draft.Author = "Old Author"

	ApplyResolvedMetadata(session, &youtube.Metadata{
		Title:        "Fetched Title",
		Description:  "Fetched description",
		Author:       "TechMaster",
		Duration:     "2:15:30",
		ThumbnailURL: "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
	})

	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", session.Draft.Thumbnail)
	assert.Equal(t, "2:15:30", session.Draft.Duration)
	assert.Equal(t, "TechMaster", session.Draft.Author)
	// the URL the user pasted is never touched
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", session.Draft.VideoURL)
}

func TestApplyResolvedMetadataSeedsOnlyEmptyPrimaryFields(t *testing.T) {
	session := NewEditSession()
	session.Translations[LanguageEnglish].Title = "User Typed Title"

	ApplyResolvedMetadata(session, &youtube.Metadata{
		Title:       "Fetched Title",
		Description: "Fetched description",
	})

	en := session.Translations[LanguageEnglish]
	assert.Equal(t, "User Typed Title", en.Title, "user input must not be clobbered")
	assert.Equal(t, "Fetched description", en.Description, "empty field is seeded")
	assert.Empty(t, session.Translations[LanguageArabic].Title, "secondary language untouched")
}

// stubTranslator fails for configured inputs and prefixes the rest.
type stubTranslator struct {
	failOn map[string]bool
	calls  int
}

func (s *stubTranslator) Translate(ctx context.Context, text string) (string, error) {
	s.calls++
	if s.failOn[text] {
		return "", errors.New("translation unavailable")
	}
	return "ar:" + text, nil
}

func TestTranslateDrafts(t *testing.T) {
	session := NewEditSession()
	session.Translations[LanguageEnglish].Title = "Game Development"
	session.Translations[LanguageEnglish].Description = "An intro course"

	tr := &stubTranslator{}
	results := TranslateDrafts(context.Background(), tr, session, LanguageEnglish, LanguageArabic)

	require.Len(t, results, 2)
	for _, r := range results {
		assert.NoError(t, r.Err)
	}
	assert.Equal(t, "ar:Game Development", session.Translations[LanguageArabic].Title)
	assert.Equal(t, "ar:An intro course", session.Translations[LanguageArabic].Description)
}

func TestTranslateDraftsSkipsEmptyFields(t *testing.T) {
	session := NewEditSession()
	session.Translations[LanguageEnglish].Title = "Only a title"

	tr := &stubTranslator{}
	results := TranslateDrafts(context.Background(), tr, session, LanguageEnglish, LanguageArabic)

	require.Len(t, results, 1)
	assert.Equal(t, "title", results[0].Field)
	assert.Equal(t, 1, tr.calls)
}

func TestTranslateDraftsFieldFailuresAreIndependent(t *testing.T) {
	session := NewEditSession()
	session.Translations[LanguageEnglish].Title = "Game Development"
	session.Translations[LanguageEnglish].Description = "An intro course"
	session.Translations[LanguageArabic].Description = "previous value"

	tr := &stubTranslator{failOn: map[string]bool{"An intro course": true}}
	results := TranslateDrafts(context.Background(), tr, session, LanguageEnglish, LanguageArabic)

	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)

	ar := session.Translations[LanguageArabic]
	assert.Equal(t, "ar:Game Development", ar.Title, "succeeded field keeps its result")
	assert.Equal(t, "previous value", ar.Description, "failed field keeps its previous value")
}
