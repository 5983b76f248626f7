package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEditSessionDefaults(t *testing.T) {
	session := NewEditSession()

	assert.True(t, session.IsNew())
	assert.Equal(t, uuid.Nil, session.VideoID())
	assert.Equal(t, StateEditing, session.State())
	for _, lang := range SupportedLanguages {
		draft := session.Translation(lang)
		require.NotNil(t, draft)
		assert.Empty(t, draft.Title)
		assert.Empty(t, draft.Description)
	}
}

func TestLoadEditSessionHydratesFromStore(t *testing.T) {
	store := newFakeStore()
	session := newDraftSession()
	id, err := NewSubmitter(store, testLogger()).Submit(context.Background(), session)
	require.NoError(t, err)

	loaded, err := LoadEditSession(context.Background(), store, id)
	require.NoError(t, err)

	assert.False(t, loaded.IsNew())
	assert.Equal(t, id, loaded.VideoID())
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", loaded.Draft.VideoURL)
	assert.Equal(t, "Building a Game Engine", loaded.Translation(LanguageEnglish).Title)
	assert.Equal(t, "بناء محرك ألعاب", loaded.Translation(LanguageArabic).Title)
}

func TestLoadEditSessionDefaultsMissingLanguage(t *testing.T) {
	store := newFakeStore()
	session := newDraftSession()
	id, err := NewSubmitter(store, testLogger()).Submit(context.Background(), session)
	require.NoError(t, err)

	// simulate a record created before Arabic joined the supported set
	store.mu.Lock()
	delete(store.translations, translationKey(id, string(LanguageArabic)))
	store.mu.Unlock()

	loaded, err := LoadEditSession(context.Background(), store, id)
	require.NoError(t, err)

	require.NotNil(t, loaded.Translation(LanguageArabic))
	assert.Empty(t, loaded.Translation(LanguageArabic).Title)
	assert.Equal(t, "Building a Game Engine", loaded.Translation(LanguageEnglish).Title)
}

func TestLoadEditSessionNotFound(t *testing.T) {
	store := newFakeStore()

	_, err := LoadEditSession(context.Background(), store, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadEditSessionExcludesSoftDeleted(t *testing.T) {
	store := newFakeStore()
	session := newDraftSession()
	id, err := NewSubmitter(store, testLogger()).Submit(context.Background(), session)
	require.NoError(t, err)
	require.NoError(t, store.SoftDeleteVideo(context.Background(), id))

	_, err = LoadEditSession(context.Background(), store, id)
	assert.ErrorIs(t, err, ErrNotFound)
}
