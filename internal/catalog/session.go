package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Language is a supported translation language code.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

// SupportedLanguages is the language set every video carries translations
// for. English is the primary language metadata resolution seeds into.
var SupportedLanguages = []Language{LanguageEnglish, LanguageArabic}

// State of an edit session's submission machine.
type State string

const (
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// EditSession holds the draft of one video being edited plus one translation
// draft per supported language. It is ephemeral: nothing is persisted until
// Submit, and Close discards it. Sessions are independent of each other.
type EditSession struct {
	mu      sync.Mutex
	videoID uuid.UUID // zero until the first successful create
	isNew   bool
	state   State
	closed  bool

	Draft        VideoDraft
	Translations map[Language]*TranslationDraft
}

// NewEditSession creates a session for a brand-new video with empty drafts.
func NewEditSession() *EditSession {
	return &EditSession{
		isNew:        true,
		state:        StateEditing,
		Translations: emptyTranslations(),
	}
}

// LoadEditSession hydrates a session from a persisted video and its
// translation rows. A language with no row yet gets an empty draft; a record
// may predate a language being added to the supported set.
func LoadEditSession(ctx context.Context, store Store, id uuid.UUID) (*EditSession, error) {
	video, err := store.GetVideo(ctx, id)
	if err != nil {
		return nil, err
	}

	session := &EditSession{
		videoID: video.ID,
		state:   StateEditing,
		Draft: VideoDraft{
			VideoURL:   video.VideoURL,
			Thumbnail:  video.Thumbnail,
			Duration:   video.Duration,
			Author:     video.Author,
			CategoryID: video.CategoryID,
			IsFeatured: video.IsFeatured,
		},
		Translations: emptyTranslations(),
	}

	translations, err := store.GetTranslations(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, row := range translations {
		draft, ok := session.Translations[Language(row.Language)]
		if !ok {
			continue // row for a language no longer in the supported set
		}
		draft.Title = row.Title
		if row.Description != nil {
			draft.Description = *row.Description
		}
	}

	return session, nil
}

func emptyTranslations() map[Language]*TranslationDraft {
	m := make(map[Language]*TranslationDraft, len(SupportedLanguages))
	for _, lang := range SupportedLanguages {
		m[lang] = &TranslationDraft{}
	}
	return m
}

// VideoID returns the persisted identity, or uuid.Nil for an unsaved record.
func (s *EditSession) VideoID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.videoID
}

// IsNew reports whether the session still targets an unsaved record.
func (s *EditSession) IsNew() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isNew
}

// State returns the submission state.
func (s *EditSession) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Translation returns the draft for a language, or nil if unsupported.
func (s *EditSession) Translation(lang Language) *TranslationDraft {
	return s.Translations[lang]
}

// Close discards the session. In-flight submission results are dropped
// instead of being applied to a session the user has navigated away from.
func (s *EditSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// beginSubmit moves the machine to Submitting, rejecting re-entry.
func (s *EditSession) beginSubmit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	if s.state == StateSubmitting {
		return ErrSubmitInProgress
	}
	s.state = StateSubmitting
	return nil
}

// failSubmit records a failed attempt. The draft is untouched so the user
// can correct and resubmit.
func (s *EditSession) failSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateFailed
}

// failSubmitBound records a failed attempt made after the video row write
// already landed. The session rebinds to the persisted identity so a retry
// updates that row and re-upserts translations instead of creating a
// duplicate. A closed session stays unbound.
func (s *EditSession) failSubmitBound(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateFailed
	if s.closed {
		return
	}
	s.videoID = id
	s.isNew = false
}

// completeSubmit records success and rebinds a new record's session to its
// persisted identity, so a second submit updates instead of creating again.
// A closed session is left unbound; its result is discarded.
func (s *EditSession) completeSubmit(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateSucceeded
	if s.closed {
		return
	}
	s.videoID = id
	s.isNew = false
}
