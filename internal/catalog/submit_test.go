package catalog

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func newDraftSession() *EditSession {
	session := NewEditSession()
	session.Draft = VideoDraft{
		VideoURL:  "https://youtu.be/dQw4w9WgXcQ",
		Thumbnail: "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		Duration:  "2:15:30",
		Author:    "TechMaster",
	}
	session.Translations[LanguageEnglish].Title = "Building a Game Engine"
	session.Translations[LanguageArabic].Title = "بناء محرك ألعاب"
	return session
}

func TestSubmitNewVideo(t *testing.T) {
	store := newFakeStore()
	session := newDraftSession()

	id, err := NewSubmitter(store, testLogger()).Submit(context.Background(), session)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	assert.Equal(t, 1, store.createCalls)
	assert.Equal(t, len(SupportedLanguages), store.upsertCalls)

	// every translation row carries the ID returned by the create call
	for _, lang := range SupportedLanguages {
		row, ok := store.translation(id, string(lang))
		require.True(t, ok, "missing %s translation", lang)
		assert.Equal(t, id, row.VideoID)
	}

	// session now targets the persisted record
	assert.False(t, session.IsNew())
	assert.Equal(t, id, session.VideoID())
	assert.Equal(t, StateSucceeded, session.State())
}

func TestSubmitAgainUpdatesInsteadOfCreating(t *testing.T) {
	store := newFakeStore()
	session := newDraftSession()
	submitter := NewSubmitter(store, testLogger())

	first, err := submitter.Submit(context.Background(), session)
	require.NoError(t, err)

	session.Draft.Author = "Renamed Channel"
	second, err := submitter.Submit(context.Background(), session)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.createCalls, "a settled session must update, not create")

	video, err := store.GetVideo(context.Background(), first)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Channel", video.Author)
}

func TestDoubleSubmitCreatesOnlyOneVideo(t *testing.T) {
	store := newFakeStore()
	store.createDelay = 50 * time.Millisecond
	session := newDraftSession()
	submitter := NewSubmitter(store, testLogger())

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = submitter.Submit(context.Background(), session)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, store.createCalls, "double-submit must not create two records")

	var rejected int
	for _, err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, ErrSubmitInProgress)
			rejected++
		}
	}
	assert.Equal(t, 1, rejected)
}

func TestSubmitCreateFailureKeepsDraft(t *testing.T) {
	store := newFakeStore()
	store.failCreate = true
	session := newDraftSession()

	_, err := NewSubmitter(store, testLogger()).Submit(context.Background(), session)
	require.Error(t, err)

	var pe *PersistenceError
	assert.ErrorAs(t, err, &pe)
	assert.Equal(t, StateFailed, session.State())
	assert.True(t, session.IsNew(), "failed create leaves the session unsaved")
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", session.Draft.VideoURL, "draft survives the failure")

	// the failure is not sticky; a retry goes through
	store.failCreate = false
	_, err = NewSubmitter(store, testLogger()).Submit(context.Background(), session)
	assert.NoError(t, err)
}

func TestSubmitTranslationFailure(t *testing.T) {
	store := newFakeStore()
	store.failUpsertLang = string(LanguageArabic)
	session := newDraftSession()
	submitter := NewSubmitter(store, testLogger())

	id, err := submitter.Submit(context.Background(), session)
	require.Error(t, err)

	var pe *PersistenceError
	assert.ErrorAs(t, err, &pe)
	assert.Equal(t, StateFailed, session.State())
	assert.Equal(t, 1, store.createCalls)

	// the video row landed, so the session is bound to it despite the failure
	assert.False(t, session.IsNew())
	assert.Equal(t, id, session.VideoID())

	// retry updates that row and fills in the missing translation
	store.failUpsertLang = ""
	retryID, err := submitter.Submit(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, id, retryID)
	assert.Equal(t, 1, store.createCalls, "retry after partial failure must not create a second record")

	row, ok := store.translation(id, string(LanguageArabic))
	require.True(t, ok, "retry must upsert the failed translation")
	assert.Equal(t, id, row.VideoID)
}

func TestSubmitOnClosedSessionIsRejected(t *testing.T) {
	store := newFakeStore()
	session := newDraftSession()
	session.Close()

	_, err := NewSubmitter(store, testLogger()).Submit(context.Background(), session)
	assert.ErrorIs(t, err, ErrSessionClosed)
	assert.Equal(t, 0, store.createCalls)
}

func TestSessionClosedMidSubmissionDiscardsRebind(t *testing.T) {
	store := newFakeStore()
	store.createDelay = 50 * time.Millisecond
	session := newDraftSession()
	submitter := NewSubmitter(store, testLogger())

	done := make(chan struct{})
	go func() {
		defer close(done)
		submitter.Submit(context.Background(), session)
	}()

	time.Sleep(10 * time.Millisecond)
	session.Close() // user navigated away
	<-done

	// the write may have landed, but the stale session was not rebound
	assert.Equal(t, uuid.Nil, session.VideoID())
	assert.True(t, session.IsNew())
}
