package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"videohub/catalog-api/models"
)

// fakeStore is an in-memory Store used by the tests in this package. It
// records call counts and can be told to fail or stall specific operations.
type fakeStore struct {
	mu           sync.Mutex
	videos       map[uuid.UUID]*models.Video
	translations map[string]models.VideoTranslation // videoID|language

	createCalls int
	upsertCalls int

	failCreate     bool
	failUpsertLang string
	createDelay    time.Duration
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		videos:       make(map[uuid.UUID]*models.Video),
		translations: make(map[string]models.VideoTranslation),
	}
}

func translationKey(videoID uuid.UUID, language string) string {
	return videoID.String() + "|" + language
}

func (f *fakeStore) GetVideo(ctx context.Context, id uuid.UUID) (*models.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	video, ok := f.videos[id]
	if !ok || video.IsDeleted() {
		return nil, ErrNotFound
	}
	copied := *video
	return &copied, nil
}

func (f *fakeStore) ListVideos(ctx context.Context, filter VideoFilter) ([]models.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Video
	for _, v := range f.videos {
		if v.IsDeleted() {
			continue
		}
		if filter.FeaturedOnly && !v.IsFeatured {
			continue
		}
		if filter.CategoryID != nil && (v.CategoryID == nil || *v.CategoryID != *filter.CategoryID) {
			continue
		}
		out = append(out, *v)
	}
	return out, nil
}

func (f *fakeStore) CreateVideo(ctx context.Context, draft VideoDraft) (*models.Video, error) {
	if f.createDelay > 0 {
		time.Sleep(f.createDelay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.failCreate {
		return nil, &PersistenceError{Op: "create video", Err: errors.New("boom")}
	}
	now := time.Now()
	video := &models.Video{
		ID:         uuid.New(),
		VideoURL:   draft.VideoURL,
		Thumbnail:  draft.Thumbnail,
		Duration:   draft.Duration,
		Author:     draft.Author,
		CategoryID: draft.CategoryID,
		IsFeatured: draft.IsFeatured,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	f.videos[video.ID] = video
	copied := *video
	return &copied, nil
}

func (f *fakeStore) UpdateVideo(ctx context.Context, id uuid.UUID, draft VideoDraft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	video, ok := f.videos[id]
	if !ok {
		return ErrNotFound
	}
	video.VideoURL = draft.VideoURL
	video.Thumbnail = draft.Thumbnail
	video.Duration = draft.Duration
	video.Author = draft.Author
	video.CategoryID = draft.CategoryID
	video.IsFeatured = draft.IsFeatured
	video.UpdatedAt = time.Now()
	return nil
}

func (f *fakeStore) GetTranslations(ctx context.Context, videoID uuid.UUID) ([]models.VideoTranslation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.VideoTranslation
	for _, t := range f.translations {
		if t.VideoID == videoID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeStore) UpsertTranslation(ctx context.Context, videoID uuid.UUID, language string, draft TranslationDraft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upsertCalls++
	if f.failUpsertLang == language {
		return &PersistenceError{Op: "upsert translation", Err: fmt.Errorf("boom for %s", language)}
	}
	description := draft.Description
	f.translations[translationKey(videoID, language)] = models.VideoTranslation{
		VideoID:     videoID,
		Language:    language,
		Title:       draft.Title,
		Description: &description,
	}
	return nil
}

func (f *fakeStore) SoftDeleteVideo(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	video, ok := f.videos[id]
	if !ok || video.IsDeleted() {
		return ErrNotFound
	}
	now := time.Now()
	video.DeletedAt = &now
	return nil
}

func (f *fakeStore) translation(videoID uuid.UUID, language string) (models.VideoTranslation, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.translations[translationKey(videoID, language)]
	return t, ok
}
