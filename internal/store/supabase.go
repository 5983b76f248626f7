// Package store implements the catalog persistence adapter on top of the
// Supabase PostgREST API.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	postgrest "github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"

	"videohub/catalog-api/internal/catalog"
	"videohub/catalog-api/models"
)

const (
	videosTable       = "videos"
	translationsTable = "video_translations"
)

// SupabaseStore talks to the videos and video_translations tables.
type SupabaseStore struct {
	client *supa.Client
	logger *logrus.Logger
}

func NewSupabaseStore(client *supa.Client, logger *logrus.Logger) *SupabaseStore {
	return &SupabaseStore{client: client, logger: logger}
}

// mapError normalizes a PostgREST error. PGRST116 is "JSON object requested,
// multiple (or no) rows returned", which a .Single() query reports for a
// missing row.
func mapError(op string, err error) error {
	if strings.Contains(err.Error(), "PGRST116") {
		return catalog.ErrNotFound
	}
	return &catalog.PersistenceError{Op: op, Err: err}
}

// GetVideo fetches one video by ID. Soft-deleted rows count as not found.
func (s *SupabaseStore) GetVideo(ctx context.Context, id uuid.UUID) (*models.Video, error) {
	var video models.Video
	_, err := s.client.From(videosTable).
		Select("*", "", false).
		Eq("id", id.String()).
		Is("deleted_at", "null").
		Single().
		ExecuteTo(&video)
	if err != nil {
		return nil, mapError("get video", err)
	}
	return &video, nil
}

// ListVideos returns videos matching the filter, newest first. Soft-deleted
// rows are excluded unconditionally.
func (s *SupabaseStore) ListVideos(ctx context.Context, filter catalog.VideoFilter) ([]models.Video, error) {
	query := s.client.From(videosTable).
		Select("*", "", false).
		Is("deleted_at", "null")

	if filter.CategoryID != nil {
		query = query.Eq("category_id", filter.CategoryID.String())
	}
	if filter.FeaturedOnly {
		query = query.Eq("is_featured", "true")
	}

	body, _, err := query.
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, mapError("list videos", err)
	}

	var videos []models.Video
	if err := json.Unmarshal(body, &videos); err != nil {
		return nil, &catalog.PersistenceError{Op: "list videos", Err: err}
	}
	if videos == nil {
		videos = []models.Video{}
	}
	return videos, nil
}

// CreateVideo inserts a new video row. The ID and timestamps are generated by
// the database; the returned record carries them.
func (s *SupabaseStore) CreateVideo(ctx context.Context, draft catalog.VideoDraft) (*models.Video, error) {
	row := map[string]interface{}{
		"video_url":   draft.VideoURL,
		"thumbnail":   draft.Thumbnail,
		"duration":    draft.Duration,
		"author":      draft.Author,
		"views":       0,
		"is_featured": draft.IsFeatured,
	}
	if draft.CategoryID != nil {
		row["category_id"] = draft.CategoryID.String()
	}

	body, _, err := s.client.From(videosTable).
		Insert(row, false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, mapError("create video", err)
	}

	var created []models.Video
	if err := json.Unmarshal(body, &created); err != nil || len(created) == 0 {
		s.logger.Errorf("Unexpected response creating video: %v, body: %s", err, string(body))
		return nil, &catalog.PersistenceError{Op: "create video", Err: errRepresentation(err)}
	}
	return &created[0], nil
}

// UpdateVideo updates an existing video row by ID.
func (s *SupabaseStore) UpdateVideo(ctx context.Context, id uuid.UUID, draft catalog.VideoDraft) error {
	updates := map[string]interface{}{
		"video_url":   draft.VideoURL,
		"thumbnail":   draft.Thumbnail,
		"duration":    draft.Duration,
		"author":      draft.Author,
		"is_featured": draft.IsFeatured,
		"updated_at":  time.Now(),
	}
	if draft.CategoryID != nil {
		updates["category_id"] = draft.CategoryID.String()
	} else {
		updates["category_id"] = nil
	}

	_, count, err := s.client.From(videosTable).
		Update(updates, "", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return mapError("update video", err)
	}
	if count == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

// GetTranslations returns all translation rows for a video.
func (s *SupabaseStore) GetTranslations(ctx context.Context, videoID uuid.UUID) ([]models.VideoTranslation, error) {
	body, _, err := s.client.From(translationsTable).
		Select("*", "", false).
		Eq("video_id", videoID.String()).
		Execute()
	if err != nil {
		return nil, mapError("get translations", err)
	}

	var translations []models.VideoTranslation
	if err := json.Unmarshal(body, &translations); err != nil {
		return nil, &catalog.PersistenceError{Op: "get translations", Err: err}
	}
	return translations, nil
}

// UpsertTranslation inserts or updates the row keyed (video_id, language).
// The composite-key conflict target is what guarantees no duplicate row for
// the same pair.
func (s *SupabaseStore) UpsertTranslation(ctx context.Context, videoID uuid.UUID, language string, draft catalog.TranslationDraft) error {
	row := map[string]interface{}{
		"video_id":    videoID.String(),
		"language":    language,
		"title":       draft.Title,
		"description": draft.Description,
	}

	_, _, err := s.client.From(translationsTable).
		Insert(row, true, "video_id,language", "representation", "").
		Execute()
	if err != nil {
		return mapError("upsert translation", err)
	}
	return nil
}

// SoftDeleteVideo marks the row deleted; it stays in the table but drops out
// of every default listing query.
func (s *SupabaseStore) SoftDeleteVideo(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	_, count, err := s.client.From(videosTable).
		Update(map[string]interface{}{"deleted_at": now, "updated_at": now}, "", "exact").
		Eq("id", id.String()).
		Is("deleted_at", "null").
		Execute()
	if err != nil {
		return mapError("soft delete video", err)
	}
	if count == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func errRepresentation(err error) error {
	if err != nil {
		return err
	}
	return errors.New("empty representation returned")
}
