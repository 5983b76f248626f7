package catalog

import (
	"context"

	"github.com/google/uuid"

	"videohub/catalog-api/models"
)

// VideoDraft is the editable, not-yet-persisted shape of a video row.
type VideoDraft struct {
	VideoURL   string     `json:"video_url"`
	Thumbnail  string     `json:"thumbnail"`
	Duration   string     `json:"duration"`
	Author     string     `json:"author"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	IsFeatured bool       `json:"is_featured"`
}

// TranslationDraft is the editable shape of one language's translation row.
type TranslationDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// VideoFilter narrows ListVideos results. Soft-deleted rows are always
// excluded; there is deliberately no switch to include them.
type VideoFilter struct {
	CategoryID   *uuid.UUID
	FeaturedOnly bool
}

// Store is the persistence adapter the reconciliation flow runs against.
// Implementations return ErrNotFound for missing rows and *PersistenceError
// for everything else; raw transport errors never cross this boundary.
type Store interface {
	GetVideo(ctx context.Context, id uuid.UUID) (*models.Video, error)
	ListVideos(ctx context.Context, filter VideoFilter) ([]models.Video, error)
	CreateVideo(ctx context.Context, draft VideoDraft) (*models.Video, error)
	UpdateVideo(ctx context.Context, id uuid.UUID, draft VideoDraft) error
	GetTranslations(ctx context.Context, videoID uuid.UUID) ([]models.VideoTranslation, error)
	UpsertTranslation(ctx context.Context, videoID uuid.UUID, language string, draft TranslationDraft) error
	SoftDeleteVideo(ctx context.Context, id uuid.UUID) error
}
