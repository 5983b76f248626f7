package catalog

import (
	"context"

	"videohub/catalog-api/internal/youtube"
)

// ApplyResolvedMetadata merges freshly resolved metadata into the session's
// draft. Thumbnail, duration and author are authoritative once fetched and
// overwrite whatever is there; video_url was set by the user and is never
// touched. The primary language's title and description are seeded only when
// currently empty, so resolution cannot clobber text the user already typed.
func ApplyResolvedMetadata(s *EditSession, meta *youtube.Metadata) {
	s.Draft.Thumbnail = meta.ThumbnailURL
	s.Draft.Duration = meta.Duration
	s.Draft.Author = meta.Author

	primary := s.Translations[LanguageEnglish]
	if primary.Title == "" {
		primary.Title = meta.Title
	}
	if primary.Description == "" {
		primary.Description = meta.Description
	}
}

// Translator is the external text-translation function.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// FieldResult reports the outcome of translating one field.
type FieldResult struct {
	Field string `json:"field"`
	Err   error  `json:"-"`
}

// TranslateDrafts runs the on-demand translation pass: each non-empty field
// of the source language's draft is translated and written into the target
// draft. The title and description calls are independent; one failing leaves
// the other's result in place, and the target field of a failed call keeps
// its previous value. Results are reported per field, never aggregated.
func TranslateDrafts(ctx context.Context, translator Translator, s *EditSession, source, target Language) []FieldResult {
	src := s.Translations[source]
	dst := s.Translations[target]
	if src == nil || dst == nil {
		return nil
	}

	var results []FieldResult

	if src.Title != "" {
		translated, err := translator.Translate(ctx, src.Title)
		if err == nil {
			dst.Title = translated
		}
		results = append(results, FieldResult{Field: "title", Err: err})
	}

	if src.Description != "" {
		translated, err := translator.Translate(ctx, src.Description)
		if err == nil {
			dst.Description = translated
		}
		results = append(results, FieldResult{Field: "description", Err: err})
	}

	return results
}
