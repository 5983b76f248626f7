package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SubmissionPlan is the ordered write plan for one submit: first the video
// row (create or update), then one translation upsert per supported language.
type SubmissionPlan struct {
	IsNew     bool
	VideoID   uuid.UUID // zero when IsNew
	Languages []Language
}

// PlanSubmission computes the write plan for the session's current identity.
// Translations always upsert: even for an existing video a language's row may
// not exist yet.
func PlanSubmission(s *EditSession) SubmissionPlan {
	return SubmissionPlan{
		IsNew:     s.IsNew(),
		VideoID:   s.VideoID(),
		Languages: append([]Language(nil), SupportedLanguages...),
	}
}

// Submitter executes submission plans against a Store.
type Submitter struct {
	store  Store
	logger *logrus.Logger
}

func NewSubmitter(store Store, logger *logrus.Logger) *Submitter {
	return &Submitter{store: store, logger: logger}
}

// Submit persists the session. The video row write completes first so the
// generated ID is known, then the per-language upserts run concurrently (no
// ordering dependency between languages). While a submission is in flight the
// session rejects further submits; on failure it returns to an editable state
// with the draft intact.
func (sub *Submitter) Submit(ctx context.Context, s *EditSession) (uuid.UUID, error) {
	if err := s.beginSubmit(); err != nil {
		return uuid.Nil, err
	}

	plan := PlanSubmission(s)

	var videoID uuid.UUID
	if plan.IsNew {
		created, err := sub.store.CreateVideo(ctx, s.Draft)
		if err != nil {
			sub.logger.Errorf("Failed to create video record: %v", err)
			s.failSubmit()
			return uuid.Nil, err
		}
		videoID = created.ID
	} else {
		if err := sub.store.UpdateVideo(ctx, plan.VideoID, s.Draft); err != nil {
			sub.logger.Errorf("Failed to update video record %s: %v", plan.VideoID, err)
			s.failSubmit()
			return uuid.Nil, err
		}
		videoID = plan.VideoID
	}

	// Translation rows depend on the video's identity, which is known by now.
	var wg sync.WaitGroup
	errs := make(chan error, len(plan.Languages))
	for _, lang := range plan.Languages {
		draft := s.Translations[lang]
		if draft == nil {
			continue
		}
		wg.Add(1)
		go func(lang Language, draft TranslationDraft) {
			defer wg.Done()
			if err := sub.store.UpsertTranslation(ctx, videoID, string(lang), draft); err != nil {
				sub.logger.Errorf("Failed to upsert %s translation for video %s: %v", lang, videoID, err)
				errs <- fmt.Errorf("%s: %w", lang, err)
			}
		}(lang, *draft)
	}
	wg.Wait()
	close(errs)

	// The video row is persisted at this point even if translations failed, so
	// bind the session to it: a retry must update, not create a second row.
	if err := <-errs; err != nil {
		s.failSubmitBound(videoID)
		return videoID, err
	}

	s.completeSubmit(videoID)
	sub.logger.Infof("Submitted video %s (%d translations)", videoID, len(plan.Languages))
	return videoID, nil
}
