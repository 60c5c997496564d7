package services

import (
	"context"
	"fmt"
	"time"

	"github.com/arosal/skillcheck/internal/bank"
	"github.com/arosal/skillcheck/internal/errors"
	"github.com/arosal/skillcheck/internal/logger"
	"github.com/arosal/skillcheck/internal/models"
	"github.com/arosal/skillcheck/internal/repository"
	"github.com/arosal/skillcheck/internal/session"
)

// The result view shows elapsed time and percentile supplied by the caller,
// not computed by the engine. These mirror the product's mocked values.
const (
	mockElapsedLabel = "15m 20s"
	mockPercentile   = 85
)

// AssessmentService handles assessment catalog and session business logic
type AssessmentService interface {
	ListAssessments(ctx context.Context, category string) []models.AssessmentCard
	StartSession(ctx context.Context, assessmentID int64) (*session.Session, error)
	GetSession(ctx context.Context, id string) (*session.Session, error)
	SubmitSession(ctx context.Context, id string) (*models.AssessmentResult, error)
	Results(ctx context.Context) map[int64]models.ResultSummary
	RecentResults(ctx context.Context, filter models.ResultFilter) ([]models.ResultSummary, error)
	ResultFor(ctx context.Context, assessmentID int64) (*models.ResultSummary, error)
	ClearResult(ctx context.Context, assessmentID int64) error
}

type assessmentService struct {
	sessions *session.Manager
	results  repository.ResultRepository
}

// NewAssessmentService creates a new AssessmentService
func NewAssessmentService(sessions *session.Manager, results repository.ResultRepository) AssessmentService {
	return &assessmentService{
		sessions: sessions,
		results:  results,
	}
}

// ListAssessments merges the static catalog with persisted summaries.
// A corrupted or unreadable store degrades to "no prior results" so the
// catalog always renders.
func (s *assessmentService) ListAssessments(ctx context.Context, category string) []models.AssessmentCard {
	log := logger.FromContext(ctx)
	log.Debug("listing assessments: category=%q", category)

	saved := s.Results(ctx)

	var cards []models.AssessmentCard
	for _, a := range bank.Assessments() {
		if category != "" && a.Category != category {
			continue
		}
		card := models.AssessmentCard{
			Assessment: a,
			Status:     models.ResultStatusPending,
			ScoreLabel: "-",
		}
		if summary, ok := saved[a.ID]; ok {
			card.Status = summary.Status
			card.ScoreLabel = summary.ScoreLabel
		}
		cards = append(cards, card)
	}
	return cards
}

// Results loads all persisted summaries, treating a failed read as an empty
// store.
func (s *assessmentService) Results(ctx context.Context) map[int64]models.ResultSummary {
	log := logger.FromContext(ctx)

	saved, err := s.results.All(ctx)
	if err != nil {
		log.Warn("failed to load saved results, treating as empty: %v", err)
		return map[int64]models.ResultSummary{}
	}
	return saved
}

// RecentResults lists persisted summaries, newest first. Unlike the catalog
// read path this one propagates storage errors; it is a reporting view, not
// a gate on taking assessments.
func (s *assessmentService) RecentResults(ctx context.Context, filter models.ResultFilter) ([]models.ResultSummary, error) {
	out, err := s.results.List(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list results: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return out, nil
}

// ResultFor returns the persisted summary for one assessment. Fails with
// NotFound when the assessment is unknown or has never been completed.
func (s *assessmentService) ResultFor(ctx context.Context, assessmentID int64) (*models.ResultSummary, error) {
	if _, err := bank.Assessment(assessmentID); err != nil {
		return nil, err
	}

	summary, err := s.results.Get(ctx, assessmentID)
	if err != nil {
		logger.FromContext(ctx).Error("failed to load result: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if summary == nil {
		return nil, errors.NewNotFoundError("result for assessment", assessmentID)
	}
	return summary, nil
}

// ClearResult removes the persisted summary so the catalog card returns to
// Pending.
func (s *assessmentService) ClearResult(ctx context.Context, assessmentID int64) error {
	log := logger.FromContext(ctx)

	if _, err := bank.Assessment(assessmentID); err != nil {
		return err
	}
	if err := s.results.Delete(ctx, assessmentID); err != nil {
		log.Error("failed to clear result: %v", err)
		return errors.NewInternalError(err)
	}
	log.Info("cleared result: assessment_id=%d", assessmentID)
	return nil
}

func (s *assessmentService) StartSession(ctx context.Context, assessmentID int64) (*session.Session, error) {
	log := logger.FromContext(ctx)
	log.Debug("starting session: assessment_id=%d", assessmentID)

	sess, err := s.sessions.Start(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *assessmentService) GetSession(ctx context.Context, id string) (*session.Session, error) {
	return s.sessions.Get(id)
}

// SubmitSession freezes the session, computes the score, and persists the
// summary before returning the result payload.
func (s *assessmentService) SubmitSession(ctx context.Context, id string) (*models.AssessmentResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("submitting session: id=%s", id)

	sess, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}

	result, err := sess.Submit()
	if err != nil {
		return nil, err
	}

	summary := models.ResultSummary{
		AssessmentID: result.AssessmentID,
		Status:       models.ResultStatusCompleted,
		ScoreLabel:   fmt.Sprintf("%d%%", result.ScorePercent),
		SubmittedAt:  time.Now().UTC(),
	}
	if err := s.results.Save(ctx, summary); err != nil {
		log.Error("failed to persist result summary: %v", err)
		return nil, errors.NewInternalError(err)
	}

	result.ElapsedLabel = mockElapsedLabel
	result.Percentile = mockPercentile

	log.Info("session submitted: id=%s, assessment_id=%d, score=%d/%d (%d%%)",
		id, result.AssessmentID, result.Score, result.TotalQuestions, result.ScorePercent)
	return &result, nil
}
