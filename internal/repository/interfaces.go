package repository

import (
	"context"

	"github.com/arosal/skillcheck/internal/models"
)

// ResultRepository is the durable store for assessment result summaries.
// Save overwrites any prior summary for the same assessment; there is no
// attempt history.
type ResultRepository interface {
	Save(ctx context.Context, summary models.ResultSummary) error
	Get(ctx context.Context, assessmentID int64) (*models.ResultSummary, error)
	All(ctx context.Context) (map[int64]models.ResultSummary, error)
	List(ctx context.Context, filter models.ResultFilter) ([]models.ResultSummary, error)
	Delete(ctx context.Context, assessmentID int64) error
}
