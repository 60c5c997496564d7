package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"

	"github.com/arosal/skillcheck/internal/logger"
	"github.com/arosal/skillcheck/internal/models"
	"github.com/arosal/skillcheck/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type resultRepository struct {
	db *sql.DB
}

// NewResultRepository creates a new ResultRepository implementation
func NewResultRepository(db *sql.DB) repository.ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Save(ctx context.Context, summary models.ResultSummary) error {
	log := logger.FromContext(ctx).WithPrefix("result_repo")
	log.Debug("saving result: assessment_id=%d, status=%s, score=%s", summary.AssessmentID, summary.Status, summary.ScoreLabel)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO assessment_results (assessment_id, status, score_label, submitted_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(assessment_id) DO UPDATE SET
    status = excluded.status,
    score_label = excluded.score_label,
    submitted_at = excluded.submitted_at
`, summary.AssessmentID, summary.Status, summary.ScoreLabel, summary.SubmittedAt)
	if err != nil {
		log.Error("failed to save result: %v", err)
	}
	return err
}

func (r *resultRepository) Get(ctx context.Context, assessmentID int64) (*models.ResultSummary, error) {
	log := logger.FromContext(ctx).WithPrefix("result_repo")
	log.Debug("fetching result: assessment_id=%d", assessmentID)

	var s models.ResultSummary
	err := r.db.QueryRowContext(ctx, `
SELECT assessment_id, status, score_label, submitted_at
FROM assessment_results
WHERE assessment_id = ?
`, assessmentID).Scan(&s.AssessmentID, &s.Status, &s.ScoreLabel, &s.SubmittedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no result for assessment_id=%d", assessmentID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to fetch result: %v", err)
		return nil, err
	}
	return &s, nil
}

func (r *resultRepository) All(ctx context.Context) (map[int64]models.ResultSummary, error) {
	log := logger.FromContext(ctx).WithPrefix("result_repo")
	log.Debug("fetching all results")

	rows, err := r.db.QueryContext(ctx, `
SELECT assessment_id, status, score_label, submitted_at
FROM assessment_results
`)
	if err != nil {
		log.Error("failed to query results: %v", err)
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64]models.ResultSummary)
	for rows.Next() {
		var s models.ResultSummary
		if err := rows.Scan(&s.AssessmentID, &s.Status, &s.ScoreLabel, &s.SubmittedAt); err != nil {
			log.Error("failed to scan result row: %v", err)
			return nil, err
		}
		out[s.AssessmentID] = s
	}
	log.Debug("found %d results", len(out))
	return out, rows.Err()
}

func (r *resultRepository) List(ctx context.Context, filter models.ResultFilter) ([]models.ResultSummary, error) {
	log := logger.FromContext(ctx).WithPrefix("result_repo")
	log.Debug("listing results: status=%s, limit=%d, offset=%d", filter.Status, filter.Limit, filter.Offset)

	query := sqlBuilder.
		Select("assessment_id", "status", "score_label", "submitted_at").
		From("assessment_results").
		OrderBy("submitted_at DESC")

	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}
	// SQLite rejects OFFSET without LIMIT, so offset only applies when
	// a limit is set.
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
		if filter.Offset > 0 {
			query = query.Offset(uint64(filter.Offset))
		}
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query results: %v", err)
		return nil, err
	}
	defer rows.Close()

	var out []models.ResultSummary
	for rows.Next() {
		var s models.ResultSummary
		if err := rows.Scan(&s.AssessmentID, &s.Status, &s.ScoreLabel, &s.SubmittedAt); err != nil {
			log.Error("failed to scan result row: %v", err)
			return nil, err
		}
		out = append(out, s)
	}
	log.Debug("listed %d results", len(out))
	return out, rows.Err()
}

func (r *resultRepository) Delete(ctx context.Context, assessmentID int64) error {
	log := logger.FromContext(ctx).WithPrefix("result_repo")
	log.Debug("deleting result: assessment_id=%d", assessmentID)

	_, err := r.db.ExecContext(ctx, `DELETE FROM assessment_results WHERE assessment_id = ?`, assessmentID)
	if err != nil {
		log.Error("failed to delete result: %v", err)
	}
	return err
}
