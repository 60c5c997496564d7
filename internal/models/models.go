package models

import "time"

// Question is one multiple-choice prompt within an assessment. Options are
// index-addressable and their order is significant; CorrectIndex always
// satisfies 0 <= CorrectIndex < len(Options).
type Question struct {
	ID           int      `json:"id"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"-"`
}

// Difficulty of an assessment as shown on its catalog card.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Assessment is the static metadata for one catalog entry. QuestionCount and
// DurationLabel are display values carried from the catalog, not derived from
// the question bank.
type Assessment struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Category      string     `json:"category"`
	DurationLabel string     `json:"duration"`
	QuestionCount int        `json:"questions"`
	Difficulty    Difficulty `json:"difficulty"`
}

// Result statuses as persisted and rendered on catalog cards.
const (
	ResultStatusPending   = "Pending"
	ResultStatusCompleted = "Completed"
)

// ResultSummary is the durable record of a completed attempt. One row per
// assessment; a retake overwrites the previous summary.
type ResultSummary struct {
	AssessmentID int64     `json:"assessment_id"`
	Status       string    `json:"status"`
	ScoreLabel   string    `json:"score"`
	SubmittedAt  time.Time `json:"timestamp"`
}

// ResultFilter narrows result listings.
type ResultFilter struct {
	Status string
	Limit  int
	Offset int
}

// AssessmentCard is an Assessment decorated with the latest persisted result,
// or the Pending defaults when none exists. It is a read-only composed view.
type AssessmentCard struct {
	Assessment
	Status     string `json:"status"`
	ScoreLabel string `json:"score"`
}

// AssessmentResult is the payload returned on submit. ElapsedLabel and
// Percentile are supplied by the caller, not computed by the engine.
type AssessmentResult struct {
	AssessmentID   int64  `json:"assessment_id"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	ScorePercent   int    `json:"score_percent"`
	ElapsedLabel   string `json:"time_taken"`
	Percentile     int    `json:"percentile"`
}
