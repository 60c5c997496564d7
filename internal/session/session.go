// Package session owns the mutable state of one in-progress assessment
// attempt: question order, answers, review marks, position, and the final
// score. Sessions are explicit objects owned by a Manager, never package
// state, so independent attempts cannot leak into each other.
package session

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arosal/skillcheck/internal/errors"
	"github.com/arosal/skillcheck/internal/models"
)

// Status of an attempt. There is no transition back from StatusSubmitted;
// a retake creates a brand-new session.
type Status string

const (
	StatusInProgress Status = "InProgress"
	StatusSubmitted  Status = "Submitted"
)

// QuestionStatus is the navigator chip state for one position. Precedence is
// active > marked > answered > unvisited.
type QuestionStatus string

const (
	QuestionActive    QuestionStatus = "active"
	QuestionMarked    QuestionStatus = "marked"
	QuestionAnswered  QuestionStatus = "answered"
	QuestionUnvisited QuestionStatus = "unvisited"
)

// AnswerOutcome reports the gamification bookkeeping for one answer. XP is
// only awarded the first time a position is answered; re-answering replaces
// the choice without extending the streak.
type AnswerOutcome struct {
	FirstAnswer bool `json:"first_answer"`
	Streak      int  `json:"streak"`
	XPAwarded   int  `json:"xp_awarded"`
}

// QuestionView is a question as exposed to callers: the correct index never
// leaves the engine before submission.
type QuestionView struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// Snapshot is a read-only view of a session for rendering.
type Snapshot struct {
	ID              string           `json:"id"`
	AssessmentID    int64            `json:"assessment_id"`
	Title           string           `json:"title"`
	Status          Status           `json:"status"`
	CurrentIndex    int              `json:"current_index"`
	TotalQuestions  int              `json:"total_questions"`
	ProgressPercent int              `json:"progress_percent"`
	Question        QuestionView     `json:"question"`
	SelectedOption  *int             `json:"selected_option"`
	Marked          bool             `json:"marked"`
	Statuses        []QuestionStatus `json:"statuses"`
	Streak          int              `json:"streak"`
	XPTotal         int              `json:"xp_total"`
}

// Session is one attempt at a single assessment. All operations are safe for
// concurrent use; the engine itself has no asynchronous internal steps.
type Session struct {
	mu         sync.Mutex
	id         string
	assessment models.Assessment
	order      []models.Question
	current    int
	answers    map[int]int
	marked     map[int]struct{}
	status     Status
	streak     int
	xpTotal    int
	result     models.AssessmentResult
	startedAt  time.Time
	lastActive time.Time
}

// New starts a fresh session over the given questions. The order is
// randomized once here with the injected source; two starts of the same
// assessment yield different orders on purpose.
func New(assessment models.Assessment, questions []models.Question, rng *rand.Rand) *Session {
	order := make([]models.Question, len(questions))
	copy(order, questions)
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	now := time.Now()
	return &Session{
		id:         uuid.NewString(),
		assessment: assessment,
		order:      order,
		answers:    make(map[int]int),
		marked:     make(map[int]struct{}),
		status:     StatusInProgress,
		startedAt:  now,
		lastActive: now,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// AssessmentID returns the id of the assessment being attempted.
func (s *Session) AssessmentID() int64 {
	return s.assessment.ID
}

// LastActive returns the time of the most recent operation, for idle
// eviction.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

func (s *Session) touch() {
	s.lastActive = time.Now()
}

func (s *Session) requireInProgress(operation string) error {
	if s.status != StatusInProgress {
		return errors.NewInvalidStateError(operation, string(s.status))
	}
	return nil
}

// SelectAnswer records optionIndex as the answer at position. Re-answering
// is allowed and simply replaces the prior choice. The returned outcome
// carries the streak/XP bookkeeping driven by "was this position previously
// unanswered".
func (s *Session) SelectAnswer(position, optionIndex int) (AnswerOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireInProgress("answer"); err != nil {
		return AnswerOutcome{}, err
	}
	if position < 0 || position >= len(s.order) {
		return AnswerOutcome{}, errors.NewOutOfRangeError("position", position, len(s.order))
	}
	if optionIndex < 0 || optionIndex >= len(s.order[position].Options) {
		return AnswerOutcome{}, errors.NewOutOfRangeError("option", optionIndex, len(s.order[position].Options))
	}

	_, answered := s.answers[position]
	s.answers[position] = optionIndex
	s.touch()

	outcome := AnswerOutcome{FirstAnswer: !answered, Streak: s.streak}
	if !answered {
		outcome.XPAwarded = 10 + s.streak*5
		s.streak++
		s.xpTotal += outcome.XPAwarded
		outcome.Streak = s.streak
	}
	return outcome, nil
}

// GoNext advances to the next question. At the last position it is a no-op;
// the caller is expected to offer Submit instead.
func (s *Session) GoNext() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireInProgress("navigation"); err != nil {
		return err
	}
	if s.current < len(s.order)-1 {
		s.current++
	}
	s.touch()
	return nil
}

// GoPrevious moves back one question, clamped at position 0.
func (s *Session) GoPrevious() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireInProgress("navigation"); err != nil {
		return err
	}
	if s.current > 0 {
		s.current--
	}
	s.touch()
	return nil
}

// NavigateTo jumps directly to any valid position, regardless of whether it
// has been answered.
func (s *Session) NavigateTo(position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireInProgress("navigation"); err != nil {
		return err
	}
	if position < 0 || position >= len(s.order) {
		return errors.NewOutOfRangeError("position", position, len(s.order))
	}
	s.current = position
	s.touch()
	return nil
}

// ToggleMark flips the review flag on a position. Marking is independent of
// answering: a question may be answered and marked, or marked and unanswered.
func (s *Session) ToggleMark(position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireInProgress("marking"); err != nil {
		return err
	}
	if position < 0 || position >= len(s.order) {
		return errors.NewOutOfRangeError("position", position, len(s.order))
	}
	if _, ok := s.marked[position]; ok {
		delete(s.marked, position)
	} else {
		s.marked[position] = struct{}{}
	}
	s.touch()
	return nil
}

// Submit freezes the session and computes the final score. Unanswered
// questions count as incorrect. The percentage rounds half away from zero.
// A second Submit fails with an InvalidState error.
func (s *Session) Submit() (models.AssessmentResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireInProgress("submit"); err != nil {
		return models.AssessmentResult{}, err
	}

	score := 0
	for position, q := range s.order {
		if selected, ok := s.answers[position]; ok && selected == q.CorrectIndex {
			score++
		}
	}

	s.status = StatusSubmitted
	s.result = models.AssessmentResult{
		AssessmentID:   s.assessment.ID,
		Score:          score,
		TotalQuestions: len(s.order),
		ScorePercent:   int(math.Round(float64(score) * 100 / float64(len(s.order)))),
	}
	s.touch()
	return s.result, nil
}

// Result returns the computed result after submission. Repeated reads see
// the same value.
func (s *Session) Result() (models.AssessmentResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusSubmitted {
		return models.AssessmentResult{}, errors.NewInvalidStateError("result", string(s.status))
	}
	return s.result, nil
}

// QuestionIDs returns the question ids in session order.
func (s *Session) QuestionIDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int, len(s.order))
	for i, q := range s.order {
		ids[i] = q.ID
	}
	return ids
}

// Snapshot produces a read-only view of the session without mutating it.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.order[s.current]
	snap := Snapshot{
		ID:              s.id,
		AssessmentID:    s.assessment.ID,
		Title:           s.assessment.Title,
		Status:          s.status,
		CurrentIndex:    s.current,
		TotalQuestions:  len(s.order),
		ProgressPercent: int(math.Round(float64(s.current+1) * 100 / float64(len(s.order)))),
		Question: QuestionView{
			ID:      current.ID,
			Text:    current.Text,
			Options: append([]string(nil), current.Options...),
		},
		Statuses: s.statuses(),
		Streak:   s.streak,
		XPTotal:  s.xpTotal,
	}
	if selected, ok := s.answers[s.current]; ok {
		v := selected
		snap.SelectedOption = &v
	}
	_, snap.Marked = s.marked[s.current]
	return snap
}

// statuses computes the navigator chip for every position. Precedence:
// active > marked > answered > unvisited. Callers hold s.mu.
func (s *Session) statuses() []QuestionStatus {
	out := make([]QuestionStatus, len(s.order))
	for i := range s.order {
		switch {
		case i == s.current:
			out[i] = QuestionActive
		case s.isMarked(i):
			out[i] = QuestionMarked
		case s.isAnswered(i):
			out[i] = QuestionAnswered
		default:
			out[i] = QuestionUnvisited
		}
	}
	return out
}

func (s *Session) isMarked(position int) bool {
	_, ok := s.marked[position]
	return ok
}

func (s *Session) isAnswered(position int) bool {
	_, ok := s.answers[position]
	return ok
}
