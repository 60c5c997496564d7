package session_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/arosal/skillcheck/internal/errors"
	"github.com/arosal/skillcheck/internal/models"
	"github.com/arosal/skillcheck/internal/session"
)

func testAssessment() models.Assessment {
	return models.Assessment{
		ID:       1,
		Title:    "Python Basics",
		Category: "Technical",
	}
}

// testQuestions builds five questions with correct indices [1,1,0,2,2],
// matching the catalog's smallest bank shape.
func testQuestions() []models.Question {
	return []models.Question{
		{ID: 1, Text: "q1", Options: []string{"a", "b", "c"}, CorrectIndex: 1},
		{ID: 2, Text: "q2", Options: []string{"a", "b", "c"}, CorrectIndex: 1},
		{ID: 3, Text: "q3", Options: []string{"a", "b", "c"}, CorrectIndex: 0},
		{ID: 4, Text: "q4", Options: []string{"a", "b", "c"}, CorrectIndex: 2},
		{ID: 5, Text: "q5", Options: []string{"a", "b", "c"}, CorrectIndex: 2},
	}
}

func newTestSession(seed int64) *session.Session {
	return session.New(testAssessment(), testQuestions(), rand.New(rand.NewSource(seed)))
}

// positionOf returns the session position holding the question with the
// given id.
func positionOf(t *testing.T, sess *session.Session, questionID int) int {
	t.Helper()
	for pos, id := range sess.QuestionIDs() {
		if id == questionID {
			return pos
		}
	}
	t.Fatalf("question %d not found in session order", questionID)
	return -1
}

func correctIndexOf(t *testing.T, questionID int) int {
	t.Helper()
	for _, q := range testQuestions() {
		if q.ID == questionID {
			return q.CorrectIndex
		}
	}
	t.Fatalf("unknown question id %d", questionID)
	return -1
}

func TestNew_OrderIsPermutation(t *testing.T) {
	sess := newTestSession(42)

	ids := sess.QuestionIDs()
	require.Len(t, ids, 5, "shuffling must not change the length")

	seen := make(map[int]int)
	for _, id := range ids {
		seen[id]++
	}
	for _, q := range testQuestions() {
		assert.Equal(t, 1, seen[q.ID], "question %d should appear exactly once", q.ID)
	}
}

func TestNew_SeededShuffleIsDeterministic(t *testing.T) {
	first := session.New(testAssessment(), testQuestions(), rand.New(rand.NewSource(7)))
	second := session.New(testAssessment(), testQuestions(), rand.New(rand.NewSource(7)))

	assert.Equal(t, first.QuestionIDs(), second.QuestionIDs(), "same seed should produce the same order")
}

func TestNew_InitialSnapshot(t *testing.T) {
	sess := newTestSession(42)
	snap := sess.Snapshot()

	assert.Equal(t, session.StatusInProgress, snap.Status)
	assert.Equal(t, 0, snap.CurrentIndex)
	assert.Equal(t, 5, snap.TotalQuestions)
	assert.Equal(t, 20, snap.ProgressPercent)
	assert.Nil(t, snap.SelectedOption)
	assert.False(t, snap.Marked)
	assert.Equal(t, 0, snap.Streak)
	assert.Equal(t, 0, snap.XPTotal)
}

func TestSelectAnswer_LastWriteWins(t *testing.T) {
	sess := newTestSession(42)

	_, err := sess.SelectAnswer(2, 0)
	require.NoError(t, err)
	_, err = sess.SelectAnswer(2, 1)
	require.NoError(t, err)

	require.NoError(t, sess.NavigateTo(2))
	snap := sess.Snapshot()
	require.NotNil(t, snap.SelectedOption)
	assert.Equal(t, 1, *snap.SelectedOption, "re-answering should replace the prior choice")
}

func TestSelectAnswer_DoesNotAffectMarks(t *testing.T) {
	sess := newTestSession(42)

	require.NoError(t, sess.ToggleMark(2))
	_, err := sess.SelectAnswer(2, 0)
	require.NoError(t, err)
	_, err = sess.SelectAnswer(2, 1)
	require.NoError(t, err)

	require.NoError(t, sess.NavigateTo(2))
	assert.True(t, sess.Snapshot().Marked, "answering should not clear the review mark")
}

func TestSelectAnswer_OutOfRange(t *testing.T) {
	sess := newTestSession(42)

	_, err := sess.SelectAnswer(-1, 0)
	assertAppErrorCode(t, err, apperrors.ErrCodeOutOfRange)

	_, err = sess.SelectAnswer(5, 0)
	assertAppErrorCode(t, err, apperrors.ErrCodeOutOfRange)

	_, err = sess.SelectAnswer(0, 3)
	assertAppErrorCode(t, err, apperrors.ErrCodeOutOfRange)

	_, err = sess.SelectAnswer(0, -1)
	assertAppErrorCode(t, err, apperrors.ErrCodeOutOfRange)
}

func TestSelectAnswer_Gamification(t *testing.T) {
	sess := newTestSession(42)

	outcome, err := sess.SelectAnswer(0, 0)
	require.NoError(t, err)
	assert.True(t, outcome.FirstAnswer)
	assert.Equal(t, 1, outcome.Streak)
	assert.Equal(t, 10, outcome.XPAwarded, "first answer awards base XP")

	outcome, err = sess.SelectAnswer(1, 0)
	require.NoError(t, err)
	assert.True(t, outcome.FirstAnswer)
	assert.Equal(t, 2, outcome.Streak)
	assert.Equal(t, 15, outcome.XPAwarded, "streak bonus adds 5 per prior answer")

	// Re-answering awards nothing and leaves the streak alone.
	outcome, err = sess.SelectAnswer(0, 1)
	require.NoError(t, err)
	assert.False(t, outcome.FirstAnswer)
	assert.Equal(t, 2, outcome.Streak)
	assert.Equal(t, 0, outcome.XPAwarded)

	assert.Equal(t, 25, sess.Snapshot().XPTotal)
}

func TestToggleMark_IsInvolution(t *testing.T) {
	sess := newTestSession(42)

	require.NoError(t, sess.ToggleMark(3))
	require.NoError(t, sess.NavigateTo(3))
	assert.True(t, sess.Snapshot().Marked)

	require.NoError(t, sess.ToggleMark(3))
	assert.False(t, sess.Snapshot().Marked, "toggling twice should restore the original state")
}

func TestNavigation_Clamping(t *testing.T) {
	sess := newTestSession(42)

	require.NoError(t, sess.GoPrevious())
	assert.Equal(t, 0, sess.Snapshot().CurrentIndex, "previous at position 0 is a no-op")

	require.NoError(t, sess.NavigateTo(4))
	require.NoError(t, sess.GoNext())
	assert.Equal(t, 4, sess.Snapshot().CurrentIndex, "next at the last position is a no-op")
}

func TestNavigateTo_OutOfRange(t *testing.T) {
	sess := newTestSession(42)

	assertAppErrorCode(t, sess.NavigateTo(-1), apperrors.ErrCodeOutOfRange)
	assertAppErrorCode(t, sess.NavigateTo(5), apperrors.ErrCodeOutOfRange)
}

func TestProgressPercent(t *testing.T) {
	sess := newTestSession(42)

	require.NoError(t, sess.NavigateTo(2))
	assert.Equal(t, 60, sess.Snapshot().ProgressPercent)

	require.NoError(t, sess.NavigateTo(4))
	assert.Equal(t, 100, sess.Snapshot().ProgressPercent)
}

func TestStatuses_Precedence(t *testing.T) {
	sess := newTestSession(42)

	// Answer position 1, mark position 2, answer+mark position 3,
	// then stand on position 3: active must win over marked.
	_, err := sess.SelectAnswer(1, 0)
	require.NoError(t, err)
	require.NoError(t, sess.ToggleMark(2))
	_, err = sess.SelectAnswer(3, 0)
	require.NoError(t, err)
	require.NoError(t, sess.ToggleMark(3))
	require.NoError(t, sess.NavigateTo(3))

	statuses := sess.Snapshot().Statuses
	require.Len(t, statuses, 5)
	assert.Equal(t, session.QuestionUnvisited, statuses[0])
	assert.Equal(t, session.QuestionAnswered, statuses[1])
	assert.Equal(t, session.QuestionMarked, statuses[2])
	assert.Equal(t, session.QuestionActive, statuses[3], "active wins over marked and answered")
	assert.Equal(t, session.QuestionUnvisited, statuses[4])
}

func TestSubmit_AllAnsweredOneWrong(t *testing.T) {
	sess := newTestSession(42)

	// Answer every question correctly except question id 4.
	for _, q := range testQuestions() {
		pos := positionOf(t, sess, q.ID)
		answer := q.CorrectIndex
		if q.ID == 4 {
			answer = (q.CorrectIndex + 1) % 3
		}
		_, err := sess.SelectAnswer(pos, answer)
		require.NoError(t, err)
	}

	result, err := sess.Submit()
	require.NoError(t, err)
	assert.Equal(t, 4, result.Score)
	assert.Equal(t, 5, result.TotalQuestions)
	assert.Equal(t, 80, result.ScorePercent)
}

func TestSubmit_UnansweredCountAsWrong(t *testing.T) {
	sess := newTestSession(42)

	// Answer only three questions, all correctly.
	for _, id := range []int{1, 2, 3} {
		pos := positionOf(t, sess, id)
		_, err := sess.SelectAnswer(pos, correctIndexOf(t, id))
		require.NoError(t, err)
	}

	result, err := sess.Submit()
	require.NoError(t, err)
	assert.Equal(t, 3, result.Score)
	assert.Equal(t, 60, result.ScorePercent, "unanswered questions stay in the denominator")
}

func TestSubmit_NothingAnswered(t *testing.T) {
	sess := newTestSession(42)

	result, err := sess.Submit()
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 0, result.ScorePercent)
}

func TestSubmit_PercentRounding(t *testing.T) {
	questions := []models.Question{
		{ID: 1, Text: "q1", Options: []string{"a", "b"}, CorrectIndex: 0},
		{ID: 2, Text: "q2", Options: []string{"a", "b"}, CorrectIndex: 0},
		{ID: 3, Text: "q3", Options: []string{"a", "b"}, CorrectIndex: 0},
	}

	tests := []struct {
		name     string
		correct  int
		expected int
	}{
		{name: "one of three rounds down", correct: 1, expected: 33},
		{name: "two of three rounds up", correct: 2, expected: 67},
		{name: "all correct", correct: 3, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := session.New(testAssessment(), questions, rand.New(rand.NewSource(1)))
			// All questions share CorrectIndex 0, so positions are
			// interchangeable here.
			for pos := 0; pos < tt.correct; pos++ {
				_, err := sess.SelectAnswer(pos, 0)
				require.NoError(t, err)
			}

			result, err := sess.Submit()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.ScorePercent)
		})
	}
}

func TestSubmit_FreezesState(t *testing.T) {
	sess := newTestSession(42)

	_, err := sess.SelectAnswer(0, 0)
	require.NoError(t, err)

	first, err := sess.Submit()
	require.NoError(t, err)

	_, err = sess.SelectAnswer(1, 0)
	assertAppErrorCode(t, err, apperrors.ErrCodeInvalidState)
	assertAppErrorCode(t, sess.GoNext(), apperrors.ErrCodeInvalidState)
	assertAppErrorCode(t, sess.GoPrevious(), apperrors.ErrCodeInvalidState)
	assertAppErrorCode(t, sess.ToggleMark(1), apperrors.ErrCodeInvalidState)
	assertAppErrorCode(t, sess.NavigateTo(1), apperrors.ErrCodeInvalidState)

	_, err = sess.Submit()
	assertAppErrorCode(t, err, apperrors.ErrCodeInvalidState)

	// Repeated reads see the same score.
	again, err := sess.Result()
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestResult_BeforeSubmit(t *testing.T) {
	sess := newTestSession(42)

	_, err := sess.Result()
	assertAppErrorCode(t, err, apperrors.ErrCodeInvalidState)
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok, "expected *AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)
}
