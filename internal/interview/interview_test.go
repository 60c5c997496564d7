package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/arosal/skillcheck/internal/errors"
)

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok, "expected *AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)
}

func TestStart(t *testing.T) {
	m := NewManager()
	sess := m.Start()

	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, StatusActive, sess.Status)
	assert.Equal(t, 0, sess.CurrentQuestion)
	require.Len(t, sess.Questions, 3)
	assert.Equal(t, "q1", sess.Questions[0].ID)
	assert.Empty(t, sess.Transcript)
	assert.False(t, sess.StartedAt.IsZero())
}

func TestGet(t *testing.T) {
	m := NewManager()
	sess := m.Start()

	got, err := m.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, StatusActive, got.Status)

	// Mutating the copy must not touch the manager's session.
	got.Questions[0].Text = "changed"
	again, err := m.Get(sess.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", again.Questions[0].Text)
}

func TestGet_Unknown(t *testing.T) {
	m := NewManager()
	_, err := m.Get("nope")
	assertAppErrorCode(t, err, apperrors.ErrCodeNotFound)
}

func TestSubmitAnswer(t *testing.T) {
	m := NewManager()
	sess := m.Start()

	fb, err := m.SubmitAnswer(sess.ID, "I led the migration of our billing service.")
	require.NoError(t, err)
	assert.Equal(t, 85, fb.Score)
	assert.NotEmpty(t, fb.Feedback)
	assert.NotEmpty(t, fb.Improvements)

	got, err := m.Get(sess.ID)
	require.NoError(t, err)
	require.Len(t, got.Transcript, 1)
	assert.Equal(t, "I led the migration of our billing service.", got.Transcript[0])
}

func TestSubmitAnswer_Unknown(t *testing.T) {
	m := NewManager()
	_, err := m.SubmitAnswer("nope", "hello")
	assertAppErrorCode(t, err, apperrors.ErrCodeNotFound)
}

func TestNextQuestion_WalkToCompletion(t *testing.T) {
	m := NewManager()
	sess := m.Start()

	q, err := m.NextQuestion(sess.ID)
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, "q2", q.ID)

	q, err = m.NextQuestion(sess.ID)
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, "q3", q.ID)

	q, err = m.NextQuestion(sess.ID)
	require.NoError(t, err)
	assert.Nil(t, q)

	got, err := m.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, got.Status)
}

func TestNextQuestion_AfterCompleted(t *testing.T) {
	m := NewManager()
	sess := m.Start()
	require.NoError(t, m.End(sess.ID))

	_, err := m.NextQuestion(sess.ID)
	assertAppErrorCode(t, err, apperrors.ErrCodeInvalidState)
}

func TestSubmitAnswer_AfterCompleted(t *testing.T) {
	m := NewManager()
	sess := m.Start()
	require.NoError(t, m.End(sess.ID))

	_, err := m.SubmitAnswer(sess.ID, "too late")
	assertAppErrorCode(t, err, apperrors.ErrCodeInvalidState)
}

func TestEnd(t *testing.T) {
	m := NewManager()
	sess := m.Start()

	require.NoError(t, m.End(sess.ID))
	got, err := m.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, got.Status)

	// Ending twice is a no-op.
	require.NoError(t, m.End(sess.ID))
}

func TestEnd_Unknown(t *testing.T) {
	m := NewManager()
	err := m.End("nope")
	assertAppErrorCode(t, err, apperrors.ErrCodeNotFound)
}
