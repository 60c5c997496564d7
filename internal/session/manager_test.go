package session_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/arosal/skillcheck/internal/errors"
	"github.com/arosal/skillcheck/internal/session"
)

func newTestManager(ttl time.Duration) *session.Manager {
	return session.NewManager(rand.New(rand.NewSource(1)), ttl)
}

func TestManager_StartUnknownAssessment(t *testing.T) {
	m := newTestManager(time.Hour)

	_, err := m.Start(context.Background(), 999)
	assertAppErrorCode(t, err, apperrors.ErrCodeNotFound)
}

func TestManager_StartAndGet(t *testing.T) {
	m := newTestManager(time.Hour)

	sess, err := m.Start(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, int64(1), sess.AssessmentID())

	got, err := m.Get(sess.ID())
	require.NoError(t, err)
	assert.Same(t, sess, got)
}

func TestManager_GetUnknownSession(t *testing.T) {
	m := newTestManager(time.Hour)

	_, err := m.Get("nope")
	assertAppErrorCode(t, err, apperrors.ErrCodeNotFound)
}

func TestManager_DoubleStartDiscardsPrevious(t *testing.T) {
	m := newTestManager(time.Hour)
	ctx := context.Background()

	first, err := m.Start(ctx, 1)
	require.NoError(t, err)

	second, err := m.Start(ctx, 1)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID(), second.ID())

	// The first session is gone; the second is live.
	_, err = m.Get(first.ID())
	assertAppErrorCode(t, err, apperrors.ErrCodeNotFound)
	_, err = m.Get(second.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, m.Count())
}

func TestManager_IndependentAssessments(t *testing.T) {
	m := newTestManager(time.Hour)
	ctx := context.Background()

	a, err := m.Start(ctx, 1)
	require.NoError(t, err)
	b, err := m.Start(ctx, 2)
	require.NoError(t, err)

	_, err = m.Get(a.ID())
	require.NoError(t, err)
	_, err = m.Get(b.ID())
	require.NoError(t, err)
	assert.Equal(t, 2, m.Count())
}

func TestManager_Remove(t *testing.T) {
	m := newTestManager(time.Hour)

	sess, err := m.Start(context.Background(), 1)
	require.NoError(t, err)

	m.Remove(sess.ID())
	_, err = m.Get(sess.ID())
	assertAppErrorCode(t, err, apperrors.ErrCodeNotFound)

	// Removing again is safe.
	m.Remove(sess.ID())
	assert.Equal(t, 0, m.Count())
}

func TestManager_SweepEvictsIdleSessions(t *testing.T) {
	m := newTestManager(time.Millisecond)

	sess, err := m.Start(context.Background(), 1)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	evicted := m.Sweep()
	assert.Equal(t, 1, evicted)
	_, err = m.Get(sess.ID())
	assertAppErrorCode(t, err, apperrors.ErrCodeNotFound)
}

func TestManager_SweepKeepsActiveSessions(t *testing.T) {
	m := newTestManager(time.Hour)

	sess, err := m.Start(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 0, m.Sweep())
	_, err = m.Get(sess.ID())
	require.NoError(t, err)
}
