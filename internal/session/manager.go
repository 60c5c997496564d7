package session

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/arosal/skillcheck/internal/bank"
	"github.com/arosal/skillcheck/internal/errors"
	"github.com/arosal/skillcheck/internal/logger"
)

// Manager owns all live sessions. At most one session is in flight per
// assessment: starting again discards the previous attempt and begins fresh.
// Abandoned sessions are never persisted; the sweep loop evicts them after
// the idle TTL.
type Manager struct {
	mu           sync.Mutex
	rng          *rand.Rand
	ttl          time.Duration
	sessions     map[string]*Session
	byAssessment map[int64]string
	cancel       context.CancelFunc
	wg           sync.WaitGroup
	log          *logger.Logger
}

// NewManager creates a Manager. The randomness source drives question
// shuffling; tests inject a seeded source to get deterministic orders.
func NewManager(rng *rand.Rand, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &Manager{
		rng:          rng,
		ttl:          ttl,
		sessions:     make(map[string]*Session),
		byAssessment: make(map[int64]string),
		log:          logger.Default().WithPrefix("sessions"),
	}
}

// Start begins a new attempt at the given assessment. Fails with NotFound
// when the id does not resolve in the question bank.
func (m *Manager) Start(ctx context.Context, assessmentID int64) (*Session, error) {
	log := logger.FromContext(ctx).WithPrefix("sessions")

	assessment, err := bank.Assessment(assessmentID)
	if err != nil {
		return nil, err
	}
	questions, err := bank.Questions(assessmentID)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if prev, ok := m.byAssessment[assessmentID]; ok {
		log.Debug("discarding in-flight session %s for assessment %d", prev, assessmentID)
		delete(m.sessions, prev)
	}

	sess := New(assessment, questions, m.rng)
	m.sessions[sess.ID()] = sess
	m.byAssessment[assessmentID] = sess.ID()

	log.Info("session started: id=%s, assessment_id=%d, questions=%d", sess.ID(), assessmentID, len(questions))
	return sess, nil
}

// Get returns a live session by id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[id]
	if !ok {
		return nil, errors.NewNotFoundError("session", id)
	}
	return sess, nil
}

// Remove discards a session. Safe to call for unknown ids.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.remove(id)
}

// remove discards a session. Callers hold m.mu.
func (m *Manager) remove(id string) {
	sess, ok := m.sessions[id]
	if !ok {
		return
	}
	delete(m.sessions, id)
	if m.byAssessment[sess.AssessmentID()] == id {
		delete(m.byAssessment, sess.AssessmentID())
	}
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep evicts sessions idle for longer than the TTL and returns how many
// were removed.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-m.ttl)
	evicted := 0
	for id, sess := range m.sessions {
		if sess.LastActive().Before(cutoff) {
			m.remove(id)
			evicted++
		}
	}
	if evicted > 0 {
		m.log.Info("evicted %d idle sessions", evicted)
	}
	return evicted
}

// StartSweeper launches the background sweep loop.
func (m *Manager) StartSweeper(ctx context.Context, interval time.Duration) {
	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		m.log.Debug("sweep loop started: interval=%v, ttl=%v", interval, m.ttl)
		for {
			select {
			case <-ctx.Done():
				m.log.Debug("sweep loop stopped")
				return
			case <-ticker.C:
				m.Sweep()
			}
		}
	}()
}

// StopSweeper stops the background sweep loop and waits for it to exit.
func (m *Manager) StopSweeper() {
	if m.cancel != nil {
		m.cancel()
	}
	m.wg.Wait()
}
