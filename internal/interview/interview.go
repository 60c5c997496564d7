// Package interview is the mock interview session service. Answers are not
// analyzed for real; feedback is canned. Sessions are explicit objects owned
// by a Manager rather than package-level state.
package interview

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arosal/skillcheck/internal/errors"
)

// Question is one interview prompt with the points a strong answer touches.
type Question struct {
	ID                string   `json:"id"`
	Text              string   `json:"text"`
	ExpectedKeyPoints []string `json:"expected_key_points"`
}

// Feedback is the canned evaluation returned for a submitted answer.
type Feedback struct {
	Score        int      `json:"score"`
	Feedback     string   `json:"feedback"`
	Improvements []string `json:"improvements"`
}

// Session statuses.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

var mockQuestions = []Question{
	{
		ID:                "q1",
		Text:              "Tell me about yourself and why you're interested in this role.",
		ExpectedKeyPoints: []string{"Background", "Experience", "Motivation"},
	},
	{
		ID:                "q2",
		Text:              "Describe a challenging technical problem you solved recently.",
		ExpectedKeyPoints: []string{"Problem", "Action", "Result", "technologies used"},
	},
	{
		ID:                "q3",
		Text:              "How do you handle disagreements with team members?",
		ExpectedKeyPoints: []string{"Communication", "Empathy", "Resolution"},
	},
}

var mockFeedback = Feedback{
	Score:    85,
	Feedback: "Good use of the STAR method. You clearly articulated the situation.",
	Improvements: []string{
		"Try to quantify your results more.",
		"Speak a bit more slowly.",
	},
}

// Session is one mock interview run.
type Session struct {
	ID              string     `json:"id"`
	Status          Status     `json:"status"`
	CurrentQuestion int        `json:"current_question_index"`
	Questions       []Question `json:"questions"`
	Transcript      []string   `json:"transcript"`
	StartedAt       time.Time  `json:"started_at"`
}

// Manager owns all live interview sessions.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates an empty interview session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Start creates a new active session over the fixed question list.
func (m *Manager) Start() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	questions := make([]Question, len(mockQuestions))
	copy(questions, mockQuestions)

	sess := &Session{
		ID:        uuid.NewString(),
		Status:    StatusActive,
		Questions: questions,
		StartedAt: time.Now(),
	}
	m.sessions[sess.ID] = sess
	return sess
}

// Get returns a copy of a session by id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[id]
	if !ok {
		return nil, errors.NewNotFoundError("interview session", id)
	}
	c := *sess
	c.Questions = append([]Question(nil), sess.Questions...)
	c.Transcript = append([]string(nil), sess.Transcript...)
	return &c, nil
}

// SubmitAnswer records an answer to the current question and returns the
// canned feedback.
func (m *Manager) SubmitAnswer(id string, answer string) (Feedback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[id]
	if !ok {
		return Feedback{}, errors.NewNotFoundError("interview session", id)
	}
	if sess.Status != StatusActive {
		return Feedback{}, errors.NewInvalidStateError("answer", string(sess.Status))
	}

	sess.Transcript = append(sess.Transcript, answer)
	return mockFeedback, nil
}

// NextQuestion advances the session. When the question list is exhausted the
// session completes and nil is returned.
func (m *Manager) NextQuestion(id string) (*Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[id]
	if !ok {
		return nil, errors.NewNotFoundError("interview session", id)
	}
	if sess.Status != StatusActive {
		return nil, errors.NewInvalidStateError("next question", string(sess.Status))
	}

	next := sess.CurrentQuestion + 1
	if next >= len(sess.Questions) {
		sess.Status = StatusCompleted
		return nil, nil
	}
	sess.CurrentQuestion = next
	q := sess.Questions[next]
	return &q, nil
}

// End marks a session completed. Ending a completed session is a no-op.
func (m *Manager) End(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[id]
	if !ok {
		return errors.NewNotFoundError("interview session", id)
	}
	sess.Status = StatusCompleted
	return nil
}
