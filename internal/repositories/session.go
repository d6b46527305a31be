package repositories

import (
	"sync"

	"github.com/mondalsurojit/swipe-assignment/internal/models"
)

type SessionRepository interface {
	Put(session *models.Session) error
	FindByID(sessionID string) (*models.Session, error)
}

// memorySessionRepository keeps in-flight sessions in process memory.
// Get returns an independent copy so readers never observe a session while
// the engine mutates it; the engine writes changes back with Put.
type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[string]*models.Session),
	}
}

func (r *memorySessionRepository) Put(session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.SessionID] = cloneSession(session)
	return nil
}

func (r *memorySessionRepository) FindByID(sessionID string) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, models.ErrSessionNotFound
	}
	return cloneSession(session), nil
}

func cloneSession(s *models.Session) *models.Session {
	clone := *s
	clone.Questions = append([]models.Question(nil), s.Questions...)
	clone.Answers = append([]string(nil), s.Answers...)
	clone.Scores = append([]int(nil), s.Scores...)
	clone.Evaluations = append([]models.Evaluation(nil), s.Evaluations...)
	if s.EndTime != nil {
		endTime := *s.EndTime
		clone.EndTime = &endTime
	}
	return &clone
}
