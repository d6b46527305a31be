package repositories

import (
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/mondalsurojit/swipe-assignment/internal/models"
)

// CandidateRepository stores the append-only candidate read side. List must
// return records in insertion order so that sorts with equal keys stay
// stable relative to completion order.
type CandidateRepository interface {
	Create(candidate *models.Candidate) error
	FindBySessionID(sessionID string) (*models.Candidate, error)
	List() ([]models.Candidate, error)
}

type memoryCandidateRepository struct {
	mu         sync.RWMutex
	bySession  map[string]int
	candidates []models.Candidate
}

func NewMemoryCandidateRepository() CandidateRepository {
	return &memoryCandidateRepository{
		bySession: make(map[string]int),
	}
}

func (r *memoryCandidateRepository) Create(candidate *models.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bySession[candidate.SessionID]; exists {
		return fmt.Errorf("candidate record already exists for session %s", candidate.SessionID)
	}

	r.bySession[candidate.SessionID] = len(r.candidates)
	r.candidates = append(r.candidates, *candidate)
	return nil
}

func (r *memoryCandidateRepository) FindBySessionID(sessionID string) (*models.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.bySession[sessionID]
	if !ok {
		return nil, models.ErrCandidateNotFound
	}

	candidate := r.candidates[idx]
	return &candidate, nil
}

func (r *memoryCandidateRepository) List() ([]models.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]models.Candidate(nil), r.candidates...), nil
}

type gormCandidateRepository struct {
	db *gorm.DB
}

func NewGormCandidateRepository(db *gorm.DB) CandidateRepository {
	return &gormCandidateRepository{db: db}
}

func (r *gormCandidateRepository) Create(candidate *models.Candidate) error {
	if err := r.db.Create(candidate).Error; err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}
	return nil
}

func (r *gormCandidateRepository) FindBySessionID(sessionID string) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.Where("session_id = ?", sessionID).First(&candidate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}
	return &candidate, nil
}

func (r *gormCandidateRepository) List() ([]models.Candidate, error) {
	var candidates []models.Candidate
	if err := r.db.Order("created_at ASC").Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return candidates, nil
}
