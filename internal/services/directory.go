package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mondalsurojit/swipe-assignment/internal/models"
	"github.com/mondalsurojit/swipe-assignment/internal/repositories"
)

// CandidateDirectory is the recruiter-facing read side over completed
// candidate records: persistence, substring search, stable sorting, and
// best-effort semantic indexing when an indexer is configured.
type CandidateDirectory struct {
	repo    repositories.CandidateRepository
	indexer CandidateIndexer
	logger  *zap.Logger
}

func NewCandidateDirectory(repo repositories.CandidateRepository, indexer CandidateIndexer, logger *zap.Logger) *CandidateDirectory {
	return &CandidateDirectory{
		repo:    repo,
		indexer: indexer,
		logger:  logger,
	}
}

// Add persists the candidate record. Indexing failures are logged, never
// surfaced: completing an interview must not depend on the vector store.
func (d *CandidateDirectory) Add(_ context.Context, candidate models.Candidate) error {
	if err := d.repo.Create(&candidate); err != nil {
		return err
	}

	if d.indexer != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := d.indexer.IndexCandidate(ctx, candidate); err != nil {
				d.logger.Warn("failed to index candidate",
					zap.String("sessionId", candidate.SessionID),
					zap.Error(err))
			}
		}()
	}

	return nil
}

func (d *CandidateDirectory) Get(sessionID string) (*models.Candidate, error) {
	return d.repo.FindBySessionID(sessionID)
}

// List returns candidates filtered by a case-insensitive substring match over
// name and email, sorted by the requested field. The sort is stable, so equal
// keys keep their completion order.
func (d *CandidateDirectory) List(search, sortBy, order string) ([]models.Candidate, error) {
	candidates, err := d.repo.List()
	if err != nil {
		return nil, err
	}

	if search != "" {
		needle := strings.ToLower(search)
		filtered := candidates[:0]
		for _, c := range candidates {
			if strings.Contains(strings.ToLower(c.Name), needle) ||
				strings.Contains(strings.ToLower(c.Email), needle) {
				filtered = append(filtered, c)
			}
		}
		candidates = filtered
	}

	if sortBy == "" {
		sortBy = "finalScore"
	}
	descending := order != "asc"

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := sortKey(candidates[i], sortBy), sortKey(candidates[j], sortBy)
		if descending {
			return a > b
		}
		return a < b
	})

	return candidates, nil
}

// SemanticSearch resolves vector-index hits back to candidate records,
// preserving relevance order and skipping entries whose record is gone.
func (d *CandidateDirectory) SemanticSearch(ctx context.Context, query string, limit int) ([]models.Candidate, error) {
	if d.indexer == nil {
		return nil, fmt.Errorf("semantic search is not enabled")
	}
	if limit <= 0 {
		limit = 10
	}

	hits, err := d.indexer.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("semantic search failed: %w", err)
	}

	results := make([]models.Candidate, 0, len(hits))
	for _, hit := range hits {
		candidate, err := d.repo.FindBySessionID(hit.SessionID)
		if err != nil {
			continue
		}
		results = append(results, *candidate)
	}
	return results, nil
}

// SemanticEnabled reports whether a vector index is configured.
func (d *CandidateDirectory) SemanticEnabled() bool {
	return d.indexer != nil
}

func sortKey(c models.Candidate, sortBy string) float64 {
	switch sortBy {
	case "finalScore":
		return c.FinalScore
	case "completedAt":
		return float64(c.CompletedAt.UnixNano())
	case "terminated":
		if c.Terminated {
			return 1
		}
		return 0
	default:
		return 0
	}
}
