package database

import (
	"context"
	"sync"

	"github.com/maaidasong-coder/geointel/internal/models"
)

// MemoryStore keeps cases in process memory, standing in for the relational
// store when no database is configured. Contents do not survive a restart.
type MemoryStore struct {
	mu    sync.RWMutex
	cases map[string]*models.Case
	order []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cases: make(map[string]*models.Case),
	}
}

func (s *MemoryStore) Insert(ctx context.Context, c *models.Case) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *c
	s.cases[c.CaseID] = &stored
	s.order = append(s.order, c.CaseID)
	return nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id string) (*models.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cases[id]
	if !ok {
		return nil, ErrNotFound
	}
	found := *c
	return &found, nil
}

func (s *MemoryStore) ListRecent(ctx context.Context, limit int) ([]models.CaseSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := []models.CaseSummary{}
	for i := len(s.order) - 1; i >= 0 && len(summaries) < limit; i-- {
		summaries = append(summaries, s.cases[s.order[i]].Summary())
	}
	return summaries, nil
}
