package storage

import (
	"context"
	"sort"
	"sync"

	"blocksynth/internal/model"
)

// MemoryStore is an in-process Store for tests and one-shot runs.
type MemoryStore struct {
	mu   sync.RWMutex
	runs map[string]model.GenerationRun
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{runs: make(map[string]model.GenerationRun)}
}

func (s *MemoryStore) Init(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) SaveRun(ctx context.Context, run model.GenerationRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = run
	return nil
}

func (s *MemoryStore) GetRun(ctx context.Context, id string) (model.GenerationRun, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	return run, ok, nil
}

func (s *MemoryStore) ListRuns(ctx context.Context) ([]model.GenerationRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]model.GenerationRun, 0, len(s.runs))
	for _, run := range s.runs {
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool {
		if runs[i].CreatedAtUTC != runs[j].CreatedAtUTC {
			return runs[i].CreatedAtUTC > runs[j].CreatedAtUTC
		}
		return runs[i].ID < runs[j].ID
	})
	return runs, nil
}

func (s *MemoryStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = make(map[string]model.GenerationRun)
	return nil
}
