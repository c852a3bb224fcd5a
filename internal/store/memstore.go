package store

import (
	"errors"
	"sort"
	"sync"
)

// MemStore implements Store in memory. Used by tests and by callers
// that want run history without a database on disk.
type MemStore struct {
	mu     sync.Mutex
	runs   map[int64]*Run
	counts map[int64][]CodeCount
	nextID int64
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		runs:   make(map[int64]*Run),
		counts: make(map[int64][]CodeCount),
	}
}

func (s *MemStore) SaveRun(run *Run, counts []CodeCount) (int64, error) {
	if run == nil {
		return 0, errors.New("run is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	cp := *run
	cp.ID = s.nextID
	if cp.AnalyzedAt == "" {
		cp.AnalyzedAt = nowUTC()
	}
	s.runs[cp.ID] = &cp
	cs := make([]CodeCount, len(counts))
	for i, c := range counts {
		c.RunID = cp.ID
		cs[i] = c
	}
	s.counts[cp.ID] = cs
	return cp.ID, nil
}

func (s *MemStore) GetRun(runID int64) (*Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.runs[runID]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (s *MemStore) ListRuns() ([]*Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Run, 0, len(s.runs))
	// Newest first, matching the SQL store.
	for id := s.nextID; id >= 1; id-- {
		if v, ok := s.runs[id]; ok {
			cp := *v
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *MemStore) CodeCounts(runID int64) ([]CodeCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	src := s.counts[runID]
	out := make([]CodeCount, len(src))
	copy(out, src)
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (s *MemStore) Close() error { return nil }
