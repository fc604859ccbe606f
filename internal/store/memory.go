package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/ArmFinder/internal/catalog"
)

// MemoryStore keeps match history in process. It serves a fixed catalog and
// is used when no database is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	arms    []catalog.Arm
	matches map[uuid.UUID]*MatchRecord
	order   []uuid.UUID
}

func NewMemoryStore(c *catalog.Catalog) *MemoryStore {
	s := &MemoryStore{matches: make(map[uuid.UUID]*MatchRecord)}
	if c != nil {
		s.arms = c.Arms()
	}
	return s
}

func (s *MemoryStore) ListArms(_ context.Context) ([]catalog.Arm, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]catalog.Arm, len(s.arms))
	copy(out, s.arms)
	return out, nil
}

func (s *MemoryStore) RecordMatch(_ context.Context, m *MatchRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	cp := *m
	cp.ArmIDs = append([]string(nil), m.ArmIDs...)
	s.matches[m.ID] = &cp
	s.order = append(s.order, m.ID)
	return nil
}

func (s *MemoryStore) GetMatch(_ context.Context, id uuid.UUID) (*MatchRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.matches[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	cp.ArmIDs = append([]string(nil), m.ArmIDs...)
	return &cp, nil
}

func (s *MemoryStore) GetStats(_ context.Context) (*MatchStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := &MatchStats{ArmHits: make(map[string]int)}
	for _, id := range s.order {
		m := s.matches[id]
		stats.TotalMatches++
		switch m.Outcome {
		case OutcomeStrict:
			stats.StrictMatches++
		case OutcomeRelaxed:
			stats.RelaxedMatches++
		case OutcomeNone:
			stats.Unmatched++
		}
		for _, armID := range m.ArmIDs {
			stats.ArmHits[armID]++
		}
	}
	return stats, nil
}

func (s *MemoryStore) Close() error { return nil }
