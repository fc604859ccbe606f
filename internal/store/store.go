package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/ArmFinder/internal/catalog"
	"github.com/MikeSquared-Agency/ArmFinder/internal/matching"
)

type MatchOutcome string

const (
	OutcomeStrict  MatchOutcome = "strict"
	OutcomeRelaxed MatchOutcome = "relaxed"
	OutcomeNone    MatchOutcome = "none"
)

// OutcomeOf classifies a match result.
func OutcomeOf(r matching.Result) MatchOutcome {
	switch {
	case r.Empty():
		return OutcomeNone
	case r.Relaxed:
		return OutcomeRelaxed
	default:
		return OutcomeStrict
	}
}

// MatchRecord is one answered questionnaire and what was recommended.
type MatchRecord struct {
	ID           uuid.UUID             `json:"match_id"`
	Requirements matching.Requirements `json:"requirements"`
	ArmIDs       []string              `json:"arm_ids"`
	Outcome      MatchOutcome          `json:"outcome"`
	ClientID     string                `json:"client_id,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
}

type MatchStats struct {
	TotalMatches   int            `json:"total_matches"`
	StrictMatches  int            `json:"strict_matches"`
	RelaxedMatches int            `json:"relaxed_matches"`
	Unmatched      int            `json:"unmatched"`
	ArmHits        map[string]int `json:"arm_hits"`
}

type Store interface {
	// Catalog
	ListArms(ctx context.Context) ([]catalog.Arm, error)

	// Matches
	RecordMatch(ctx context.Context, m *MatchRecord) error
	GetMatch(ctx context.Context, id uuid.UUID) (*MatchRecord, error)
	GetStats(ctx context.Context) (*MatchStats, error)

	Close() error
}
