package hermes

import (
	"time"

	"github.com/MikeSquared-Agency/ArmFinder/internal/matching"
)

// MatchEvent is published for every answered questionnaire.
type MatchEvent struct {
	MatchID      string                `json:"match_id"`
	Requirements matching.Requirements `json:"requirements"`
	ArmIDs       []string              `json:"arm_ids"`
	Relaxed      bool                  `json:"relaxed"`
	Timestamp    time.Time             `json:"timestamp"`
}
