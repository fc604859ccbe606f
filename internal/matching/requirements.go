package matching

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRequirements is wrapped by Requirements.Validate failures.
var ErrInvalidRequirements = errors.New("invalid requirements")

// Requirements is one buyer's stated needs for a single match query.
type Requirements struct {
	Application     string  `json:"application"`
	PayloadKg       float64 `json:"payload_needed"`
	ReachMm         float64 `json:"reach_needed"`
	PrecisionMm     float64 `json:"precision_needed"` // maximum acceptable, lower is stricter
	SpeedImportance int     `json:"speed_importance"` // 1-5
	BudgetMax       float64 `json:"budget_max"`
}

// Validate is for request boundaries. The matcher itself never calls it and
// tolerates any input without panicking.
func (r Requirements) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"payload_needed", r.PayloadKg},
		{"reach_needed", r.ReachMm},
		{"precision_needed", r.PrecisionMm},
		{"budget_max", r.BudgetMax},
	}
	for _, f := range fields {
		if !(f.v > 0) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be a positive number", ErrInvalidRequirements, f.name)
		}
	}
	if r.SpeedImportance < 1 || r.SpeedImportance > 5 {
		return fmt.Errorf("%w: speed_importance must be between 1 and 5", ErrInvalidRequirements)
	}
	return nil
}
