package matching

import (
	"math"

	"github.com/MikeSquared-Agency/ArmFinder/internal/catalog"
)

// thresholds are the hard constraints one filter pass applies.
type thresholds struct {
	payload     float64
	reach       float64
	precision   float64
	budget      float64
	application string // normalized; empty means any
}

func strictThresholds(r Requirements) thresholds {
	return thresholds{
		payload:     r.PayloadKg,
		reach:       r.ReachMm,
		precision:   r.PrecisionMm,
		budget:      r.BudgetMax,
		application: normalize(r.Application),
	}
}

// relaxedThresholds loosens every numeric bound and drops the application
// constraint entirely.
func relaxedThresholds(r Requirements, x Relaxation) thresholds {
	return thresholds{
		payload:   r.PayloadKg * x.Payload,
		reach:     r.ReachMm * x.Reach,
		precision: r.PrecisionMm * x.Precision,
		budget:    r.BudgetMax * x.Budget,
	}
}

func (t thresholds) admits(a catalog.Arm) bool {
	if a.PayloadKg < t.payload || a.ReachMm < t.reach || a.PrecisionMm > t.precision || a.Price.Min > t.budget {
		return false
	}
	// Comparisons against NaN are false, so a NaN bound would slip through.
	if math.IsNaN(t.payload) || math.IsNaN(t.reach) || math.IsNaN(t.precision) || math.IsNaN(t.budget) {
		return false
	}
	if t.application == "" {
		return true
	}
	_, ok := relatedApplication(a, t.application)
	return ok
}

func filterArms(arms []catalog.Arm, t thresholds) []catalog.Arm {
	var out []catalog.Arm
	for _, a := range arms {
		if t.admits(a) {
			out = append(out, a)
		}
	}
	return out
}
