package matching

import (
	"fmt"
	"math"
	"strings"

	"github.com/MikeSquared-Agency/ArmFinder/internal/catalog"
)

// FactorResult captures one term's contribution to an arm's score.
type FactorResult struct {
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Ratio  float64 `json:"ratio,omitempty"`
	Reason string  `json:"reason"`
}

// --- Individual factor calculators ---

// PayloadFit rewards arms whose capacity is close to, but not under, the need.
func PayloadFit(a catalog.Arm, r Requirements) FactorResult {
	ratio, ok := safeRatio(a.PayloadKg, r.PayloadKg)
	if !ok {
		return FactorResult{Name: "payload", Score: 0, Reason: "payload requirement not set"}
	}
	f := FactorResult{Name: "payload", Ratio: ratio}
	switch {
	case ratio >= 1 && ratio <= payloadSnugMax:
		f.Score, f.Reason = payloadSnugScore, "close fit"
	case ratio > payloadSnugMax && ratio <= payloadRoomyMax:
		f.Score, f.Reason = payloadRoomy, "comfortable headroom"
	case ratio > payloadRoomyMax:
		f.Score, f.Reason = payloadOversized, "oversized"
	default:
		f.Score, f.Reason = 0, "below requirement"
	}
	return f
}

// ReachFit rewards arms whose reach is close to, but not under, the need.
func ReachFit(a catalog.Arm, r Requirements) FactorResult {
	ratio, ok := safeRatio(a.ReachMm, r.ReachMm)
	if !ok {
		return FactorResult{Name: "reach", Score: 0, Reason: "reach requirement not set"}
	}
	f := FactorResult{Name: "reach", Ratio: ratio}
	switch {
	case ratio >= 1 && ratio <= reachSnugMax:
		f.Score, f.Reason = reachSnugScore, "close fit"
	case ratio > reachSnugMax && ratio <= reachRoomyMax:
		f.Score, f.Reason = reachRoomy, "comfortable headroom"
	case ratio > reachRoomyMax:
		f.Score, f.Reason = reachOversized, "oversized"
	default:
		f.Score, f.Reason = 0, "below requirement"
	}
	return f
}

// PrecisionFit rewards arms more precise than required. Lower mm is better,
// so the ratio is inverted.
func PrecisionFit(a catalog.Arm, r Requirements) FactorResult {
	ratio, ok := safeRatio(r.PrecisionMm, a.PrecisionMm)
	if !ok {
		return FactorResult{Name: "precision", Score: 0, Reason: "precision not comparable"}
	}
	f := FactorResult{Name: "precision", Ratio: ratio}
	switch {
	case ratio >= precisionDouble:
		f.Score, f.Reason = precisionDoubleScore, "twice as precise as needed"
	case ratio >= precisionAmple:
		f.Score, f.Reason = precisionAmpleScore, "well within tolerance"
	case ratio >= 1:
		f.Score, f.Reason = precisionMeetsScore, "meets tolerance"
	default:
		f.Score, f.Reason = precisionShortScore, "looser than requested"
	}
	return f
}

// SpeedFit is continuous: the arm's speed rating scaled by stated importance.
func SpeedFit(a catalog.Arm, r Requirements) FactorResult {
	score := float64(a.Speed) / 10 * float64(r.SpeedImportance) * speedScale
	return FactorResult{
		Name:   "speed",
		Score:  score,
		Reason: fmt.Sprintf("speed %d at importance %d", a.Speed, r.SpeedImportance),
	}
}

// BudgetFit rewards arms whose top price leaves room in the budget.
func BudgetFit(a catalog.Arm, r Requirements) FactorResult {
	ratio, ok := safeRatio(r.BudgetMax, a.Price.Max)
	if !ok {
		return FactorResult{Name: "budget", Score: 0, Reason: "price not comparable"}
	}
	f := FactorResult{Name: "budget", Ratio: ratio}
	switch {
	case ratio >= budgetDouble:
		f.Score, f.Reason = budgetDoubleScore, "half the budget or less"
	case ratio >= budgetAmple:
		f.Score, f.Reason = budgetAmpleScore, "well under budget"
	case ratio >= budgetComfortable:
		f.Score, f.Reason = budgetComfyScore, "under budget"
	case ratio >= 1:
		f.Score, f.Reason = budgetMeetsScore, "within budget"
	default:
		f.Score, f.Reason = 0, "top price over budget"
	}
	return f
}

// ApplicationFit is 15 for an exact tag match, 10 for containment either way
// and 0 otherwise, including when no application was stated.
func ApplicationFit(a catalog.Arm, r Requirements) FactorResult {
	want := normalize(r.Application)
	if want == "" {
		return FactorResult{Name: "application", Score: 0, Reason: "no application stated"}
	}
	for _, app := range a.Applications {
		if normalize(app) == want {
			return FactorResult{Name: "application", Score: applicationExactScore, Reason: "exact: " + app}
		}
	}
	if tag, ok := relatedApplication(a, want); ok {
		return FactorResult{Name: "application", Score: applicationPartialScore, Reason: "related: " + tag}
	}
	return FactorResult{Name: "application", Score: 0, Reason: "no related application"}
}

// relatedApplication reports the first tag that contains, or is contained by,
// the normalized application text.
func relatedApplication(a catalog.Arm, want string) (string, bool) {
	for _, app := range a.Applications {
		tag := normalize(app)
		if tag == "" {
			continue
		}
		if strings.Contains(tag, want) || strings.Contains(want, tag) {
			return app, true
		}
	}
	return "", false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// safeRatio divides num by den, refusing non-positive or non-finite
// denominators and non-finite results.
func safeRatio(num, den float64) (float64, bool) {
	if !(den > 0) || math.IsInf(den, 0) {
		return 0, false
	}
	r := num / den
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	return r, true
}
