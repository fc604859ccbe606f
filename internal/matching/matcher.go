package matching

import (
	"cmp"
	"math"
	"slices"

	"github.com/MikeSquared-Agency/ArmFinder/internal/catalog"
)

// ScoringResult is the full scoring output for one arm against one query.
type ScoringResult struct {
	ArmID      string         `json:"arm_id"`
	TotalScore float64        `json:"total_score"`
	Factors    []FactorResult `json:"factors"`
}

// Result is the outcome of a match. Relaxed is set when no arm met the hard
// constraints and the arms shown are the closest options instead.
type Result struct {
	Arms    []catalog.Arm `json:"arms"`
	Relaxed bool          `json:"relaxed"`
}

func (r Result) Empty() bool { return len(r.Arms) == 0 }

// Explanation lists every surviving arm with its score breakdown, best first.
type Explanation struct {
	Relaxed    bool            `json:"relaxed"`
	Candidates []ScoringResult `json:"candidates"`
}

// Matcher ranks catalog arms against buyer requirements. It holds no mutable
// state and is safe for concurrent use.
type Matcher struct {
	relax Relaxation
	limit int
}

// NewMatcher creates a Matcher. The limit is clamped to [1, DefaultLimit];
// a non-positive limit falls back to DefaultLimit.
func NewMatcher(relax Relaxation, limit int) *Matcher {
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}
	return &Matcher{relax: relax, limit: limit}
}

func DefaultMatcher() *Matcher {
	return NewMatcher(DefaultRelaxation(), DefaultLimit)
}

// FindMatches returns up to three best-fitting arms, best first. An empty
// result means nothing fit even after relaxing the constraints.
func FindMatches(req Requirements, arms []catalog.Arm) []catalog.Arm {
	return DefaultMatcher().Match(req, arms).Arms
}

// Score computes all terms for a single arm.
func Score(a catalog.Arm, req Requirements) ScoringResult {
	factors := []FactorResult{
		PayloadFit(a, req),
		ReachFit(a, req),
		PrecisionFit(a, req),
		SpeedFit(a, req),
		BudgetFit(a, req),
		ApplicationFit(a, req),
	}
	var total float64
	for _, f := range factors {
		total += f.Score
	}
	if math.IsNaN(total) || math.IsInf(total, 0) {
		total = 0
	}
	return ScoringResult{ArmID: a.ID, TotalScore: total, Factors: factors}
}

// Match filters, scores and ranks arms, returning at most the configured limit.
func (m *Matcher) Match(req Requirements, arms []catalog.Arm) Result {
	survivors, relaxed := m.survivors(req, arms)
	ranked := rank(req, survivors)

	n := min(len(ranked), m.limit)
	out := make([]catalog.Arm, 0, n)
	for _, s := range ranked[:n] {
		out = append(out, s.arm)
	}
	return Result{Arms: out, Relaxed: relaxed && n > 0}
}

// Explain returns the ranked breakdown of every arm that survived filtering.
func (m *Matcher) Explain(req Requirements, arms []catalog.Arm) Explanation {
	survivors, relaxed := m.survivors(req, arms)
	ranked := rank(req, survivors)

	exp := Explanation{Relaxed: relaxed && len(ranked) > 0, Candidates: make([]ScoringResult, 0, len(ranked))}
	for _, s := range ranked {
		exp.Candidates = append(exp.Candidates, s.result)
	}
	return exp
}

// survivors applies the strict filter and falls back to the relaxed one only
// when the strict pass admits nothing.
func (m *Matcher) survivors(req Requirements, arms []catalog.Arm) ([]catalog.Arm, bool) {
	if strict := filterArms(arms, strictThresholds(req)); len(strict) > 0 {
		return strict, false
	}
	return filterArms(arms, relaxedThresholds(req, m.relax)), true
}

type scoredArm struct {
	arm    catalog.Arm
	result ScoringResult
}

// rank sorts by descending score; equal scores keep input order.
func rank(req Requirements, arms []catalog.Arm) []scoredArm {
	scored := make([]scoredArm, len(arms))
	for i, a := range arms {
		scored[i] = scoredArm{arm: a, result: Score(a, req)}
	}
	slices.SortStableFunc(scored, func(a, b scoredArm) int {
		return cmp.Compare(b.result.TotalScore, a.result.TotalScore)
	})
	return scored
}
