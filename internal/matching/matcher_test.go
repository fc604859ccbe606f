package matching

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/ArmFinder/internal/catalog"
)

func builtinArms() []catalog.Arm { return catalog.Builtin().Arms() }

func ids(arms []catalog.Arm) []string {
	out := make([]string, len(arms))
	for i, a := range arms {
		out[i] = a.ID
	}
	return out
}

func packagingRequirements() Requirements {
	return Requirements{
		Application:     "Packaging",
		PayloadKg:       5,
		ReachMm:         1000,
		PrecisionMm:     0.5,
		SpeedImportance: 3,
		BudgetMax:       50000,
	}
}

func TestFindMatchesPackaging(t *testing.T) {
	got := FindMatches(packagingRequirements(), builtinArms())

	// Only PrecisionBot and PackMaster pass the strict filter.
	assert.Equal(t, []string{"ra001", "ra007"}, ids(got))
	assert.Equal(t, "PrecisionBot 2000", got[0].Name)
}

func TestScorePackagingBreakdown(t *testing.T) {
	arms := catalog.Builtin()
	req := packagingRequirements()

	precisionBot, _ := arms.Get("ra001")
	r := Score(precisionBot, req)
	assert.InDelta(t, 58.2, r.TotalScore, 1e-9)

	want := map[string]float64{
		"payload": 8, "reach": 8, "precision": 15, "speed": 4.2, "budget": 8, "application": 15,
	}
	require.Len(t, r.Factors, len(want))
	for _, f := range r.Factors {
		assert.InDelta(t, want[f.Name], f.Score, 1e-9, f.Name)
	}

	packMaster, _ := arms.Get("ra007")
	assert.InDelta(t, 42.4, Score(packMaster, req).TotalScore, 1e-9)
}

func TestStrictResultsAreNotRelaxed(t *testing.T) {
	res := DefaultMatcher().Match(packagingRequirements(), builtinArms())

	assert.False(t, res.Relaxed)
	// The relaxed pass would admit more than two arms, so two means strict.
	assert.Len(t, res.Arms, 2)
}

func TestRelaxedFallback(t *testing.T) {
	req := Requirements{
		Application:     "Painting",
		PayloadKg:       12,
		ReachMm:         1000,
		PrecisionMm:     0.5,
		SpeedImportance: 3,
		BudgetMax:       50000,
	}
	res := DefaultMatcher().Match(req, builtinArms())

	assert.True(t, res.Relaxed)
	assert.Equal(t, []string{"ra004", "ra001", "ra008"}, ids(res.Arms))
}

func TestNoMatchReturnsEmpty(t *testing.T) {
	req := packagingRequirements()
	req.PayloadKg = 1000 // relaxed threshold 800 is still above the heaviest arm

	var got []catalog.Arm
	require.NotPanics(t, func() { got = FindMatches(req, builtinArms()) })
	assert.Empty(t, got)
	assert.NotNil(t, got)

	res := DefaultMatcher().Match(req, builtinArms())
	assert.True(t, res.Empty())
	assert.False(t, res.Relaxed)
}

func TestEmptyApplicationMatchesAny(t *testing.T) {
	req := packagingRequirements()
	req.Application = "  "

	res := DefaultMatcher().Match(req, builtinArms())
	assert.False(t, res.Relaxed)
	assert.Len(t, res.Arms, 3)
}

func TestApplicationMatchIsCaseInsensitiveBothWays(t *testing.T) {
	arms := builtinArms()

	req := packagingRequirements()
	req.Application = "PACKAGING of small electronics"
	got := FindMatches(req, arms)
	assert.Contains(t, ids(got), "ra001")

	req.Application = "pack"
	got = FindMatches(req, arms)
	assert.Contains(t, ids(got), "ra007")
}

func TestResultsNeverExceedLimitAndSurvivors(t *testing.T) {
	arms := builtinArms()
	m := DefaultMatcher()
	for _, app := range []string{"", "Assembly", "Welding", "Packaging", "Laboratory", "Nothing"} {
		for _, payload := range []float64{1, 5, 25, 100, 1000} {
			for _, budget := range []float64{5000, 50000, 150000} {
				req := Requirements{
					Application:     app,
					PayloadKg:       payload,
					ReachMm:         1000,
					PrecisionMm:     0.5,
					SpeedImportance: 3,
					BudgetMax:       budget,
				}
				res := m.Match(req, arms)
				exp := m.Explain(req, arms)

				assert.LessOrEqual(t, len(res.Arms), DefaultLimit)
				assert.LessOrEqual(t, len(res.Arms), len(exp.Candidates))
				assert.Equal(t, res.Relaxed, exp.Relaxed)

				for i := 1; i < len(res.Arms); i++ {
					prev := Score(res.Arms[i-1], req).TotalScore
					cur := Score(res.Arms[i], req).TotalScore
					assert.GreaterOrEqual(t, prev, cur, "results out of order for %+v", req)
				}
				for i, a := range res.Arms {
					assert.Equal(t, exp.Candidates[i].ArmID, a.ID, "result is not a prefix of the ranking")
				}
			}
		}
	}
}

func TestDominatingArmAlwaysYieldsMatch(t *testing.T) {
	arms := builtinArms()
	for _, a := range arms {
		req := Requirements{
			Application:     a.Applications[0],
			PayloadKg:       a.PayloadKg,
			ReachMm:         a.ReachMm,
			PrecisionMm:     a.PrecisionMm,
			SpeedImportance: 3,
			BudgetMax:       a.Price.Min,
		}
		res := DefaultMatcher().Match(req, arms)
		assert.NotEmpty(t, res.Arms, "no match for requirements met by %s", a.ID)
		assert.False(t, res.Relaxed, a.ID)
	}
}

func TestIdempotent(t *testing.T) {
	arms := builtinArms()
	req := packagingRequirements()
	req.Application = ""

	first := FindMatches(req, arms)
	second := FindMatches(req, arms)
	assert.Equal(t, first, second)
	assert.Equal(t, builtinArms(), arms, "catalog must not be mutated")
}

func TestTiesKeepCatalogOrder(t *testing.T) {
	base := catalog.Arm{
		Name: "Twin", PayloadKg: 10, ReachMm: 1000, Speed: 5, PrecisionMm: 0.1,
		Applications: []string{"Assembly"}, Price: catalog.PriceRange{Min: 1000, Max: 2000},
	}
	var arms []catalog.Arm
	for _, id := range []string{"t1", "t2", "t3", "t4"} {
		a := base
		a.ID = id
		arms = append(arms, a)
	}
	req := Requirements{Application: "Assembly", PayloadKg: 10, ReachMm: 1000, PrecisionMm: 0.1, SpeedImportance: 2, BudgetMax: 5000}

	assert.Equal(t, []string{"t1", "t2", "t3"}, ids(FindMatches(req, arms)))
}

func TestCustomLimitAndRelaxation(t *testing.T) {
	arms := builtinArms()

	m := NewMatcher(DefaultRelaxation(), 1)
	res := m.Match(packagingRequirements(), arms)
	assert.Equal(t, []string{"ra001"}, ids(res.Arms))

	// No slack at all: the fallback pass cannot rescue a payload nobody has.
	strictOnly := NewMatcher(Relaxation{Payload: 1, Reach: 1, Precision: 1, Budget: 1}, 3)
	req := packagingRequirements()
	req.PayloadKg = 550
	assert.Empty(t, strictOnly.Match(req, arms).Arms)

	// Default slack admits HeavyLifter (500 >= 550*0.8).
	res = DefaultMatcher().Match(Requirements{PayloadKg: 550, ReachMm: 1000, PrecisionMm: 0.5, SpeedImportance: 3, BudgetMax: 90000}, arms)
	assert.True(t, res.Relaxed)
	assert.Equal(t, []string{"ra002"}, ids(res.Arms))
}

func TestNewMatcherDefaultsLimit(t *testing.T) {
	m := NewMatcher(DefaultRelaxation(), 0)
	assert.Equal(t, DefaultLimit, m.limit)
}

func TestNewMatcherCapsLimit(t *testing.T) {
	m := NewMatcher(DefaultRelaxation(), 10)
	assert.Equal(t, DefaultLimit, m.limit)

	// Loose requirements admit the whole catalog.
	req := Requirements{PayloadKg: 1, ReachMm: 100, PrecisionMm: 1, SpeedImportance: 3, BudgetMax: 1000000}
	assert.Len(t, m.Match(req, builtinArms()).Arms, DefaultLimit)
}

func TestZeroRequirementsDoNotCorruptScores(t *testing.T) {
	arms := builtinArms()
	req := Requirements{PayloadKg: 0, ReachMm: 0, PrecisionMm: 1, SpeedImportance: 3, BudgetMax: 200000}

	exp := DefaultMatcher().Explain(req, arms)
	require.NotEmpty(t, exp.Candidates)
	for _, c := range exp.Candidates {
		assert.False(t, math.IsInf(c.TotalScore, 0) || math.IsNaN(c.TotalScore), c.ArmID)
	}
	assert.Len(t, FindMatches(req, arms), 3)
}

func TestMalformedRequirementsNeverPanic(t *testing.T) {
	arms := builtinArms()
	reqs := []Requirements{
		{},
		{PayloadKg: -5, ReachMm: -1, PrecisionMm: -0.5, SpeedImportance: -3, BudgetMax: -100},
		{PayloadKg: math.NaN(), ReachMm: 1000, PrecisionMm: 0.5, SpeedImportance: 3, BudgetMax: 50000},
		{PayloadKg: math.Inf(1), ReachMm: 1000, PrecisionMm: math.Inf(1), SpeedImportance: 3, BudgetMax: math.Inf(1)},
	}
	for _, req := range reqs {
		assert.NotPanics(t, func() {
			got := FindMatches(req, arms)
			assert.LessOrEqual(t, len(got), DefaultLimit)
			for _, c := range DefaultMatcher().Explain(req, arms).Candidates {
				assert.False(t, math.IsInf(c.TotalScore, 0) || math.IsNaN(c.TotalScore))
			}
		})
	}

	nan := Requirements{PayloadKg: math.NaN(), ReachMm: 1000, PrecisionMm: 0.5, SpeedImportance: 3, BudgetMax: 50000}
	assert.Empty(t, FindMatches(nan, arms))
}

func TestEmptyCatalog(t *testing.T) {
	assert.Empty(t, FindMatches(packagingRequirements(), nil))
	assert.Empty(t, DefaultMatcher().Explain(packagingRequirements(), nil).Candidates)
}
