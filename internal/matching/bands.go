package matching

// Scoring bands. Ratios compare what an arm offers against what was asked for.
const (
	// payload ratio = arm payload / payload needed
	payloadSnugMax   = 1.5
	payloadRoomyMax  = 2.0
	payloadSnugScore = 10.0
	payloadRoomy     = 8.0
	payloadOversized = 5.0

	// reach ratio = arm reach / reach needed
	reachSnugMax   = 1.3
	reachRoomyMax  = 1.6
	reachSnugScore = 10.0
	reachRoomy     = 8.0
	reachOversized = 5.0

	// precision ratio = precision needed / arm precision
	precisionDouble      = 2.0
	precisionAmple       = 1.5
	precisionDoubleScore = 15.0
	precisionAmpleScore  = 12.0
	precisionMeetsScore  = 10.0
	precisionShortScore  = 5.0

	// budget ratio = budget max / arm price max
	budgetDouble      = 2.0
	budgetAmple       = 1.5
	budgetComfortable = 1.2
	budgetDoubleScore = 15.0
	budgetAmpleScore  = 12.0
	budgetComfyScore  = 8.0
	budgetMeetsScore  = 5.0

	speedScale = 2.0

	applicationExactScore   = 15.0
	applicationPartialScore = 10.0

	// DefaultLimit is how many arms a match returns at most.
	DefaultLimit = 3
)

// Relaxation loosens the hard thresholds for the fallback pass.
type Relaxation struct {
	Payload   float64 `json:"payload"`
	Reach     float64 `json:"reach"`
	Precision float64 `json:"precision"`
	Budget    float64 `json:"budget"`
}

// DefaultRelaxation gives 20% slack on every threshold.
func DefaultRelaxation() Relaxation {
	return Relaxation{Payload: 0.8, Reach: 0.8, Precision: 1.2, Budget: 1.2}
}
