package hermes

const (
	StreamName   = "ARMFINDER_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectMatchCompleted(matchID string) string { return "armfinder.match." + matchID + ".completed" }
func SubjectMatchUnmatched(matchID string) string { return "armfinder.match." + matchID + ".unmatched" }

// SubjectForMatch picks the subject by whether anything was recommended.
func SubjectForMatch(matchID string, found bool) string {
	if found {
		return SubjectMatchCompleted(matchID)
	}
	return SubjectMatchUnmatched(matchID)
}
