package hermes

import "testing"

func TestSubjects(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{SubjectMatchCompleted("m1"), "armfinder.match.m1.completed"},
		{SubjectMatchUnmatched("m1"), "armfinder.match.m1.unmatched"},
		{SubjectForMatch("m2", true), "armfinder.match.m2.completed"},
		{SubjectForMatch("m2", false), "armfinder.match.m2.unmatched"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("expected %s, got %s", tt.want, tt.got)
		}
	}
}
