package scoring

import (
	"reflect"
	"testing"
)

func TestMatchSkills(t *testing.T) {
	tests := []struct {
		name            string
		resumeSkills    []string
		requiredSkills  []string
		expectedMatched []string
		expectedMissing []string
		expectedPct     float64
	}{
		{
			name:            "exact matches",
			resumeSkills:    []string{"Go", "PostgreSQL"},
			requiredSkills:  []string{"Go", "PostgreSQL"},
			expectedMatched: []string{"Go", "PostgreSQL"},
			expectedMissing: []string{},
			expectedPct:     100,
		},
		{
			name:            "case insensitive",
			resumeSkills:    []string{"PYTHON"},
			requiredSkills:  []string{"python"},
			expectedMatched: []string{"python"},
			expectedMissing: []string{},
			expectedPct:     100,
		},
		{
			name:            "resume skill contains required",
			resumeSkills:    []string{"React.js"},
			requiredSkills:  []string{"React"},
			expectedMatched: []string{"React"},
			expectedMissing: []string{},
			expectedPct:     100,
		},
		{
			name:            "required contains resume skill",
			resumeSkills:    []string{"SQL"},
			requiredSkills:  []string{"PostgreSQL"},
			expectedMatched: []string{"PostgreSQL"},
			expectedMissing: []string{},
			expectedPct:     100,
		},
		{
			name:            "partial match keeps required casing and order",
			resumeSkills:    []string{"go"},
			requiredSkills:  []string{"Rust", "Go", "Kafka"},
			expectedMatched: []string{"Go"},
			expectedMissing: []string{"Rust", "Kafka"},
			expectedPct:     100.0 / 3.0,
		},
		{
			name:            "empty required list",
			resumeSkills:    []string{"Go"},
			requiredSkills:  []string{},
			expectedMatched: []string{},
			expectedMissing: []string{},
			expectedPct:     0,
		},
		{
			name:            "empty resume skills",
			resumeSkills:    []string{},
			requiredSkills:  []string{"Go", "Docker"},
			expectedMatched: []string{},
			expectedMissing: []string{"Go", "Docker"},
			expectedPct:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := MatchSkills(tt.resumeSkills, tt.requiredSkills)

			if !reflect.DeepEqual(match.Matched, tt.expectedMatched) {
				t.Errorf("Matched = %v, expected %v", match.Matched, tt.expectedMatched)
			}
			if !reflect.DeepEqual(match.Missing, tt.expectedMissing) {
				t.Errorf("Missing = %v, expected %v", match.Missing, tt.expectedMissing)
			}
			if diff := match.MatchPercentage - tt.expectedPct; diff > 0.0001 || diff < -0.0001 {
				t.Errorf("MatchPercentage = %v, expected %v", match.MatchPercentage, tt.expectedPct)
			}
			if len(match.Matched)+len(match.Missing) != len(tt.requiredSkills) {
				t.Errorf("partition lost skills: %d matched + %d missing != %d required",
					len(match.Matched), len(match.Missing), len(tt.requiredSkills))
			}
		})
	}
}

func TestBidirectionalSubstringMatch(t *testing.T) {
	tests := []struct {
		resumeSkill   string
		requiredSkill string
		expected      bool
	}{
		{"react.js", "react", true},
		{"react", "react.js", true},
		{"go", "django", true}, // known permissive artifact of substring matching
		{"rust", "go", false},
		{"", "go", true}, // empty string is contained in everything
	}

	for _, tt := range tests {
		t.Run(tt.resumeSkill+"/"+tt.requiredSkill, func(t *testing.T) {
			if got := bidirectionalSubstringMatch(tt.resumeSkill, tt.requiredSkill); got != tt.expected {
				t.Errorf("bidirectionalSubstringMatch(%q, %q) = %v, expected %v",
					tt.resumeSkill, tt.requiredSkill, got, tt.expected)
			}
		})
	}
}
