package scoring

import (
	"errors"
	"reflect"
	"testing"

	appErrors "jobfit/internal/errors"
	"jobfit/internal/types"
)

// mapSource is a trivial ProfileSource for tests.
type mapSource map[string]types.JobProfile

func (m mapSource) Lookup(jobID string) (types.JobProfile, bool) {
	p, ok := m[jobID]
	return p, ok
}

// technicalOnlyProfile scores entirely on the technical category, which
// makes comparison totals easy to predict.
func technicalOnlyProfile(key string, required ...string) types.JobProfile {
	return types.JobProfile{
		Key:      key,
		Label:    key,
		Category: "Engineering",
		RequiredSkills: types.RequiredSkills{
			Concepts: required,
		},
		Weights: types.Weights{Technical: 1.0},
	}
}

func TestScoreUnknownJob(t *testing.T) {
	engine := NewEngine(mapSource{})

	_, err := engine.Score(types.ResumeData{}, "no-such-job", nil)
	if err == nil {
		t.Fatal("expected error for unknown job, got nil")
	}

	var appErr *appErrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != appErrors.ErrCodeInvalidJobType {
		t.Errorf("Code = %q, expected %q", appErr.Code, appErrors.ErrCodeInvalidJobType)
	}
}

func TestScoreEmptyResume(t *testing.T) {
	profile := testJobProfile()
	engine := NewEngine(mapSource{profile.Key: profile})

	result, err := engine.Score(types.ResumeData{}, profile.Key, nil)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	// Technical 30, experience 20 (minimum required), projects 40,
	// education 50 under 0.4/0.3/0.2/0.1 weights.
	if result.TotalScore != 31 {
		t.Errorf("TotalScore = %d, expected 31", result.TotalScore)
	}
	if result.Level.Label != "Needs Improvement" {
		t.Errorf("Level = %q, expected Needs Improvement", result.Level.Label)
	}
	if result.Breakdown.Technical.Score != 30 {
		t.Errorf("Technical = %d, expected 30", result.Breakdown.Technical.Score)
	}
	if result.Breakdown.Experience.Score != 20 {
		t.Errorf("Experience = %d, expected 20", result.Breakdown.Experience.Score)
	}
	if result.Breakdown.Projects.Score != 40 {
		t.Errorf("Projects = %d, expected 40", result.Breakdown.Projects.Score)
	}
	if result.Breakdown.Education.Score != 50 {
		t.Errorf("Education = %d, expected 50", result.Breakdown.Education.Score)
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	profile := testJobProfile()
	engine := NewEngine(mapSource{profile.Key: profile})
	resume := types.ResumeData{
		Skills: []types.SkillGroup{{Category: "Languages", Items: []string{"Go", "Docker"}}},
		Experience: []types.Experience{
			{Company: "Acme", Title: "Engineer", Bullets: []string{"Built and deployed services", "Cut costs by 20%"}},
		},
		Education: []types.Education{{Institution: "U", Degree: "BSc", Field: "Computer Science"}},
	}

	first, err := engine.Score(resume, profile.Key, nil)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	second, err := engine.Score(resume, profile.Key, nil)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different results")
	}
	if first.TotalScore < 0 || first.TotalScore > 100 {
		t.Errorf("TotalScore = %d, expected within [0, 100]", first.TotalScore)
	}
}

func TestScoreResultSkillLists(t *testing.T) {
	profile := testJobProfile()
	engine := NewEngine(mapSource{profile.Key: profile})
	resume := types.ResumeData{
		Skills: []types.SkillGroup{
			{Category: "Languages", Items: []string{"Go", "Python"}},
			{Category: "Backend", Items: []string{"Gin", "PostgreSQL", "Docker", "REST API"}},
		},
	}

	result, err := engine.Score(resume, profile.Key, nil)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	if !reflect.DeepEqual(result.MatchedSkills, result.Breakdown.Technical.Matched) {
		t.Error("MatchedSkills does not mirror the technical breakdown")
	}
	if len(result.MissingSkills) != 0 {
		t.Errorf("MissingSkills = %v, expected empty for full match", result.MissingSkills)
	}
}

func TestCompareAgainstJobs(t *testing.T) {
	source := mapSource{
		"go-shop":     technicalOnlyProfile("go-shop", "Go"),
		"rust-shop":   technicalOnlyProfile("rust-shop", "Rust"),
		"mixed-shop":  technicalOnlyProfile("mixed-shop", "Go", "Rust"),
		"go-shop-too": technicalOnlyProfile("go-shop-too", "Go"),
	}
	engine := NewEngine(source)
	resume := types.ResumeData{
		Skills: []types.SkillGroup{{Category: "Languages", Items: []string{"Go"}}},
	}

	t.Run("SortedDescending", func(t *testing.T) {
		comparisons, err := engine.CompareAgainstJobs(resume, []string{"rust-shop", "mixed-shop", "go-shop"})
		if err != nil {
			t.Fatalf("CompareAgainstJobs failed: %v", err)
		}
		if len(comparisons) != 3 {
			t.Fatalf("got %d comparisons, expected 3", len(comparisons))
		}
		expected := []string{"go-shop", "mixed-shop", "rust-shop"}
		for i, jobID := range expected {
			if comparisons[i].JobType != jobID {
				t.Errorf("comparisons[%d] = %q, expected %q", i, comparisons[i].JobType, jobID)
			}
		}
		for i := 1; i < len(comparisons); i++ {
			if comparisons[i].TotalScore > comparisons[i-1].TotalScore {
				t.Errorf("comparisons not sorted descending at %d", i)
			}
		}
	})

	t.Run("TiesKeepRequestOrder", func(t *testing.T) {
		comparisons, err := engine.CompareAgainstJobs(resume, []string{"go-shop-too", "go-shop"})
		if err != nil {
			t.Fatalf("CompareAgainstJobs failed: %v", err)
		}
		if comparisons[0].JobType != "go-shop-too" || comparisons[1].JobType != "go-shop" {
			t.Errorf("tie order changed: %q, %q", comparisons[0].JobType, comparisons[1].JobType)
		}
	})

	t.Run("UnknownJobFailsWholeComparison", func(t *testing.T) {
		_, err := engine.CompareAgainstJobs(resume, []string{"go-shop", "no-such-job"})
		if err == nil {
			t.Fatal("expected error for unknown job in comparison")
		}
	})
}

func TestZeroScoreResult(t *testing.T) {
	result := ZeroScoreResult("backend-developer")

	if result.TotalScore != 0 {
		t.Errorf("TotalScore = %d, expected 0", result.TotalScore)
	}
	if result.JobProfile.Key != "backend-developer" {
		t.Errorf("JobProfile.Key = %q, expected backend-developer", result.JobProfile.Key)
	}
	if result.Level.Label != "Error" {
		t.Errorf("Level = %q, expected Error", result.Level.Label)
	}
	if result.Recommendations == nil || result.MatchedSkills == nil || result.MissingSkills == nil {
		t.Error("expected empty, non-nil slices for JSON serialization")
	}
}

func TestClassifyScore(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{100, "Excellent Match"},
		{90, "Excellent Match"},
		{89, "Good Match"},
		{75, "Good Match"},
		{74, "Fair Match"},
		{60, "Fair Match"},
		{59, "Needs Improvement"},
		{0, "Needs Improvement"},
	}

	for _, tt := range tests {
		if level := classifyScore(tt.score); level.Label != tt.expected {
			t.Errorf("classifyScore(%d) = %q, expected %q", tt.score, level.Label, tt.expected)
		}
	}
}
