package scoring

import (
	"strings"
	"testing"

	"jobfit/internal/types"
)

func testJobProfile() types.JobProfile {
	return types.JobProfile{
		Key:      "go-backend",
		Label:    "Go Backend Developer",
		Category: "Engineering",
		RequiredSkills: types.RequiredSkills{
			Programming: []string{"Go", "Python"},
			Frameworks:  []string{"Gin"},
			Databases:   []string{"PostgreSQL"},
			Tools:       []string{"Docker"},
			Concepts:    []string{"REST API"},
		},
		ExperienceKeywords: []string{"built", "designed", "deployed", "optimized"},
		MinExperience:      1,
		Weights:            types.Weights{Technical: 0.40, Experience: 0.30, Projects: 0.20, Education: 0.10},
	}
}

func TestScoreTechnical(t *testing.T) {
	profile := testJobProfile()

	t.Run("FullMatch", func(t *testing.T) {
		resume := types.ResumeData{
			Skills: []types.SkillGroup{
				{Category: "Languages", Items: []string{"Go", "Python"}},
				{Category: "Backend", Items: []string{"Gin", "PostgreSQL", "Docker", "REST API"}},
			},
		}
		result := scoreTechnical(resume, profile, nil)
		if result.Score != 100 {
			t.Errorf("Score = %d, expected 100", result.Score)
		}
		if len(result.Missing) != 0 {
			t.Errorf("Missing = %v, expected empty", result.Missing)
		}
		if result.MatchPercentage != 100 {
			t.Errorf("MatchPercentage = %d, expected 100", result.MatchPercentage)
		}
	})

	t.Run("NoMatch", func(t *testing.T) {
		resume := types.ResumeData{
			Skills: []types.SkillGroup{{Category: "Other", Items: []string{"Photoshop"}}},
		}
		result := scoreTechnical(resume, profile, nil)
		if result.Score != 30 {
			t.Errorf("Score = %d, expected 30", result.Score)
		}
		if len(result.Matched) != 0 {
			t.Errorf("Matched = %v, expected empty", result.Matched)
		}
	})

	t.Run("ExtraSkillsExtendRequirements", func(t *testing.T) {
		resume := types.ResumeData{
			Skills: []types.SkillGroup{
				{Category: "Languages", Items: []string{"Go", "Python"}},
				{Category: "Backend", Items: []string{"Gin", "PostgreSQL", "Docker", "REST API"}},
			},
		}
		result := scoreTechnical(resume, profile, []string{"Kafka", "Terraform"})
		// 6 of 8 matched drops the percentage to 75, one band down.
		if result.Score != 85 {
			t.Errorf("Score = %d, expected 85", result.Score)
		}
		foundKafka := false
		for _, m := range result.Missing {
			if m == "Kafka" {
				foundKafka = true
			}
		}
		if !foundKafka {
			t.Errorf("Missing = %v, expected to include Kafka", result.Missing)
		}
	})

	t.Run("MissingListCapped", func(t *testing.T) {
		big := types.JobProfile{
			RequiredSkills: types.RequiredSkills{
				Concepts: []string{"a1", "b2", "c3", "d4", "e5", "f6", "g7", "h8", "i9", "j10", "k11", "l12"},
			},
		}
		result := scoreTechnical(types.ResumeData{}, big, nil)
		if len(result.Missing) != missingDisplayCap {
			t.Errorf("Missing length = %d, expected %d", len(result.Missing), missingDisplayCap)
		}
	})
}

func TestScoreExperience(t *testing.T) {
	profile := testJobProfile()

	t.Run("EmptyWithMinimumRequired", func(t *testing.T) {
		result := scoreExperience(types.ResumeData{}, profile)
		if result.Score != 20 {
			t.Errorf("Score = %d, expected 20", result.Score)
		}
	})

	t.Run("EmptyWithoutMinimum", func(t *testing.T) {
		noMin := profile
		noMin.MinExperience = 0
		result := scoreExperience(types.ResumeData{}, noMin)
		if result.Score != 60 {
			t.Errorf("Score = %d, expected 60", result.Score)
		}
	})

	t.Run("MetricsBonus", func(t *testing.T) {
		resume := types.ResumeData{
			Experience: []types.Experience{
				{Company: "Acme", Title: "Engineer", Bullets: []string{"Increased revenue by 35%"}},
			},
		}
		result := scoreExperience(resume, profile)
		// 40 base, no entry-count bonus, no keywords, +10 metrics.
		if result.Score != 50 {
			t.Errorf("Score = %d, expected 50", result.Score)
		}
		foundPraise := false
		for _, f := range result.Feedback {
			if strings.Contains(f, "metrics") {
				foundPraise = true
			}
		}
		if !foundPraise {
			t.Errorf("Feedback = %v, expected metrics praise", result.Feedback)
		}
	})

	t.Run("KeywordCoverage", func(t *testing.T) {
		resume := types.ResumeData{
			Experience: []types.Experience{
				{Company: "A", Title: "Engineer", Bullets: []string{"Built the billing service"}},
				{Company: "B", Title: "Engineer", Bullets: []string{"Designed the ingest pipeline"}},
				{Company: "C", Title: "Engineer", Bullets: []string{"Deployed to production", "Optimized query latency"}},
			},
		}
		result := scoreExperience(resume, profile)
		// 40 base + 20 for three entries + 30 full keyword coverage, no metrics.
		if result.Score != 90 {
			t.Errorf("Score = %d, expected 90", result.Score)
		}
		if len(result.MatchedKeywords) != 4 {
			t.Errorf("MatchedKeywords = %v, expected all 4", result.MatchedKeywords)
		}
	})
}

func TestScoreProjects(t *testing.T) {
	profile := testJobProfile()

	t.Run("Empty", func(t *testing.T) {
		result := scoreProjects(types.ResumeData{}, profile)
		if result.Score != 40 {
			t.Errorf("Score = %d, expected 40", result.Score)
		}
	})

	t.Run("LinksAndTechAlignment", func(t *testing.T) {
		resume := types.ResumeData{
			Projects: []types.Project{
				{Name: "api", Technologies: []string{"Go", "Gin"}, Link: "https://example.com/api"},
				{Name: "etl", Technologies: []string{"Python"}},
				{Name: "site", Technologies: []string{"Rust"}},
			},
		}
		result := scoreProjects(resume, profile)
		// 50 base + 25 for three projects + 15 links + 10 tech alignment.
		if result.Score != 100 {
			t.Errorf("Score = %d, expected 100", result.Score)
		}
	})

	t.Run("NoLinks", func(t *testing.T) {
		resume := types.ResumeData{
			Projects: []types.Project{{Name: "api", Technologies: []string{"Fortran"}}},
		}
		result := scoreProjects(resume, profile)
		// 50 base only, plus portfolio and link feedback.
		if result.Score != 50 {
			t.Errorf("Score = %d, expected 50", result.Score)
		}
	})
}

func TestScoreEducation(t *testing.T) {
	profile := testJobProfile()

	t.Run("Empty", func(t *testing.T) {
		result := scoreEducation(types.ResumeData{}, profile)
		if result.Score != 50 {
			t.Errorf("Score = %d, expected 50", result.Score)
		}
	})

	t.Run("RelevantDegree", func(t *testing.T) {
		resume := types.ResumeData{
			Education: []types.Education{
				{Institution: "State University", Degree: "BSc", Field: "Computer Science"},
			},
		}
		result := scoreEducation(resume, profile)
		if result.Score != 90 {
			t.Errorf("Score = %d, expected 90", result.Score)
		}
	})

	t.Run("UnrelatedDegree", func(t *testing.T) {
		resume := types.ResumeData{
			Education: []types.Education{
				{Institution: "State University", Degree: "BA", Field: "History"},
			},
		}
		result := scoreEducation(resume, profile)
		if result.Score != 75 {
			t.Errorf("Score = %d, expected 75", result.Score)
		}
	})

	t.Run("MultipleEntriesBonus", func(t *testing.T) {
		resume := types.ResumeData{
			Education: []types.Education{
				{Institution: "State University", Degree: "BSc", Field: "Computer Science"},
				{Institution: "State University", Degree: "MSc", Field: "Data Science"},
			},
		}
		result := scoreEducation(resume, profile)
		if result.Score != 100 {
			t.Errorf("Score = %d, expected 100", result.Score)
		}
	})
}
