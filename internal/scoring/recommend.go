package scoring

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"jobfit/internal/types"
)

// Recommendation rule ids. The impact strings are canned estimates keyed
// by rule, never computed.
const (
	ruleTechnicalGap  = "technical-gap"
	ruleActionVerbs   = "action-verbs"
	ruleAddMetrics    = "add-metrics"
	ruleAddProjects   = "add-projects"
	ruleAddEducation  = "add-education"
	ruleCriticalSkill = "critical-skills"
)

var ruleImpacts = map[string]string{
	ruleTechnicalGap:  "+15-20 points",
	ruleActionVerbs:   "+10-15 points",
	ruleAddMetrics:    "+10 points",
	ruleAddProjects:   "+10-15 points",
	ruleAddEducation:  "+5-10 points",
	ruleCriticalSkill: "Improve job match",
}

// quantificationPattern checks the serialized experience data for any
// quantified achievement. Narrower than the scorer's metric pattern and
// case-sensitive, matching the original rule.
var quantificationPattern = regexp.MustCompile(`\d+%|\$\d+|\d+x`)

// generateRecommendations inspects the category results and emits
// recommendations in a fixed rule order. Passing categories produce
// nothing; the list is not re-sorted by priority.
func generateRecommendations(breakdown types.ScoreBreakdown, profile types.JobProfile, resume types.ResumeData) []types.Recommendation {
	recommendations := []types.Recommendation{}

	if breakdown.Technical.Score < 70 {
		recommendations = append(recommendations, types.Recommendation{
			Category: "Technical Skills",
			Priority: "high",
			Message:  fmt.Sprintf("Add %s to your skills section", strings.Join(headOf(breakdown.Technical.Missing, 5), ", ")),
			Impact:   ruleImpacts[ruleTechnicalGap],
		})
	}

	if breakdown.Experience.Score < 70 {
		recommendations = append(recommendations, types.Recommendation{
			Category: "Experience",
			Priority: "high",
			Message:  fmt.Sprintf("Use action verbs like: %s", strings.Join(headOf(profile.ExperienceKeywords, 3), ", ")),
			Impact:   ruleImpacts[ruleActionVerbs],
		})

		serialized, err := json.Marshal(resume.Experience)
		if err == nil && !quantificationPattern.Match(serialized) {
			recommendations = append(recommendations, types.Recommendation{
				Category: "Experience",
				Priority: "high",
				Message:  "Add quantifiable metrics (%, $, numbers) to your achievements",
				Impact:   ruleImpacts[ruleAddMetrics],
			})
		}
	}

	if breakdown.Projects.Score < 70 {
		recommendations = append(recommendations, types.Recommendation{
			Category: "Projects",
			Priority: "medium",
			Message:  "Add 2-3 projects using technologies from the job requirements",
			Impact:   ruleImpacts[ruleAddProjects],
		})
	}

	if breakdown.Education.Score < 60 {
		recommendations = append(recommendations, types.Recommendation{
			Category: "Education",
			Priority: "low",
			Message:  "Add your educational background and certifications",
			Impact:   ruleImpacts[ruleAddEducation],
		})
	}

	if len(breakdown.Technical.Missing) > 5 {
		recommendations = append(recommendations, types.Recommendation{
			Category: "Skills Gap",
			Priority: "high",
			Message:  fmt.Sprintf("Consider learning: %s", strings.Join(headOf(breakdown.Technical.Missing, 3), ", ")),
			Impact:   ruleImpacts[ruleCriticalSkill],
		})
	}

	return recommendations
}

func headOf(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
