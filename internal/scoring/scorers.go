package scoring

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"jobfit/internal/types"
)

// missingDisplayCap limits how many missing skills a category result
// carries for display purposes.
const missingDisplayCap = 10

// experienceMetricsPattern detects quantified achievements in experience text.
var experienceMetricsPattern = regexp.MustCompile(`(?i)\d+%|\$\d+|\d+x|\d+ users|\d+ customers`)

// relevantDegreeFields are the degree/field terms that earn the full
// education relevance bonus.
var relevantDegreeFields = []string{
	"computer science",
	"software engineering",
	"information technology",
	"data science",
	"computer engineering",
	"mathematics",
	"statistics",
}

// scoreTechnical matches the resume's flattened skill items against the
// job profile's required skills plus any caller-supplied extras, then maps
// the match percentage onto a discrete score band.
func scoreTechnical(resume types.ResumeData, profile types.JobProfile, extraSkills []string) types.CategoryResult {
	required := profile.RequiredSkills.All()
	required = append(required, extraSkills...)

	resumeSkills := []string{}
	for _, group := range resume.Skills {
		resumeSkills = append(resumeSkills, group.Items...)
	}

	match := MatchSkills(resumeSkills, required)

	var score int
	switch {
	case match.MatchPercentage >= 80:
		score = 100
	case match.MatchPercentage >= 60:
		score = 85
	case match.MatchPercentage >= 40:
		score = 70
	case match.MatchPercentage >= 20:
		score = 50
	default:
		score = 30
	}

	missing := match.Missing
	if len(missing) > missingDisplayCap {
		missing = missing[:missingDisplayCap]
	}

	pct := int(math.Round(match.MatchPercentage))

	return types.CategoryResult{
		Score:           score,
		Matched:         match.Matched,
		Missing:         missing,
		MatchPercentage: pct,
		Details:         fmt.Sprintf("Matched %d/%d required skills (%d%%)", len(match.Matched), len(required), pct),
	}
}

// scoreExperience scores the experience section additively: entry count,
// keyword coverage against the profile's experience keywords, and a bonus
// for quantified achievements.
func scoreExperience(resume types.ResumeData, profile types.JobProfile) types.CategoryResult {
	experience := resume.Experience

	if len(experience) == 0 {
		score := 60
		if profile.MinExperience > 0 {
			score = 20
		}
		return types.CategoryResult{
			Score:    score,
			Details:  "No experience listed",
			Feedback: []string{"Add at least 1-2 relevant work experiences"},
		}
	}

	score := 40.0
	feedback := []string{}

	switch {
	case len(experience) >= 3:
		score += 20
		feedback = append(feedback, "Good amount of experience entries")
	case len(experience) >= 2:
		score += 15
	default:
		feedback = append(feedback, "Consider adding more experience entries")
	}

	parts := make([]string, len(experience))
	for i, exp := range experience {
		parts[i] = exp.Title + " " + exp.Company + " " + strings.Join(exp.Bullets, " ")
	}
	experienceText := strings.ToLower(strings.Join(parts, " "))

	matchedKeywords := []string{}
	for _, keyword := range profile.ExperienceKeywords {
		if strings.Contains(experienceText, strings.ToLower(keyword)) {
			matchedKeywords = append(matchedKeywords, keyword)
		}
	}

	if len(profile.ExperienceKeywords) > 0 {
		keywordScore := float64(len(matchedKeywords)) / float64(len(profile.ExperienceKeywords)) * 30
		score += math.Min(30, keywordScore)
	}

	if len(matchedKeywords) < 3 {
		feedback = append(feedback, "Add more action verbs specific to this role")
	}

	if experienceMetricsPattern.MatchString(experienceText) {
		score += 10
		feedback = append(feedback, "Great use of metrics!")
	} else {
		feedback = append(feedback, "Add quantifiable achievements (%, $, numbers)")
	}

	return types.CategoryResult{
		Score:           int(math.Min(100, math.Round(score))),
		MatchedKeywords: matchedKeywords,
		Details:         fmt.Sprintf("%d/%d relevant keywords found", len(matchedKeywords), len(profile.ExperienceKeywords)),
		Feedback:        feedback,
	}
}

// scoreProjects scores the projects section on count, presence of links,
// and technology overlap with the profile's programming and framework
// requirements.
func scoreProjects(resume types.ResumeData, profile types.JobProfile) types.CategoryResult {
	projects := resume.Projects

	if len(projects) == 0 {
		return types.CategoryResult{
			Score:    40,
			Details:  "No projects listed",
			Feedback: []string{"Add 2-3 relevant projects to showcase skills"},
		}
	}

	score := 50.0
	feedback := []string{}

	switch {
	case len(projects) >= 3:
		score += 25
		feedback = append(feedback, "Good variety of projects")
	case len(projects) >= 2:
		score += 20
	default:
		feedback = append(feedback, "Add more projects to strengthen portfolio")
	}

	hasLinks := false
	for _, proj := range projects {
		if proj.Link != "" {
			hasLinks = true
			break
		}
	}
	if hasLinks {
		score += 15
		feedback = append(feedback, "Great! Projects include links")
	} else {
		feedback = append(feedback, "Add GitHub/demo links to projects")
	}

	jobSkills := []string{}
	for _, skill := range profile.RequiredSkills.Programming {
		jobSkills = append(jobSkills, strings.ToLower(skill))
	}
	for _, skill := range profile.RequiredSkills.Frameworks {
		jobSkills = append(jobSkills, strings.ToLower(skill))
	}

	techMatches := 0
	for _, proj := range projects {
		for _, tech := range proj.Technologies {
			techLower := strings.ToLower(tech)
			for _, skill := range jobSkills {
				if bidirectionalSubstringMatch(techLower, skill) {
					techMatches++
					break
				}
			}
		}
	}
	if techMatches >= 3 {
		score += 10
		feedback = append(feedback, "Projects align well with job requirements")
	}

	return types.CategoryResult{
		Score:    int(math.Min(100, math.Round(score))),
		Details:  fmt.Sprintf("%d projects listed", len(projects)),
		Feedback: feedback,
	}
}

// scoreEducation scores the education section with a relevance bonus for
// technical degree fields.
func scoreEducation(resume types.ResumeData, _ types.JobProfile) types.CategoryResult {
	education := resume.Education

	if len(education) == 0 {
		return types.CategoryResult{
			Score:    50,
			Details:  "No education listed",
			Feedback: []string{"Add your educational background"},
		}
	}

	score := 60.0
	feedback := []string{}

	parts := make([]string, len(education))
	for i, edu := range education {
		parts[i] = edu.Degree + " " + edu.Field
	}
	educationText := strings.ToLower(strings.Join(parts, " "))

	hasRelevantDegree := false
	for _, field := range relevantDegreeFields {
		if strings.Contains(educationText, field) {
			hasRelevantDegree = true
			break
		}
	}
	if hasRelevantDegree {
		score += 30
		feedback = append(feedback, "Relevant degree field")
	} else {
		score += 15
	}

	if len(education) > 1 {
		score += 10
		feedback = append(feedback, "Multiple education entries")
	}

	return types.CategoryResult{
		Score:    int(math.Min(100, math.Round(score))),
		Details:  fmt.Sprintf("%d education entries", len(education)),
		Feedback: feedback,
	}
}
