// Package scoring computes job-specific resume fit scores. The engine is
// pure and stateless: it never mutates its inputs, performs no I/O, and is
// safe for concurrent use.
package scoring

import (
	"math"
	"sort"

	"jobfit/internal/errors"
	"jobfit/internal/types"
)

// ProfileSource resolves job profile keys. Implementations must be
// immutable for the duration of a scoring call.
type ProfileSource interface {
	Lookup(jobID string) (types.JobProfile, bool)
}

// Engine scores resumes against job profiles from an injected source.
type Engine struct {
	profiles ProfileSource
}

// NewEngine creates a scoring engine backed by the given profile source.
func NewEngine(profiles ProfileSource) *Engine {
	return &Engine{profiles: profiles}
}

// Score evaluates a resume against one job profile. extraSkills are
// ad-hoc requirements appended to the profile's skill set, supporting
// "score me against this exact stack" requests. An unknown jobID is the
// only error Score returns.
func (e *Engine) Score(resume types.ResumeData, jobID string, extraSkills []string) (types.ScoreResult, error) {
	profile, ok := e.profiles.Lookup(jobID)
	if !ok {
		return types.ScoreResult{}, errors.NewValidationError(
			errors.ErrCodeInvalidJobType,
			"invalid job type: "+jobID,
			nil,
		).WithContext("job_id", jobID)
	}

	breakdown := types.ScoreBreakdown{
		Technical:  scoreTechnical(resume, profile, extraSkills),
		Experience: scoreExperience(resume, profile),
		Projects:   scoreProjects(resume, profile),
		Education:  scoreEducation(resume, profile),
	}

	weighted := float64(breakdown.Technical.Score)*profile.Weights.Technical +
		float64(breakdown.Experience.Score)*profile.Weights.Experience +
		float64(breakdown.Projects.Score)*profile.Weights.Projects +
		float64(breakdown.Education.Score)*profile.Weights.Education
	totalScore := int(math.Round(weighted))

	return types.ScoreResult{
		TotalScore:      totalScore,
		Breakdown:       breakdown,
		JobProfile:      profile,
		Recommendations: generateRecommendations(breakdown, profile, resume),
		MatchedSkills:   breakdown.Technical.Matched,
		MissingSkills:   breakdown.Technical.Missing,
		Level:           classifyScore(totalScore),
	}, nil
}

// CompareAgainstJobs scores one resume against several job profiles and
// returns the results sorted descending by total score. Ties keep the
// caller's jobIDs order. Any unknown jobID fails the whole comparison.
func (e *Engine) CompareAgainstJobs(resume types.ResumeData, jobIDs []string) ([]types.JobComparison, error) {
	results := make([]types.JobComparison, 0, len(jobIDs))
	for _, jobID := range jobIDs {
		result, err := e.Score(resume, jobID, nil)
		if err != nil {
			return nil, err
		}
		results = append(results, types.JobComparison{JobType: jobID, ScoreResult: result})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalScore > results[j].TotalScore
	})

	return results, nil
}

// ZeroScoreResult is the documented degraded result integration
// boundaries substitute when scoring fails unexpectedly. The engine never
// returns it itself.
func ZeroScoreResult(jobID string) types.ScoreResult {
	return types.ScoreResult{
		TotalScore: 0,
		JobProfile: types.JobProfile{Key: jobID, Label: "Error"},
		Level: types.ScoreLevel{
			Label:       "Error",
			Color:       "red",
			Description: "Scoring failed, please retry",
		},
		Recommendations: []types.Recommendation{},
		MatchedSkills:   []string{},
		MissingSkills:   []string{},
	}
}
