package scoring

import "jobfit/internal/types"

// classifyScore maps a total score onto its qualitative band.
func classifyScore(totalScore int) types.ScoreLevel {
	switch {
	case totalScore >= 90:
		return types.ScoreLevel{
			Label:       "Excellent Match",
			Color:       "green",
			Description: "Your resume is highly competitive for this role",
		}
	case totalScore >= 75:
		return types.ScoreLevel{
			Label:       "Good Match",
			Color:       "blue",
			Description: "Your resume meets most requirements",
		}
	case totalScore >= 60:
		return types.ScoreLevel{
			Label:       "Fair Match",
			Color:       "yellow",
			Description: "Some improvements needed to be competitive",
		}
	default:
		return types.ScoreLevel{
			Label:       "Needs Improvement",
			Color:       "red",
			Description: "Significant improvements needed for this role",
		}
	}
}
