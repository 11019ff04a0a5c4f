package scoring

import "strings"

// SkillMatch is the partition of a required-skill list into skills found
// on the resume and skills absent from it. Matched and Missing carry the
// required skills in their original casing and order; Missing is the full
// untruncated set.
type SkillMatch struct {
	Matched         []string
	Missing         []string
	MatchPercentage float64
}

// bidirectionalSubstringMatch reports whether a resume skill satisfies a
// required skill. Both arguments must already be lower-cased. The
// containment check runs in both directions so compound names like
// "react.js" still match "react". The permissiveness is intentional and
// preserved from the original heuristic.
func bidirectionalSubstringMatch(resumeSkill, requiredSkill string) bool {
	return strings.Contains(resumeSkill, requiredSkill) || strings.Contains(requiredSkill, resumeSkill)
}

// MatchSkills partitions requiredSkills into matched and missing against
// the flattened, lower-cased resume skill items. MatchPercentage is 0 when
// the required list is empty.
func MatchSkills(resumeSkills, requiredSkills []string) SkillMatch {
	lowered := make([]string, len(resumeSkills))
	for i, s := range resumeSkills {
		lowered[i] = strings.ToLower(s)
	}

	matched := []string{}
	missing := []string{}

	for _, req := range requiredSkills {
		reqLower := strings.ToLower(req)
		found := false
		for _, skill := range lowered {
			if bidirectionalSubstringMatch(skill, reqLower) {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}

	pct := 0.0
	if len(requiredSkills) > 0 {
		pct = float64(len(matched)) / float64(len(requiredSkills)) * 100
	}

	return SkillMatch{Matched: matched, Missing: missing, MatchPercentage: pct}
}
