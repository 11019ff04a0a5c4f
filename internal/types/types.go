package types

// SkillGroup represents a named group of skills on a resume
type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// Experience represents a single work experience entry
type Experience struct {
	Company   string   `json:"company"`
	Title     string   `json:"title"`
	Location  string   `json:"location,omitempty"`
	StartDate string   `json:"startDate,omitempty"`
	EndDate   string   `json:"endDate,omitempty"`
	Current   bool     `json:"current,omitempty"`
	Bullets   []string `json:"bullets"`
}

// Project represents a single project entry
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
	Bullets      []string `json:"bullets,omitempty"`
}

// Education represents a single education entry
type Education struct {
	Institution string   `json:"institution"`
	Degree      string   `json:"degree"`
	Field       string   `json:"field"`
	Location    string   `json:"location,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	GPA         string   `json:"gpa,omitempty"`
	Bullets     []string `json:"bullets,omitempty"`
}

// Contact represents contact details on a resume
type Contact struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

// ResumeData is the structured resume document every scoring operation
// consumes. All collections may be empty.
type ResumeData struct {
	Contact        Contact      `json:"contact,omitempty"`
	Summary        string       `json:"summary,omitempty"`
	Skills         []SkillGroup `json:"skills"`
	Experience     []Experience `json:"experience"`
	Projects       []Project    `json:"projects"`
	Education      []Education  `json:"education"`
	Certifications []string     `json:"certifications,omitempty"`
}

// RequiredSkills groups the skill requirements of a job profile
type RequiredSkills struct {
	Programming []string `json:"programming"`
	Frameworks  []string `json:"frameworks"`
	Databases   []string `json:"databases"`
	Tools       []string `json:"tools"`
	Concepts    []string `json:"concepts"`
}

// All returns every required skill across the groups, in group order.
func (r RequiredSkills) All() []string {
	out := make([]string, 0, len(r.Programming)+len(r.Frameworks)+len(r.Databases)+len(r.Tools)+len(r.Concepts))
	out = append(out, r.Programming...)
	out = append(out, r.Frameworks...)
	out = append(out, r.Databases...)
	out = append(out, r.Tools...)
	out = append(out, r.Concepts...)
	return out
}

// Weights are the per-category aggregation weights of a job profile
type Weights struct {
	Technical  float64 `json:"technical"`
	Experience float64 `json:"experience"`
	Projects   float64 `json:"projects"`
	Education  float64 `json:"education"`
}

// Sum returns the total of the four category weights.
func (w Weights) Sum() float64 {
	return w.Technical + w.Experience + w.Projects + w.Education
}

// JobProfile describes one scoring target
type JobProfile struct {
	Key                string         `json:"key"`
	Label              string         `json:"label"`
	Category           string         `json:"category"`
	RequiredSkills     RequiredSkills `json:"requiredSkills"`
	ExperienceKeywords []string       `json:"experienceKeywords"`
	MinExperience      int            `json:"minExperience"`
	Weights            Weights        `json:"weights"`
}

// JobRef is a catalog listing entry
type JobRef struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

// CategoryResult is the outcome of one category scorer
type CategoryResult struct {
	Score           int      `json:"score"`
	MatchPercentage int      `json:"matchPercentage,omitempty"`
	Matched         []string `json:"matched,omitempty"`
	Missing         []string `json:"missing,omitempty"`
	MatchedKeywords []string `json:"matchedKeywords,omitempty"`
	Details         string   `json:"details"`
	Feedback        []string `json:"feedback,omitempty"`
}

// ScoreBreakdown holds the four per-category outcomes
type ScoreBreakdown struct {
	Technical  CategoryResult `json:"technical"`
	Experience CategoryResult `json:"experience"`
	Projects   CategoryResult `json:"projects"`
	Education  CategoryResult `json:"education"`
}

// Recommendation is a single actionable improvement suggestion
type Recommendation struct {
	Category string `json:"category"`
	Priority string `json:"priority"` // "high", "medium", or "low"
	Message  string `json:"message"`
	Impact   string `json:"impact"`
}

// ScoreLevel is the qualitative classification of a total score
type ScoreLevel struct {
	Label       string `json:"label"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// ScoreResult is the complete outcome of scoring a resume against one job
type ScoreResult struct {
	TotalScore      int              `json:"totalScore"`
	Breakdown       ScoreBreakdown   `json:"breakdown"`
	JobProfile      JobProfile       `json:"jobProfile"`
	Recommendations []Recommendation `json:"recommendations"`
	MatchedSkills   []string         `json:"matchedSkills"`
	MissingSkills   []string         `json:"missingSkills"`
	Level           ScoreLevel       `json:"level"`
}

// JobComparison is one entry of a multi-job comparison, a full score
// result tagged with the job it was computed for
type JobComparison struct {
	JobType string `json:"jobType"`
	ScoreResult
}
