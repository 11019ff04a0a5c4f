package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"jobfit/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "ScoreResult", &ScoreTextFormatter{})
	registry.RegisterFormatter("markdown", "ScoreResult", &ScoreMarkdownFormatter{})
	registry.RegisterFormatter("text", "JobComparisons", &ComparisonTextFormatter{})
	registry.RegisterFormatter("markdown", "JobComparisons", &ComparisonMarkdownFormatter{})
	registry.RegisterFormatter("text", "JobRefs", &JobListTextFormatter{})
	registry.RegisterFormatter("markdown", "JobRefs", &JobListMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.ScoreResult:
		return "ScoreResult"
	case []types.JobComparison:
		return "JobComparisons"
	case []types.JobRef:
		return "JobRefs"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// writeCategoryText writes one category breakdown section in text form
func writeCategoryText(output *strings.Builder, name string, cat types.CategoryResult) {
	output.WriteString(fmt.Sprintf("%s: %d/100\n", name, cat.Score))
	output.WriteString(fmt.Sprintf("  %s\n", cat.Details))
	for _, fb := range cat.Feedback {
		output.WriteString(fmt.Sprintf("  - %s\n", fb))
	}
}

// ScoreTextFormatter handles text formatting for score results
type ScoreTextFormatter struct{}

func (stf *ScoreTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ScoreResult)
	if !ok {
		return "", fmt.Errorf("expected ScoreResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== FIT SCORE ===\n\n")
	output.WriteString(fmt.Sprintf("Job: %s\n", result.JobProfile.Label))
	output.WriteString(fmt.Sprintf("Total Score: %d/100 (%s)\n", result.TotalScore, result.Level.Label))
	output.WriteString(result.Level.Description)
	output.WriteString("\n\n")

	output.WriteString("=== BREAKDOWN ===\n")
	writeCategoryText(&output, "Technical Skills", result.Breakdown.Technical)
	writeCategoryText(&output, "Experience", result.Breakdown.Experience)
	writeCategoryText(&output, "Projects", result.Breakdown.Projects)
	writeCategoryText(&output, "Education", result.Breakdown.Education)
	output.WriteString("\n")

	if len(result.MatchedSkills) > 0 {
		output.WriteString("Matched Skills:\n")
		for _, skill := range result.MatchedSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.MissingSkills) > 0 {
		output.WriteString("Missing Skills:\n")
		for _, skill := range result.MissingSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		output.WriteString("=== RECOMMENDATIONS ===\n")
		for i, rec := range result.Recommendations {
			output.WriteString(fmt.Sprintf("%d. [%s] %s: %s (%s)\n",
				i+1, strings.ToUpper(rec.Priority), rec.Category, rec.Message, rec.Impact))
		}
	}

	return output.String(), nil
}

func (stf *ScoreTextFormatter) SupportedType() string {
	return "ScoreResult"
}

// ScoreMarkdownFormatter handles markdown formatting for score results
type ScoreMarkdownFormatter struct{}

func (smf *ScoreMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ScoreResult)
	if !ok {
		return "", fmt.Errorf("expected ScoreResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString(fmt.Sprintf("# Fit Score: %s\n\n", result.JobProfile.Label))
	output.WriteString(fmt.Sprintf("**Total Score:** %d/100 (%s)\n\n", result.TotalScore, result.Level.Label))
	output.WriteString(result.Level.Description)
	output.WriteString("\n\n")

	output.WriteString("## Breakdown\n\n")
	categories := []struct {
		name string
		cat  types.CategoryResult
	}{
		{"Technical Skills", result.Breakdown.Technical},
		{"Experience", result.Breakdown.Experience},
		{"Projects", result.Breakdown.Projects},
		{"Education", result.Breakdown.Education},
	}
	for _, c := range categories {
		output.WriteString(fmt.Sprintf("### %s: %d/100\n\n", c.name, c.cat.Score))
		output.WriteString(c.cat.Details)
		output.WriteString("\n\n")
		for _, fb := range c.cat.Feedback {
			output.WriteString(fmt.Sprintf("- %s\n", fb))
		}
		if len(c.cat.Feedback) > 0 {
			output.WriteString("\n")
		}
	}

	if len(result.MatchedSkills) > 0 {
		output.WriteString("## Matched Skills\n\n")
		for _, skill := range result.MatchedSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.MissingSkills) > 0 {
		output.WriteString("## Missing Skills\n\n")
		for _, skill := range result.MissingSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		output.WriteString("## Recommendations\n\n")
		for i, rec := range result.Recommendations {
			output.WriteString(fmt.Sprintf("%d. **%s** (%s priority): %s _%s_\n",
				i+1, rec.Category, rec.Priority, rec.Message, rec.Impact))
		}
	}

	return output.String(), nil
}

func (smf *ScoreMarkdownFormatter) SupportedType() string {
	return "ScoreResult"
}

// ComparisonTextFormatter handles text formatting for multi-job comparisons
type ComparisonTextFormatter struct{}

func (ctf *ComparisonTextFormatter) Format(data any) (string, error) {
	comparisons, ok := data.([]types.JobComparison)
	if !ok {
		return "", fmt.Errorf("expected []JobComparison, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== JOB COMPARISON ===\n\n")
	for i, comp := range comparisons {
		output.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, comp.JobProfile.Label, comp.JobType))
		output.WriteString(fmt.Sprintf("   Total Score: %d/100 (%s)\n", comp.TotalScore, comp.Level.Label))
		output.WriteString(fmt.Sprintf("   Technical: %d  Experience: %d  Projects: %d  Education: %d\n",
			comp.Breakdown.Technical.Score,
			comp.Breakdown.Experience.Score,
			comp.Breakdown.Projects.Score,
			comp.Breakdown.Education.Score))
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (ctf *ComparisonTextFormatter) SupportedType() string {
	return "JobComparisons"
}

// ComparisonMarkdownFormatter handles markdown formatting for multi-job comparisons
type ComparisonMarkdownFormatter struct{}

func (cmf *ComparisonMarkdownFormatter) Format(data any) (string, error) {
	comparisons, ok := data.([]types.JobComparison)
	if !ok {
		return "", fmt.Errorf("expected []JobComparison, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Job Comparison\n\n")
	output.WriteString("| Rank | Job | Score | Level | Technical | Experience | Projects | Education |\n")
	output.WriteString("|------|-----|-------|-------|-----------|------------|----------|----------|\n")
	for i, comp := range comparisons {
		output.WriteString(fmt.Sprintf("| %d | %s | %d | %s | %d | %d | %d | %d |\n",
			i+1,
			comp.JobProfile.Label,
			comp.TotalScore,
			comp.Level.Label,
			comp.Breakdown.Technical.Score,
			comp.Breakdown.Experience.Score,
			comp.Breakdown.Projects.Score,
			comp.Breakdown.Education.Score))
	}

	return output.String(), nil
}

func (cmf *ComparisonMarkdownFormatter) SupportedType() string {
	return "JobComparisons"
}

// JobListTextFormatter handles text formatting for catalog listings
type JobListTextFormatter struct{}

func (jlf *JobListTextFormatter) Format(data any) (string, error) {
	jobs, ok := data.([]types.JobRef)
	if !ok {
		return "", fmt.Errorf("expected []JobRef, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== AVAILABLE JOBS ===\n\n")
	for _, job := range jobs {
		output.WriteString(fmt.Sprintf("%-28s %s (%s)\n", job.Key, job.Label, job.Category))
	}

	return output.String(), nil
}

func (jlf *JobListTextFormatter) SupportedType() string {
	return "JobRefs"
}

// JobListMarkdownFormatter handles markdown formatting for catalog listings
type JobListMarkdownFormatter struct{}

func (jlmf *JobListMarkdownFormatter) Format(data any) (string, error) {
	jobs, ok := data.([]types.JobRef)
	if !ok {
		return "", fmt.Errorf("expected []JobRef, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Available Jobs\n\n")
	output.WriteString("| Key | Label | Category |\n")
	output.WriteString("|-----|-------|----------|\n")
	for _, job := range jobs {
		output.WriteString(fmt.Sprintf("| %s | %s | %s |\n", job.Key, job.Label, job.Category))
	}

	return output.String(), nil
}

func (jlmf *JobListMarkdownFormatter) SupportedType() string {
	return "JobRefs"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
