package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"jobfit/internal/ai"
	"jobfit/internal/common"
	"jobfit/internal/errors"
	"jobfit/internal/scoring"
	"jobfit/internal/types"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [resume-file]",
	Short: "Score a resume against a job profile",
	Long: `Score a structured resume against a job profile from the catalog.
The command takes one argument: the path to a resume file in the
structured JSON format (as produced by the parse command). With
--resume-text the file is treated as raw resume text and parsed with
the configured AI provider first. The job is selected with --job and
defaults to the configured default job.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if scoreConfig.OutputFormat == "" {
			scoreConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(scoreConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runScore,
}

var scoreConfig common.CommandConfig
var scoreJobID string
var scoreExtraSkills []string
var scoreResumeText bool

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	scoreCmd.Flags().StringVarP(&scoreJobID, "job", "j", "", "Job profile key to score against (default from config)")
	scoreCmd.Flags().StringSliceVar(&scoreExtraSkills, "skills", nil, "Extra skills to add to the resume's skill set")
	scoreCmd.Flags().BoolVar(&scoreResumeText, "resume-text", false, "Treat the resume file as raw text and parse it with AI first")

	// Add completion for format flag
	_ = scoreCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})

	// Add completion for job flag from the configured catalog
	_ = scoreCmd.RegisterFlagCompletionFunc("job", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		logger := getLoggerFromContext(cmd.Context())
		cat, err := loadCatalog(cfg, logger)
		if err != nil {
			return []string{}, cobra.ShellCompDirectiveError
		}
		keys := []string{}
		for _, ref := range cat.Jobs() {
			keys = append(keys, ref.Key)
		}
		return keys, cobra.ShellCompDirectiveNoFileComp
	})
}

// decodeResume parses a structured resume from JSON file contents.
func decodeResume(content string) (types.ResumeData, error) {
	var resume types.ResumeData
	if err := json.Unmarshal([]byte(content), &resume); err != nil {
		return types.ResumeData{}, errors.NewValidationError(
			errors.ErrCodeInvalidFormat,
			"resume file is not valid structured JSON",
			err,
		)
	}
	return resume, nil
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	jobID := scoreJobID
	if jobID == "" {
		jobID = cfg.App.DefaultJob
	}

	cat, err := loadCatalog(cfg, logger)
	if err != nil {
		return err
	}
	engine := scoring.NewEngine(cat)

	// The AI service is only needed for the raw text path
	var aiService *ai.Service
	if scoreResumeText {
		parseAIConfig := cfg.GetParseConfig()
		aiService, err = ai.NewService(&parseAIConfig, "parse", logger)
		if err != nil {
			return fmt.Errorf("failed to create AI service: %w", err)
		}
	}

	createInput := func(contents []string) (string, error) {
		if len(contents) != 1 {
			return "", fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return contents[0], nil
	}

	logDetails := func(input string, cmdCfg common.CommandConfig) {
		logger.Info("Starting resume scoring",
			"job_id", jobID,
			"resume_chars", len(input),
			"raw_text", scoreResumeText,
			"extra_skills", len(scoreExtraSkills),
			"output_format", cmdCfg.OutputFormat)
	}

	scoreOperation := func(ctx context.Context, content string) (types.ScoreResult, *ai.TokenUsage, error) {
		var resume types.ResumeData
		var tokenUsage *ai.TokenUsage
		var opErr error
		if scoreResumeText {
			resume, tokenUsage, opErr = aiService.Provider.ParseResume(ctx, content)
		} else {
			resume, opErr = decodeResume(content)
		}
		if opErr != nil {
			return types.ScoreResult{}, tokenUsage, opErr
		}
		result, opErr := engine.Score(resume, jobID, scoreExtraSkills)
		return result, tokenUsage, opErr
	}

	err = common.RunAICommand(
		cmd.Context(),
		logger,
		scoreConfig,
		args,
		createInput,
		scoreOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}
	logger.Info("Resume scoring completed successfully")
	return nil
}
