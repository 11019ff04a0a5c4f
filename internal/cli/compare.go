package cli

import (
	"context"
	"fmt"

	"jobfit/internal/common"
	"jobfit/internal/scoring"
	"jobfit/internal/types"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare [resume-file]",
	Short: "Compare a resume against multiple job profiles",
	Long: `Score a structured resume against several job profiles at once and
rank the results by total score. The command takes one argument: the
path to a resume file in the structured JSON format. Jobs are selected
with --jobs; without the flag every job in the catalog is compared.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if compareConfig.OutputFormat == "" {
			compareConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(compareConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runCompare,
}

var compareConfig common.CommandConfig
var compareJobIDs []string

func init() {
	compareCmd.Flags().StringVarP(&compareConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	compareCmd.Flags().StringVar(&compareConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	compareCmd.Flags().StringSliceVar(&compareJobIDs, "jobs", nil, "Job profile keys to compare against (default: all catalog jobs)")

	// Add completion for format flag
	_ = compareCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	cat, err := loadCatalog(cfg, logger)
	if err != nil {
		return err
	}
	engine := scoring.NewEngine(cat)

	jobIDs := compareJobIDs
	if len(jobIDs) == 0 {
		for _, ref := range cat.Jobs() {
			jobIDs = append(jobIDs, ref.Key)
		}
	}

	createInput := func(contents []string) (types.ResumeData, error) {
		if len(contents) != 1 {
			return types.ResumeData{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return decodeResume(contents[0])
	}

	logDetails := func(input types.ResumeData, cmdCfg common.CommandConfig) {
		logger.Info("Starting job comparison",
			"jobs", len(jobIDs),
			"skill_groups", len(input.Skills),
			"output_format", cmdCfg.OutputFormat)
	}

	compareOperation := func(ctx context.Context, input types.ResumeData) ([]types.JobComparison, error) {
		return engine.CompareAgainstJobs(input, jobIDs)
	}

	err = common.RunCommand(
		cmd.Context(),
		logger,
		compareConfig,
		args,
		createInput,
		compareOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to compare jobs: %w", err)
	}
	logger.Info("Job comparison completed successfully")
	return nil
}
