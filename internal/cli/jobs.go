package cli

import (
	"github.com/spf13/cobra"

	"jobfit/internal/common"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List the job profiles in the catalog",
	Long: `List the job profiles available for scoring, optionally filtered by
category. The catalog is the built-in profile set unless a catalog file
is configured.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if jobsConfig.OutputFormat == "" {
			jobsConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(jobsConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runJobs,
}

var jobsConfig common.CommandConfig
var jobsCategory string

func init() {
	jobsCmd.Flags().StringVarP(&jobsConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	jobsCmd.Flags().StringVar(&jobsConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	jobsCmd.Flags().StringVarP(&jobsCategory, "category", "c", "", "Only list jobs in this category")

	// Add completion for format flag
	_ = jobsCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runJobs(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	cat, err := loadCatalog(cfg, logger)
	if err != nil {
		return err
	}

	refs := cat.Jobs()
	if jobsCategory != "" {
		refs = cat.ListJobsByCategory(jobsCategory)
	}

	logger.Info("Listing job profiles",
		"jobs", len(refs),
		"category", jobsCategory,
		"output_format", jobsConfig.OutputFormat)

	outputHandler := common.NewOutputHandler(logger)
	return outputHandler.HandleOutput(refs, jobsConfig)
}
