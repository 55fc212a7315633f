package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spacesedan/sentibatch/config"
	"github.com/spacesedan/sentibatch/internal/logging"
	"github.com/spacesedan/sentibatch/internal/models"
	"github.com/spacesedan/sentibatch/internal/processing"
	"github.com/spacesedan/sentibatch/internal/sentiment"
	"github.com/spf13/cobra"
)

const msgInvalidArguments = "Invalid arguments"

type cliOptions struct {
	output      string
	logLevel    string
	category    string
	stripMarkup bool
}

// run executes one analysis and returns the process exit status. The result
// document, success or error, is the only thing written to stdout.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	cfg, cfgErr := config.FromEnv()
	outputFormat := cfg.OutputFormat
	if cfgErr != nil {
		outputFormat = config.OutputJSON
	}

	var opts cliOptions
	cmd := &cobra.Command{
		Use:   "analyzer <file> <csv|xlsx|xls|pdf>",
		Short: "Classify review sentiment in a CSV, Excel or PDF file",
		Long: "Reads the reviewText column of a CSV or Excel sheet, or every line longer than ten " +
			"characters of a PDF, scores each review with VADER and reports counts, percentages " +
			"and the reviews grouped by Positive, Negative and Neutral.\n\n" +
			"Put flags before the file and end them with -- when the file name starts with a dash.",
		Example:       "  analyzer reviews.csv csv\n  analyzer -o yaml -- -export.xlsx xlsx",
		Args:          exactArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			applyFlags(cmd, &cfg, opts)
			if err := cfg.Validate(); err != nil {
				outputFormat = config.OutputJSON
				return models.WrapError(models.ErrInvalidArguments, msgInvalidArguments, err)
			}
			outputFormat = cfg.OutputFormat

			result, err := analyze(cfg, opts, args[0], args[1], stderr)
			if err != nil {
				return err
			}
			return writeResult(stdout, outputFormat, result)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", cfg.OutputFormat, "Result encoding: json or yaml")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", cfg.LogLevel, "Log level written to stderr: debug, info, warn or error")
	cmd.Flags().StringVar(&opts.category, "category", "", "Only print the reviews of one category: positive, negative or neutral")
	cmd.Flags().BoolVar(&opts.stripMarkup, "strip-markup", cfg.StripMarkup, "Render markdown to plain text before scoring")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return models.WrapError(models.ErrInvalidArguments, msgInvalidArguments, err)
	})
	// Help goes to stderr; stdout still gets a result document.
	var helpShown bool
	showHelp := cmd.HelpFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, a []string) {
		helpShown = true
		showHelp(c, a)
	})
	cmd.SetArgs(args)
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil && helpShown {
		err = models.NewError(models.ErrInvalidArguments, msgInvalidArguments)
	}
	if err != nil {
		if writeErr := writeResult(stdout, outputFormat, models.ErrorResponse{Error: err.Error()}); writeErr != nil {
			fmt.Fprintf(stderr, "failed to write error result: %v\n", writeErr)
		}
		return models.ExitCode(models.KindOf(err))
	}
	return 0
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return models.NewError(models.ErrInvalidArguments, msgInvalidArguments)
		}
		return nil
	}
}

func applyFlags(cmd *cobra.Command, cfg *config.Config, opts cliOptions) {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.OutputFormat = opts.output
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("strip-markup") {
		cfg.StripMarkup = opts.stripMarkup
	}
}

func analyze(cfg config.Config, opts cliOptions, path, format string, stderr io.Writer) (any, error) {
	var (
		category models.Category
		err      error
	)
	if opts.category != "" {
		category, err = models.ParseCategory(opts.category)
		if err != nil {
			return nil, models.WrapError(models.ErrInvalidArguments, msgInvalidArguments, err)
		}
	}

	logging.InitLogger(stderr, cfg.LogLevel)
	slog.SetDefault(slog.Default().With(slog.String("run_id", uuid.NewString())))

	slog.Info("[Main] Starting analysis",
		slog.String("file", path),
		slog.String("format", format),
		slog.String("env", cfg.Env))

	res, err := sentiment.LoadResources()
	if err != nil {
		return nil, err
	}

	analyzer := processing.NewAnalyzerFromResources(res, sentiment.WithMarkupStripping(cfg.StripMarkup))
	report, err := analyzer.Analyze(path, format)
	if err != nil {
		slog.Warn("[Main] Analysis failed",
			slog.String("kind", string(models.KindOf(err))),
			slog.String("error", err.Error()))
		return nil, err
	}

	if category != "" {
		return report.View(category), nil
	}
	return report, nil
}
