package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"vidpub/internal/config"
	"vidpub/internal/logutil"
	"vidpub/internal/publish"
	"vidpub/internal/publish/instagram"
	"vidpub/internal/publish/pinterest"
	"vidpub/internal/publish/twitter"
)

var (
	jobPath     string
	targetsFlag []string
	dryRun      bool
	verbose     bool
)

// Execute runs the root command.
func Execute() error {
	return newRootCommand().Execute()
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vidpub",
		Short: "Publish a video job to social platforms",
		Long: "vidpub dispatches a video job to the Instagram, Pinterest, and Twitter " +
			"publishers and prints the aggregated report as JSON.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
		Example: `  vidpub --job job.json
  vidpub --job job.json --platforms twitter,instagram --dry-run`,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable verbose logging")
	cmd.Flags().StringVar(&jobPath, "job", "", "Path to a JSON job file (required)")
	cmd.Flags().StringSliceVar(&targetsFlag, "platforms", nil, "Platforms to publish to (default: all registered)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate and report without publishing")
	cmd.Flags().SortFlags = false

	cmd.AddCommand(newServeCommand())

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	logutil.SetVerbose(verbose)

	if jobPath == "" {
		return errors.New("--job is required")
	}

	job, err := publish.LoadJob(jobPath)
	if err != nil {
		return err
	}

	proc := newProcessor(config.Load())
	report, err := proc.Publish(cmd.Context(), job, publish.Options{
		DryRun:    dryRun,
		Platforms: targetsFlag,
	})
	if err != nil {
		return err
	}

	return printReport(cmd.OutOrStdout(), report)
}

func newProcessor(cfg config.Config) *publish.Processor {
	return publish.NewProcessor(
		instagram.New(cfg.Instagram),
		pinterest.New(cfg.Pinterest),
		twitter.New(cfg.Twitter),
	)
}

func printReport(out io.Writer, report *publish.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
