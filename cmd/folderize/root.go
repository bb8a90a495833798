package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"folderize/internal/organizer"
	"folderize/internal/report"
)

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:   "folderize [flags] FILE...",
		Short: "Copy files into subfolders based on underscore-separated names",
		Long: "Copy files into subfolders based on underscore-separated names.\n" +
			"Example: dialog_utils_outline_logic.lua -> dialog/utils/outline_logic.lua",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,

		// A file named "completion" is an input, not a shell-completion request.
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig(cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrganize(cmd, ctx, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Configuration file path")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	pf.StringVar(&flags.color, "color", "", "Colour mode for diagnostic lines (auto, always, never)")

	f := rootCmd.Flags()
	f.BoolVar(&flags.dryRun, "dry-run", false, "Only print actions")
	f.BoolVarP(&flags.quiet, "quiet", "q", false, "Reduce output")
	f.BoolVar(&flags.summary, "summary", false, "Print a table of outcome counts after the batch")
	f.BoolVar(&flags.keepGoing, "keep-going", false, "Continue with the next file after an I/O error")

	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func runOrganize(cmd *cobra.Command, ctx *commandContext, args []string) error {
	cfg, err := ctx.ensureConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := ctx.logger(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	reporter := report.New(out, cfg.Organize.Quiet, cfg.Output.Color)
	org := organizer.New(organizer.OptionsFromConfig(cfg), reporter, logger)

	summary, runErr := org.Run(cmd.Context(), args)
	if cfg.Output.Summary {
		fmt.Fprintln(out, renderSummary(summary))
	}
	if runErr != nil {
		return fmt.Errorf("organize: %w", runErr)
	}
	return nil
}
