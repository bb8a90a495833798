package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"folderize/internal/preflight"
	"folderize/internal/report"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Verify the parent directories of FILE... are writable",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := report.ShouldColorize(out, cfg.Output.Color)

			results := preflight.RunAll(args)
			for _, r := range results {
				fmt.Fprintln(out, renderStatusLine(r.Name, r.Passed, r.Detail, colorize))
			}
			if failed := preflight.Failed(results); failed > 0 {
				return fmt.Errorf("%d of %d directories failed checks", failed, len(results))
			}
			return nil
		},
	}
}
