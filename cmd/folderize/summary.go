package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"folderize/internal/organizer"
)

func renderSummary(s organizer.Summary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Format.Footer = text.FormatDefault

	copied, dirs, count := "Copied", "Directories created", "Files"
	if s.DryRun {
		copied, dirs, count = "Would copy", "Directories to create", "Planned"
	}

	tw.AppendHeader(table.Row{"Outcome", count})
	tw.AppendRows([]table.Row{
		{copied, s.Copied},
		{"Skipped: not a file", s.NotAFile},
		{"Skipped: needs 2 parts", s.Insufficient},
		{"Skipped: target exists", s.TargetExists},
		{"Failed", s.Failed},
		{dirs, s.DirsCreated},
	})
	tw.AppendFooter(table.Row{"Total", s.Total})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})

	return tw.Render()
}
