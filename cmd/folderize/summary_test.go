package main

import (
	"strings"
	"testing"

	"folderize/internal/organizer"
)

func TestRenderSummary(t *testing.T) {
	out := renderSummary(organizer.Summary{Total: 5, Copied: 2, NotAFile: 1, Insufficient: 1, TargetExists: 1, DirsCreated: 1})

	for _, want := range []string{"Outcome", "Files", "Copied", "Directories created", "Total"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in summary:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Would copy") {
		t.Fatalf("unexpected dry-run label in real summary:\n%s", out)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	var footer string
	for _, line := range lines {
		if strings.Contains(line, "Total") {
			footer = line
		}
	}
	if !strings.Contains(footer, "5") {
		t.Fatalf("expected total in footer line, got %q", footer)
	}
	totalIdx := strings.Index(out, "Total")
	for _, row := range []string{"Copied", "Failed"} {
		if strings.Index(out, row) > totalIdx {
			t.Fatalf("expected %s above the Total footer:\n%s", row, out)
		}
	}
}

func TestRenderSummaryDryRunLabels(t *testing.T) {
	out := renderSummary(organizer.Summary{Total: 1, Copied: 1, DirsCreated: 1, DryRun: true})

	for _, want := range []string{"Planned", "Would copy", "Directories to create"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in dry-run summary:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Directories created") {
		t.Fatalf("unexpected real-run label in dry-run summary:\n%s", out)
	}
}

func TestRenderStatusLine(t *testing.T) {
	if got := renderStatusLine("/data", true, "read/write ok", false); got != "  /data: [OK] read/write ok" {
		t.Fatalf("unexpected ok line %q", got)
	}
	if got := renderStatusLine("/gone", false, "", false); got != "  /gone: [ERROR]" {
		t.Fatalf("unexpected error line %q", got)
	}
	colored := renderStatusLine("/gone", false, "error: does not exist", true)
	if !strings.HasPrefix(colored, "\x1b[31m") || !strings.HasSuffix(colored, "\x1b[0m") {
		t.Fatalf("expected red status line, got %q", colored)
	}
}
