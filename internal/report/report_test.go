package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"folderize/internal/config"
)

func TestReporterLines(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false, config.ColorNever)

	r.Skip("not a file", "missing.txt")
	r.CreateDir("/work/a/b")
	r.DirExists("/work/a/b")
	r.Copy("a_b_c.txt", "/work/a/b/b_c.txt")
	r.Failure("x_y.txt", errors.New("permission denied"))

	want := strings.Join([]string{
		"Skip (not a file): missing.txt",
		"Create dir: /work/a/b",
		"Dir exists: /work/a/b",
		"Copy: a_b_c.txt -> /work/a/b/b_c.txt",
		"Failed: x_y.txt: permission denied",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestReporterQuiet(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, true, config.ColorAlways)
	r.Copy("a_b", "/x/a/b/a_b")
	if buf.Len() != 0 {
		t.Fatalf("expected no output when quiet, got %q", buf.String())
	}
	if r.Enabled() {
		t.Fatal("expected quiet reporter to be disabled")
	}
}

func TestReporterColorAlways(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false, config.ColorAlways)
	r.Skip("target exists", "/x/a/b/a_b")
	if !strings.HasPrefix(buf.String(), ansiYellow) || !strings.Contains(buf.String(), ansiReset) {
		t.Fatalf("expected coloured skip line, got %q", buf.String())
	}
}

func TestShouldColorizeAutoNonTerminal(t *testing.T) {
	if ShouldColorize(&bytes.Buffer{}, config.ColorAuto) {
		t.Fatal("expected auto mode to skip colour for non-file writers")
	}
	if ShouldColorize(&bytes.Buffer{}, config.ColorNever) {
		t.Fatal("expected never mode to disable colour")
	}
	if !ShouldColorize(&bytes.Buffer{}, config.ColorAlways) {
		t.Fatal("expected always mode to enable colour")
	}
}

func TestDiscardReporter(t *testing.T) {
	r := Discard()
	if r.Enabled() {
		t.Fatal("expected discard reporter to be disabled")
	}
	r.Copy("a", "b")

	var nilReporter *Reporter
	if nilReporter.Enabled() {
		t.Fatal("expected nil reporter to be disabled")
	}
}

func TestColorize(t *testing.T) {
	if got := Colorize(KindSuccess, "ok"); got != ansiGreen+"ok"+ansiReset {
		t.Fatalf("unexpected success colour %q", got)
	}
	if got := Colorize(KindFailure, "bad"); got != ansiRed+"bad"+ansiReset {
		t.Fatalf("unexpected failure colour %q", got)
	}
	if got := Colorize(KindDirExists, "plain"); got != "plain" {
		t.Fatalf("expected uncoloured text, got %q", got)
	}
}
