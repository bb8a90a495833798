// Package report writes the per-file action lines folderize prints while it
// works: skips, directory creation, and copies.
package report

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"

	"folderize/internal/config"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

// Kind classifies a diagnostic line.
type Kind int

const (
	KindSkip Kind = iota
	KindCreateDir
	KindDirExists
	KindCopy
	KindFailure
	KindSuccess
)

// Reporter prints diagnostic lines. A disabled reporter prints nothing.
type Reporter struct {
	mu       sync.Mutex
	w        io.Writer
	enabled  bool
	colorize bool
}

// New returns a reporter writing to w. quiet disables all output; color is
// one of the config.Color* modes.
func New(w io.Writer, quiet bool, color string) *Reporter {
	if w == nil {
		w = io.Discard
	}
	return &Reporter{
		w:        w,
		enabled:  !quiet,
		colorize: ShouldColorize(w, color),
	}
}

// Discard returns a reporter that prints nothing.
func Discard() *Reporter {
	return &Reporter{w: io.Discard}
}

// Enabled reports whether lines are written.
func (r *Reporter) Enabled() bool {
	return r != nil && r.enabled
}

// Skip reports an input that was left alone.
func (r *Reporter) Skip(reason, subject string) {
	r.line(KindSkip, fmt.Sprintf("Skip (%s): %s", reason, subject))
}

// CreateDir reports a destination directory that is (or would be) created.
func (r *Reporter) CreateDir(dir string) {
	r.line(KindCreateDir, "Create dir: "+dir)
}

// DirExists reports a destination directory that is already present.
func (r *Reporter) DirExists(dir string) {
	r.line(KindDirExists, "Dir exists: "+dir)
}

// Copy reports a copy that is (or would be) performed.
func (r *Reporter) Copy(src, dst string) {
	r.line(KindCopy, fmt.Sprintf("Copy: %s -> %s", src, dst))
}

// Failure reports an I/O error that was tolerated.
func (r *Reporter) Failure(subject string, err error) {
	r.line(KindFailure, fmt.Sprintf("Failed: %s: %v", subject, err))
}

func (r *Reporter) line(kind Kind, text string) {
	if !r.Enabled() {
		return
	}
	if r.colorize {
		text = Colorize(kind, text)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.w, text)
}

// Colorize wraps text in the ANSI colour for kind. Kinds without a colour
// are returned unchanged.
func Colorize(kind Kind, text string) string {
	color := kindColor(kind)
	if color == "" {
		return text
	}
	return color + text + ansiReset
}

func kindColor(kind Kind) string {
	switch kind {
	case KindSkip:
		return ansiYellow
	case KindCreateDir:
		return ansiBlue
	case KindCopy, KindSuccess:
		return ansiGreen
	case KindFailure:
		return ansiRed
	default:
		return ""
	}
}

// ShouldColorize resolves a colour mode against the writer. auto colours
// only terminals.
func ShouldColorize(writer io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
