package organizer

import (
	"errors"

	"folderize/internal/naming"
)

// Outcome describes how processing one input ended.
type Outcome int

const (
	OutcomeCopied Outcome = iota
	OutcomeNotAFile
	OutcomeInsufficientParts
	OutcomeTargetExists
	OutcomeFailed
)

// Skip reasons. Result.Reason wraps one of these for every skip outcome.
var (
	ErrNotAFile     = errors.New("not a file")
	ErrTargetExists = errors.New("target exists")
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCopied:
		return "copied"
	case OutcomeNotAFile:
		return "not a file"
	case OutcomeInsufficientParts:
		return "insufficient parts"
	case OutcomeTargetExists:
		return "target exists"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Skipped reports whether the outcome left the input in place without error.
func (o Outcome) Skipped() bool {
	switch o {
	case OutcomeNotAFile, OutcomeInsufficientParts, OutcomeTargetExists:
		return true
	default:
		return false
	}
}

// Result is the outcome of processing one input path.
type Result struct {
	Path    string
	Outcome Outcome
	// Reason is set for skip outcomes and wraps ErrNotAFile,
	// naming.ErrInsufficientParts or ErrTargetExists.
	Reason error
	// Plan is populated once the name has been parsed successfully.
	Plan *naming.Plan
	// DirCreated is true when the destination directory was missing; in a
	// dry run it means the directory would have been created.
	DirCreated bool
	DryRun     bool
}

// Summary aggregates results over a batch.
type Summary struct {
	Total        int
	Copied       int
	NotAFile     int
	Insufficient int
	TargetExists int
	Failed       int
	DirsCreated  int
	DryRun       bool
}

// Add folds one result into the summary.
func (s *Summary) Add(res Result) {
	s.Total++
	switch res.Outcome {
	case OutcomeCopied:
		s.Copied++
	case OutcomeNotAFile:
		s.NotAFile++
	case OutcomeInsufficientParts:
		s.Insufficient++
	case OutcomeTargetExists:
		s.TargetExists++
	case OutcomeFailed:
		s.Failed++
	}
	if res.DirCreated {
		s.DirsCreated++
	}
}

// Skipped returns the number of inputs that were skipped.
func (s Summary) Skipped() int {
	return s.NotAFile + s.Insufficient + s.TargetExists
}
