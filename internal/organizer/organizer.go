package organizer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"folderize/internal/config"
	"folderize/internal/fileutil"
	"folderize/internal/logging"
	"folderize/internal/naming"
	"folderize/internal/report"
)

// Options controls batch behaviour.
type Options struct {
	DryRun        bool
	KeepGoing     bool
	DirMode       fs.FileMode
	PreserveTimes bool
	Verify        bool
}

// OptionsFromConfig maps the organize section onto Options.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	return Options{
		DryRun:        cfg.Organize.DryRun,
		KeepGoing:     cfg.Organize.KeepGoing,
		DirMode:       cfg.DirPerm(),
		PreserveTimes: cfg.Organize.PreserveTimes,
		Verify:        cfg.Organize.Verify,
	}
}

// Organizer places files according to their underscore-separated names.
type Organizer struct {
	opts     Options
	reporter *report.Reporter
	logger   *slog.Logger

	// Paths a dry run would have created, so later inputs see them.
	simDirs  map[string]struct{}
	simFiles map[string]struct{}
}

// New constructs an organizer. A nil reporter prints nothing and a nil
// logger discards records.
func New(opts Options, reporter *report.Reporter, logger *slog.Logger) *Organizer {
	if opts.DirMode == 0 {
		opts.DirMode = 0o755
	}
	if reporter == nil {
		reporter = report.Discard()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Organizer{
		opts:     opts,
		reporter: reporter,
		logger:   logger.With("component", "organizer"),
	}
}

// Run processes paths in order. Skips never stop the batch. An I/O fault
// stops it and is returned unless KeepGoing is set, in which case the fault
// is reported and counted as failed. Cancellation is observed between files.
func (o *Organizer) Run(ctx context.Context, paths []string) (Summary, error) {
	summary := Summary{DryRun: o.opts.DryRun}
	o.simDirs, o.simFiles = nil, nil
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		res, err := o.Process(ctx, path)
		summary.Add(res)
		if err == nil {
			continue
		}
		if !o.opts.KeepGoing {
			return summary, err
		}
		o.reporter.Failure(path, err)
		o.logger.Error("file failed", slog.String("path", path), slog.Any("error", err))
	}
	o.logger.Info("batch complete",
		slog.Int("total", summary.Total),
		slog.Int("copied", summary.Copied),
		slog.Int("skipped", summary.Skipped()),
		slog.Int("failed", summary.Failed),
		slog.Bool("dry_run", summary.DryRun),
	)
	return summary, nil
}

// Process handles a single input path. The returned error is non-nil only
// for I/O faults; every skip is reported through the Result.
func (o *Organizer) Process(_ context.Context, path string) (Result, error) {
	res := Result{Path: path, DryRun: o.opts.DryRun}
	logger := o.logger.With(slog.String("path", path))

	if !o.isRegular(path) {
		return o.skip(logger, res, OutcomeNotAFile, ErrNotAFile, path), nil
	}

	plan, err := naming.NewPlan(path)
	if errors.Is(err, naming.ErrInsufficientParts) {
		return o.skip(logger, res, OutcomeInsufficientParts, err, plan.Base), nil
	}
	if err != nil {
		return o.fail(res, err)
	}
	res.Plan = &plan
	logger.Debug("planned destination",
		slog.String("dest_dir", plan.DestDir),
		slog.String("new_name", plan.NewName),
	)

	if o.isDir(plan.DestDir) {
		o.reporter.DirExists(plan.DestDir)
	} else {
		res.DirCreated = true
		o.reporter.CreateDir(plan.DestDir)
		if o.opts.DryRun {
			o.simulateDir(plan.DestDir)
		} else if err := os.MkdirAll(plan.DestDir, o.opts.DirMode); err != nil {
			return o.fail(res, fmt.Errorf("create directory %q: %w", plan.DestDir, err))
		}
	}

	exists, err := o.exists(plan.DestPath)
	if err != nil {
		return o.fail(res, fmt.Errorf("check target %q: %w", plan.DestPath, err))
	}
	if exists {
		return o.skip(logger, res, OutcomeTargetExists, ErrTargetExists, plan.DestPath), nil
	}

	o.reporter.Copy(path, plan.DestPath)
	if o.opts.DryRun {
		o.simulateFile(plan.DestPath)
		res.Outcome = OutcomeCopied
		return res, nil
	}

	copyOpts := fileutil.CopyOptions{PreserveTimes: o.opts.PreserveTimes, Verify: o.opts.Verify}
	if err := fileutil.CopyFilePreserve(path, plan.DestPath, copyOpts); err != nil {
		if errors.Is(err, fs.ErrExist) {
			// Created by someone else after the existence check.
			return o.skip(logger, res, OutcomeTargetExists, ErrTargetExists, plan.DestPath), nil
		}
		return o.fail(res, fmt.Errorf("copy %s to %s: %w", path, plan.DestPath, err))
	}

	res.Outcome = OutcomeCopied
	logger.Debug("copied file", slog.String("dest", plan.DestPath))
	return res, nil
}

func (o *Organizer) skip(logger *slog.Logger, res Result, outcome Outcome, reason error, subject string) Result {
	res.Outcome = outcome
	res.Reason = reason
	o.reporter.Skip(reason.Error(), subject)
	logger.Debug("skipped input", slog.String("reason", reason.Error()))
	return res
}

func (o *Organizer) fail(res Result, err error) (Result, error) {
	res.Outcome = OutcomeFailed
	return res, err
}

// simulateDir records dir and every missing ancestor, mirroring MkdirAll.
func (o *Organizer) simulateDir(dir string) {
	if o.simDirs == nil {
		o.simDirs = make(map[string]struct{})
	}
	for !o.isDir(dir) {
		o.simDirs[dir] = struct{}{}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}

func (o *Organizer) simulateFile(path string) {
	if o.simFiles == nil {
		o.simFiles = make(map[string]struct{})
	}
	o.simFiles[path] = struct{}{}
}

func (o *Organizer) isDir(path string) bool {
	if _, ok := o.simDirs[path]; ok {
		return true
	}
	return fileutil.IsDir(path)
}

func (o *Organizer) isRegular(path string) bool {
	if len(o.simFiles) > 0 {
		if absolute, err := filepath.Abs(path); err == nil {
			if _, ok := o.simFiles[absolute]; ok {
				return true
			}
		}
	}
	return fileutil.IsRegular(path)
}

func (o *Organizer) exists(path string) (bool, error) {
	if _, ok := o.simFiles[path]; ok {
		return true, nil
	}
	if _, ok := o.simDirs[path]; ok {
		return true, nil
	}
	return fileutil.Exists(path)
}
