// Package rename applies timestamp names to files.
//
// An Engine renames either one file (RenameOne) or every file matching a
// directory pattern (RenameMany). Both go through the same collision
// policy: an existing destination is left alone unless overwrite is on,
// in which case it is replaced. Per-file failures are reported and
// counted, never returned.
//
// Batch renames are strictly sequential with a pause of at least
// naming.MinInterval between files so that generated names stay distinct.
package rename

import (
	"context"
	"time"

	"github.com/arthur-debert/stampname/pkg/args"
	"github.com/arthur-debert/stampname/pkg/errors"
	"github.com/arthur-debert/stampname/pkg/filesystem"
	"github.com/arthur-debert/stampname/pkg/logging"
	"github.com/arthur-debert/stampname/pkg/naming"
	"github.com/spf13/afero"
)

// Namer computes the destination path for a file.
type Namer interface {
	ComputeNewName(originalPath, prefixTemplate string) string
}

// Reporter receives progress as the engine works.
type Reporter interface {
	// Parameters echoes the resolved run configuration.
	Parameters(cfg args.Configuration)
	// Scanning announces the directory and glob about to be enumerated.
	Scanning(dir, glob string, recurse bool)
	// Outcome reports one handled file.
	Outcome(o Outcome)
	// Error reports a failure that is not tied to a single file.
	Error(err error)
	// Total reports the final counts.
	Total(s Summary)
}

// SleepFunc pauses for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Engine renames files on FS.
type Engine struct {
	FS       afero.Fs
	Namer    Namer
	Reporter Reporter
	// Delay between batch renames. Values under naming.MinInterval are raised to it.
	Delay time.Duration
	Sleep SleepFunc
}

// New returns an Engine on fsys using the system clock.
func New(fsys afero.Fs, reporter Reporter, delay time.Duration) *Engine {
	return &Engine{
		FS:       fsys,
		Namer:    naming.NewGenerator(),
		Reporter: reporter,
		Delay:    delay,
		Sleep:    SleepContext,
	}
}

// Run echoes cfg, renames its source and reports the total. A missing
// source file is returned as an error and no total is reported.
func (e *Engine) Run(ctx context.Context, cfg args.Configuration) (Summary, error) {
	e.Reporter.Parameters(cfg)

	var (
		sum Summary
		err error
	)
	switch cfg.Mode {
	case args.ModeSingleFile:
		sum, err = e.RenameOne(ctx, cfg.SourceFile, cfg)
	case args.ModeDirectoryBatch:
		sum, err = e.RenameMany(ctx, cfg.SourcePattern, cfg)
	default:
		return Summary{}, errors.Newf(errors.ErrInternal, "unknown mode %d", cfg.Mode)
	}

	if err != nil && !errors.IsErrorCode(err, errors.ErrCanceled) {
		return sum, err
	}
	e.Reporter.Total(sum)
	return sum, err
}

// RenameOne renames the single file at path.
func (e *Engine) RenameOne(ctx context.Context, path string, cfg args.Configuration) (Summary, error) {
	var sum Summary
	if err := ctx.Err(); err != nil {
		return sum, errors.Wrap(err, errors.ErrCanceled, "rename canceled")
	}

	if !filesystem.IsFile(e.FS, path) {
		return sum, errors.Newf(errors.ErrSourceFileNotFound, "source file %s does not exist", path).
			WithDetail("path", path)
	}

	o := e.apply(path, cfg)
	e.Reporter.Outcome(o)
	sum.Add(o)
	return sum, nil
}

// RenameMany renames every file matching pattern, a directory followed by
// a file glob. Enumeration problems are reported and end the run with
// nothing renamed.
func (e *Engine) RenameMany(ctx context.Context, pattern string, cfg args.Configuration) (Summary, error) {
	logger := logging.GetLogger("rename")
	done := logging.LogOperationStart(logger, "rename-many")
	defer done()

	var sum Summary

	dir, glob := filesystem.SplitPattern(e.FS, pattern)
	e.Reporter.Scanning(dir, glob, cfg.Recurse)

	files, err := filesystem.ListMatches(e.FS, dir, glob, cfg.Recurse)
	if err != nil {
		logger.Debug().Err(err).Str("dir", dir).Str("glob", glob).Msg("Enumeration failed")
		e.Reporter.Error(err)
		return sum, nil
	}
	logger.Debug().Int("matches", len(files)).Msg("Enumerated files")

	delay := e.delay()
	for i, path := range files {
		if i > 0 {
			if err := e.sleep(ctx, delay); err != nil {
				logger.Warn().Int("remaining", len(files)-i).Msg("Batch canceled")
				return sum, errors.Wrap(err, errors.ErrCanceled, "rename canceled")
			}
		}

		o := e.apply(path, cfg)
		e.Reporter.Outcome(o)
		sum.Add(o)
	}

	logger.Info().
		Int("processed", sum.Total()).
		Int("renamed", sum.Renamed).
		Int("skipped", sum.Skipped).
		Int("failed", sum.Failed).
		Msg("Batch finished")
	return sum, nil
}

// apply runs the collision policy for one file.
func (e *Engine) apply(src string, cfg args.Configuration) Outcome {
	logger := logging.GetLogger("rename")
	dst := e.Namer.ComputeNewName(src, cfg.Prefix)
	o := Outcome{Source: src, Destination: dst}

	if filesystem.Exists(e.FS, dst) && !cfg.Overwrite {
		logger.Debug().Str("source", src).Str("destination", dst).Msg("Destination exists, skipping")
		o.Result = Skipped
		return o
	}

	if err := filesystem.Replace(e.FS, src, dst); err != nil {
		logger.Debug().Err(err).Str("source", src).Str("destination", dst).Msg("Rename failed")
		o.Result = Failed
		o.Err = errors.Wrapf(err, errors.ErrRenameFailed, "cannot rename %s", src).
			WithDetail("destination", dst)
		return o
	}

	logger.Debug().Str("source", src).Str("destination", dst).Msg("Renamed")
	o.Result = Renamed
	return o
}

func (e *Engine) delay() time.Duration {
	if e.Delay < naming.MinInterval {
		return naming.MinInterval
	}
	return e.Delay
}

func (e *Engine) sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if e.Sleep == nil {
		return SleepContext(ctx, d)
	}
	return e.Sleep(ctx, d)
}

// SleepContext waits for d unless ctx is done first.
func SleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
