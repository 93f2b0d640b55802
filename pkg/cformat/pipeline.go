package cformat

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/cformat/pkg/diff"
	"github.com/yaklabco/cformat/pkg/fsutil"
)

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")
)

// PipelineResult is the outcome of running the safety pipeline on a single
// file. Unlike the layout search inside Result, formatting a whole file is
// idempotent in one pass — there is no multi-pass fix loop here, since a
// second FormatFile call on Formatted content always produces zero edits.
type PipelineResult struct {
	Path string

	// OriginalInfo is the file state before processing.
	OriginalInfo *fsutil.FileInfo

	*Result

	// Diff is the unified diff between original and formatted content,
	// populated when PipelineOptions.DryRun is set and the file changed.
	Diff *diff.Diff

	// Skipped is true if the file was skipped (e.g. concurrent modification).
	Skipped bool

	// SkipReason explains why the file was skipped.
	SkipReason string

	// BackupCreated is true if a backup was created for this file.
	BackupCreated bool

	// Written is true if the formatted content was written to disk.
	Written bool
}

// Summary returns a human-readable summary of the pipeline result.
func (pr *PipelineResult) Summary() string {
	if pr.Skipped {
		return "skipped: " + pr.SkipReason
	}
	if pr.Written {
		if pr.BackupCreated {
			return "reformatted (backup created)"
		}
		return "reformatted"
	}
	if pr.Result != nil && pr.Result.Changed {
		return "would reformat"
	}
	return "ok"
}

// PipelineOptions controls safety pipeline behavior.
type PipelineOptions struct {
	// InPlace writes formatted content back to disk when true. When false,
	// the pipeline only computes Result/Diff without touching the file
	// (used by `cformat format` without -i, and by `cformat check`).
	InPlace bool

	// DryRun generates a Diff without writing files, regardless of InPlace.
	DryRun bool

	// Backup configures backup behavior when InPlace is set.
	Backup fsutil.BackupConfig

	// StrictRaceDetection uses hash comparison for modification detection;
	// when false, only mod time and size are checked.
	StrictRaceDetection bool
}

// DefaultPipelineOptions returns sensible defaults: no writes, no backups,
// strict race detection.
func DefaultPipelineOptions() PipelineOptions {
	return PipelineOptions{
		Backup:              fsutil.DefaultBackupConfig(),
		StrictRaceDetection: true,
	}
}

// Pipeline orchestrates the safe processing of a single file: read, format,
// optionally diff, race-check, backup, and atomically write.
type Pipeline struct {
	Formatter *Formatter
}

// NewPipeline returns a Pipeline using f to format each file.
func NewPipeline(f *Formatter) *Pipeline {
	return &Pipeline{Formatter: f}
}

// ProcessFile reads path, formats it, and — depending on opts — writes the
// result back atomically, guarding against files modified concurrently by
// something else since they were read.
func (p *Pipeline) ProcessFile(ctx context.Context, path string, opts PipelineOptions) (*PipelineResult, error) {
	result := &PipelineResult{Path: path}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}
	result.OriginalInfo = info

	fr, err := p.Formatter.FormatFile(ctx, path, content, nil)
	if err != nil {
		return nil, err
	}
	result.Result = fr

	if !fr.Changed {
		return result, nil
	}

	if opts.DryRun {
		result.Diff = diff.GenerateDiff(path, content, fr.Formatted)
		return result, nil
	}

	if !opts.InPlace {
		return result, nil
	}

	modified, err := p.checkModified(ctx, info, opts.StrictRaceDetection)
	if err != nil {
		return nil, fmt.Errorf("check modified: %w", err)
	}
	if modified {
		result.Skipped = true
		result.SkipReason = "file modified during processing"
		return result, nil
	}

	if opts.Backup.Enabled {
		created, err := fsutil.CreateBackup(ctx, path, opts.Backup)
		if err != nil {
			return nil, fmt.Errorf("create backup: %w", err)
		}
		result.BackupCreated = created
	}

	if err := fsutil.WriteAtomic(ctx, path, fr.Formatted, info.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true

	return result, nil
}

func (p *Pipeline) checkModified(ctx context.Context, info *fsutil.FileInfo, strict bool) (bool, error) {
	if strict {
		return fsutil.CheckModified(ctx, info)
	}
	return fsutil.CheckModifiedQuick(ctx, info)
}

// categorizeError wraps an error with the appropriate pipeline error type.
func categorizeError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	if errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}
	return err
}

// IsPipelineError checks if an error is a known pipeline error type.
func IsPipelineError(err error) bool {
	return errors.Is(err, ErrFileNotFound) || errors.Is(err, ErrPermissionDenied) || errors.Is(err, ErrWriteFailure)
}
