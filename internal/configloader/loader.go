// Package configloader resolves the effective pkg/style.Style for a run by
// layering, in increasing priority: the named base preset, a system config,
// a user config, a project config discovered by walking upward from the
// working directory, an explicit --style-config file, CFORMAT_* environment
// variables, and finally CLI flag overrides.
package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/yaklabco/cformat/pkg/style"
)

// LoadOptions controls how Load resolves configuration.
type LoadOptions struct {
	// WorkingDir is the directory to search upward from for a project config.
	// Defaults to the process working directory if empty.
	WorkingDir string

	// ExplicitPath is a config file path provided via --style-config.
	ExplicitPath string

	// BasePreset names the starting preset ("llvm" or "google"). Defaults to
	// "llvm" if empty or unrecognized.
	BasePreset string

	// IgnoreSystemConfig skips the system-wide config file.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips the user-level config file.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips the discovered project config file.
	IgnoreProjectConfig bool

	// IgnoreEnv skips CFORMAT_* environment variable overrides.
	IgnoreEnv bool

	// CLIOverride is layered on top of everything else, e.g. the --column-limit flag.
	CLIOverride *style.Style

	// Verbose enables extra diagnostic warnings (e.g. unreadable config files).
	Verbose bool
}

// LoadResult is the outcome of a configuration load.
type LoadResult struct {
	// Style is the fully resolved style to format with.
	Style *style.Style

	// Paths records which config file paths were discovered.
	Paths *ConfigPaths

	// LoadedFrom lists, in application order, the sources actually applied.
	LoadedFrom []string

	// Warnings are non-fatal issues encountered while loading.
	Warnings []string
}

// Load resolves the effective style for a run.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("context cancelled: %w", ctx.Err())
	default:
	}

	base, ok := style.Named(opts.BasePreset)
	preset := presetName(opts.BasePreset)
	if !ok {
		base, _ = style.Named("llvm")
		preset = "llvm"
	}

	result := &LoadResult{Style: base, LoadedFrom: []string{"preset:" + preset}}

	paths, err := DiscoverPaths(ctx, opts.WorkingDir)
	if err != nil {
		return nil, err
	}
	paths.Explicit = opts.ExplicitPath
	result.Paths = paths

	if !opts.IgnoreSystemConfig && paths.System != "" {
		if err := result.applyFile(paths.System); err != nil {
			result.Warnings = append(result.Warnings, err.Error())
		}
	}
	if !opts.IgnoreUserConfig && paths.User != "" {
		if err := result.applyFile(paths.User); err != nil {
			result.Warnings = append(result.Warnings, err.Error())
		}
	}
	if !opts.IgnoreProjectConfig && paths.Project != "" {
		if err := result.applyFile(paths.Project); err != nil {
			result.Warnings = append(result.Warnings, err.Error())
		}
	}
	if opts.ExplicitPath != "" {
		if err := result.applyFile(opts.ExplicitPath); err != nil {
			return nil, err
		}
	}

	if !opts.IgnoreEnv {
		_ = godotenv.Load(filepath.Join(opts.WorkingDir, ".env"))

		merged, err := LoadFromEnv(result.Style)
		if err != nil {
			return nil, fmt.Errorf("load env overrides: %w", err)
		}
		if merged != nil && *merged != *result.Style {
			result.Style = merged
			result.LoadedFrom = append(result.LoadedFrom, "env")
		}
	}

	if opts.CLIOverride != nil {
		result.Style = result.Style.Merge(opts.CLIOverride)
		result.LoadedFrom = append(result.LoadedFrom, "cli-flags")
	}

	validation := Validate(result.Style)
	if !validation.Valid() {
		return nil, fmt.Errorf("invalid style configuration: %s", validation.Errors[0].Error())
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	return result, nil
}

// applyFile reads a style JSON file and merges it onto the result's style.
// Discovered paths are applied best-effort by the caller; the explicit path
// propagates its error since the user asked for it directly.
func (r *LoadResult) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	override, err := style.FromJSON(data)
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	r.Style = r.Style.Merge(override)
	r.LoadedFrom = append(r.LoadedFrom, path)
	return nil
}

func presetName(name string) string {
	if name == "" {
		return "llvm"
	}
	return name
}
