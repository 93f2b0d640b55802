package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/yaklabco/cformat/internal/configloader"
	"github.com/yaklabco/cformat/internal/logging"
	"github.com/yaklabco/cformat/pkg/cformat"
	"github.com/yaklabco/cformat/pkg/reporter"
	"github.com/yaklabco/cformat/pkg/runner"
	"github.com/yaklabco/cformat/pkg/style"
)

// formatFlags holds the flags shared by the format and check commands.
type formatFlags struct {
	debug       bool
	configPath  string
	color       string
	styleName   string
	styleConfig string
	format      string
	jobs        int
	inPlace     bool
	diff        bool
	dryRun      bool
	noBackups   bool
	columnLimit int
	columnSet   bool
	compact     bool
	paths       []string
}

func parseFormatFlags(name string, args []string, checkOnly bool) (*formatFlags, error) {
	flags := &formatFlags{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	fs.BoolVar(&flags.debug, "debug", false, "enable debug logging")
	fs.StringVar(&flags.configPath, "config", "", "path to a .cformat.json style file")
	fs.StringVar(&flags.color, "color", "auto", "colorize output: auto, always, never")

	fs.StringVar(&flags.styleName, "style", "", "base style preset: llvm or google")
	fs.StringVar(&flags.styleConfig, "style-config", "", "path to a .cformat.json style file")
	fs.StringVar(&flags.format, "report", "text", "report format: text, json, diff, summary")
	fs.IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	fs.BoolVar(&flags.dryRun, "dry-run", false, "compute a diff without writing files")
	fs.BoolVar(&flags.noBackups, "no-backups", false, "disable backup creation when writing in place")
	fs.IntVar(&flags.columnLimit, "column-limit", 0, "override the style's column limit (0 = use style default)")
	fs.BoolVar(&flags.compact, "compact", false, "use compact report output")

	if !checkOnly {
		fs.BoolVar(&flags.inPlace, "in-place", false, "write formatted output back to each file")
		fs.BoolVar(&flags.inPlace, "i", false, "write formatted output back to each file (shorthand)")
		fs.BoolVar(&flags.diff, "diff", false, "print a unified diff of the changes instead of writing them")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "column-limit" {
			flags.columnSet = true
		}
	})

	flags.paths = fs.Args()
	return flags, nil
}

func runFormat(ctx context.Context, args []string, stdout, stderr io.Writer, checkOnly bool) error {
	name := "format"
	if checkOnly {
		name = "check"
	}

	flags, err := parseFormatFlags(name, args, checkOnly)
	if err != nil {
		return fmt.Errorf("%w: %v", errInvalidUsage, err)
	}
	if flags.debug {
		logging.SetLevel("debug")
	}
	logger := logging.Default()

	configPath := flags.configPath
	if flags.styleConfig != "" {
		configPath = flags.styleConfig
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	var cliOverride *style.Style
	if flags.columnSet {
		cliOverride = &style.Style{ColumnLimit: flags.columnLimit}
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		BasePreset:   flags.styleName,
		CLIOverride:  cliOverride,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load style configuration"), err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded style from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	resolvedStyle := loadResult.Style
	logger.Debug("style resolved",
		logging.FieldStyle, flags.styleName,
		"column_limit", resolvedStyle.ColumnLimit,
	)

	formatter := cformat.New(resolvedStyle)
	pipeline := cformat.NewPipeline(formatter)
	fileRunner := runner.New(pipeline)

	pipelineOpts := cformat.DefaultPipelineOptions()
	pipelineOpts.InPlace = !checkOnly && flags.inPlace
	pipelineOpts.DryRun = flags.dryRun || flags.diff || checkOnly
	pipelineOpts.Backup.Enabled = !flags.noBackups

	runOpts := runner.Options{
		Paths:      flags.paths,
		WorkingDir: workDir,
		Jobs:       flags.jobs,
		Pipeline:   pipelineOpts,
	}

	logger.Debug("starting format run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
		logging.FieldInPlace, pipelineOpts.InPlace,
	)

	result, err := fileRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("format run failed"), err)
	}

	reportFormat := flags.format
	if flags.diff {
		reportFormat = string(reporter.FormatDiff)
	}
	parsedFormat, err := reporter.ParseFormat(reportFormat)
	if err != nil {
		return fmt.Errorf("%w: invalid report format: %v", errInvalidUsage, err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      stdout,
		ErrorWriter: stderr,
		Format:      parsedFormat,
		Color:       flags.color,
		ShowSummary: true,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if checkOnly && result.HasChanges() {
		return ErrWouldReformat
	}
	if result.Stats.FilesErrored > 0 {
		return fmt.Errorf("%d file(s) failed to format", result.Stats.FilesErrored)
	}

	return nil
}
