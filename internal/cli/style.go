package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/yaklabco/cformat/internal/configloader"
	"github.com/yaklabco/cformat/internal/logging"
)

func runStyle(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("style", flag.ContinueOnError)
	styleName := fs.String("style", "", "base style preset: llvm or google")
	styleConfig := fs.String("style-config", "", "path to a .cformat.json style file")
	configPath := fs.String("config", "", "path to a .cformat.json style file")
	debug := fs.Bool("debug", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errInvalidUsage, err)
	}
	if *debug {
		logging.SetLevel("debug")
	}

	resolvedConfigPath := *configPath
	if *styleConfig != "" {
		resolvedConfigPath = *styleConfig
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: resolvedConfigPath,
		BasePreset:   *styleName,
	})
	if err != nil {
		return fmt.Errorf("resolve style: %w", err)
	}

	data, err := loadResult.Style.ToJSON()
	if err != nil {
		return fmt.Errorf("serialize style: %w", err)
	}

	fmt.Fprintln(stdout, string(data))
	return nil
}
