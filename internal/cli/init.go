package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/cformat/internal/logging"
	"github.com/yaklabco/cformat/pkg/style"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

func runInit(args []string, logger *logging.Logger) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	force := fs.Bool("force", false, "overwrite an existing style file")
	styleName := fs.String("style", "llvm", "base style preset: llvm or google")
	output := fs.String("output", "", "output file path (default: .cformat.json)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errInvalidUsage, err)
	}

	base, ok := style.Named(*styleName)
	if !ok {
		return fmt.Errorf("%w: invalid style %q: must be llvm or google", errInvalidUsage, *styleName)
	}

	outputPath := *output
	if outputPath == "" {
		outputPath = ".cformat.json"
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !*force {
			return fmt.Errorf("%w: file %q already exists; use --force to overwrite", errInvalidUsage, outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	content, err := base.ToJSON()
	if err != nil {
		return fmt.Errorf("serialize style: %w", err)
	}

	if err := os.WriteFile(absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created style file", logging.FieldPath, outputPath)
	logger.Info("customize your style by editing the file")
	logger.Info("run 'cformat style' to see the effective configuration")

	return nil
}
