package cli

import (
	"io"

	"github.com/yaklabco/cformat/internal/logging"
)

func runVersion(info BuildInfo, stdout io.Writer) {
	logging.NewWriter(stdout).Info("cformat",
		logging.FieldVersion, info.Version,
		logging.FieldCommit, info.Commit,
		logging.FieldBuilt, info.Date,
	)
}
