package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rtype/internal/config"
)

// newLogger creates the command's logger. With toFile the log goes to
// ~/.rtype/rtype.log, since stderr belongs to the game screen.
func newLogger(prefix string, toFile bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closer := func() {}

	if toFile {
		w = io.Discard
		if dir := config.Dir(); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err == nil {
				path := filepath.Join(dir, "rtype.log")
				f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //#nosec G304 -- path under the user's config dir
				if err == nil {
					w = f
					closer = func() { f.Close() }
				}
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
	})
	return logger, closer, nil
}
