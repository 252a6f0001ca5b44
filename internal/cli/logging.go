package cli

import (
	"io"
	"os"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/config"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/errors"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/logger"
)

var logFile *os.File

// configureLogging points the logger at log.file, or at stderr. Interactive
// commands discard logs when no file is set.
func configureLogging(cfg *config.Config, interactive bool) error {
	closeLogFile()

	var out io.Writer = os.Stderr
	switch {
	case cfg.Log.File != "":
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Couldn't open log file "+cfg.Log.File,
				"Check that the directory exists and is writable, or unset log.file.")
		}
		logFile = f
		out = f
	case interactive:
		out = io.Discard
	}
	return logger.Configure(cfg.Log.Level, cfg.Log.Format, out)
}

func closeLogFile() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}
