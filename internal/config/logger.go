package config

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger builds the process logger. The level comes from LOG_LEVEL
// (debug, info, warn, error); unknown values fall back to info and are
// reported through the returned error.
func NewLogger(w io.Writer, prefix string) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	level, err := log.ParseLevel(GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		logger.SetLevel(log.InfoLevel)
		return logger, err
	}
	logger.SetLevel(level)
	return logger, nil
}
