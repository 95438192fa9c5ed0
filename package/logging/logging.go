package logging

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

func New(verbose bool) *log.Logger {
	return NewWriter(os.Stderr, verbose)
}

func NewWriter(writer io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(writer, log.Options{
		ReportCaller:    verbose,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "sdkgen",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}

// Discard is used by tests and by callers that only care about errors.
func Discard() *log.Logger {
	return NewWriter(io.Discard, false)
}
