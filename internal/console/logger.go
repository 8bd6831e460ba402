package console

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns the status logger used for skip/success notifications.
func NewLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		Level:           log.InfoLevel,
	})
}

