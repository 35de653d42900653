package cmd

import (
	"io"

	logging "github.com/op/go-logging"
)

const logFormat = `%{color}[P%{pid} %{time:15:04:05.000} %{shortfile} %{level:.4s} %{id:03x}]` +
	`%{color:reset} %{message}`

// setupLogging routes every go-logging module to w. Only warnings and above
// are shown unless verbose is set.
func setupLogging(w io.Writer, verbose bool) {
	backend := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(logFormat))
	leveled := logging.AddModuleLevel(formatted)
	level := logging.WARNING
	if verbose {
		level = logging.DEBUG
	}
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
}
