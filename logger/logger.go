package logger

import (
	"io"
	"os"
	"sync"

	"github.com/op/go-logging"
)

const defaultFormat = `%{time:15:04:05.000} %{module} %{level:.4s} %{message}`

var (
	setupOnce sync.Once
	leveled   logging.LeveledBackend
)

// NewLogger returns a module logger. All loggers share one stderr backend,
// which is kept at WARNING so that standard output only carries notes.
func NewLogger(module string) *logging.Logger {
	setupOnce.Do(func() { setBackend(os.Stderr) })
	return logging.MustGetLogger(module)
}

// SetOutput redirects every module logger to w.
func SetOutput(w io.Writer) {
	setupOnce.Do(func() {})
	setBackend(w)
}

// SetLevel changes the level of every module logger.
func SetLevel(level logging.Level) {
	setupOnce.Do(func() { setBackend(os.Stderr) })
	leveled.SetLevel(level, "")
}

func setBackend(w io.Writer) {
	backend := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(defaultFormat))

	level := logging.WARNING
	if leveled != nil {
		level = leveled.GetLevel("")
	}
	leveled = logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
}
