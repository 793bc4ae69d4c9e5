package runtime

import (
	"github.com/entropyio/evm-notes/notes"
)

func NewEnv(cfg *Config) *notes.Printer {
	return notes.NewPrinter(cfg.Stdout, cfg.Table)
}
