package runtime

import (
	"fmt"
	"io"
	"os"

	"github.com/entropyio/evm-notes/logger"
	"github.com/entropyio/evm-notes/notes"
	"github.com/op/go-logging"
)

var log = logger.NewLogger("[runtime]")

// Completion is printed after the last note of a successful run.
const Completion = "End of notes"

// Config is a basic type specifying where and what to print.
type Config struct {
	Stdout io.Writer
	Table  notes.Table
}

// sets defaults on the config
func setDefaults(cfg *Config) {
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Table == nil {
		cfg.Table = notes.Default()
	}
}

// Execute prints the notes table followed by the completion line.
//
// If the output stream faults, printing stops there and the fault's
// description is written to the same stream in place of the completion
// line. The fault is returned so callers can inspect it, but it is already
// reported; the program entry point discards it.
func Execute(cfg *Config) error {
	if cfg == nil {
		cfg = new(Config)
	}
	setDefaults(cfg)

	if log.IsEnabledFor(logging.DEBUG) {
		log.Debugf("execute sections:%v, fingerprint:%x", cfg.Table.Labels(), cfg.Table.Fingerprint())
	}

	err := NewEnv(cfg).Print()
	if err != nil {
		log.Debugf("notes interrupted: %v", err)
		fmt.Fprintln(cfg.Stdout, err)
		return err
	}
	fmt.Fprintln(cfg.Stdout, Completion)
	return nil
}
