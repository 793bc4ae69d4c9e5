package notes

import (
	"io"

	"github.com/entropyio/evm-notes/logger"
)

var log = logger.NewLogger("[notes]")

// Printer writes a table to an output stream, one line per Write.
type Printer struct {
	out   io.Writer
	table Table
}

// NewPrinter returns a Printer writing table to out.
func NewPrinter(out io.Writer, table Table) *Printer {
	return &Printer{out: out, table: table}
}

// Print writes every line of the table, each terminated by a newline, in
// declaration order. It keeps no state, so calling it again repeats the
// whole output.
func (p *Printer) Print() error {
	lines := p.table.Lines()
	log.Debugf("printing %d lines in %d sections", len(lines), len(p.table))

	for _, line := range lines {
		if _, err := io.WriteString(p.out, line.Text+"\n"); err != nil {
			return &WriteError{Section: line.Section, Ordinal: line.Ordinal, Err: err}
		}
	}
	return nil
}
