package notes

import "fmt"

// WriteError is returned when the output stream rejects a line. Printing
// stops at the first rejected line.
type WriteError struct {
	Section string
	Ordinal int
	Err     error
}

func (err *WriteError) Error() string {
	return fmt.Sprintf("write %s line %d: %v", err.Section, err.Ordinal, err.Err)
}

func (err *WriteError) Unwrap() error {
	return err.Err
}
