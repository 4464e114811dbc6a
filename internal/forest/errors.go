package forest

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIndex indicates a position outside the current tree list.
	ErrInvalidIndex = errors.New("invalid tree index")
	// ErrUnknownSpecies indicates a species outside the closed set.
	ErrUnknownSpecies = errors.New("unknown species")
	// ErrSourceNotFound indicates the CSV seed file does not exist.
	ErrSourceNotFound = errors.New("source not found")
	// ErrFieldCount indicates a record without exactly four fields.
	ErrFieldCount = errors.New("invalid data format")
)

// ErrorClassifier lets errors declare a coarse kind for reporting.
type ErrorClassifier interface {
	ErrorKind() string
}

// IndexError reports a cut request outside the forest bounds.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("tree number %d does not exist (forest has %d trees)", e.Index, e.Length)
}

func (e *IndexError) Unwrap() error { return ErrInvalidIndex }

func (e *IndexError) ErrorKind() string { return "validation" }

// LineError describes a CSV line that was skipped during ingestion.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %s", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error { return e.Err }

func (e *LineError) ErrorKind() string { return "validation" }
