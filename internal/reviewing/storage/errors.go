package storage

import "fmt"

// MalformedRecordError is returned when a record in the reviews file can't be decoded.
type MalformedRecordError struct {
	Line   int // physical line the record starts on, 0 when unknown
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed record on line %d: %s", e.Line, e.Reason)
	}
	return "malformed record: " + e.Reason
}

// WriteError is returned when the reviews file couldn't be written.
// The file that was there before is left in place.
type WriteError struct {
	Path string
	Op   string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to %s for %s: %s", e.Op, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
