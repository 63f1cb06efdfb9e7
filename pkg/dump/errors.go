package dump

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrBadRange indicates a bounded end offset that does not exceed the
	// start offset. Detected at construction, before any bytes are read.
	ErrBadRange = errors.New("dump: end offset must be greater than start offset")

	// ErrZeroWidth indicates a row width of zero.
	ErrZeroWidth = errors.New("dump: row width must be greater than zero")

	// ErrOffsetBeyondEOF indicates a start offset past the end of the
	// source. Distinct from a read failure: no output has been produced.
	ErrOffsetBeyondEOF = errors.New("dump: start offset is beyond the end of input")
)

// ReadError reports an I/O failure while pulling a chunk from the source.
// The current row is abandoned: no partial row is emitted for a mid-row
// read failure, unlike the clean end-of-source flush.
type ReadError struct {
	Offset uint64 // Offset of the next byte that was expected
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("dump: read failed at offset %d: %v", e.Offset, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
