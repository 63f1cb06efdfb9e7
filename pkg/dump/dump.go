package dump

import "io"

// chunkSize is the fixed read buffer size. Each chunk is fully processed
// before the next read.
const chunkSize = 4096

// state of the formatter's row loop.
type state int

const (
	// streaming accepts bytes and emits hex tokens as they arrive.
	streaming state = iota
	// draining pads and closes the final partial row.
	draining
	// done is terminal; no further output occurs.
	done
)

// Formatter is the streaming byte-to-row state machine. It consumes a
// Source chunk by chunk, emits output incrementally through its Sink, and
// applies the offset bounds and row limit.
//
// A Formatter runs one dump: after Dump returns it is done and produces
// no further output.
type Formatter struct {
	cfg  config
	rend renderer
	row  *rowState
	st   state
	next uint64 // offset of the next byte to process
	buf  []byte
}

// New creates a Formatter writing through sink. The configuration is
// validated here: a zero row width returns ErrZeroWidth and a bounded end
// offset that does not exceed the start offset returns ErrBadRange.
func New(sink Sink, opts ...Option) (*Formatter, error) {
	cfg := config{
		width:   DefaultWidth,
		group:   DefaultGroup,
		symbols: UnicodeSymbols,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.width <= 0 {
		return nil, ErrZeroWidth
	}
	if cfg.group <= 0 {
		cfg.group = cfg.width
	}
	if cfg.bounded && cfg.end <= cfg.start {
		return nil, ErrBadRange
	}

	return &Formatter{
		cfg:  cfg,
		rend: renderer{cfg: cfg, sink: sink},
		row:  newRowState(cfg.width, cfg.start),
		st:   streaming,
		next: cfg.start,
		buf:  make([]byte, chunkSize),
	}, nil
}

// Dump skips to the start offset, streams src through the formatter and
// flushes the final partial row.
//
// A skip past the end of the source returns ErrOffsetBeyondEOF with zero
// output. A read failure mid-stream returns a *ReadError and abandons the
// current row; output already written stays as-is.
func (f *Formatter) Dump(src Source) error {
	if f.cfg.start > 0 {
		if err := src.Skip(f.cfg.start); err != nil {
			f.st = done
			return err
		}
	}

	for f.st == streaming {
		n, err := src.Read(f.buf)
		if n > 0 {
			f.consume(f.buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			f.st = done
			return &ReadError{Offset: f.next, Err: err}
		}
	}

	f.drain()
	return nil
}

// consume advances the state machine one byte at a time. Output is
// interleaved with accumulation: the address is emitted when a row opens
// and each hex token as its byte arrives.
func (f *Formatter) consume(p []byte) {
	for _, b := range p {
		if f.st != streaming {
			return
		}
		if f.cfg.bounded && f.next >= f.cfg.end {
			f.st = draining
			return
		}

		if f.row.column == 0 {
			f.rend.address(f.row.addr)
		}
		f.rend.hexToken(b, f.row.column)
		f.row.push(b)
		f.next++

		if f.row.column == f.cfg.width {
			f.flush()
		}
	}
}

// flush closes a completed row and resets the buffer for the next one.
// Reaching the row limit terminates the machine with nothing left to
// drain.
func (f *Formatter) flush() {
	f.rend.glyphs(f.row.buf)
	f.row.reset(f.next)
	if f.cfg.maxRows > 0 && f.row.index >= f.cfg.maxRows {
		f.st = done
	}
}

// drain emits the padded final partial row, if any, and terminates.
func (f *Formatter) drain() {
	if f.st == done {
		return
	}
	if f.row.column == 0 {
		f.st = done
		return
	}
	for col := f.row.column; col < f.cfg.width; col++ {
		f.rend.padToken(col)
	}
	f.rend.glyphs(f.row.buf)
	f.row.index++
	f.st = done
}

// Rows returns the number of rows emitted so far, counting a drained
// partial row.
func (f *Formatter) Rows() int {
	return f.row.index
}

// Bytes returns the number of bytes rendered so far.
func (f *Formatter) Bytes() uint64 {
	return f.next - f.cfg.start
}
