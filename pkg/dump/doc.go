// Package dump implements a streaming hex dump formatter.
//
// The formatter consumes a byte source in bounded chunks and renders each
// byte as a two-digit lowercase hex code, grouped into fixed-width rows
// with configurable sub-group separators, followed by a textual column
// that shows each byte as a glyph (Unicode control pictures by default,
// a dot for the non-ASCII byte).
//
// # Basic Usage
//
//	f, err := dump.New(dump.NewPlainSink(os.Stdout), dump.Width(16))
//	if err != nil {
//		// invalid configuration
//	}
//	err = f.Dump(dump.NewFileSource(file))
//
// Output for a 19-byte file looks like:
//
//	0x0000: 68 65 6c 6c 6f 20 66 72| 6f 6d 20 74 68 65 20 64  |hello from the d|
//	0x0010: 75 6d 70                |                       |ump|
//
// # Design Principles
//
//   - No internal buffering beyond a fixed-size read chunk: output is
//     emitted byte by byte as the stream is consumed, so partial rows
//     appear as soon as their bytes arrive.
//   - Styling is injected through the Sink interface; the formatter never
//     writes escape sequences itself. A ColorSink and a content-identical
//     PlainSink are provided.
//   - The row buffer is allocated once and reused for every row.
//
// # Bounds
//
// StartOffset skips bytes before dumping begins; skipping past the end of
// the source reports ErrOffsetBeyondEOF before any output is produced.
// EndOffset is exclusive: the byte at exactly that offset is not rendered.
// MaxRows stops the dump after a fixed number of full rows.
package dump
