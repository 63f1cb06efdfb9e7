package dump

import "fmt"

// renderer turns bytes into address, hex and glyph tokens and emits them
// through the Sink. It owns the exact spacing rules: one space before
// every hex token, with the group separator replacing that space at the
// first byte of each new group.
type renderer struct {
	cfg  config
	sink Sink
}

// address emits the row's starting address label. The field width is
// fixed (6 decimal digits or 4 hex digits); larger offsets overflow the
// field rather than widening it.
func (r *renderer) address(addr uint64) {
	if r.cfg.decimal {
		r.sink.Emit(RoleAddress, fmt.Sprintf("%06d:", addr))
	} else {
		r.sink.Emit(RoleAddress, fmt.Sprintf("0x%04x:", addr))
	}
}

// hexToken emits the spacing and two-digit hex code for the byte at
// column col. A group-opening column gets "| " in place of the space.
func (r *renderer) hexToken(b byte, col int) {
	if col > 0 && col%r.cfg.group == 0 {
		r.sink.Emit(RoleSeparator, "| ")
	} else {
		r.sink.Emit(RolePrintable, " ")
	}
	r.sink.Emit(roleFor(b), fmt.Sprintf("%02x", b))
}

// padToken emits the filler for an empty column index when flushing a
// partial final row: a separator marker at group boundaries, otherwise
// three blanks matching the width of a real hex token.
func (r *renderer) padToken(col int) {
	if col%r.cfg.group == 0 {
		r.sink.Emit(RoleSeparator, " |")
	} else {
		r.sink.Emit(RolePrintable, "   ")
	}
}

// glyphs closes a row: the textual column over the bytes actually
// collected, framed by separators, then a newline.
func (r *renderer) glyphs(values []byte) {
	r.sink.Emit(RoleSeparator, "  |")
	for _, b := range values {
		r.sink.Emit(roleFor(b), string(Glyph(b, r.cfg.symbols)))
	}
	r.sink.Emit(RoleSeparator, "|")
	r.sink.Emit(RolePrintable, "\n")
}
