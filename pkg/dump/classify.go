package dump

// Category classifies a byte value for styling and glyph selection.
type Category int

const (
	// Null is the zero byte.
	Null Category = iota
	// Control covers byte values 1 through 31.
	Control
	// Printable covers byte values 32 through 254, rendered literally.
	Printable
	// NonASCII is the byte value 255.
	NonASCII
)

// Classify maps a byte value to its display category. Pure and total.
func Classify(b byte) Category {
	switch {
	case b == 0x00:
		return Null
	case b < 0x20:
		return Control
	case b < 0xff:
		return Printable
	default:
		return NonASCII
	}
}

// SymbolMode selects how control bytes render in the textual column.
type SymbolMode int

const (
	// UnicodeSymbols renders control bytes as the Unicode control
	// pictures U+2400..U+241F.
	UnicodeSymbols SymbolMode = iota
	// ASCIISymbols renders control bytes as fallback placeholders for
	// terminals without control-picture glyph support.
	ASCIISymbols
)

// Glyph returns the textual-column rendering of b under mode.
//
// Printable bytes render as themselves (bytes 128..254 as their Latin-1
// rune). The 255 byte renders as a dot in either mode.
func Glyph(b byte, mode SymbolMode) rune {
	switch Classify(b) {
	case Null:
		if mode == ASCIISymbols {
			return '█'
		}
		return '␀'
	case Control:
		if mode == ASCIISymbols {
			switch b {
			case '\t':
				return '⇥'
			case '\n':
				return '↵'
			case '\r':
				return '←'
			default:
				return '·'
			}
		}
		return rune(0x2400 + int(b))
	case NonASCII:
		return '.'
	default:
		return rune(b)
	}
}

// roleFor maps a byte's category to the sink role that styles both its
// hex token and its glyph.
func roleFor(b byte) Role {
	switch Classify(b) {
	case Null:
		return RoleNull
	case Control:
		return RoleNonPrintable
	case NonASCII:
		return RoleNonASCII
	default:
		return RolePrintable
	}
}
