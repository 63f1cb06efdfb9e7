package dump

import (
	"io"

	"github.com/fatih/color"
)

// Role identifies the styling class of an emitted text segment.
type Role int

const (
	// RoleSeparator styles group separators and the textual-column frame.
	RoleSeparator Role = iota
	// RoleAddress styles the row address label.
	RoleAddress
	// RolePrintable is the default, unstyled role.
	RolePrintable
	// RoleNonPrintable styles control bytes.
	RoleNonPrintable
	// RoleNonASCII styles the 255 byte.
	RoleNonASCII
	// RoleNull styles the zero byte.
	RoleNull
)

// Sink receives styled text segments from the formatter.
//
// Implementations must write the text verbatim so that styled and
// unstyled output carry identical content. Write failures are best-effort
// and not reported back to the formatter: formatting already computed is
// not lost to an inability to style it.
type Sink interface {
	Emit(role Role, text string)
}

// PlainSink writes segments with no styling at all. Its output is
// byte-for-byte the textual content of a ColorSink run.
type PlainSink struct {
	w io.Writer
}

// NewPlainSink creates a Sink that writes unstyled text to w.
func NewPlainSink(w io.Writer) *PlainSink {
	return &PlainSink{w: w}
}

// Emit writes text to the underlying writer, ignoring the role.
func (s *PlainSink) Emit(_ Role, text string) {
	io.WriteString(s.w, text)
}

// ColorSink writes segments styled with ANSI escape sequences.
//
// Styling is forced on regardless of whether the destination is a
// terminal; callers decide TTY-ness and pick PlainSink otherwise.
type ColorSink struct {
	w      io.Writer
	styles map[Role]*color.Color
}

// NewColorSink creates a Sink that writes role-styled text to w.
func NewColorSink(w io.Writer) *ColorSink {
	styles := map[Role]*color.Color{
		RoleSeparator:    color.New(color.FgHiBlack),
		RoleAddress:      color.New(color.FgHiBlue),
		RoleNonPrintable: color.New(color.FgYellow),
		RoleNonASCII:     color.New(color.FgRed),
		RoleNull:         color.New(color.FgHiBlack, color.Faint),
	}
	for _, c := range styles {
		c.EnableColor()
	}
	return &ColorSink{w: w, styles: styles}
}

// Emit writes text styled for role. RolePrintable passes through raw.
func (s *ColorSink) Emit(role Role, text string) {
	c, ok := s.styles[role]
	if !ok {
		io.WriteString(s.w, text)
		return
	}
	c.Fprint(s.w, text)
}

var (
	_ Sink = (*PlainSink)(nil)
	_ Sink = (*ColorSink)(nil)
)
