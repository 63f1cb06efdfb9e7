package dump

const (
	// DefaultWidth is the default number of bytes per row.
	DefaultWidth = 16
	// DefaultGroup is the default sub-group size within a row.
	DefaultGroup = 8
)

// config holds the resolved formatter configuration. Immutable once New
// returns; there is no ambient or process-wide state.
type config struct {
	start   uint64
	end     uint64
	bounded bool
	maxRows int
	width   int
	group   int
	decimal bool
	symbols SymbolMode
}

// Option configures a Formatter.
type Option func(*config)

// StartOffset sets the file offset of the first byte to dump.
//
// Default: 0
func StartOffset(n uint64) Option {
	return func(c *config) {
		c.start = n
	}
}

// EndOffset bounds the dump: the byte at exactly offset n is not
// rendered. A bounded end offset must exceed the start offset or New
// returns ErrBadRange.
//
// Default: unbounded
func EndOffset(n uint64) Option {
	return func(c *config) {
		c.end = n
		c.bounded = true
	}
}

// MaxRows stops the dump after n output rows. Values <= 0 mean unlimited.
//
// Default: unlimited
func MaxRows(n int) Option {
	return func(c *config) {
		c.maxRows = n
	}
}

// Width sets the number of bytes per row. Must be greater than zero.
//
// Default: 16
func Width(n int) Option {
	return func(c *config) {
		c.width = n
	}
}

// Group sets the sub-group size within a row. A value of 0 is normalized
// to the row width, which disables visible grouping.
//
// Default: 8
func Group(n int) Option {
	return func(c *config) {
		c.group = n
	}
}

// DecimalAddresses formats row addresses as 6-digit zero-padded decimal
// instead of 0x-prefixed 4-digit hex.
func DecimalAddresses() Option {
	return func(c *config) {
		c.decimal = true
	}
}

// Symbols selects the textual-column rendering mode for control bytes.
//
// Default: UnicodeSymbols
func Symbols(mode SymbolMode) Option {
	return func(c *config) {
		c.symbols = mode
	}
}
