package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"

	"github.com/hexy-dev/hexy/pkg/dump"
)

var version = "dev"

// CLI resolves the dump configuration. Offsets accept decimal or 0x hex.
type CLI struct {
	Start   string           `help:"First byte offset to dump (decimal or 0x hex)." short:"s" default:"0"`
	End     string           `help:"Stop before this offset (decimal or 0x hex)." short:"e" optional:""`
	Rows    int              `help:"Stop after this many output rows." short:"n" default:"0"`
	Width   int              `help:"Bytes per row." short:"w" default:"16"`
	Group   int              `help:"Bytes per sub-group; 0 disables grouping." short:"g" default:"8"`
	Decimal bool             `help:"Format row addresses in decimal." short:"d"`
	NoColor bool             `help:"Disable styled output."`
	ASCII   bool             `help:"Use ASCII placeholders for control bytes instead of Unicode control pictures."`
	Verbose bool             `help:"Enable debug logging on stderr." short:"v"`
	Version kong.VersionFlag `help:"Print version and exit."`

	Path string `arg:"" help:"File to dump, or - for stdin."`
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("hexy"),
		kong.Description("Render a file as a hex dump with a textual column."),
		kong.Vars{"version": version},
	)
	ctx.FatalIfErrorf(cli.Run(newLogger(cli.Verbose)))
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
}

// Run resolves the configuration, opens the source and streams the dump.
func (c *CLI) Run(logger *slog.Logger) error {
	start, err := parseOffset(c.Start)
	if err != nil {
		return fmt.Errorf("invalid start offset %q: %w", c.Start, err)
	}

	opts := []dump.Option{
		dump.StartOffset(start),
		dump.MaxRows(c.Rows),
		dump.Width(c.Width),
		dump.Group(c.Group),
	}
	if c.End != "" {
		end, err := parseOffset(c.End)
		if err != nil {
			return fmt.Errorf("invalid end offset %q: %w", c.End, err)
		}
		opts = append(opts, dump.EndOffset(end))
	}
	if c.Decimal {
		opts = append(opts, dump.DecimalAddresses())
	}
	if c.ASCII {
		opts = append(opts, dump.Symbols(dump.ASCIISymbols))
	}

	f, err := dump.New(newSink(c.NoColor), opts...)
	if err != nil {
		return err
	}

	src, cleanup, err := openSource(c.Path)
	if err != nil {
		return err
	}
	defer cleanup()

	logger.Debug("dumping",
		"path", c.Path,
		"start", start,
		"end", c.End,
		"width", c.Width,
		"group", c.Group,
	)

	if err := f.Dump(src); err != nil {
		return err
	}

	logger.Debug("done", "rows", f.Rows(), "bytes", f.Bytes())
	return nil
}

// newSink picks the color sink for terminals and the plain sink for
// pipes, files and --no-color.
func newSink(noColor bool) dump.Sink {
	fd := os.Stdout.Fd()
	if noColor || !(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) {
		return dump.NewPlainSink(os.Stdout)
	}
	return dump.NewColorSink(os.Stdout)
}

func openSource(path string) (dump.Source, func(), error) {
	if path == "-" {
		return dump.NewReaderSource(os.Stdin), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return dump.NewFileSource(f), func() { f.Close() }, nil
}

// parseOffset parses a byte offset in decimal or, with a 0x prefix, hex.
func parseOffset(s string) (uint64, error) {
	if rest, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		return strconv.ParseUint(rest, 16, 64)
	}
	return strconv.ParseUint(s, 10, 64)
}
