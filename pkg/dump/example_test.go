package dump_test

import (
	"os"
	"strings"

	"github.com/hexy-dev/hexy/pkg/dump"
)

func ExampleFormatter() {
	f, err := dump.New(dump.NewPlainSink(os.Stdout), dump.Width(8))
	if err != nil {
		panic(err)
	}
	if err := f.Dump(dump.NewReaderSource(strings.NewReader("Go bytes"))); err != nil {
		panic(err)
	}
	// Output: 0x0000: 47 6f 20 62 79 74 65 73  |Go bytes|
}

func ExampleFormatter_bounds() {
	f, err := dump.New(dump.NewPlainSink(os.Stdout),
		dump.StartOffset(4),
		dump.EndOffset(8),
		dump.Width(4),
	)
	if err != nil {
		panic(err)
	}
	src := dump.NewReaderSource(strings.NewReader("0123456789abcdef"))
	if err := f.Dump(src); err != nil {
		panic(err)
	}
	// Output: 0x0004: 34 35 36 37  |4567|
}
