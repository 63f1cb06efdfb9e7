package dump

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileSource_Skip(t *testing.T) {
	require := require.New(t)

	src := NewFileSource(bytes.NewReader([]byte("0123456789")))
	require.NoError(src.Skip(4))

	rest, err := io.ReadAll(src)
	require.NoError(err)
	require.Equal("456789", string(rest))
}

func TestFileSource_SkipToEnd(t *testing.T) {
	require := require.New(t)

	src := NewFileSource(bytes.NewReader([]byte("0123")))
	require.NoError(src.Skip(4))

	rest, err := io.ReadAll(src)
	require.NoError(err)
	require.Empty(rest)
}

func TestFileSource_SkipBeyondEOF(t *testing.T) {
	src := NewFileSource(bytes.NewReader([]byte("0123")))
	err := src.Skip(5)
	if !errors.Is(err, ErrOffsetBeyondEOF) {
		t.Errorf("got %v, want ErrOffsetBeyondEOF", err)
	}
}

func TestReaderSource_Skip(t *testing.T) {
	require := require.New(t)

	src := NewReaderSource(strings.NewReader("0123456789"))
	require.NoError(src.Skip(7))

	rest, err := io.ReadAll(src)
	require.NoError(err)
	require.Equal("789", string(rest))
}

func TestReaderSource_SkipBeyondEOF(t *testing.T) {
	src := NewReaderSource(strings.NewReader("0123"))
	err := src.Skip(100)
	if !errors.Is(err, ErrOffsetBeyondEOF) {
		t.Errorf("got %v, want ErrOffsetBeyondEOF", err)
	}
}
