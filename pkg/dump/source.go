package dump

import "io"

// Source supplies the bytes to dump. Skip advances past the bytes before
// the configured start offset; it must return ErrOffsetBeyondEOF when the
// source holds fewer than n bytes.
type Source interface {
	io.Reader
	Skip(n uint64) error
}

// FileSource reads from an io.ReadSeeker and skips by seeking, so a large
// start offset costs nothing.
type FileSource struct {
	r io.ReadSeeker
}

// NewFileSource creates a Source over a seekable stream such as *os.File.
func NewFileSource(r io.ReadSeeker) *FileSource {
	return &FileSource{r: r}
}

func (s *FileSource) Read(p []byte) (n int, err error) {
	return s.r.Read(p)
}

// Skip seeks to offset n. Seeking past the end of a file succeeds at the
// OS level, so the size is checked explicitly first.
func (s *FileSource) Skip(n uint64) error {
	size, err := s.r.Seek(0, io.SeekEnd)
	if err != nil {
		return err
	}
	if uint64(size) < n {
		return ErrOffsetBeyondEOF
	}
	_, err = s.r.Seek(int64(n), io.SeekStart)
	return err
}

// ReaderSource adapts a plain io.Reader, such as stdin. Skip reads and
// discards, so large start offsets are paid for in read time.
type ReaderSource struct {
	r io.Reader
}

// NewReaderSource creates a Source over a non-seekable stream.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r}
}

func (s *ReaderSource) Read(p []byte) (n int, err error) {
	return s.r.Read(p)
}

func (s *ReaderSource) Skip(n uint64) error {
	_, err := io.CopyN(io.Discard, s.r, int64(n))
	if err == io.EOF {
		return ErrOffsetBeyondEOF
	}
	return err
}

var (
	_ Source = (*FileSource)(nil)
	_ Source = (*ReaderSource)(nil)
)
