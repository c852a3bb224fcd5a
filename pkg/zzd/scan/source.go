package scan

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/mmap"
)

// ErrUnreadableSource marks a source that cannot be opened, mapped or
// read. It is fatal to the whole analysis; there is no partial recovery
// from a failing source.
var ErrUnreadableSource = errors.New("scan: unreadable source")

// Source is an immutable random-access view over raw diagnostic bytes.
// Files are memory-mapped so gigabyte inputs are never held in memory;
// tests and embedded callers wrap in-memory buffers instead.
type Source struct {
	r    io.ReaderAt
	size int64
	name string
	c    io.Closer
}

// Open memory-maps the file at path.
func Open(path string) (*Source, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableSource, path, err)
	}
	return &Source{r: r, size: int64(r.Len()), name: path, c: r}, nil
}

// FromBytes wraps an in-memory buffer as a Source. name is only used in
// error messages.
func FromBytes(name string, b []byte) *Source {
	return &Source{r: bytes.NewReader(b), size: int64(len(b)), name: name}
}

// Name returns the path or label the source was opened with.
func (s *Source) Name() string { return s.name }

// Size returns the source length in bytes.
func (s *Source) Size() int64 { return s.size }

// ReadAt implements io.ReaderAt. Safe for concurrent use; the underlying
// view is immutable.
func (s *Source) ReadAt(p []byte, off int64) (int, error) {
	return s.r.ReadAt(p, off)
}

// Close releases the mapping, if any. Closing an in-memory source is a
// no-op.
func (s *Source) Close() error {
	if s.c == nil {
		return nil
	}
	return s.c.Close()
}
