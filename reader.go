package bindec

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// Reader is the byte source a Decoder pulls from. Implementations fail with
// ErrUnexpectedEnd when the source cannot supply the requested bytes; after
// any partial read the cursor has advanced irreversibly, so a failed reader
// must be discarded together with its decoder.
type Reader interface {
	// ReadExact fills p entirely, or fails with ErrUnexpectedEnd.
	ReadExact(p []byte) error
	// ReadByte returns the next single byte.
	ReadByte() (byte, error)
}

// BorrowReader is a Reader whose input lives in memory, allowing reads that
// alias the backing buffer instead of copying. Slices returned by TakeBytes
// and Peek remain valid only until the backing buffer is next mutated or
// released; callers that outlive the buffer must copy.
type BorrowReader interface {
	Reader
	// TakeBytes consumes the next n bytes and returns them without copying.
	TakeBytes(n int) ([]byte, error)
	// Peek returns the next n bytes without advancing the cursor.
	Peek(n int) ([]byte, error)
}

// StreamReader adapts an io.Reader for owned decoding. It tracks the first
// error encountered; subsequent reads become no-ops returning that error.
type StreamReader struct {
	r     io.Reader
	count int64 // total bytes consumed
	err   error // first error encountered
}

var _ Reader = (*StreamReader)(nil)

// NewStreamReader wraps r for use with NewDecoder. Borrowing decodes are not
// available through a stream; use a SliceReader for zero-copy access.
func NewStreamReader(r io.Reader) (*StreamReader, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	return &StreamReader{r: r}, nil
}

// NewZstdReader wraps a zstd-compressed stream so that compressed payloads
// feed the same decode tree as plain ones.
func NewZstdReader(r io.Reader) (*StreamReader, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return &StreamReader{r: dec.IOReadCloser()}, nil
}

// ReadExact implements Reader.
func (r *StreamReader) ReadExact(p []byte) error {
	if r.err != nil {
		return r.err
	}
	n, err := io.ReadFull(r.r, p)
	r.count += int64(n)
	if err != nil {
		// A clean EOF and a partial read both mean the stream cannot supply
		// the field the decoder asked for.
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			err = ErrUnexpectedEnd
		}
		r.err = err
		return err
	}
	return nil
}

// ReadByte implements Reader.
func (r *StreamReader) ReadByte() (byte, error) {
	var b [1]byte
	if err := r.ReadExact(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// Count returns the total number of bytes consumed from the stream.
func (r *StreamReader) Count() int64 { return r.count }

// Err returns the latched error, if any.
func (r *StreamReader) Err() error { return r.err }

// Close closes the underlying reader if it implements io.Closer.
func (r *StreamReader) Close() error {
	if c, ok := r.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
