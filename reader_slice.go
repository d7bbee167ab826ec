package bindec

// SliceReader is a BorrowReader over an in-memory byte slice. The cursor does
// not advance on a failed read, but a decoder whose read failed must be
// discarded regardless.
type SliceReader struct {
	B []byte // backing slice
	N int    // current read position
}

var _ BorrowReader = (*SliceReader)(nil)

// NewSliceReader creates a new SliceReader over b. Slices handed out by
// TakeBytes and Peek alias b directly.
func NewSliceReader(b []byte) *SliceReader {
	return &SliceReader{B: b}
}

// ReadExact implements Reader.
func (r *SliceReader) ReadExact(p []byte) error {
	if len(r.B)-r.N < len(p) {
		return ErrUnexpectedEnd
	}
	r.N += copy(p, r.B[r.N:])
	return nil
}

// ReadByte implements Reader.
func (r *SliceReader) ReadByte() (byte, error) {
	if r.N >= len(r.B) {
		return 0, ErrUnexpectedEnd
	}
	b := r.B[r.N]
	r.N++
	return b, nil
}

// TakeBytes implements BorrowReader. The returned slice aliases the backing
// slice and is valid only until that slice is mutated or released.
func (r *SliceReader) TakeBytes(n int) ([]byte, error) {
	if n < 0 || len(r.B)-r.N < n {
		return nil, ErrUnexpectedEnd
	}
	b := r.B[r.N : r.N+n : r.N+n]
	r.N += n
	return b, nil
}

// Peek implements BorrowReader. It returns the next n bytes, aliasing the
// backing slice, without advancing the cursor.
func (r *SliceReader) Peek(n int) ([]byte, error) {
	if n < 0 || len(r.B)-r.N < n {
		return nil, ErrUnexpectedEnd
	}
	return r.B[r.N : r.N+n : r.N+n], nil
}

// Len returns the number of bytes consumed so far.
func (r *SliceReader) Len() int { return r.N }

// Available returns the number of bytes left to read.
func (r *SliceReader) Available() int {
	if n := len(r.B) - r.N; n > 0 {
		return n
	}
	return 0
}

// Reset rewinds the cursor so the backing slice can be decoded again.
func (r *SliceReader) Reset() { r.N = 0 }
