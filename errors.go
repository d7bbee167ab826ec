package bindec

import (
	"errors"
	"fmt"
)

var (
	// ErrNilReader indicates that NewDecoder/NewStreamReader was called with a nil reader.
	ErrNilReader = errors.New("bindec: called with a nil reader")

	// ErrUnexpectedEnd indicates that the input ended before a required field
	// could be read. The input may be decodable once more bytes arrive.
	ErrUnexpectedEnd = errors.New("bindec: unexpected end of input")

	// ErrLimitExceeded indicates that decoding would exceed the configured
	// budget, either because the running claim total passed the limit or
	// because a declared container size overflowed while being computed.
	// Input failing this way must be rejected, not retried.
	ErrLimitExceeded = errors.New("bindec: decoded size limit exceeded")

	// ErrBorrowUnsupported indicates a borrowing decode was attempted on a
	// decoder whose reader cannot alias its input.
	ErrBorrowUnsupported = errors.New("bindec: reader does not support borrowed reads")

	// ErrVarintOverflow indicates a variable-length integer that does not fit
	// the target integer type.
	ErrVarintOverflow = errors.New("bindec: varint overflows target type")

	// ErrInvalidUTF8 indicates a string or rune payload that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("bindec: invalid UTF-8 payload")
)

// UnexpectedVariantError is returned when a discriminant read from the wire
// is outside the range its type allows, e.g. an Option tag other than 0 or 1.
type UnexpectedVariantError struct {
	Found    uint32
	Min, Max uint32
	TypeName string
}

func (e *UnexpectedVariantError) Error() string {
	return fmt.Sprintf("bindec: unexpected variant %d for %s, allowed range is %d..=%d",
		e.Found, e.TypeName, e.Min, e.Max)
}

// OutsideIntRangeError is returned when a declared container length does not
// fit the host int type.
type OutsideIntRangeError struct {
	Value uint64
}

func (e *OutsideIntRangeError) Error() string {
	return fmt.Sprintf("bindec: declared length %d does not fit the host int type", e.Value)
}
