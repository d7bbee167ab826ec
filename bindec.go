// Package bindec implements the decode side of a compact binary
// serialization format. A Decoder couples a byte source with an immutable
// wire-format policy (byte order, fixed or variable-length integers, optional
// decoded-size limit) and a claim counter that bounds how much memory a
// hostile length prefix can commit before it is validated.
//
// Values decode either owned (freshly allocated, DecodeBytes and friends) or
// borrowed (aliasing the input buffer, BorrowBytes and friends); the borrowed
// forms need a reader that keeps its input in memory, such as SliceReader.
package bindec

import "io"

// DecodeFn decodes one owned value of type T from d. The primitive and
// container decoders in this package all have this shape, so they compose
// directly as element decoders for DecodeSlice, DecodeMap and DecodeOption.
type DecodeFn[T any] func(d *Decoder) (T, error)

// Decodable is implemented by types that decode themselves as owned values.
// An owned decode never aliases the decoder's input.
type Decodable interface {
	DecodeBinary(d *Decoder) error
}

// BorrowDecodable is implemented by types whose decoded form may alias the
// decoder's input buffer. Such values are valid only until the backing buffer
// is mutated or released. Every Decodable is trivially a valid, if
// non-zero-copy, borrowing decode; BorrowDecodeValue applies that fallback.
type BorrowDecodable interface {
	BorrowDecodeBinary(d *Decoder) error
}

// BorrowDecodeValue decodes v preferring its borrowing implementation when
// one exists and the decoder supports aliasing, and falls back to the owned
// decode otherwise.
func BorrowDecodeValue(d *Decoder, v Decodable) error {
	if bv, ok := v.(BorrowDecodable); ok && d.br != nil {
		return bv.BorrowDecodeBinary(d)
	}
	return v.DecodeBinary(d)
}

// Unmarshal decodes v from data under cfg, returning the number of bytes
// consumed. Borrowing implementations of v alias data.
func Unmarshal(data []byte, cfg Config, v Decodable) (int, error) {
	r := NewSliceReader(data)
	d, err := NewDecoder(r, cfg)
	if err != nil {
		return 0, err
	}
	if err := BorrowDecodeValue(d, v); err != nil {
		return r.N, err
	}
	return r.N, nil
}

// DecodeFromSlice decodes one value from data with fn, returning the value
// and the number of bytes consumed. The decoder it builds supports borrowing,
// so fn may use the Borrow* decoders; their results alias data.
func DecodeFromSlice[T any](data []byte, cfg Config, fn DecodeFn[T]) (T, int, error) {
	var zero T
	r := NewSliceReader(data)
	d, err := NewDecoder(r, cfg)
	if err != nil {
		return zero, 0, err
	}
	v, err := fn(d)
	if err != nil {
		return zero, r.N, err
	}
	return v, r.N, nil
}

// DecodeFromReader decodes one owned value from r with fn. Borrowing decoders
// fail with ErrBorrowUnsupported through a stream.
func DecodeFromReader[T any](r io.Reader, cfg Config, fn DecodeFn[T]) (T, error) {
	var zero T
	sr, err := NewStreamReader(r)
	if err != nil {
		return zero, err
	}
	d, err := NewDecoder(sr, cfg)
	if err != nil {
		return zero, err
	}
	return fn(d)
}
