package bindec

import (
	"math"
	"reflect"
	"unicode/utf8"
	"unsafe"
)

// decodeSliceLen reads the length prefix of any container and converts it to
// the host int type, failing with OutsideIntRangeError when it does not fit.
func decodeSliceLen(d *Decoder) (int, error) {
	v, err := DecodeUint64(d)
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt {
		return 0, &OutsideIntRangeError{Value: v}
	}
	return int(v), nil
}

// decodeOptionVariant reads only the one-byte Option discriminant: 0 means
// absent, 1 means a payload follows, anything else is an error.
func decodeOptionVariant(d *Decoder, typeName string) (bool, error) {
	tag, err := DecodeUint8(d)
	if err != nil {
		return false, err
	}
	switch tag {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, &UnexpectedVariantError{Found: uint32(tag), Min: 0, Max: 1, TypeName: typeName}
}

// DecodeOption reads an optional value: a discriminant byte, then the payload
// when present. A present value is returned through a non-nil pointer.
func DecodeOption[T any](d *Decoder, elem DecodeFn[T]) (*T, error) {
	some, err := decodeOptionVariant(d, optionName[T]())
	if err != nil || !some {
		return nil, err
	}
	v, err := elem(d)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func optionName[T any]() string {
	return "Option[" + reflect.TypeOf((*T)(nil)).Elem().String() + "]"
}

// DecodeBytes reads a length-prefixed byte string into freshly allocated
// memory. The length is claimed against the budget before the allocation.
func DecodeBytes(d *Decoder) ([]byte, error) {
	length, err := decodeSliceLen(d)
	if err != nil {
		return nil, err
	}
	if err := d.ClaimBytesRead(uint64(length)); err != nil {
		return nil, err
	}
	buf := make([]byte, length)
	if err := d.r.ReadExact(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// DecodeString reads a length-prefixed UTF-8 string, rejecting invalid
// encodings with ErrInvalidUTF8.
func DecodeString(d *Decoder) (string, error) {
	b, err := DecodeBytes(d)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}

// DecodeSlice reads a length-prefixed sequence of T. The whole container is
// claimed at a flat per-element estimate before allocating; each slot's
// estimate is then returned just before the element decode re-claims its true
// cost, so nested containers stay correctly bounded by a single limit.
func DecodeSlice[T any](d *Decoder, elem DecodeFn[T]) ([]T, error) {
	length, err := decodeSliceLen(d)
	if err != nil {
		return nil, err
	}
	if err := ClaimContainerOf[T](d, length); err != nil {
		return nil, err
	}
	unit := claimUnitOf[T]()
	out := make([]T, 0, length)
	for i := 0; i < length; i++ {
		d.UnclaimBytesRead(unit)
		v, err := elem(d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// DecodeMap reads a length-prefixed sequence of key/value pairs. Each entry
// is charged the flat size of a key plus a value up front.
func DecodeMap[K comparable, V any](d *Decoder, key DecodeFn[K], val DecodeFn[V]) (map[K]V, error) {
	length, err := decodeSliceLen(d)
	if err != nil {
		return nil, err
	}
	kUnit, vUnit := claimUnitOf[K](), claimUnitOf[V]()
	if err := d.ClaimContainer(length, kUnit+vUnit); err != nil {
		return nil, err
	}
	out := make(map[K]V, length)
	for i := 0; i < length; i++ {
		d.UnclaimBytesRead(kUnit)
		k, err := key(d)
		if err != nil {
			return nil, err
		}
		d.UnclaimBytesRead(vUnit)
		v, err := val(d)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// DecodeSet reads a length-prefixed sequence of distinct elements into a set.
// Duplicate elements collapse; the wire length still bounds the claim.
func DecodeSet[T comparable](d *Decoder, elem DecodeFn[T]) (map[T]struct{}, error) {
	length, err := decodeSliceLen(d)
	if err != nil {
		return nil, err
	}
	if err := ClaimContainerOf[T](d, length); err != nil {
		return nil, err
	}
	unit := claimUnitOf[T]()
	out := make(map[T]struct{}, length)
	for i := 0; i < length; i++ {
		d.UnclaimBytesRead(unit)
		v, err := elem(d)
		if err != nil {
			return nil, err
		}
		out[v] = struct{}{}
	}
	return out, nil
}

// BorrowBytes reads a length-prefixed byte string without copying: the result
// aliases the decoder's input buffer and is valid only until that buffer is
// mutated or released. Fails with ErrBorrowUnsupported when the reader cannot
// alias its input.
func BorrowBytes(d *Decoder) ([]byte, error) {
	if d.br == nil {
		return nil, ErrBorrowUnsupported
	}
	length, err := decodeSliceLen(d)
	if err != nil {
		return nil, err
	}
	if err := d.ClaimBytesRead(uint64(length)); err != nil {
		return nil, err
	}
	return d.br.TakeBytes(length)
}

// BorrowString reads a length-prefixed UTF-8 string whose storage aliases the
// decoder's input buffer. The same lifetime caveat as BorrowBytes applies,
// compounded by string immutability: mutating the buffer afterwards breaks
// the string.
func BorrowString(d *Decoder) (string, error) {
	b, err := BorrowBytes(d)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return unsafe.String(unsafe.SliceData(b), len(b)), nil
}
