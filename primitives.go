package bindec

import (
	"math"
	"unicode/utf8"
)

// uintWire reads an unsigned integer carried at the given byte width under
// the configured integer policy. Varint values that do not fit the width fail
// with ErrVarintOverflow.
func (d *Decoder) uintWire(width int) (uint64, error) {
	if d.config.ints == VarInt {
		v, err := decodeUvarint(d.r)
		if err != nil {
			return 0, err
		}
		if width < 8 && v >= 1<<(8*uint(width)) {
			return 0, ErrVarintOverflow
		}
		return v, nil
	}
	var buf [8]byte
	if err := d.r.ReadExact(buf[:width]); err != nil {
		return 0, err
	}
	switch width {
	case 2:
		return uint64(d.config.order.Uint16(buf[:2])), nil
	case 4:
		return uint64(d.config.order.Uint32(buf[:4])), nil
	default:
		return d.config.order.Uint64(buf[:8]), nil
	}
}

// intWire reads a signed integer carried at the given byte width. Under
// VarInt the value is zigzag-mapped on the wire.
func (d *Decoder) intWire(width int) (int64, error) {
	if d.config.ints == VarInt {
		u, err := decodeUvarint(d.r)
		if err != nil {
			return 0, err
		}
		v := unzigzag(u)
		if width < 8 {
			bound := int64(1) << (8*uint(width) - 1)
			if v < -bound || v >= bound {
				return 0, ErrVarintOverflow
			}
		}
		return v, nil
	}
	var buf [8]byte
	if err := d.r.ReadExact(buf[:width]); err != nil {
		return 0, err
	}
	switch width {
	case 2:
		return int64(int16(d.config.order.Uint16(buf[:2]))), nil
	case 4:
		return int64(int32(d.config.order.Uint32(buf[:4]))), nil
	default:
		return int64(d.config.order.Uint64(buf[:8])), nil
	}
}

// DecodeBool reads a one-byte discriminant: 0 is false, 1 is true, anything
// else is an UnexpectedVariantError.
func DecodeBool(d *Decoder) (bool, error) {
	if err := d.ClaimBytesRead(1); err != nil {
		return false, err
	}
	b, err := d.r.ReadByte()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, &UnexpectedVariantError{Found: uint32(b), Min: 0, Max: 1, TypeName: "bool"}
}

// DecodeUint8 reads a single byte. Byte-sized integers are never varint-coded.
func DecodeUint8(d *Decoder) (uint8, error) {
	if err := d.ClaimBytesRead(1); err != nil {
		return 0, err
	}
	return d.r.ReadByte()
}

// DecodeInt8 reads a single signed byte.
func DecodeInt8(d *Decoder) (int8, error) {
	b, err := DecodeUint8(d)
	return int8(b), err
}

// DecodeUint16 reads a uint16 under the configured integer policy.
func DecodeUint16(d *Decoder) (uint16, error) {
	if err := d.ClaimBytesRead(2); err != nil {
		return 0, err
	}
	v, err := d.uintWire(2)
	return uint16(v), err
}

// DecodeUint32 reads a uint32 under the configured integer policy.
func DecodeUint32(d *Decoder) (uint32, error) {
	if err := d.ClaimBytesRead(4); err != nil {
		return 0, err
	}
	v, err := d.uintWire(4)
	return uint32(v), err
}

// DecodeUint64 reads a uint64 under the configured integer policy.
func DecodeUint64(d *Decoder) (uint64, error) {
	if err := d.ClaimBytesRead(8); err != nil {
		return 0, err
	}
	return d.uintWire(8)
}

// DecodeUint reads a host-sized uint, carried on the wire as a uint64.
func DecodeUint(d *Decoder) (uint, error) {
	v, err := DecodeUint64(d)
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint {
		return 0, &OutsideIntRangeError{Value: v}
	}
	return uint(v), nil
}

// DecodeInt16 reads an int16 under the configured integer policy.
func DecodeInt16(d *Decoder) (int16, error) {
	if err := d.ClaimBytesRead(2); err != nil {
		return 0, err
	}
	v, err := d.intWire(2)
	return int16(v), err
}

// DecodeInt32 reads an int32 under the configured integer policy.
func DecodeInt32(d *Decoder) (int32, error) {
	if err := d.ClaimBytesRead(4); err != nil {
		return 0, err
	}
	v, err := d.intWire(4)
	return int32(v), err
}

// DecodeInt64 reads an int64 under the configured integer policy.
func DecodeInt64(d *Decoder) (int64, error) {
	if err := d.ClaimBytesRead(8); err != nil {
		return 0, err
	}
	return d.intWire(8)
}

// DecodeInt reads a host-sized int, carried on the wire as an int64.
func DecodeInt(d *Decoder) (int, error) {
	v, err := DecodeInt64(d)
	if err != nil {
		return 0, err
	}
	if v < math.MinInt || v > math.MaxInt {
		return 0, &OutsideIntRangeError{Value: uint64(v)}
	}
	return int(v), nil
}

// DecodeFloat32 reads an IEEE-754 float32. Floats are always fixed-width in
// the configured byte order, regardless of the integer policy.
func DecodeFloat32(d *Decoder) (float32, error) {
	if err := d.ClaimBytesRead(4); err != nil {
		return 0, err
	}
	var buf [4]byte
	if err := d.r.ReadExact(buf[:]); err != nil {
		return 0, err
	}
	return math.Float32frombits(d.config.order.Uint32(buf[:])), nil
}

// DecodeFloat64 reads an IEEE-754 float64, always fixed-width.
func DecodeFloat64(d *Decoder) (float64, error) {
	if err := d.ClaimBytesRead(8); err != nil {
		return 0, err
	}
	var buf [8]byte
	if err := d.r.ReadExact(buf[:]); err != nil {
		return 0, err
	}
	return math.Float64frombits(d.config.order.Uint64(buf[:])), nil
}

// DecodeRune reads one UTF-8 encoded code point. The leading byte determines
// the sequence width; invalid sequences fail with ErrInvalidUTF8.
func DecodeRune(d *Decoder) (rune, error) {
	var buf [4]byte
	if err := d.r.ReadExact(buf[:1]); err != nil {
		return 0, err
	}
	width := utf8SeqWidth(buf[0])
	if width == 0 {
		return 0, ErrInvalidUTF8
	}
	if err := d.ClaimBytesRead(uint64(width)); err != nil {
		return 0, err
	}
	if width == 1 {
		return rune(buf[0]), nil
	}
	if err := d.r.ReadExact(buf[1:width]); err != nil {
		return 0, err
	}
	r, n := utf8.DecodeRune(buf[:width])
	if r == utf8.RuneError && n <= 1 {
		return 0, ErrInvalidUTF8
	}
	return r, nil
}

// utf8SeqWidth returns the total byte length of a UTF-8 sequence starting
// with b, or 0 if b cannot start a sequence.
func utf8SeqWidth(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b < 0xC0:
		return 0
	case b < 0xE0:
		return 2
	case b < 0xF0:
		return 3
	case b < 0xF8:
		return 4
	}
	return 0
}
