package bindec

import "golang.org/x/exp/constraints"

// maxVarintLen is the longest LEB128 encoding of a 64-bit value: ten bytes,
// the last carrying a single payload bit.
const maxVarintLen = 10

// decodeUvarint reads one LEB128-encoded unsigned integer from r. Truncation
// inside the sequence surfaces as the reader's ErrUnexpectedEnd; an encoding
// that would need more than 64 bits fails with ErrVarintOverflow.
func decodeUvarint(r Reader) (uint64, error) {
	var x uint64
	var s uint
	for i := 0; i < maxVarintLen; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		if b < 0x80 {
			if i == maxVarintLen-1 && b > 1 {
				return 0, ErrVarintOverflow
			}
			return x | uint64(b)<<s, nil
		}
		x |= uint64(b&0x7f) << s
		s += 7
	}
	return 0, ErrVarintOverflow
}

// unzigzag undoes the zigzag mapping used for signed integers under VarInt.
func unzigzag(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// AppendUvarint appends the LEB128 encoding of x to dst.
func AppendUvarint[T constraints.Unsigned](dst []byte, x T) []byte {
	v := uint64(x)
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// AppendVarint appends the zigzag LEB128 encoding of x to dst.
func AppendVarint[T constraints.Signed](dst []byte, x T) []byte {
	v := int64(x)
	return AppendUvarint(dst, uint64(v<<1)^uint64(v>>63))
}
