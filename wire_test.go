package bindec

import "bytes"

// Test-side wire builders. Encoding is out of scope for the package itself,
// so round-trip tests assemble wire bytes with these helpers instead.

func appendUint64Wire(cfg Config, dst []byte, v uint64) []byte {
	if cfg.IntEncoding() == VarInt {
		return AppendUvarint(dst, v)
	}
	var buf [8]byte
	cfg.ByteOrder().PutUint64(buf[:], v)
	return append(dst, buf[:]...)
}

func appendUint32Wire(cfg Config, dst []byte, v uint32) []byte {
	if cfg.IntEncoding() == VarInt {
		return AppendUvarint(dst, v)
	}
	var buf [4]byte
	cfg.ByteOrder().PutUint32(buf[:], v)
	return append(dst, buf[:]...)
}

func appendUint16Wire(cfg Config, dst []byte, v uint16) []byte {
	if cfg.IntEncoding() == VarInt {
		return AppendUvarint(dst, v)
	}
	var buf [2]byte
	cfg.ByteOrder().PutUint16(buf[:], v)
	return append(dst, buf[:]...)
}

func appendInt64Wire(cfg Config, dst []byte, v int64) []byte {
	if cfg.IntEncoding() == VarInt {
		return AppendVarint(dst, v)
	}
	return appendUint64Wire(cfg, dst, uint64(v))
}

func appendInt32Wire(cfg Config, dst []byte, v int32) []byte {
	if cfg.IntEncoding() == VarInt {
		return AppendVarint(dst, v)
	}
	return appendUint32Wire(cfg, dst, uint32(v))
}

func appendInt16Wire(cfg Config, dst []byte, v int16) []byte {
	if cfg.IntEncoding() == VarInt {
		return AppendVarint(dst, v)
	}
	return appendUint16Wire(cfg, dst, uint16(v))
}

func appendLenWire(cfg Config, dst []byte, n int) []byte {
	return appendUint64Wire(cfg, dst, uint64(n))
}

func appendBytesWire(cfg Config, dst, b []byte) []byte {
	dst = appendLenWire(cfg, dst, len(b))
	return append(dst, b...)
}

func appendStringWire(cfg Config, dst []byte, s string) []byte {
	return appendBytesWire(cfg, dst, []byte(s))
}

func appendFloat64Wire(cfg Config, dst []byte, bits uint64) []byte {
	var buf [8]byte
	cfg.ByteOrder().PutUint64(buf[:], bits)
	return append(dst, buf[:]...)
}

func appendFloat32Wire(cfg Config, dst []byte, bits uint32) []byte {
	var buf [4]byte
	cfg.ByteOrder().PutUint32(buf[:], bits)
	return append(dst, buf[:]...)
}

// allConfigs covers both integer policies under both byte orders.
func allConfigs() map[string]Config {
	return map[string]Config{
		"varint-le": Standard(),
		"varint-be": Standard().WithBigEndian(),
		"fixed-le":  Legacy(),
		"fixed-be":  Legacy().WithBigEndian(),
	}
}

func readerOf(b ...byte) *bytes.Reader {
	return bytes.NewReader(b)
}

func newSliceDecoder(data []byte, cfg Config) *Decoder {
	d, err := NewDecoder(NewSliceReader(data), cfg)
	if err != nil {
		panic(err)
	}
	return d
}
