package bindec

import "encoding/binary"

var (
	BE = binary.BigEndian
	LE = binary.LittleEndian
)

// IntEncoding selects the wire representation used for multi-byte integers.
// The choice applies to an entire message; fixed and variable encodings are
// never mixed within one decode tree.
type IntEncoding uint8

const (
	// VarInt encodes integers as LEB128: seven payload bits per byte with the
	// high bit as a continuation flag. Signed types are zigzag-mapped first.
	VarInt IntEncoding = iota
	// FixedInt encodes integers at their full width in the configured byte order.
	FixedInt
)

// Config is the immutable wire-format policy shared by a whole decode tree:
// byte order, integer representation and an optional cumulative limit on the
// decoded in-memory size. The zero value is unusable; start from Standard or
// Legacy and chain With* methods.
type Config struct {
	order    binary.ByteOrder
	ints     IntEncoding
	limit    uint64
	hasLimit bool
}

// Standard returns the default policy: little-endian, variable-length
// integers, no limit.
func Standard() Config {
	return Config{order: LE, ints: VarInt}
}

// Legacy returns the pre-varint policy: little-endian, fixed-width integers,
// no limit.
func Legacy() Config {
	return Config{order: LE, ints: FixedInt}
}

// WithBigEndian sets the byte order for fixed-width values and returns the
// configured copy for chaining.
func (c Config) WithBigEndian() Config {
	c.order = BE
	return c
}

// WithLittleEndian sets the byte order for fixed-width values.
func (c Config) WithLittleEndian() Config {
	c.order = LE
	return c
}

// WithFixedIntEncoding selects full-width integer encoding.
func (c Config) WithFixedIntEncoding() Config {
	c.ints = FixedInt
	return c
}

// WithVariableIntEncoding selects LEB128 integer encoding.
func (c Config) WithVariableIntEncoding() Config {
	c.ints = VarInt
	return c
}

// WithLimit caps the cumulative decoded size at n bytes. Decoding input that
// declares more than this fails with ErrLimitExceeded before allocating.
func (c Config) WithLimit(n uint64) Config {
	c.limit = n
	c.hasLimit = true
	return c
}

// WithNoLimit removes the decoded-size cap.
func (c Config) WithNoLimit() Config {
	c.limit = 0
	c.hasLimit = false
	return c
}

// ByteOrder returns the byte order used for fixed-width values.
func (c Config) ByteOrder() binary.ByteOrder { return c.order }

// IntEncoding returns the integer representation in effect.
func (c Config) IntEncoding() IntEncoding { return c.ints }

// Limit returns the decoded-size cap and whether one is configured.
func (c Config) Limit() (uint64, bool) { return c.limit, c.hasLimit }
