package bindec

import (
	"math/bits"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// Decoder owns one Reader and one Config for the lifetime of a single decode
// tree. It is constructed once per top-level decode, passed by pointer into
// every nested decode, and discarded when the top-level call returns; it must
// not be reused across decode operations or shared between goroutines, and
// after any error both the decoder and its reader are dead.
//
// The claim counter tracks how many decoded bytes the current tree has
// reserved against the configured limit. It is mutated only through
// ClaimBytesRead and UnclaimBytesRead so the balance invariant holds across
// arbitrarily deep recursion.
type Decoder struct {
	r       Reader
	br      BorrowReader // non-nil when r can alias its input
	config  Config
	claimed uint64
}

// NewDecoder creates a Decoder reading from r under cfg. If r also implements
// BorrowReader, borrowing decodes become available.
func NewDecoder(r Reader, cfg Config) (*Decoder, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	d := &Decoder{r: r, config: cfg}
	if br, ok := r.(BorrowReader); ok {
		d.br = br
	}
	return d, nil
}

// Reader returns the decoder's byte source.
func (d *Decoder) Reader() Reader { return d.r }

// BorrowReader returns the zero-copy view of the byte source, or nil when the
// source cannot alias its input.
func (d *Decoder) BorrowReader() BorrowReader { return d.br }

// Config returns the wire-format policy for this decode tree.
func (d *Decoder) Config() Config { return d.config }

// Claimed returns the current running claim total.
func (d *Decoder) Claimed() uint64 { return d.claimed }

// ClaimBytesRead reserves n bytes of decoded-value budget. Without a
// configured limit it always succeeds and leaves the counter untouched. With
// one, it fails with ErrLimitExceeded if the running total would pass the
// limit, leaving the counter unchanged so the caller can report and abort.
func (d *Decoder) ClaimBytesRead(n uint64) error {
	limit, ok := d.config.Limit()
	if !ok {
		return nil
	}
	total, carry := bits.Add64(d.claimed, n, 0)
	if carry != 0 || total > limit {
		return ErrLimitExceeded
	}
	d.claimed = total
	return nil
}

// UnclaimBytesRead returns n bytes of budget. Container decodes claim a flat
// per-element estimate up front and give one element's worth back just before
// each element decode re-claims its true cost; this keeps a single limit
// correct for nested containers without double-counting.
func (d *Decoder) UnclaimBytesRead(n uint64) {
	if n > d.claimed {
		d.claimed = 0
		return
	}
	d.claimed -= n
}

// ClaimContainer reserves length*elemSize bytes using overflow-checked
// multiplication, failing with ErrLimitExceeded on overflow rather than
// wrapping. It must be called before any allocation for a length-prefixed
// container, so a hostile length field is rejected before memory is
// committed.
func (d *Decoder) ClaimContainer(length int, elemSize uint64) error {
	if _, ok := d.config.Limit(); !ok {
		return nil
	}
	hi, lo := bits.Mul64(uint64(length), elemSize)
	if hi != 0 {
		return ErrLimitExceeded
	}
	return d.ClaimBytesRead(lo)
}

// ClaimContainerOf reserves budget for a container of length elements of T,
// charging each slot a flat in-memory size of T.
func ClaimContainerOf[T any](d *Decoder, length int) error {
	return d.ClaimContainer(length, claimUnitOf[T]())
}

// claimUnitCache avoids repeated reflection when computing per-element claim
// units. A global concurrent map keeps it safe across decoders.
var claimUnitCache = xsync.NewMap[reflect.Type, uint64]()

// claimUnitOf returns the flat per-slot budget for T: its in-memory size.
// For element types that are themselves containers this is only the header
// size; the element's own decode re-claims the rest.
func claimUnitOf[T any]() uint64 {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if size, ok := claimUnitCache.Load(t); ok {
		return size
	}
	size := uint64(t.Size())
	claimUnitCache.Store(t, size)
	return size
}
