package bindec

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- SliceReader Test Suite ---

type SliceReaderTestSuite struct {
	suite.Suite
	data []byte
	r    *SliceReader
}

func (s *SliceReaderTestSuite) SetupTest() {
	s.data = []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	s.r = NewSliceReader(s.data)
}

func (s *SliceReaderTestSuite) TestReadExact() {
	buf := make([]byte, 3)
	s.Require().NoError(s.r.ReadExact(buf))
	s.Assert().Equal([]byte{0x01, 0x02, 0x03}, buf)
	s.Assert().Equal(3, s.r.Len())
	s.Assert().Equal(2, s.r.Available())
}

func (s *SliceReaderTestSuite) TestReadExactShort() {
	buf := make([]byte, 6)
	err := s.r.ReadExact(buf)
	s.Require().ErrorIs(err, ErrUnexpectedEnd)
	// The cursor must not advance on a failed read.
	s.Assert().Equal(0, s.r.Len())
	s.Assert().Equal(5, s.r.Available())
}

func (s *SliceReaderTestSuite) TestReadByte() {
	b, err := s.r.ReadByte()
	s.Require().NoError(err)
	s.Assert().EqualValues(0x01, b)

	s.r.N = len(s.data)
	_, err = s.r.ReadByte()
	s.Assert().ErrorIs(err, ErrUnexpectedEnd)
}

func (s *SliceReaderTestSuite) TestTakeBytesAliases() {
	b, err := s.r.TakeBytes(2)
	s.Require().NoError(err)
	s.Assert().Equal([]byte{0x01, 0x02}, b)
	s.Assert().Equal(2, s.r.Len())

	// TakeBytes returns a view, not a copy.
	s.data[0] = 0xAA
	s.Assert().Equal([]byte{0xAA, 0x02}, b)

	_, err = s.r.TakeBytes(4)
	s.Assert().ErrorIs(err, ErrUnexpectedEnd)
}

func (s *SliceReaderTestSuite) TestPeekDoesNotAdvance() {
	b, err := s.r.Peek(3)
	s.Require().NoError(err)
	s.Assert().Equal([]byte{0x01, 0x02, 0x03}, b)
	s.Assert().Equal(0, s.r.Len())

	// A subsequent read starts from the same position.
	got, err := s.r.TakeBytes(3)
	s.Require().NoError(err)
	s.Assert().Equal([]byte{0x01, 0x02, 0x03}, got)

	_, err = s.r.Peek(3)
	s.Assert().ErrorIs(err, ErrUnexpectedEnd)
}

func (s *SliceReaderTestSuite) TestReset() {
	_, err := s.r.TakeBytes(4)
	s.Require().NoError(err)
	s.r.Reset()
	s.Assert().Equal(0, s.r.Len())
	s.Assert().Equal(5, s.r.Available())
}

func TestSliceReader(t *testing.T) {
	suite.Run(t, new(SliceReaderTestSuite))
}

// --- StreamReader ---

func TestStreamReader(t *testing.T) {
	t.Run("NilReader", func(t *testing.T) {
		_, err := NewStreamReader(nil)
		assert.ErrorIs(t, err, ErrNilReader)
	})

	t.Run("ReadExactAndCount", func(t *testing.T) {
		r, err := NewStreamReader(readerOf(0x01, 0x02, 0x03))
		require.NoError(t, err)

		buf := make([]byte, 2)
		require.NoError(t, r.ReadExact(buf))
		assert.Equal(t, []byte{0x01, 0x02}, buf)
		assert.EqualValues(t, 2, r.Count())

		b, err := r.ReadByte()
		require.NoError(t, err)
		assert.EqualValues(t, 0x03, b)
		assert.EqualValues(t, 3, r.Count())
	})

	t.Run("EOFMapsToUnexpectedEnd", func(t *testing.T) {
		r, err := NewStreamReader(readerOf())
		require.NoError(t, err)
		assert.ErrorIs(t, r.ReadExact(make([]byte, 1)), ErrUnexpectedEnd)
	})

	t.Run("PartialReadMapsToUnexpectedEnd", func(t *testing.T) {
		r, err := NewStreamReader(readerOf(0x01, 0x02))
		require.NoError(t, err)
		assert.ErrorIs(t, r.ReadExact(make([]byte, 4)), ErrUnexpectedEnd)
	})

	t.Run("ErrorIsLatched", func(t *testing.T) {
		r, err := NewStreamReader(readerOf(0x01))
		require.NoError(t, err)

		require.Error(t, r.ReadExact(make([]byte, 2)))
		firstErr := r.Err()
		require.Error(t, firstErr)

		// Subsequent reads are no-ops returning the latched error.
		assert.Equal(t, firstErr, r.ReadExact(make([]byte, 1)))
		assert.Equal(t, firstErr, r.Err())
	})
}

func TestZstdReader(t *testing.T) {
	cfg := Standard()
	wire := appendStringWire(cfg, nil, "compressed payload")

	var compressed bytes.Buffer
	zw, err := zstd.NewWriter(&compressed)
	require.NoError(t, err)
	_, err = zw.Write(wire)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	r, err := NewZstdReader(&compressed)
	require.NoError(t, err)
	defer r.Close()

	d, err := NewDecoder(r, cfg)
	require.NoError(t, err)
	s, err := DecodeString(d)
	require.NoError(t, err)
	assert.Equal(t, "compressed payload", s)

	_, err = NewZstdReader(nil)
	assert.ErrorIs(t, err, ErrNilReader)
}
