package bitstream_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duskcode/quops/pkg/bitstream"
)

func TestWriteReadRoundTripSingleField(t *testing.T) {
	w := bitstream.NewWriter(1)
	require.NoError(t, w.Write(2, 2))
	require.Equal(t, []byte{0x02}, w.Bytes())

	r := bitstream.NewReader(w.Bytes())
	v, err := r.Read(2)
	require.NoError(t, err)
	require.Equal(t, uint64(2), v)
}

func TestWriteReadRoundTripMultipleFields(t *testing.T) {
	w := bitstream.NewWriter(4)
	require.NoError(t, w.Write(3, 3))  // length
	require.NoError(t, w.Write(1, 2))  // item 0
	require.NoError(t, w.Write(2, 2))  // item 1
	require.NoError(t, w.Write(3, 2))  // item 2
	require.Equal(t, []byte{0b11001011, 0b00000001}, w.Bytes())

	r := bitstream.NewReader(w.Bytes())
	length, err := r.Read(3)
	require.NoError(t, err)
	require.Equal(t, uint64(3), length)
	for _, want := range []uint64{1, 2, 3} {
		v, err := r.Read(2)
		require.NoError(t, err)
		require.Equal(t, want, v)
	}
}

func TestWriteReadRoundTripAcrossSixtyFourBitBoundary(t *testing.T) {
	w := bitstream.NewWriter(16)
	var written []uint64
	for i := 0; i < 20; i++ {
		v := uint64(i % 7)
		require.NoError(t, w.Write(v, 5))
		written = append(written, v)
	}

	r := bitstream.NewReader(w.Bytes())
	for _, want := range written {
		v, err := r.Read(5)
		require.NoError(t, err)
		require.Equal(t, want, v)
	}
}

func TestWriteFullWidthValue(t *testing.T) {
	w := bitstream.NewWriter(8)
	require.NoError(t, w.Write(^uint64(0), 64))

	r := bitstream.NewReader(w.Bytes())
	v, err := r.Read(64)
	require.NoError(t, err)
	require.Equal(t, ^uint64(0), v)
}

func TestWriteRejectsValueTooLargeForCount(t *testing.T) {
	w := bitstream.NewWriter(1)
	err := w.Write(4, 2)
	require.ErrorIs(t, err, bitstream.ErrValueTooLarge)
}

func TestWriteRejectsCountAboveSixtyFour(t *testing.T) {
	w := bitstream.NewWriter(1)
	err := w.Write(0, 65)
	require.ErrorIs(t, err, bitstream.ErrInvalidBitCount)
}

func TestReadRejectsCountAboveSixtyFour(t *testing.T) {
	r := bitstream.NewReader([]byte{0x00})
	_, err := r.Read(65)
	require.ErrorIs(t, err, bitstream.ErrInvalidBitCount)
}

func TestReadRejectsNotEnoughBits(t *testing.T) {
	r := bitstream.NewReader([]byte{0xFF})
	_, err := r.Read(9)
	require.ErrorIs(t, err, bitstream.ErrNotEnoughBits)
}

func TestZeroCountWriteAndReadAreNoops(t *testing.T) {
	w := bitstream.NewWriter(1)
	require.NoError(t, w.Write(0, 0))
	require.Equal(t, []byte{}, w.Bytes())

	r := bitstream.NewReader([]byte{0xAB})
	v, err := r.Read(0)
	require.NoError(t, err)
	require.Equal(t, uint64(0), v)
	require.Equal(t, 8, r.BitsRemaining())
}

func TestBytesIsNonDestructiveAndRepeatable(t *testing.T) {
	w := bitstream.NewWriter(1)
	require.NoError(t, w.Write(5, 4))
	first := w.Bytes()
	second := w.Bytes()
	require.Equal(t, first, second)

	require.NoError(t, w.Write(1, 1))
	require.NotEqual(t, first, w.Bytes())
}

func TestBitsRemainingDecreasesAsReadProgresses(t *testing.T) {
	r := bitstream.NewReader([]byte{0xFF, 0xFF})
	require.Equal(t, 16, r.BitsRemaining())
	_, err := r.Read(10)
	require.NoError(t, err)
	require.Equal(t, 6, r.BitsRemaining())
}
