package fixture

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duskcode/quops/pkg/bitstream"
)

func TestSignalEncodesOrdinalPaddedToByte(t *testing.T) {
	// Signal has three variants, so its ordinal occupies 2 bits.
	w := bitstream.NewWriter(1)
	require.NoError(t, w.Write(Yellow.Ordinal(), 2))
	out := w.Bytes()
	require.Equal(t, []byte{0x01}, out)

	decoded, err := quopsDecodeSignal(uint64(out[0]))
	require.NoError(t, err)
	require.Equal(t, Yellow, decoded)
}

func TestDecodeRejectsEnumOrdinalOutOfRange(t *testing.T) {
	_, err := quopsDecodeSignal(3)
	require.Error(t, err)
}

func TestScoreBoundedIntRoundTrip(t *testing.T) {
	out, err := Score{Value: 12}.Encode()
	require.NoError(t, err)
	require.Equal(t, []byte{0x02}, out)

	decoded, err := DecodeScore(out)
	require.NoError(t, err)
	require.Equal(t, int32(12), decoded.Value)
}

func TestScoreBoundaryValues(t *testing.T) {
	min, err := Score{Value: 10}.Encode()
	require.NoError(t, err)
	require.Equal(t, []byte{0x00}, min)

	max, err := Score{Value: 13}.Encode()
	require.NoError(t, err)
	require.Equal(t, []byte{0x03}, max)
}

func TestScoreRejectsOutOfRange(t *testing.T) {
	_, err := Score{Value: 20}.Encode()
	require.Error(t, err)
	_, err = Score{Value: 9}.Encode()
	require.Error(t, err)
}

func TestNullableScorePresent(t *testing.T) {
	v := int32(11)
	out, err := NullableScore{Value: &v}.Encode()
	require.NoError(t, err)
	require.Equal(t, []byte{0x03}, out)

	decoded, err := DecodeNullableScore(out)
	require.NoError(t, err)
	require.NotNil(t, decoded.Value)
	require.Equal(t, int32(11), *decoded.Value)
}

func TestNullableScoreAbsent(t *testing.T) {
	out, err := NullableScore{Value: nil}.Encode()
	require.NoError(t, err)
	require.Equal(t, []byte{0x00}, out)

	decoded, err := DecodeNullableScore(out)
	require.NoError(t, err)
	require.Nil(t, decoded.Value)
}

func TestBuffersTailOrderingIsReverseOfEncounterOrder(t *testing.T) {
	v := Buffers{A: []byte{0xAA}, B: []byte{0xBB, 0xCC}}
	out, err := v.Encode()
	require.NoError(t, err)
	require.Equal(t, []byte{0b00100001, 0xBB, 0xCC, 0xAA}, out)

	decoded, err := DecodeBuffers(out)
	require.NoError(t, err)
	require.Equal(t, v, decoded)
}

func TestBuffersEmptyBytesLeaveNoTail(t *testing.T) {
	v := Buffers{A: nil, B: nil}
	out, err := v.Encode()
	require.NoError(t, err)
	require.Len(t, out, 1)

	decoded, err := DecodeBuffers(out)
	require.NoError(t, err)
	require.Empty(t, decoded.A)
	require.Empty(t, decoded.B)
}

func TestBuffersRejectsOversizedInput(t *testing.T) {
	v := Buffers{A: make([]byte, 16)}
	_, err := v.Encode()
	require.Error(t, err)
}

func TestTagListArrayOfBoundedInts(t *testing.T) {
	v := TagList{Tags: []int32{1, 2, 3}}
	out, err := v.Encode()
	require.NoError(t, err)
	require.Equal(t, []byte{0b11001011, 0b00000001}, out)

	decoded, err := DecodeTagList(out)
	require.NoError(t, err)
	require.Equal(t, v, decoded)
}

func TestTagListEmptyArray(t *testing.T) {
	v := TagList{Tags: nil}
	out, err := v.Encode()
	require.NoError(t, err)

	decoded, err := DecodeTagList(out)
	require.NoError(t, err)
	require.Empty(t, decoded.Tags)
}

func TestDecodeRejectsShortInput(t *testing.T) {
	_, err := DecodeScore(nil)
	require.Error(t, err)
}

func TestEncodeIsDeterministicAcrossRuns(t *testing.T) {
	v := TagList{Tags: []int32{3, 2, 1, 0}}
	a, err := v.Encode()
	require.NoError(t, err)
	b, err := v.Encode()
	require.NoError(t, err)
	require.Equal(t, a, b)
}
