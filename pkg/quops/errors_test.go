package quops_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duskcode/quops/pkg/bitstream"
	"github.com/duskcode/quops/pkg/quops"
)

func TestEncodeErrorMessage(t *testing.T) {
	err := quops.NewEncodeError(quops.OutOfBounds, "turnDuration", "value 400 outside [0, 300]")
	require.Contains(t, err.Error(), "turnDuration")
	require.Contains(t, err.Error(), "out of bounds")
}

func TestWrapReadErrorClassifiesNotEnoughBits(t *testing.T) {
	err := quops.WrapReadError("x", bitstream.ErrNotEnoughBits)
	require.Equal(t, quops.NotEnoughBits, err.Kind)
	require.True(t, errors.Is(err, bitstream.ErrNotEnoughBits))
}

func TestWrapReadErrorClassifiesInvalidBitCount(t *testing.T) {
	err := quops.WrapReadError("x", bitstream.ErrInvalidBitCount)
	require.Equal(t, quops.DecodeOutOfBounds, err.Kind)
}

func TestDecodeHelperRoundsTripThroughFunction(t *testing.T) {
	decodeFive := func(b []byte) (int, error) { return 5, nil }
	v, err := quops.Decode[int](decodeFive, nil)
	require.NoError(t, err)
	require.Equal(t, 5, v)
}
