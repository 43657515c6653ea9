package field_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duskcode/quops/pkg/field"
)

func TestIntFieldBits(t *testing.T) {
	f, err := field.NewIntField("x", 10, 13, false)
	require.NoError(t, err)
	require.Equal(t, uint32(2), f.Bits())

	f, err = field.NewIntField("x", 10, 13, true)
	require.NoError(t, err)
	require.Equal(t, uint32(3), f.Bits())
}

func TestIntFieldRejectsInvertedRange(t *testing.T) {
	_, err := field.NewIntField("x", 5, 1, false)
	require.Error(t, err)
}

func TestUnboundedIntFieldBits(t *testing.T) {
	f, err := field.NewUnboundedIntField("x", false)
	require.NoError(t, err)
	require.Equal(t, uint32(5), f.Bits())
}

func TestBooleanFieldBits(t *testing.T) {
	require.Equal(t, uint32(1), field.NewBooleanField("b", false).Bits())
	require.Equal(t, uint32(2), field.NewBooleanField("b", true).Bits())
}

func TestBytesFieldBits(t *testing.T) {
	f, err := field.NewBytesField("b", 256, true, false)
	require.NoError(t, err)
	require.Equal(t, uint32(9), f.Bits())

	f, err = field.NewBytesField("b", 0, false, false)
	require.NoError(t, err)
	require.Equal(t, uint32(5), f.Bits())
}

func TestEnumFieldBits(t *testing.T) {
	f, err := field.NewEnumField("e", 3, false)
	require.NoError(t, err)
	require.Equal(t, uint32(2), f.Bits())

	// A single-variant enum still consumes 1 bit (distilled spec §9(b)).
	f, err = field.NewEnumField("e", 1, false)
	require.NoError(t, err)
	require.Equal(t, uint32(1), f.Bits())
}

func TestEnumFieldRejectsZeroVariants(t *testing.T) {
	_, err := field.NewEnumField("e", 0, false)
	require.Error(t, err)
}

func TestRecordFieldSumsChildBits(t *testing.T) {
	a, _ := field.NewIntField("a", 0, 3, false)   // 2 bits
	b := field.NewBooleanField("b", true)         // 2 bits
	rec, err := field.NewRecordField("r", []field.Field{a, b}, true)
	require.NoError(t, err)
	require.Equal(t, uint32(5), rec.Bits()) // 2 + 2 + 1 (record nullable)
}

func TestRecordFieldRejectsDuplicateNames(t *testing.T) {
	a, _ := field.NewIntField("a", 0, 3, false)
	b, _ := field.NewIntField("a", 0, 3, false)
	_, err := field.NewRecordField("r", []field.Field{a, b}, false)
	require.Error(t, err)
}

func TestArrayFieldBits(t *testing.T) {
	items, _ := field.NewIntField("item", 0, 3, false)
	arr, err := field.NewArrayField("arr", 7, items, false)
	require.NoError(t, err)
	require.Equal(t, uint32(3), arr.Bits())

	arr, err = field.NewArrayField("arr", field.Unbounded, items, false)
	require.NoError(t, err)
	require.Equal(t, uint32(5), arr.Bits())
}

func TestHasBytesField(t *testing.T) {
	bytesField, _ := field.NewBytesField("raw", 16, true, false)
	intField, _ := field.NewIntField("x", 0, 3, false)

	require.True(t, field.HasBytesField([]field.Field{bytesField}))
	require.False(t, field.HasBytesField([]field.Field{intField}))

	arr, _ := field.NewArrayField("arr", 4, bytesField, false)
	require.True(t, field.HasBytesField([]field.Field{arr}))

	rec, _ := field.NewRecordField("rec", []field.Field{bytesField}, false)
	require.True(t, field.HasBytesField([]field.Field{rec}))
}
