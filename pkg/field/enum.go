package field

import (
	"fmt"
	"math/bits"
)

// EnumField is a field whose value is one of a fixed, ordered set of
// variants (cardinality at most 256, so the ordinal fits a byte).
type EnumField struct {
	base
	Variants uint16 // 1..256, stored wide enough to represent 256 itself
}

// NewEnumField constructs an EnumField. variantCount must be in [1, 256]
// per the redesigned rule in DESIGN.md (the distilled spec leaves a
// zero-variant enum undefined; quops rejects it outright).
func NewEnumField(name string, variantCount int, nullable bool) (*EnumField, error) {
	if variantCount < 1 || variantCount > 256 {
		return nil, fmt.Errorf("field %q: enum variant count %d is outside [1, 256]", name, variantCount)
	}
	width := enumPayloadBits(variantCount) + nullBit(nullable)
	if err := checkBits(name, width); err != nil {
		return nil, err
	}
	return &EnumField{
		base:     base{name: name, bits: width, nullable: nullable},
		Variants: uint16(variantCount),
	}, nil
}

func (f *EnumField) IsPrimitive() bool { return true }

// PayloadBits is the ordinal width, excluding the nullable bit.
func (f *EnumField) PayloadBits() uint32 {
	return f.Bits() - nullBit(f.Nullable())
}

// enumPayloadBits computes 8 - leading_zeros(variantCount) over an
// 8-bit count, matching the distilled spec's formula exactly (variants
// == 256 is handled specially since it does not fit a uint8).
func enumPayloadBits(variantCount int) uint32 {
	if variantCount == 256 {
		return 8
	}
	return uint32(8 - bits.LeadingZeros8(uint8(variantCount)))
}
