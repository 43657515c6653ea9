package field

import (
	"fmt"
	"math/bits"
)

// unboundedIntWidthTag is the fixed width of the length-prefix tag that
// precedes an unbounded integer's payload: the payload width itself,
// written in 5 bits (0-31), per the 5-bit width-prefix scheme.
const unboundedIntWidthTag = 5

// IntField is a signed 32-bit integer field, optionally bounded by an
// inclusive [Min, Max] range.
type IntField struct {
	base
	// Min and Max are the inclusive bounds, meaningful only if Bounded.
	Min, Max int32
	Bounded  bool
}

// NewIntField constructs a bounded IntField. min must be <= max.
func NewIntField(name string, min, max int32, nullable bool) (*IntField, error) {
	if min > max {
		return nil, fmt.Errorf("field %q: min (%d) is greater than max (%d)", name, min, max)
	}
	span := int64(max) - int64(min)
	width := uint32(bits32Len(span)) + nullBit(nullable)
	if err := checkBits(name, width); err != nil {
		return nil, err
	}
	return &IntField{
		base:    base{name: name, bits: width, nullable: nullable},
		Min:     min,
		Max:     max,
		Bounded: true,
	}, nil
}

// NewUnboundedIntField constructs an IntField with no declared range.
// Its wire representation is a 5-bit width prefix followed by a
// payload of that many bits (see the unbounded-int encoding rules in
// the code generator).
func NewUnboundedIntField(name string, nullable bool) (*IntField, error) {
	width := uint32(unboundedIntWidthTag) + nullBit(nullable)
	if err := checkBits(name, width); err != nil {
		return nil, err
	}
	return &IntField{
		base:    base{name: name, bits: width, nullable: nullable},
		Bounded: false,
	}, nil
}

func (f *IntField) IsPrimitive() bool { return true }

// PayloadBits is Bits minus the nullable presence bit: the width the
// value itself occupies once the field is known to be present.
func (f *IntField) PayloadBits() uint32 {
	return f.Bits() - nullBit(f.Nullable())
}

func bits32Len(v int64) int {
	if v <= 0 {
		return 0
	}
	return bits.Len64(uint64(v))
}
