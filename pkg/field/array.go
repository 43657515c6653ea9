package field

import "math/bits"

// Unbounded is the sentinel MaxLength meaning "no declared bound" —
// the length prefix uses the 5-bit width-prefix tag, same as an
// unbounded Int or Bytes field.
const Unbounded = ^uint32(0)

// ArrayField is a dynamic sequence of a single Items field. Bits
// reports only the length-prefix width (plus the record-level nullable
// bit); per-item bits are charged at encode/decode time against the
// array's actual runtime length, since that is not known statically.
type ArrayField struct {
	base
	MaxLength uint32
	Items     Field
}

// NewArrayField constructs an ArrayField. Pass Unbounded for maxLength
// to mean "no declared bound".
func NewArrayField(name string, maxLength uint32, items Field, nullable bool) (*ArrayField, error) {
	var width uint32
	if maxLength == Unbounded {
		width = unboundedIntWidthTag
	} else {
		width = uint32(bits.Len32(maxLength))
	}
	width += nullBit(nullable)
	if err := checkBits(name, width); err != nil {
		return nil, err
	}
	return &ArrayField{
		base:      base{name: name, bits: width, nullable: nullable},
		MaxLength: maxLength,
		Items:     items,
	}, nil
}

func (f *ArrayField) IsPrimitive() bool { return false }

// PayloadBits is the length-prefix width, excluding the nullable bit.
func (f *ArrayField) PayloadBits() uint32 {
	return f.Bits() - nullBit(f.Nullable())
}

// Bounded reports whether MaxLength is a declared bound rather than Unbounded.
func (f *ArrayField) Bounded() bool { return f.MaxLength != Unbounded }
