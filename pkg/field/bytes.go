package field

import "math/bits"

// BytesField is a dynamic byte sequence whose bytes are never inlined
// in the bit stream; only its length is. The raw bytes travel in the
// tail region (see the code generator's tail-byte emission).
type BytesField struct {
	base
	MaxLength uint32
	Bounded   bool
}

// NewBytesField constructs a BytesField. If bounded is false, maxLength
// is ignored and the length prefix uses the 5-bit width-prefix tag.
func NewBytesField(name string, maxLength uint32, bounded, nullable bool) (*BytesField, error) {
	var width uint32
	if bounded {
		width = uint32(bits.Len32(maxLength))
	} else {
		width = unboundedIntWidthTag
	}
	width += nullBit(nullable)
	if err := checkBits(name, width); err != nil {
		return nil, err
	}
	return &BytesField{
		base:      base{name: name, bits: width, nullable: nullable},
		MaxLength: maxLength,
		Bounded:   bounded,
	}, nil
}

func (f *BytesField) IsPrimitive() bool { return true }

// PayloadBits is the width of the length prefix, excluding the nullable bit.
func (f *BytesField) PayloadBits() uint32 {
	return f.Bits() - nullBit(f.Nullable())
}
