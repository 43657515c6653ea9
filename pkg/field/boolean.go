package field

// BooleanField is a single-bit boolean payload.
type BooleanField struct {
	base
}

// NewBooleanField constructs a BooleanField.
func NewBooleanField(name string, nullable bool) *BooleanField {
	return &BooleanField{base{name: name, bits: 1 + nullBit(nullable), nullable: nullable}}
}

func (f *BooleanField) IsPrimitive() bool { return true }
