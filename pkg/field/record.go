package field

import "fmt"

// RecordField is an ordered, named list of sub-fields. Each child
// already accounts for its own nullable bit; RecordField only adds its
// own, at the record level.
type RecordField struct {
	base
	Fields []Field
}

// NewRecordField constructs a RecordField. Sub-field names must be unique.
func NewRecordField(name string, fields []Field, nullable bool) (*RecordField, error) {
	seen := make(map[string]struct{}, len(fields))
	var sum uint32
	for _, f := range fields {
		if _, dup := seen[f.Name()]; dup {
			return nil, fmt.Errorf("record %q: duplicate sub-field name %q", name, f.Name())
		}
		seen[f.Name()] = struct{}{}
		sum += f.Bits()
	}
	width := sum + nullBit(nullable)
	if err := checkBits(name, width); err != nil {
		return nil, err
	}
	return &RecordField{
		base:   base{name: name, bits: width, nullable: nullable},
		Fields: fields,
	}, nil
}

func (f *RecordField) IsPrimitive() bool { return false }
