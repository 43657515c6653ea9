// Package schema loads .quops JSON schema documents into a
// field.Field tree, resolving named dependencies recursively and
// rejecting dependency cycles.
package schema

import "github.com/duskcode/quops/pkg/field"

// Schema is either a *RecordSchema or a *EnumSchema.
type Schema interface {
	isSchema()
}

// RecordSchema is a schema whose wire shape is an ordered list of
// fields, each possibly drawn from a resolved dependency.
type RecordSchema struct {
	// Fields are the record's fields, in schema declaration order.
	Fields []field.Field
}

func (*RecordSchema) isSchema() {}

// Bits is the sum of the record's field widths (no record-level
// nullable bit: a top-level schema is never itself nullable).
func (s *RecordSchema) Bits() uint32 {
	var total uint32
	for _, f := range s.Fields {
		total += f.Bits()
	}
	return total
}

// EnumSchema is a schema whose wire shape is a single ordinal selecting
// one of an ordered list of variants. The first variant is ordinal 0.
type EnumSchema struct {
	Variants []string
}

func (*EnumSchema) isSchema() {}
