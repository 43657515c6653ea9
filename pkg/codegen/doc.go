package codegen

import (
	"fmt"
	"strings"

	"github.com/duskcode/quops/pkg/field"
	"github.com/duskcode/quops/pkg/schema"
)

// EmitDoc renders a human-readable layout diagram for a resolved
// schema: each field's bit offset and width, and the tail region's
// reverse-encounter order for Bytes fields. It is not a second target
// language (Rust/TypeScript emission is explicitly out of scope); it
// exists purely to let two independently generated peers compare wire
// layouts without re-deriving bit offsets by hand.
func EmitDoc(name string, s schema.Schema) string {
	var b strings.Builder
	switch v := s.(type) {
	case *schema.RecordSchema:
		fmt.Fprintf(&b, "record %s (%d bits)\n", name, v.Bits())
		tailCount := countBytesFields(v.Fields)
		offset := uint32(0)
		tailIndex := 0
		emitRecordDoc(&b, v.Fields, offset, 0, &tailIndex, tailCount)
	case *schema.EnumSchema:
		fmt.Fprintf(&b, "enum %s (%d variants)\n", name, len(v.Variants))
		for i, variant := range v.Variants {
			fmt.Fprintf(&b, "  %-3d %s\n", i, variant)
		}
	}
	return b.String()
}

func countBytesFields(fields []field.Field) int {
	n := 0
	for _, f := range fields {
		switch ft := f.(type) {
		case *field.BytesField:
			n++
		case *field.RecordField:
			n += countBytesFields(ft.Fields)
		}
	}
	return n
}

func emitRecordDoc(b *strings.Builder, fields []field.Field, offset uint32, depth int, tailIndex *int, tailCount int) uint32 {
	indent := strings.Repeat("  ", depth+1)
	for _, f := range fields {
		switch ft := f.(type) {
		case *field.RecordField:
			fmt.Fprintf(b, "%s[%4d..%4d) %-20s record\n", indent, offset, offset+f.Bits(), f.Name())
			offset = emitRecordDoc(b, ft.Fields, offset+nullBitOffset(f), depth+1, tailIndex, tailCount)
			continue
		case *field.ArrayField:
			fmt.Fprintf(b, "%s[%4d..%4d) %-20s array (item %d bits)\n", indent, offset, offset+f.Bits(), f.Name(), ft.Items.Bits())
		case *field.BytesField:
			fmt.Fprintf(b, "%s[%4d..%4d) %-20s bytes (tail #%d of %d, reverse order)\n", indent, offset, offset+f.Bits(), f.Name(), *tailIndex, tailCount)
			*tailIndex++
		case *field.EnumField:
			fmt.Fprintf(b, "%s[%4d..%4d) %-20s enum (%d variants)\n", indent, offset, offset+f.Bits(), f.Name(), ft.Variants)
		default:
			fmt.Fprintf(b, "%s[%4d..%4d) %-20s %T\n", indent, offset, offset+f.Bits(), f.Name(), f)
		}
		offset += f.Bits()
	}
	return offset
}

func nullBitOffset(f field.Field) uint32 {
	if f.Nullable() {
		return 1
	}
	return 0
}
