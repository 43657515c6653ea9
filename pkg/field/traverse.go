package field

// HasBytesField reports whether any BytesField appears anywhere in
// fields, recursing through Record and Array. The code generator uses
// this once per schema to decide whether decoded input needs a tail
// cursor at all.
func HasBytesField(fields []Field) bool {
	for _, f := range fields {
		switch ff := f.(type) {
		case *BytesField:
			return true
		case *RecordField:
			if HasBytesField(ff.Fields) {
				return true
			}
		case *ArrayField:
			if HasBytesField([]Field{ff.Items}) {
				return true
			}
		}
	}
	return false
}
