package codegen

import (
	"fmt"
	"go/types"

	"github.com/duskcode/quops/pkg/field"
)

// encodeField emits the statements that write varExpr (a Go expression
// reading a value of the type field.Field describes) to the bit
// stream `w`, appending to `buffers` for any Bytes field reached along
// the way. It is a direct, one-for-one port of
// quops_derive::encode::generate_encode_field: the nullable wrap, the
// bounded/unbounded int split, the enum Ordinal() call, the bytes
// tail-buffer push, the array length-prefix-then-loop, and the record
// recursion all mirror that function's TokenStream construction,
// substituted for emitted Go source text instead of a token tree.
func encodeField(f field.Field, varExpr string) string {
	if f.Nullable() {
		body := encodePresent(f, "val")
		return fmt.Sprintf(`if %s != nil {
	val := *%s
	if err := w.Write(1, 1); err != nil {
		return nil, quops.WrapWriteError(%q, err)
	}
	%s
} else {
	if err := w.Write(0, 1); err != nil {
		return nil, quops.WrapWriteError(%q, err)
	}
}
`, varExpr, varExpr, f.Name(), indentBlock(body), f.Name())
	}
	return encodePresent(f, varExpr)
}

func encodePresent(f field.Field, val string) string {
	switch ft := f.(type) {
	case *field.IntField:
		if ft.Bounded {
			return fmt.Sprintf(`{
	v := int64(%s)
	if v < %d || v > %d {
		return nil, quops.NewEncodeError(quops.OutOfBounds, %q, fmt.Sprintf("value %%d out of range [%d, %d]", v))
	}
	if err := w.Write(uint64(v-(%d)), %d); err != nil {
		return nil, quops.WrapWriteError(%q, err)
	}
}
`, val, ft.Min, ft.Max, ft.Name(), ft.Min, ft.Max, ft.Min, ft.PayloadBits(), ft.Name())
		}
		return fmt.Sprintf(`{
	v := uint64(%s)
	width := uint8(64 - bits.LeadingZeros64(v))
	if err := w.Write(uint64(width), 5); err != nil {
		return nil, quops.WrapWriteError(%q, err)
	}
	if err := w.Write(v, width); err != nil {
		return nil, quops.WrapWriteError(%q, err)
	}
}
`, val, ft.Name(), ft.Name())

	case *field.BooleanField:
		return fmt.Sprintf(`{
	bit := uint64(0)
	if %s {
		bit = 1
	}
	if err := w.Write(bit, 1); err != nil {
		return nil, quops.WrapWriteError(%q, err)
	}
}
`, val, ft.Name())

	case *field.EnumField:
		return fmt.Sprintf(`if err := w.Write(%s.Ordinal(), %d); err != nil {
	return nil, quops.WrapWriteError(%q, err)
}
`, val, ft.PayloadBits(), ft.Name())

	case *field.BytesField:
		return fmt.Sprintf(`{
	b := %s
	if uint64(len(b)) > %d {
		return nil, quops.NewEncodeError(quops.OutOfBounds, %q, fmt.Sprintf("bytes length %%d exceeds maximum %d", len(b)))
	}
	buffers = append(buffers, b)
	if err := w.Write(uint64(len(b)), %d); err != nil {
		return nil, quops.WrapWriteError(%q, err)
	}
}
`, val, bytesMaxLength(ft), ft.Name(), bytesMaxLength(ft), ft.PayloadBits(), ft.Name())

	case *field.ArrayField:
		itemVar := "item"
		itemStmts := encodeField(ft.Items, itemVar)
		return fmt.Sprintf(`{
	items := %s
	if err := w.Write(uint64(len(items)), %d); err != nil {
		return nil, quops.WrapWriteError(%q, err)
	}
	for _, %s := range items {
		%s
	}
}
`, val, ft.PayloadBits(), ft.Name(), itemVar, indentBlock(itemStmts))

	case *field.RecordField:
		var body string
		for _, sub := range ft.Fields {
			body += encodeField(sub, val+"."+ToPascalCase(sub.Name()))
		}
		return body

	default:
		return fmt.Sprintf("// unsupported field kind for %s\n", f.Name())
	}
}

func bytesMaxLength(ft *field.BytesField) uint64 {
	if ft.Bounded {
		return uint64(ft.MaxLength)
	}
	return uint64(1) << (uint64(1) << uint64(ft.PayloadBits()))
}

// decodeField emits the statements that populate lvalue (an
// assignable Go expression) by reading from the bit stream `r`,
// draining the tail region via `tailEnd` for any Bytes field reached
// along the way. goType is the Go static type of lvalue, needed to
// allocate nullable pointees and to name nested record/enum types;
// zeroExpr is the zero-value literal this function returns alongside
// an error (e.g. "Match{}"). Mirrors
// quops_derive::decode::generate_decode_field.
func decodeField(f field.Field, goType types.Type, lvalue, zeroExpr string, qual types.Qualifier) string {
	if f.Nullable() {
		ptr := goType.(*types.Pointer)
		elemType := ptr.Elem()
		elemStr := types.TypeString(elemType, qual)
		body := decodePresent(f, elemType, "tmp", zeroExpr, qual)
		return fmt.Sprintf(`{
	present, err := r.Read(1)
	if err != nil {
		return %s, quops.WrapReadError(%q, err)
	}
	if present == 1 {
		var tmp %s
		%s
		%s = &tmp
	} else {
		%s = nil
	}
}
`, zeroExpr, f.Name(), elemStr, indentBlock(body), lvalue, lvalue)
	}
	return decodePresent(f, goType, lvalue, zeroExpr, qual)
}

func decodePresent(f field.Field, goType types.Type, lvalue, zeroExpr string, qual types.Qualifier) string {
	switch ft := f.(type) {
	case *field.IntField:
		goTypeStr := types.TypeString(goType, qual)
		if ft.Bounded {
			return fmt.Sprintf(`{
	raw, err := r.Read(%d)
	if err != nil {
		return %s, quops.WrapReadError(%q, err)
	}
	v := int64(raw) + (%d)
	if v < %d || v > %d {
		return %s, quops.NewDecodeError(quops.DecodeOutOfBounds, %q, fmt.Sprintf("value %%d out of range [%d, %d]", v))
	}
	%s = %s(v)
}
`, ft.PayloadBits(), zeroExpr, ft.Name(), ft.Min, ft.Min, ft.Max, zeroExpr, ft.Name(), ft.Min, ft.Max, lvalue, goTypeStr)
		}
		return fmt.Sprintf(`{
	width, err := r.Read(5)
	if err != nil {
		return %s, quops.WrapReadError(%q, err)
	}
	v, err := r.Read(uint8(width))
	if err != nil {
		return %s, quops.WrapReadError(%q, err)
	}
	%s = %s(v)
}
`, zeroExpr, ft.Name(), zeroExpr, ft.Name(), lvalue, goTypeStr)

	case *field.BooleanField:
		return fmt.Sprintf(`{
	v, err := r.Read(1)
	if err != nil {
		return %s, quops.WrapReadError(%q, err)
	}
	%s = v == 1
}
`, zeroExpr, ft.Name(), lvalue)

	case *field.EnumField:
		enumType := goType
		if ptr, ok := goType.(*types.Pointer); ok {
			enumType = ptr.Elem()
		}
		named := enumType.(*types.Named)
		decodeFn := "quopsDecode" + named.Obj().Name()
		return fmt.Sprintf(`{
	ordinal, err := r.Read(%d)
	if err != nil {
		return %s, quops.WrapReadError(%q, err)
	}
	value, err := %s(ordinal)
	if err != nil {
		return %s, err
	}
	%s = value
}
`, ft.PayloadBits(), zeroExpr, ft.Name(), decodeFn, zeroExpr, lvalue)

	case *field.BytesField:
		return fmt.Sprintf(`{
	length, err := r.Read(%d)
	if err != nil {
		return %s, quops.WrapReadError(%q, err)
	}
	if uint64(tailEnd) < length {
		return %s, quops.NewDecodeError(quops.NotEnoughBytes, %q, "not enough bytes in tail region")
	}
	start := tailEnd - int(length)
	%s = append([]byte(nil), data[start:tailEnd]...)
	tailEnd = start
}
`, ft.PayloadBits(), zeroExpr, ft.Name(), zeroExpr, ft.Name(), lvalue)

	case *field.ArrayField:
		slice := goType.(*types.Slice)
		elemStr := types.TypeString(slice.Elem(), qual)
		itemDecode := decodeField(ft.Items, slice.Elem(), "item", zeroExpr, qual)
		return fmt.Sprintf(`{
	length, err := r.Read(%d)
	if err != nil {
		return %s, quops.WrapReadError(%q, err)
	}
	items := make([]%s, 0, length)
	for i := uint64(0); i < length; i++ {
		var item %s
		%s
		items = append(items, item)
	}
	%s = items
}
`, ft.PayloadBits(), zeroExpr, ft.Name(), elemStr, elemStr, indentBlock(itemDecode), lvalue)

	case *field.RecordField:
		var body string
		for _, sub := range ft.Fields {
			subGoType := structFieldType(goType, ToPascalCase(sub.Name()))
			body += decodeField(sub, subGoType, lvalue+"."+ToPascalCase(sub.Name()), zeroExpr, qual)
		}
		return body

	default:
		return fmt.Sprintf("// unsupported field kind for %s\n", f.Name())
	}
}

func structFieldType(t types.Type, name string) types.Type {
	named, ok := t.(*types.Named)
	if !ok {
		return nil
	}
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil
	}
	for i := 0; i < st.NumFields(); i++ {
		if st.Field(i).Name() == name {
			return st.Field(i).Type()
		}
	}
	return nil
}

// indentBlock indents every non-empty line of s by one tab, used when
// splicing one field's emitted statements inside another's braces.
func indentBlock(s string) string {
	return Indent(s, 1)
}
