package codegen

import (
	"fmt"
	"go/types"

	"github.com/duskcode/quops/pkg/field"
	"github.com/duskcode/quops/pkg/schema"
)

// CompatError reports a mismatch between a .quops schema and the Go
// type it annotates, naming the offending field so the author can find
// the mistake without re-reading the generator.
type CompatError struct {
	Type  string
	Field string
	Msg   string
}

func (e *CompatError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("codegen: %s: field %q: %s", e.Type, e.Field, e.Msg)
	}
	return fmt.Sprintf("codegen: %s: %s", e.Type, e.Msg)
}

// ValidTypesForRange returns the Go basic-kind names whose zero-extended
// range can represent every value in [min, max], ported from
// quops_derive::utils::valid_types_for_range's ladder (narrowed: quops
// bounded ints are stored as int32, so the i128/i64 rungs of the
// original ladder are collapsed into the int32/int64 rungs here).
func ValidTypesForRange(min, max int64) []string {
	switch {
	case min >= 0 && max <= 255:
		return []string{"uint8", "uint16", "uint32", "uint64", "int16", "int32", "int64"}
	case min >= -128 && max <= 127:
		return []string{"int8", "int16", "int32", "int64"}
	case min >= 0 && max <= 65535:
		return []string{"uint16", "uint32", "uint64", "int32", "int64"}
	case min >= -32768 && max <= 32767:
		return []string{"int16", "int32", "int64"}
	case min >= 0 && max <= 4294967295:
		return []string{"uint32", "uint64", "int64"}
	default:
		return []string{"int32", "int64"}
	}
}

func contains(xs []string, x string) bool {
	for _, s := range xs {
		if s == x {
			return true
		}
	}
	return false
}

// underlyingBasic unwraps a pointer (for nullable fields) and a defined
// type down to its *types.Basic, returning ok=false for anything else
// (slices, structs, etc).
func underlyingBasic(t types.Type, nullable bool) (*types.Basic, bool) {
	if nullable {
		ptr, ok := t.(*types.Pointer)
		if !ok {
			return nil, false
		}
		t = ptr.Elem()
	}
	b, ok := t.Underlying().(*types.Basic)
	return b, ok
}

// CheckRecord verifies that st's exported fields correspond exactly
// (both directions, per distilled §4.D check 1) to rs's fields, and
// that each field's Go type is a valid host representation of its
// schema field kind. typeName is used only for error messages.
func CheckRecord(rs *schema.RecordSchema, st *types.Struct, typeName string) error {
	matched := make(map[string]bool, st.NumFields())

	for _, f := range rs.Fields {
		goName := ToPascalCase(f.Name())
		sf := findField(st, goName)
		if sf == nil {
			return &CompatError{Type: typeName, Field: f.Name(), Msg: "has no corresponding struct field"}
		}
		if err := checkFieldType(typeName, f, sf.Type()); err != nil {
			return err
		}
		matched[goName] = true
	}

	for i := 0; i < st.NumFields(); i++ {
		sf := st.Field(i)
		if !sf.Exported() {
			continue
		}
		if !matched[sf.Name()] {
			return &CompatError{Type: typeName, Field: sf.Name(), Msg: "has no corresponding schema field"}
		}
	}

	return nil
}

func findField(st *types.Struct, name string) *types.Var {
	for i := 0; i < st.NumFields(); i++ {
		if st.Field(i).Name() == name {
			return st.Field(i)
		}
	}
	return nil
}

func checkFieldType(typeName string, f field.Field, goType types.Type) error {
	switch ft := f.(type) {
	case *field.IntField:
		basic, ok := underlyingBasic(goType, ft.Nullable())
		if !ok {
			return &CompatError{Type: typeName, Field: ft.Name(), Msg: "is an int field but the struct field is not an integer type"}
		}
		if !ft.Bounded {
			if basic.Name() != "int64" {
				return &CompatError{Type: typeName, Field: ft.Name(), Msg: "is an unbounded int field; struct field must be int64"}
			}
			return nil
		}
		valid := ValidTypesForRange(int64(ft.Min), int64(ft.Max))
		if !contains(valid, basic.Name()) {
			return &CompatError{Type: typeName, Field: ft.Name(), Msg: fmt.Sprintf("has range [%d, %d]; valid struct field types are %v, got %s", ft.Min, ft.Max, valid, basic.Name())}
		}
		return nil

	case *field.BooleanField:
		basic, ok := underlyingBasic(goType, ft.Nullable())
		if !ok || basic.Kind() != types.Bool {
			return &CompatError{Type: typeName, Field: ft.Name(), Msg: "is a boolean field; struct field must be bool"}
		}
		return nil

	case *field.BytesField:
		t := goType
		if ft.Nullable() {
			ptr, ok := t.(*types.Pointer)
			if !ok {
				return &CompatError{Type: typeName, Field: ft.Name(), Msg: "is nullable bytes; struct field must be *[]byte"}
			}
			t = ptr.Elem()
		}
		slice, ok := t.(*types.Slice)
		if !ok {
			return &CompatError{Type: typeName, Field: ft.Name(), Msg: "is a bytes field; struct field must be []byte"}
		}
		if basic, ok := slice.Elem().Underlying().(*types.Basic); !ok || basic.Kind() != types.Byte && basic.Kind() != types.Uint8 {
			return &CompatError{Type: typeName, Field: ft.Name(), Msg: "is a bytes field; struct field must be []byte"}
		}
		return nil

	case *field.EnumField:
		t := goType
		if ft.Nullable() {
			ptr, ok := t.(*types.Pointer)
			if !ok {
				return &CompatError{Type: typeName, Field: ft.Name(), Msg: "is a nullable enum; struct field must be a pointer to an enum type"}
			}
			t = ptr.Elem()
		}
		named, ok := t.(*types.Named)
		if !ok {
			return &CompatError{Type: typeName, Field: ft.Name(), Msg: "is an enum field; struct field must be a named integer type"}
		}
		if _, ok := named.Underlying().(*types.Basic); !ok {
			return &CompatError{Type: typeName, Field: ft.Name(), Msg: "is an enum field; struct field's underlying type must be an integer"}
		}
		return nil

	case *field.RecordField:
		t := goType
		if ft.Nullable() {
			ptr, ok := t.(*types.Pointer)
			if !ok {
				return &CompatError{Type: typeName, Field: ft.Name(), Msg: "is a nullable record; struct field must be a pointer to a struct"}
			}
			t = ptr.Elem()
		}
		named, ok := t.(*types.Named)
		if !ok {
			return &CompatError{Type: typeName, Field: ft.Name(), Msg: "is a record field; struct field must name a struct type"}
		}
		st2, ok := named.Underlying().(*types.Struct)
		if !ok {
			return &CompatError{Type: typeName, Field: ft.Name(), Msg: "is a record field; struct field must name a struct type"}
		}
		return CheckRecord(&schema.RecordSchema{Fields: ft.Fields}, st2, named.Obj().Name())

	case *field.ArrayField:
		t := goType
		if ft.Nullable() {
			ptr, ok := t.(*types.Pointer)
			if !ok {
				return &CompatError{Type: typeName, Field: ft.Name(), Msg: "is a nullable array; struct field must be a pointer to a slice"}
			}
			t = ptr.Elem()
		}
		slice, ok := t.(*types.Slice)
		if !ok {
			return &CompatError{Type: typeName, Field: ft.Name(), Msg: "is an array field; struct field must be a slice"}
		}
		return checkFieldType(typeName, ft.Items, slice.Elem())

	default:
		return &CompatError{Type: typeName, Field: f.Name(), Msg: "has no known Go representation"}
	}
}

// CheckEnum verifies identifier-set equality between the schema's
// variants and the Go constants declared against the annotated type,
// both directions, per distilled §4.D check 7. Numeric constant values
// are irrelevant to the wire format: ordinals are assigned from the
// schema's variant order, exactly as in the teacher's bit-width
// derivation for enums.
func CheckEnum(es *schema.EnumSchema, goConsts []string, typeName string) error {
	have := make(map[string]bool, len(goConsts))
	for _, c := range goConsts {
		have[c] = true
	}
	for _, v := range es.Variants {
		if !have[v] {
			return &CompatError{Type: typeName, Msg: fmt.Sprintf("variant %q is not present in the Go type's constants", v)}
		}
	}
	want := make(map[string]bool, len(es.Variants))
	for _, v := range es.Variants {
		want[v] = true
	}
	for _, c := range goConsts {
		if !want[c] {
			return &CompatError{Type: typeName, Msg: fmt.Sprintf("constant %q is not present in the schema's variants", c)}
		}
	}
	return nil
}
