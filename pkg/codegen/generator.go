// Package codegen turns a loaded .quops schema plus the Go type it
// annotates into the type's Encode/Decode methods. It mirrors the
// distilled spec's proc-macro pipeline (quops_derive::encode,
// quops_derive::decode) as an explicit go:generate step, since Go has
// no procedural macros: Scan walks go/packages output to find
// annotated declarations, CheckRecord/CheckEnum verify the schema against
// the struct or enum shape, and GenerateRecord/GenerateEnum emit the
// Go source implementing the wire format described in pkg/field.
package codegen

import (
	"fmt"
	"go/types"
	"strings"

	"github.com/duskcode/quops/pkg/field"
	"github.com/duskcode/quops/pkg/schema"
)

// Generator drives code generation for one annotated Go type at a time.
type Generator struct{}

// NewGenerator returns a ready-to-use Generator. It carries no state:
// every call to GenerateRecord/GenerateEnum is independent.
func NewGenerator() *Generator { return &Generator{} }

// localQualifier returns a types.Qualifier that prints types defined
// in pkgPath unqualified and types from any other package qualified by
// that package's name. The generated file's import block never imports
// those other packages, so only record/array/enum dependency types that
// live in the same package as the root annotated type yield generated
// code that compiles; types from other packages are not rejected here.
func localQualifier(pkgPath string) types.Qualifier {
	return func(p *types.Package) string {
		if p.Path() == pkgPath {
			return ""
		}
		return p.Name()
	}
}

// GenerateRecord emits Go source defining (v TypeName) Encode() and
// DecodeTypeName(data []byte) for a record-schema target.
func (g *Generator) GenerateRecord(t *Target, rs *schema.RecordSchema) (string, error) {
	st, ok := t.Named.Underlying().(*types.Struct)
	if !ok {
		return "", fmt.Errorf("codegen: %s: quops:schema record directive on a non-struct type", t.TypeName)
	}
	if err := CheckRecord(rs, st, t.TypeName); err != nil {
		return "", err
	}

	qual := localQualifier(t.PkgPath)
	hasBytes := field.HasBytesField(rs.Fields)

	var encodeBody strings.Builder
	for _, f := range rs.Fields {
		encodeBody.WriteString(encodeField(f, "v."+ToPascalCase(f.Name())))
	}

	var decodeBody strings.Builder
	zeroExpr := t.TypeName + "{}"
	for _, f := range rs.Fields {
		goFieldType := structFieldType(t.Named, ToPascalCase(f.Name()))
		decodeBody.WriteString(decodeField(f, goFieldType, "result."+ToPascalCase(f.Name()), zeroExpr, qual))
	}

	var body strings.Builder
	fmt.Fprintf(&body, "// Encode implements quops.Encoder for %s.\nfunc (v %s) Encode() ([]byte, error) {\n", t.TypeName, t.TypeName)
	body.WriteString(Indent(capacityStatements(rs), 1))
	body.WriteString("\n\tw := bitstream.NewWriter(capacity)\n")
	if hasBytes {
		body.WriteString("\tvar buffers [][]byte\n")
	}
	body.WriteString(Indent(encodeBody.String(), 1))
	if hasBytes {
		body.WriteString("\n\tbin := w.Bytes()\n\tfor i := len(buffers) - 1; i >= 0; i-- {\n\t\tbin = append(bin, buffers[i]...)\n\t}\n\treturn bin, nil\n}\n\n")
	} else {
		body.WriteString("\n\treturn w.Bytes(), nil\n}\n\n")
	}

	fmt.Fprintf(&body, "// Decode%s implements the decode half of quops.Encoder for %s.\nfunc Decode%s(data []byte) (%s, error) {\n", t.TypeName, t.TypeName, t.TypeName, t.TypeName)
	body.WriteString("\tr := bitstream.NewReader(data)\n")
	fmt.Fprintf(&body, "\tvar result %s\n", t.TypeName)
	if hasBytes {
		body.WriteString("\ttailEnd := len(data)\n")
	}
	body.WriteString(Indent(decodeBody.String(), 1))
	body.WriteString("\n\treturn result, nil\n}\n")

	var out strings.Builder
	fmt.Fprintf(&out, "// Code generated by quopsgen. DO NOT EDIT.\n// Source: %s\n\n", t.SchemaPath)
	fmt.Fprintf(&out, "package %s\n\n", t.PkgName)
	out.WriteString(importBlock(body.String()))
	out.WriteString(body.String())

	return out.String(), nil
}

// importBlock renders the import block for a generated file, naming
// only the standard-library packages the emitted body actually uses:
// a schema with no unbounded int and no bounded/bytes range check
// never needs math/bits or fmt, and an unused import is a compile
// error.
func importBlock(body string) string {
	var lines []string
	if strings.Contains(body, "fmt.") {
		lines = append(lines, "\t\"fmt\"")
	}
	if strings.Contains(body, "bits.") {
		lines = append(lines, "\t\"math/bits\"")
	}
	lines = append(lines, "", "\t\"github.com/duskcode/quops/pkg/bitstream\"", "\t\"github.com/duskcode/quops/pkg/quops\"")
	return "import (\n" + strings.Join(lines, "\n") + "\n)\n\n"
}

// GenerateEnum emits Go source defining (v TypeName) Ordinal() and
// quopsDecodeTypeName(ordinal uint64) for an enum-schema target.
func (g *Generator) GenerateEnum(t *Target, es *schema.EnumSchema) (string, error) {
	if err := CheckEnum(es, t.EnumConsts, t.TypeName); err != nil {
		return "", err
	}

	var out strings.Builder
	fmt.Fprintf(&out, "// Code generated by quopsgen. DO NOT EDIT.\n// Source: %s\n\n", t.SchemaPath)
	fmt.Fprintf(&out, "package %s\n\n", t.PkgName)
	out.WriteString("import (\n\t\"fmt\"\n\n\t\"github.com/duskcode/quops/pkg/quops\"\n)\n\n")

	fmt.Fprintf(&out, "// Ordinal implements quops.Enumerator for %s.\nfunc (v %s) Ordinal() uint64 {\n\tswitch v {\n", t.TypeName, t.TypeName)
	for i, variant := range es.Variants {
		fmt.Fprintf(&out, "\tcase %s:\n\t\treturn %d\n", variant, i)
	}
	out.WriteString("\tdefault:\n\t\treturn 0\n\t}\n}\n\n")

	fmt.Fprintf(&out, "func quopsDecode%s(ordinal uint64) (%s, error) {\n\tswitch ordinal {\n", t.TypeName, t.TypeName)
	for i, variant := range es.Variants {
		fmt.Fprintf(&out, "\tcase %d:\n\t\treturn %s, nil\n", i, variant)
	}
	fmt.Fprintf(&out, "\tdefault:\n\t\treturn %s(0), quops.NewDecodeError(quops.DecodeOutOfBounds, \"\", fmt.Sprintf(\"invalid %s ordinal: %%d\", ordinal))\n\t}\n}\n", t.TypeName, t.TypeName)

	return out.String(), nil
}

// capacityStatements emits the capacity pre-computation that sizes
// bitstream.NewWriter's initial buffer: schema.Bits() plus, for each
// top-level array field, its item width times the field's runtime
// length, rounded up to bytes, plus each top-level bytes field's
// runtime length — the same hint-only formula as distilled §4.D's
// total_bytes, scoped (like the original) to top-level fields only.
func capacityStatements(rs *schema.RecordSchema) string {
	var b strings.Builder
	fmt.Fprintf(&b, "capacity := %d\n", rs.Bits())
	for _, f := range rs.Fields {
		if arr, ok := f.(*field.ArrayField); ok {
			fieldExpr := "v." + ToPascalCase(f.Name())
			b.WriteString(capacityLenStatement(fieldExpr, arr.Nullable(), fmt.Sprintf("%d * ", arr.Items.Bits())))
		}
	}
	b.WriteString("capacity = (capacity + 7) / 8\n")
	for _, f := range rs.Fields {
		if bf, ok := f.(*field.BytesField); ok {
			fieldExpr := "v." + ToPascalCase(f.Name())
			b.WriteString(capacityLenStatement(fieldExpr, bf.Nullable(), ""))
		}
	}
	return b.String()
}

// capacityLenStatement emits the `capacity += ...len(fieldExpr)` line
// for an array or bytes field's runtime-length contribution. A
// nullable field is a Go pointer (*[]T), so len() needs a nil guard
// and a dereference; a non-nullable field is a plain slice and len()
// applies directly.
func capacityLenStatement(fieldExpr string, nullable bool, multiplier string) string {
	if !nullable {
		return fmt.Sprintf("capacity += %slen(%s)\n", multiplier, fieldExpr)
	}
	return fmt.Sprintf("if %s != nil {\n\tcapacity += %slen(*%s)\n}\n", fieldExpr, multiplier, fieldExpr)
}
