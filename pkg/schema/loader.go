package schema

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/valyala/fastjson"

	"github.com/duskcode/quops/pkg/field"
)

// Loader loads .quops files, caching each by resolved absolute path so
// a dependency referenced from more than one schema in a single
// top-level load is only parsed once.
type Loader struct {
	cache map[string]Schema
}

// NewLoader returns an empty Loader.
func NewLoader() *Loader {
	return &Loader{cache: make(map[string]Schema)}
}

// LoadFile loads the schema at path, resolving its dependencies
// relative to path's directory.
func (l *Loader) LoadFile(path string) (Schema, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, newParseError(path, "", err.Error())
	}
	return l.load(abs, nil)
}

// LoadFile is a convenience wrapper that loads path with a fresh Loader.
func LoadFile(path string) (Schema, error) {
	return NewLoader().LoadFile(path)
}

func (l *Loader) load(absPath string, chain []string) (Schema, error) {
	for _, p := range chain {
		if p == absPath {
			return nil, &ErrCyclicDependency{Chain: append(append([]string{}, chain...), absPath)}
		}
	}
	if s, ok := l.cache[absPath]; ok {
		return s, nil
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, newParseError(absPath, "", fmt.Sprintf("failed to read file: %s", err))
	}

	var p fastjson.Parser
	doc, err := p.ParseBytes(data)
	if err != nil {
		return nil, newParseError(absPath, "", fmt.Sprintf("invalid JSON: %s", err))
	}

	typ := string(doc.GetStringBytes("type"))
	var schema Schema
	switch typ {
	case "record":
		schema, err = l.loadRecord(absPath, doc, chain)
	case "enum":
		schema, err = loadEnum(absPath, doc)
	default:
		err = newParseError(absPath, "", fmt.Sprintf("unsupported schema type %q", typ))
	}
	if err != nil {
		return nil, err
	}
	l.cache[absPath] = schema
	return schema, nil
}

func loadEnum(absPath string, doc *fastjson.Value) (Schema, error) {
	variantsArr := doc.GetArray("variants")
	if variantsArr == nil {
		return nil, newParseError(absPath, "", "enum schema missing \"variants\" array")
	}
	variants := make([]string, 0, len(variantsArr))
	for _, v := range variantsArr {
		name, err := v.StringBytes()
		if err != nil {
			return nil, newParseError(absPath, "", "variant name is not a string")
		}
		variants = append(variants, string(name))
	}
	if len(variants) == 0 {
		return nil, newParseError(absPath, "", "enum schema has zero variants")
	}
	return &EnumSchema{Variants: variants}, nil
}

func (l *Loader) loadRecord(absPath string, doc *fastjson.Value, chain []string) (Schema, error) {
	dir := filepath.Dir(absPath)
	dependencies := make(map[string]Schema)

	if depArr := doc.GetArray("dependencies"); depArr != nil {
		nextChain := append(append([]string{}, chain...), absPath)
		for _, dv := range depArr {
			name, err := dv.StringBytes()
			if err != nil {
				return nil, newParseError(absPath, "", "dependency name is not a string")
			}
			depPath := filepath.Join(dir, string(name)+".quops")
			depAbs, err := filepath.Abs(depPath)
			if err != nil {
				return nil, newParseError(absPath, "", err.Error())
			}
			depSchema, err := l.load(depAbs, nextChain)
			if err != nil {
				return nil, err
			}
			dependencies[string(name)] = depSchema
		}
	}

	fieldsObj := doc.GetObject("fields")
	if fieldsObj == nil {
		return nil, newParseError(absPath, "", "record schema missing \"fields\" object")
	}

	rs := &recordBuilder{file: absPath, dependencies: dependencies}
	var outerErr error
	fieldsObj.Visit(func(key []byte, v *fastjson.Value) {
		if outerErr != nil {
			return
		}
		f, err := rs.parseField(string(key), v)
		if err != nil {
			outerErr = err
			return
		}
		rs.fields = append(rs.fields, f)
	})
	if outerErr != nil {
		return nil, outerErr
	}

	return &RecordSchema{Fields: rs.fields}, nil
}

// recordBuilder accumulates a record schema's fields while it has
// access to the schema's resolved dependency map.
type recordBuilder struct {
	file         string
	dependencies map[string]Schema
	fields       []field.Field
}

func (rs *recordBuilder) resolveDependency(name, fieldName string, nullable bool) (field.Field, error) {
	dep, ok := rs.dependencies[name]
	if !ok {
		return nil, newParseError(rs.file, fieldName, fmt.Sprintf("unsupported field type %q", name))
	}
	switch d := dep.(type) {
	case *RecordSchema:
		return field.NewRecordField(fieldName, cloneFields(d.Fields), nullable)
	case *EnumSchema:
		return field.NewEnumField(fieldName, len(d.Variants), nullable)
	default:
		return nil, newParseError(rs.file, fieldName, "dependency is neither a record nor an enum schema")
	}
}

// cloneFields returns a shallow copy of fields: dependencies are
// resolved once per load, but each referencing field gets its own
// slice so later mutation of one reference (there is none post-load,
// but this keeps the tree free of aliasing surprises) never reaches
// another.
func cloneFields(fields []field.Field) []field.Field {
	out := make([]field.Field, len(fields))
	copy(out, fields)
	return out
}

func (rs *recordBuilder) parseField(name string, v *fastjson.Value) (field.Field, error) {
	switch v.Type() {
	case fastjson.TypeString:
		typeName, _ := v.StringBytes()
		return rs.parseTypeTag(name, string(typeName), false)
	case fastjson.TypeObject:
		return rs.parseFieldObject(name, v)
	default:
		return nil, newParseError(rs.file, name, "field is neither a string nor an object")
	}
}

func (rs *recordBuilder) parseTypeTag(name, typeTag string, nullable bool) (field.Field, error) {
	switch typeTag {
	case "int":
		return field.NewUnboundedIntField(name, nullable)
	case "bool":
		return field.NewBooleanField(name, nullable), nil
	case "bytes":
		return field.NewBytesField(name, 0, false, nullable)
	case "array":
		return nil, newParseError(rs.file, name, "array field requires an \"items\" spec; use the object form")
	default:
		return rs.resolveDependency(typeTag, name, nullable)
	}
}

func (rs *recordBuilder) parseFieldObject(name string, v *fastjson.Value) (field.Field, error) {
	if !v.Exists("type") {
		return nil, newParseError(rs.file, name, "field object missing \"type\"")
	}
	typeTag := string(v.GetStringBytes("type"))
	nullable := v.GetBool("nullable")

	switch typeTag {
	case "int":
		if v.Exists("min") || v.Exists("max") {
			if !v.Exists("min") || !v.Exists("max") {
				return nil, newParseError(rs.file, name, "int field must declare both \"min\" and \"max\" or neither")
			}
			min := v.GetInt("min")
			max := v.GetInt("max")
			f, err := field.NewIntField(name, int32(min), int32(max), nullable)
			if err != nil {
				return nil, wrapParseError(rs.file, name, err)
			}
			return f, nil
		}
		return field.NewUnboundedIntField(name, nullable)
	case "bool":
		return field.NewBooleanField(name, nullable), nil
	case "bytes":
		if v.Exists("maxLength") {
			return field.NewBytesField(name, uint32(v.GetUint("maxLength")), true, nullable)
		}
		return field.NewBytesField(name, 0, false, nullable)
	case "array":
		itemsVal := v.Get("items")
		if itemsVal == nil {
			return nil, newParseError(rs.file, name, "array field missing \"items\"")
		}
		items, err := rs.parseField(name, itemsVal)
		if err != nil {
			return nil, err
		}
		maxLength := field.Unbounded
		if v.Exists("maxLength") {
			maxLength = uint32(v.GetUint("maxLength"))
		}
		return field.NewArrayField(name, maxLength, items, nullable)
	default:
		return rs.resolveDependency(typeTag, name, nullable)
	}
}
