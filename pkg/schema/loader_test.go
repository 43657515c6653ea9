package schema_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duskcode/quops/pkg/field"
	"github.com/duskcode/quops/pkg/schema"
)

func writeSchema(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadRecordWithDependency(t *testing.T) {
	dir := t.TempDir()
	writeSchema(t, dir, "GameMode.quops", `{"type":"enum","variants":["Classic","Blitz","Bullet"]}`)
	path := writeSchema(t, dir, "Match.quops", `{
		"type": "record",
		"dependencies": ["GameMode"],
		"fields": {
			"mode": "GameMode",
			"turnDuration": {"type": "int", "min": 0, "max": 300},
			"notes": {"type": "bytes", "maxLength": 256, "nullable": true}
		}
	}`)

	s, err := schema.LoadFile(path)
	require.NoError(t, err)
	rs, ok := s.(*schema.RecordSchema)
	require.True(t, ok)
	require.Len(t, rs.Fields, 3)

	modeField, ok := rs.Fields[0].(*field.EnumField)
	require.True(t, ok)
	require.Equal(t, uint16(3), modeField.Variants)

	turnField, ok := rs.Fields[1].(*field.IntField)
	require.True(t, ok)
	require.True(t, turnField.Bounded)
	require.Equal(t, int32(0), turnField.Min)
	require.Equal(t, int32(300), turnField.Max)

	notesField, ok := rs.Fields[2].(*field.BytesField)
	require.True(t, ok)
	require.True(t, notesField.Nullable())
}

func TestLoadPreservesFieldOrder(t *testing.T) {
	dir := t.TempDir()
	path := writeSchema(t, dir, "Ordered.quops", `{
		"type": "record",
		"fields": {
			"z": "bool",
			"a": "bool",
			"m": "bool"
		}
	}`)

	s, err := schema.LoadFile(path)
	require.NoError(t, err)
	rs := s.(*schema.RecordSchema)
	require.Equal(t, []string{"z", "a", "m"}, []string{rs.Fields[0].Name(), rs.Fields[1].Name(), rs.Fields[2].Name()})
}

func TestLoadRejectsCyclicDependency(t *testing.T) {
	dir := t.TempDir()
	writeSchema(t, dir, "A.quops", `{"type":"record","dependencies":["B"],"fields":{"b":"B"}}`)
	path := writeSchema(t, dir, "B.quops", `{"type":"record","dependencies":["A"],"fields":{"a":"A"}}`)

	_, err := schema.LoadFile(path)
	require.Error(t, err)
	require.ErrorAs(t, err, new(*schema.ErrCyclicDependency))
}

func TestLoadRejectsUnsupportedType(t *testing.T) {
	dir := t.TempDir()
	path := writeSchema(t, dir, "Bad.quops", `{"type":"record","fields":{"x":"notatype"}}`)

	_, err := schema.LoadFile(path)
	require.Error(t, err)
}

func TestLoadRejectsInvertedRange(t *testing.T) {
	dir := t.TempDir()
	path := writeSchema(t, dir, "Bad.quops", `{"type":"record","fields":{"x":{"type":"int","min":10,"max":1}}}`)

	_, err := schema.LoadFile(path)
	require.Error(t, err)
}

func TestLoadRejectsArrayWithoutItems(t *testing.T) {
	dir := t.TempDir()
	path := writeSchema(t, dir, "Bad.quops", `{"type":"record","fields":{"x":{"type":"array"}}}`)

	_, err := schema.LoadFile(path)
	require.Error(t, err)
}

func TestLoadArrayField(t *testing.T) {
	dir := t.TempDir()
	path := writeSchema(t, dir, "Tags.quops", `{
		"type": "record",
		"fields": {
			"tags": {"type": "array", "maxLength": 16, "items": {"type": "int", "min": 0, "max": 99}}
		}
	}`)

	s, err := schema.LoadFile(path)
	require.NoError(t, err)
	rs := s.(*schema.RecordSchema)
	arr, ok := rs.Fields[0].(*field.ArrayField)
	require.True(t, ok)
	require.Equal(t, uint32(16), arr.MaxLength)
	items, ok := arr.Items.(*field.IntField)
	require.True(t, ok)
	require.Equal(t, int32(99), items.Max)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeSchema(t, dir, "Color.quops", `{"type":"enum","variants":["Red","Green","Blue"]}`)
	writeSchema(t, dir, "Pixel.quops", `{"type":"record","dependencies":["Color"],"fields":{"color":"Color"}}`)

	schemas, err := schema.LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, schemas, 2)
	require.Contains(t, schemas, "Color")
	require.Contains(t, schemas, "Pixel")
}
