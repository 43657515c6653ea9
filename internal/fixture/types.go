// Package fixture holds small schema/type pairs exercising each
// scenario in the bit layout reference: a bare enum, a bounded int, a
// nullable bounded int, two Bytes fields (tail ordering), and an array
// of bounded ints. The *_quops.go files beside this one are written by
// hand in the shape quopsgen's generate subcommand would produce from
// the .quops files under schemas/ — this module never invokes go
// generate, so they stand in for its output and are exercised by the
// tests in this package exactly like any other generated code would
// be.
package fixture

//quops:schema path="schemas/signal.quops"
type Signal uint8

const (
	Red Signal = iota
	Yellow
	Green
)

//quops:schema path="schemas/score.quops"
type Score struct {
	Value int32
}

//quops:schema path="schemas/nullablescore.quops"
type NullableScore struct {
	Value *int32
}

//quops:schema path="schemas/buffers.quops"
type Buffers struct {
	A []byte
	B []byte
}

//quops:schema path="schemas/taglist.quops"
type TagList struct {
	Tags []int32
}
