package quops

// Encoder is implemented by every generated record type.
type Encoder interface {
	Encode() ([]byte, error)
}

// Enumerator is implemented by every generated enum type: it reports
// the 0-based wire ordinal of the value, in schema declaration order.
type Enumerator interface {
	Ordinal() uint64
}

// Decodable is the type of a generated package-level
// DecodeXxx([]byte) (Xxx, error) function;
// Go methods cannot construct a bare Self the way the reference
// trait's decode(&Bytes) -> Result<Self, DecodeError> does, so the
// generator emits a free function instead and Decode below is a thin
// generic adapter over it.
type Decodable[T any] func([]byte) (T, error)

// Decode runs a generated decode function. It exists purely so calling
// code can write quops.Decode(DecodePlayer, buf) symmetrically with
// quops.Encode(&player) on the encode side; it performs no work beyond
// the call itself.
func Decode[T any](fn Decodable[T], data []byte) (T, error) {
	return fn(data)
}

// Encode runs a generated Encoder. It exists for symmetry with Decode
// and for callers that hold only the Encoder interface, not the
// concrete type.
func Encode(v Encoder) ([]byte, error) {
	return v.Encode()
}
