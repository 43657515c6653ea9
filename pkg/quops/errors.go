// Package quops defines the error taxonomy and the two runtime
// interfaces consumed by generated code. It owns no schema or codegen
// logic of its own; pkg/field, pkg/schema and pkg/codegen build on it.
package quops

import (
	"errors"
	"fmt"

	"github.com/duskcode/quops/pkg/bitstream"
)

// EncodeErrorKind classifies an EncodeError.
type EncodeErrorKind int

const (
	// OutOfBounds: a value is outside its field's declared range, a
	// byte sequence exceeds its declared maximum length, or a value or
	// length does not fit the bit width it is written in (for example
	// an unbounded integer needing more than the 31 payload bits its
	// 5-bit width prefix can describe).
	OutOfBounds EncodeErrorKind = iota
	// NotSupported is reserved for field kinds not yet implemented.
	NotSupported
)

func (k EncodeErrorKind) String() string {
	switch k {
	case OutOfBounds:
		return "out of bounds"
	case NotSupported:
		return "not supported"
	default:
		return "unknown"
	}
}

// EncodeError is returned by generated Encode methods.
type EncodeError struct {
	Kind  EncodeErrorKind
	Field string
	Msg   string
	cause error
}

func (e *EncodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("quops: encode %s: %s: %s", e.Field, e.Kind, e.Msg)
	}
	return fmt.Sprintf("quops: encode: %s: %s", e.Kind, e.Msg)
}

func (e *EncodeError) Unwrap() error { return e.cause }

// NewEncodeError constructs an EncodeError for the named field.
func NewEncodeError(kind EncodeErrorKind, field, msg string) *EncodeError {
	return &EncodeError{Kind: kind, Field: field, Msg: msg}
}

// wrapWriteError translates a bitstream write failure into an
// EncodeError of kind OutOfBounds. For bounded fields a Write failure
// means a generator bug (widths are derived from validated value
// domains); for unbounded int, bytes and array fields it also reports a
// value or length too large for the 5-bit prefix. Either way the caller
// sees a typed error rather than a panic.
func wrapWriteError(field string, err error) *EncodeError {
	return &EncodeError{Kind: OutOfBounds, Field: field, Msg: err.Error(), cause: err}
}

// DecodeErrorKind classifies a DecodeError.
type DecodeErrorKind int

const (
	// DecodeOutOfBounds: a bounded int fell outside [min,max] on read,
	// an enum ordinal was invalid, or a host integer conversion failed.
	DecodeOutOfBounds DecodeErrorKind = iota
	// NotEnoughBytes: the tail region was too short for a Bytes field.
	NotEnoughBytes
	// NotEnoughBits: the bit stream was exhausted before the read completed.
	NotEnoughBits
)

func (k DecodeErrorKind) String() string {
	switch k {
	case DecodeOutOfBounds:
		return "out of bounds"
	case NotEnoughBytes:
		return "not enough bytes"
	case NotEnoughBits:
		return "not enough bits"
	default:
		return "unknown"
	}
}

// DecodeError is returned by generated Decode functions.
type DecodeError struct {
	Kind  DecodeErrorKind
	Field string
	Msg   string
	cause error
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("quops: decode %s: %s: %s", e.Field, e.Kind, e.Msg)
	}
	return fmt.Sprintf("quops: decode: %s: %s", e.Kind, e.Msg)
}

func (e *DecodeError) Unwrap() error { return e.cause }

// NewDecodeError constructs a DecodeError for the named field.
func NewDecodeError(kind DecodeErrorKind, field, msg string) *DecodeError {
	return &DecodeError{Kind: kind, Field: field, Msg: msg}
}

// wrapReadError translates a bitstream read failure into a DecodeError.
func wrapReadError(field string, err error) *DecodeError {
	kind := NotEnoughBits
	if errors.Is(err, bitstream.ErrInvalidBitCount) {
		kind = DecodeOutOfBounds
	}
	return &DecodeError{Kind: kind, Field: field, Msg: err.Error(), cause: err}
}

// WrapWriteError is the exported entry point generated code calls when
// a bitstream.Writer.Write returns an error it cannot already attribute
// to a range check.
func WrapWriteError(field string, err error) *EncodeError { return wrapWriteError(field, err) }

// WrapReadError is the exported entry point generated code calls when
// a bitstream.Reader.Read returns an error.
func WrapReadError(field string, err error) *DecodeError { return wrapReadError(field, err) }
