// Package bitstream implements the arbitrary-bit-width writer and reader
// that quops-generated encode/decode methods build on. Values are packed
// LSB-first into a 64-bit staging buffer and flushed in 8-byte strides;
// see Writer and Reader for the exact framing.
package bitstream

import "errors"

// ErrValueTooLarge indicates a Write call's value does not fit in count bits.
var ErrValueTooLarge = errors.New("bitstream: value does not fit in requested bit count")

// ErrInvalidBitCount indicates a Read or Write call requested more than 64 bits.
var ErrInvalidBitCount = errors.New("bitstream: bit count exceeds 64")

// ErrNotEnoughBits indicates a Read call requested more bits than remain in the input.
var ErrNotEnoughBits = errors.New("bitstream: not enough bits remaining")
