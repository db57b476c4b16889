package dcrwire

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEndOfInput is returned when a read needs more bytes than remain in the buffer.
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
	// ErrInvalidSerializationType is returned when the header carries an unknown serialization type.
	ErrInvalidSerializationType = errors.New("invalid serialization type")
)

// DecodeError describes where decoding stopped.
type DecodeError struct {
	Op     string
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s at offset %d: %v", e.Op, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func endOfInput(op string, offset int, need uint64, remaining int) error {
	return &DecodeError{
		Op:     op,
		Offset: offset,
		Err:    fmt.Errorf("%w: need %d bytes, have %d", ErrUnexpectedEndOfInput, need, remaining),
	}
}
