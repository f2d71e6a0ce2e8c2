package fieldset

import (
	"errors"
	"fmt"
)

// ErrUnparsable is matched by every error Parse returns.
var ErrUnparsable = errors.New("unparsable fields filter")

// UnparsableError is returned when the input does not match the grammar.
// Every grammar violation is reported the same way: the offset of the first
// byte the parser could not continue from.
type UnparsableError struct {
	Input  string
	Offset int
}

// Remainder returns the unparsed suffix of the input, starting at Offset.
// It is empty when the input ended too early.
func (e *UnparsableError) Remainder() string {
	return e.Input[e.Offset:]
}

func (e *UnparsableError) Error() string {
	if e.Offset >= len(e.Input) {
		return fmt.Sprintf("failed to parse fields filter: unexpected end of input (offset %d)", e.Offset)
	}
	return fmt.Sprintf("failed to parse fields filter near %q (offset %d)", e.Remainder(), e.Offset)
}

// Is makes errors.Is(err, ErrUnparsable) hold.
func (e *UnparsableError) Is(target error) bool {
	return target == ErrUnparsable
}
