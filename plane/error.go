package plane

import (
	"fmt"
	"strings"
)

const (
	reasonMismatch    = "argument mismatch"
	reasonNotNumeric  = "not all values given are numeric"
	reasonNegative    = "radius cannot be negative"
	reasonNotFinite   = "coordinate is not finite"
	reasonMixedFormat = "positional and labeled values cannot be mixed"
)

type MissingArgumentsError struct{}

func newMissingArgumentsError() MissingArgumentsError {
	return MissingArgumentsError{}
}

func (e MissingArgumentsError) Error() string {
	return "no arguments entered for constructor"
}

type InvalidArgumentError struct {
	Reason string
	Data   string
}

func newInvalidArgumentError(reason string, data ...string) InvalidArgumentError {
	e := InvalidArgumentError{
		Reason: reason,
	}
	if len(data) > 0 {
		e.Data = strings.Join(data, " ")
	}

	return e
}

func (e InvalidArgumentError) Error() string {
	if e.Data == "" {
		return fmt.Sprintf("invalid argument: %s", e.Reason)
	}
	return fmt.Sprintf("invalid argument: %s: %s", e.Reason, e.Data)
}
