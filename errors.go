package enumoid

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNotFull is the reason a partial map cannot become a Map: some key
	// has no value.
	ErrNotFull = errors.New("not every key is present")
	// ErrNotPrefix is the reason a partial map cannot become a Vec: the
	// present keys are not a contiguous run from the first key.
	ErrNotPrefix = errors.New("present keys are not a contiguous prefix")
)

// ConversionError reports a container conversion refused because the
// source lacks the structure the target requires.
type ConversionError struct {
	From   string
	To     string
	Reason error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("enumoid: cannot convert %s to %s: %v", e.From, e.To, e.Reason)
}

func (e *ConversionError) Unwrap() error {
	return e.Reason
}
