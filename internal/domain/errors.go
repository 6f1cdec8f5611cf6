package domain

import (
	"errors"
	"fmt"
)

// ErrNoOrderIndex is returned when an order-index token carries no digits.
var ErrNoOrderIndex = errors.New("order index token has no digits")

// ErrTimeOverflow is returned when an order's processing time does not fit in an int.
var ErrTimeOverflow = errors.New("processing time overflows")

// FormatError reports a malformed input row.
// Row and Column are 1-based; zero means unknown.
type FormatError struct {
	Row    int
	Column int
	Value  string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	msg := "format error"
	if e.Row > 0 {
		msg += fmt.Sprintf(" row %d", e.Row)
	}
	if e.Column > 0 {
		msg += fmt.Sprintf(" column %d", e.Column)
	}
	if e.Value != "" {
		msg += fmt.Sprintf(" value %q", e.Value)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error { return e.Err }

// AtRow stamps the row number on err if it is a FormatError without one.
func AtRow(err error, row int) error {
	var fe *FormatError
	if errors.As(err, &fe) && fe.Row == 0 {
		fe.Row = row
	}
	return err
}
