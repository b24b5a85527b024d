package dataset

import (
	"errors"
	"fmt"
)

// ErrMalformed is matched by every MalformedError through errors.Is
var ErrMalformed = errors.New("malformed dataset")

/*
MalformedError describes a structural problem in a dataset: rows of
inconsistent length, missing columns or samples lacking a value for a
feature. Row is the index of the offending row or sample, or -1 when the
problem is not specific to one.
*/
type MalformedError struct {
	Row    int
	Reason string
}

/*
Malformed takes a row index and a format string with arguments and returns
a *MalformedError for them.
*/
func Malformed(row int, format string, a ...interface{}) error {
	return &MalformedError{Row: row, Reason: fmt.Sprintf(format, a...)}
}

func (me *MalformedError) Error() string {
	if me.Row < 0 {
		return fmt.Sprintf("%v: %s", ErrMalformed, me.Reason)
	}
	return fmt.Sprintf("%v: row %d: %s", ErrMalformed, me.Row, me.Reason)
}

// Is reports whether target is ErrMalformed
func (me *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}
