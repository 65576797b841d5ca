package engine

import "fmt"

// DecodeError reports engine output that could not be turned into inspect records.
type DecodeError struct {
	Index   int
	Message string
	Err     error
}

func (e *DecodeError) Error() string {
	msg := "decode inspect output"
	if e.Index >= 0 {
		msg = fmt.Sprintf("%s: record %d", msg, e.Index)
	}
	msg += ": " + e.Message
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError builds a DecodeError. index is -1 when the failure is not tied to one record.
func NewDecodeError(index int, message string, err error) *DecodeError {
	return &DecodeError{Index: index, Message: message, Err: err}
}
