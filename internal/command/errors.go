package command

import (
	"fmt"
	"strings"
)

// Error is returned when an external command cannot be started or exits non-zero.
type Error struct {
	Name     string
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("command %q failed", strings.Join(append([]string{e.Name}, e.Args...), " "))
	if e.ExitCode >= 0 {
		msg += fmt.Sprintf(" with exit code %d", e.ExitCode)
	}
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(name string, args []string, exitCode int, stderr string, err error) *Error {
	return &Error{Name: name, Args: args, ExitCode: exitCode, Stderr: stderr, Err: err}
}
