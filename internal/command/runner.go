package command

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// Runner executes an external program once and returns its standard output.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

type ExecRunner struct {
	logger zerolog.Logger
}

func NewExecRunner(logger zerolog.Logger) *ExecRunner {
	return &ExecRunner{logger: logger}
}

// Output blocks until the process exits. A missing binary or a non-zero exit
// status is returned as *Error carrying the captured stderr.
func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	r.logger.Debug().Str("command", name).Strs("args", args).Msg("Running external command")

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return nil, NewError(name, args, exitCode, strings.TrimSpace(stderr.String()), err)
	}

	r.logger.Debug().Str("command", name).Int("bytes", stdout.Len()).Msg("External command finished")
	return stdout.Bytes(), nil
}

// Split turns a configured command such as "docker compose" into the program
// name and its leading arguments.
func Split(command string) (string, []string) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}
