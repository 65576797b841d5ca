package command

import (
	"context"
	"strings"
)

// Invocation records one call made through a FakeRunner.
type Invocation struct {
	Name string
	Args []string
}

// FakeRunner answers Output calls from a table keyed by program name.
type FakeRunner struct {
	Stdout map[string][]byte
	Errs   map[string]error
	Calls  []Invocation
}

func (f *FakeRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	f.Calls = append(f.Calls, Invocation{Name: name, Args: append([]string{}, args...)})
	if err, ok := f.Errs[name]; ok {
		return nil, err
	}
	return f.Stdout[name], nil
}

// CallLine renders call i as a single command line.
func (f *FakeRunner) CallLine(i int) string {
	c := f.Calls[i]
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}
