package engine

import (
	"context"
	"fmt"

	"github.com/auto-dns/compose-hosts/internal/command"
	"github.com/auto-dns/compose-hosts/internal/domain"
	"github.com/rs/zerolog"
)

// CLIInspector shells out to `<engine> container inspect` once per batch.
type CLIInspector struct {
	runner command.Runner
	name   string
	args   []string
	logger zerolog.Logger
}

func NewCLIInspector(runner command.Runner, engineCommand string, logger zerolog.Logger) *CLIInspector {
	name, args := command.Split(engineCommand)
	return &CLIInspector{
		runner: runner,
		name:   name,
		args:   args,
		logger: logger,
	}
}

func (i *CLIInspector) Inspect(ctx context.Context, ids ...string) ([]domain.InspectedContainer, error) {
	if len(ids) == 0 {
		return []domain.InspectedContainer{}, nil
	}

	args := append(append([]string{}, i.args...), "container", "inspect")
	out, err := i.runner.Output(ctx, i.name, append(args, ids...)...)
	if err != nil {
		return nil, fmt.Errorf("inspect containers: %w", err)
	}

	containers, err := decodeInspectOutput(out)
	if err != nil {
		return nil, err
	}
	if len(containers) != len(ids) {
		return nil, NewDecodeError(-1, fmt.Sprintf("got %d records for %d containers", len(containers), len(ids)), nil)
	}
	i.logger.Debug().Int("requested", len(ids)).Int("inspected", len(containers)).Msg("Inspected containers")
	return containers, nil
}
