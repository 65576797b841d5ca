package compose

import (
	"context"
	"fmt"
	"strings"

	"github.com/auto-dns/compose-hosts/internal/command"
	"github.com/auto-dns/compose-hosts/internal/config"
	"github.com/auto-dns/compose-hosts/internal/util"
	"github.com/rs/zerolog"
)

// Lister asks the compose orchestrator for the IDs of a project's running containers.
type Lister struct {
	runner command.Runner
	name   string
	args   []string
	file   string
	logger zerolog.Logger
}

func NewLister(runner command.Runner, cfg config.ComposeConfig, logger zerolog.Logger) *Lister {
	name, args := command.Split(cfg.Command)
	return &Lister{
		runner: runner,
		name:   name,
		args:   args,
		file:   cfg.File,
		logger: logger,
	}
}

// ContainerIDs runs "ps -q" once. No running containers yields an empty slice.
func (l *Lister) ContainerIDs(ctx context.Context) ([]string, error) {
	out, err := l.runner.Output(ctx, l.name, l.psArgs()...)
	if err != nil {
		return nil, fmt.Errorf("list compose containers: %w", err)
	}

	ids := util.Filter(util.Map(strings.Split(string(out), "\n"), strings.TrimSpace), func(id string) bool {
		return id != ""
	})
	l.logger.Debug().Int("count", len(ids)).Msg("Listed compose containers")
	return ids, nil
}

func (l *Lister) psArgs() []string {
	args := append([]string{}, l.args...)
	if l.file != "" {
		args = append(args, "-f", l.file)
	}
	return append(args, "ps", "-q")
}
