package app

import (
	"context"
	"fmt"
	"io"

	"github.com/auto-dns/compose-hosts/internal/command"
	"github.com/auto-dns/compose-hosts/internal/compose"
	"github.com/auto-dns/compose-hosts/internal/config"
	"github.com/auto-dns/compose-hosts/internal/domain"
	"github.com/auto-dns/compose-hosts/internal/engine"
	"github.com/auto-dns/compose-hosts/internal/table"
	"github.com/auto-dns/compose-hosts/internal/util"
	dockerCli "github.com/docker/docker/client"
	"github.com/rs/zerolog"
)

type App struct {
	lister    containerLister
	inspector engine.Inspector
	closer    io.Closer
	logger    zerolog.Logger
}

// New creates a new App by wiring up all dependencies.
func New(cfg *config.Config, logger zerolog.Logger) (*App, error) {
	runner := command.NewExecRunner(logger)
	lister := compose.NewLister(runner, cfg.Compose, logger)

	switch cfg.Engine.Backend {
	case config.BackendAPI:
		dockerClient, err := dockerCli.NewClientWithOpts(dockerCli.FromEnv, dockerCli.WithAPIVersionNegotiation())
		if err != nil {
			return nil, fmt.Errorf("failed to create docker client: %w", err)
		}
		inspector := engine.NewAPIInspector(dockerClient, logger)
		a := newApp(lister, inspector, logger)
		a.closer = inspector
		return a, nil
	default:
		return newApp(lister, engine.NewCLIInspector(runner, cfg.Engine.Command, logger), logger), nil
	}
}

func newApp(lister containerLister, inspector engine.Inspector, logger zerolog.Logger) *App {
	return &App{
		lister:    lister,
		inspector: inspector,
		logger:    logger,
	}
}

// Run lists, inspects and prints the host table. Nothing is written to out
// unless every step before rendering succeeded.
func (a *App) Run(ctx context.Context, out io.Writer) error {
	ids, err := a.lister.ContainerIDs(ctx)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		a.logger.Info().Msg("No running containers found")
	}

	containers, err := a.inspector.Inspect(ctx, ids...)
	if err != nil {
		return err
	}

	hosts := util.Map(containers, domain.HostFromContainer)
	a.logger.Debug().Int("hosts", len(hosts)).Msg("Rendering host table")
	return table.New(hosts).Render(out)
}

func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	if err := a.closer.Close(); err != nil {
		return fmt.Errorf("close docker client: %w", err)
	}
	return nil
}
