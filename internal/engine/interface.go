package engine

import (
	"context"

	"github.com/auto-dns/compose-hosts/internal/domain"
	"github.com/docker/docker/api/types/container"
)

// Inspector resolves container IDs into inspect records, in the order given.
type Inspector interface {
	Inspect(ctx context.Context, ids ...string) ([]domain.InspectedContainer, error)
}

type dockerClient interface {
	ContainerInspect(ctx context.Context, containerID string) (container.InspectResponse, error)
	Close() error
}

var (
	_ Inspector = (*CLIInspector)(nil)
	_ Inspector = (*APIInspector)(nil)
)
