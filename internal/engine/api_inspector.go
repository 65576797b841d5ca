package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/auto-dns/compose-hosts/internal/domain"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/rs/zerolog"
)

// APIInspector reads inspect records from the engine API instead of the CLI.
// The API has no batch endpoint, so every ID costs one request.
type APIInspector struct {
	cli    dockerClient
	logger zerolog.Logger
}

func NewAPIInspector(cli dockerClient, logger zerolog.Logger) *APIInspector {
	return &APIInspector{
		cli:    cli,
		logger: logger,
	}
}

func (i *APIInspector) Inspect(ctx context.Context, ids ...string) ([]domain.InspectedContainer, error) {
	containers := make([]domain.InspectedContainer, 0, len(ids))
	for idx, id := range ids {
		resp, err := i.cli.ContainerInspect(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("inspect container %s: %w", id, err)
		}
		c, err := fromInspectResponse(idx, resp)
		if err != nil {
			return nil, err
		}
		containers = append(containers, c)
	}
	i.logger.Debug().Int("inspected", len(containers)).Msg("Inspected containers via engine API")
	return containers, nil
}

func (i *APIInspector) Close() error {
	return i.cli.Close()
}

// fromInspectResponse maps an SDK record onto the domain type. The SDK hands
// ports and networks back as Go maps, so keys are taken in sorted order.
func fromInspectResponse(index int, resp container.InspectResponse) (domain.InspectedContainer, error) {
	if resp.ContainerJSONBase == nil {
		return domain.InspectedContainer{}, NewDecodeError(index, "missing required field Name", nil)
	}
	if resp.NetworkSettings == nil {
		return domain.InspectedContainer{}, NewDecodeError(index, "missing required field NetworkSettings", nil)
	}

	c := domain.InspectedContainer{
		ID:   resp.ID,
		Name: resp.Name,
	}

	ports := make([]string, 0, len(resp.NetworkSettings.Ports))
	for p := range resp.NetworkSettings.Ports {
		ports = append(ports, string(p))
	}
	sort.Strings(ports)
	for _, p := range ports {
		c.Ports = append(c.Ports, portBinding(nat.Port(p)))
	}

	names := make([]string, 0, len(resp.NetworkSettings.Networks))
	for name := range resp.NetworkSettings.Networks {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		n := domain.Network{Name: name}
		if ep := resp.NetworkSettings.Networks[name]; ep != nil {
			n.IPAddress = ep.IPAddress
		}
		c.Networks = append(c.Networks, n)
	}
	return c, nil
}
