package app

import "context"

type containerLister interface {
	ContainerIDs(ctx context.Context) ([]string, error)
}
