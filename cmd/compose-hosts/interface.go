package main

import (
	"context"
	"io"
)

type application interface {
	Run(ctx context.Context, out io.Writer) error
	Close() error
}
