package main

import (
	"context"
	"fmt"
	"os"
)

type application interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Err() error
	Done() <-chan os.Signal
}

// run starts the application, waits for a signal or an internal shutdown
// request, then stops it.
func run(ctx context.Context, app application) error {
	if err := app.Err(); err != nil {
		return fmt.Errorf("build application: %w", err)
	}

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("start application: %w", err)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		return fmt.Errorf("stop application: %w", err)
	}
	return nil
}
