package main

import (
	"fmt"

	"github.com/amirasaad/unitconv/infra/initializer"
	"github.com/amirasaad/unitconv/pkg/cli"
	"github.com/amirasaad/unitconv/pkg/config"
	log "github.com/charmbracelet/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Flush the rate cache on the way out, whatever the command did.
	// A save failure is logged but never blocks termination.
	defer func() {
		if err := deps.Snapshots.Save(deps.Cache.Snapshot()); err != nil {
			deps.Logger.Error("failed to persist exchange rates", "error", err)
		}
	}()

	root := cli.NewRootCmd(deps.Converter, deps.Logger)
	return root.Execute()
}
