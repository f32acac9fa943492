package main

import (
	"fmt"

	"github.com/rossini/evac-planner/internal/cache"
	"github.com/rossini/evac-planner/internal/config"
	"github.com/rossini/evac-planner/internal/httpapi"
	"github.com/rossini/evac-planner/internal/store"
	"github.com/rossini/evac-planner/internal/telemetry"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the PUT /risks planning HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address, overrides config's listen_addr")
}

func runServe(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	constants, err := config.LoadConstants(settings.ConstantsPath)
	if err != nil {
		return err
	}

	addr := settings.ListenAddr
	if serveAddr != "" {
		addr = serveAddr
	}

	level := telemetry.LevelInfo
	if verbose {
		level = telemetry.LevelDebug
	}
	log := telemetry.New(telemetry.Config{Level: level})

	grids := newFileGridSource(settings.MapDir, constants)
	inventory := store.NewFileInventory(settings.InventoryDir)
	cacheStore := cache.NewMemoryStore()

	var nav *httpapi.NavigationClient
	if settings.NavigationIPAddress != "" {
		nav = httpapi.NewNavigationClient(settings.NavigationURL())
	}

	srv := httpapi.NewServer(addr, grids, inventory, cacheStore, nav, settings.MapName, log)
	log.Info(fmt.Sprintf("evac-planner serving on %s", addr))
	return srv.ListenAndServe()
}
