package main

import (
	"context"
	"fmt"

	"github.com/dockflow/lawyer-console/internal/adapter"
	"github.com/dockflow/lawyer-console/internal/client"
	"github.com/dockflow/lawyer-console/internal/config"
	"github.com/dockflow/lawyer-console/internal/logger"
	"github.com/dockflow/lawyer-console/internal/service"
	"github.com/dockflow/lawyer-console/internal/store"
	"github.com/dockflow/lawyer-console/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("lawyer-console")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	fmt.Print(buildInfo(cfg.App.Version))

	serverAdapter := adapter.NewHTTPServerAdapter(cfg.Adapter, log)

	db, err := store.NewConnectSQLite(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	sessions := store.NewSessionRepository(db, log)

	services := service.NewClientServices(sessions, serverAdapter, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

// buildInfo renders the startup banner. The ldflags-injected version wins;
// a version from the config is the fallback for binaries built without flags.
func buildInfo(cfgVersion string) string {
	version := buildVersion
	if version == "" {
		version = cfgVersion
	}

	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		valueOrNA(version), valueOrNA(buildDate), valueOrNA(buildCommit))
}

func valueOrNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
