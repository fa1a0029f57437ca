package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-journal-vault/internal/adapter"
	"github.com/MKhiriev/go-journal-vault/internal/client"
	"github.com/MKhiriev/go-journal-vault/internal/config"
	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/internal/service"
	"github.com/MKhiriev/go-journal-vault/internal/store"
	"github.com/MKhiriev/go-journal-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return 2
	}

	log := logger.NewClientLogger("journal-vault-client", cfg.App.LogPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("create local storage")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer localStorage.Close()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("create server adapter")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	if len(args) > 0 && args[0] == "version" {
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		serverVersion, err := serverAdapter.GetAppVersion(ctx)
		if err != nil {
			serverVersion = "unreachable"
		}
		fmt.Printf("Server version: %s\n", serverVersion)
		return 0
	}

	services, err := service.NewClientServices(localStorage, serverAdapter, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("create client services")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	stdin := bufio.NewReader(os.Stdin)
	app := client.NewApp(
		services.Vault,
		services.AutoLock,
		cfg.Vault.Login,
		client.NewTerminalPrompt(os.Stdin, stdin, os.Stderr),
		stdin,
		os.Stdout,
		log,
	)

	if err = app.Run(ctx, args); err != nil {
		log.Error().Err(err).Strs("args", args[:min(len(args), 1)]).Msg("client command failed")
		fmt.Fprintf(os.Stderr, "error: %s\n", client.Message(err))
		if errors.Is(err, client.ErrUsage) {
			return 2
		}
		return 1
	}

	return 0
}
