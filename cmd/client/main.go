package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-shop-keeper/internal/adapter"
	"github.com/MKhiriev/go-shop-keeper/internal/client"
	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	serverURL := flag.String("a", envOr("SHOP_SERVER_URL", "http://localhost:3001"), "server address")
	token := flag.String("t", os.Getenv("SHOP_TOKEN"), "token sent by validate")
	timeout := flag.Duration("timeout", 15*time.Second, "request timeout")
	logLevel := flag.String("log-level", "info", "log level")
	version := flag.Bool("version", false, "print build info and exit")
	flag.Parse()

	if *version {
		printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	log := logger.NewLogger("go-shop-client")
	if err := logger.SetLevel(*logLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	shop, err := adapter.NewHTTPShopClient(adapter.ClientConfig{BaseURL: *serverURL, RequestTimeout: *timeout}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating shop client")
	}

	app, err := client.NewApp(shop, *token, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) {
			fmt.Fprintln(os.Stderr, "commands:")
			for _, usage := range app.Usage() {
				fmt.Fprintf(os.Stderr, "  %s\n", usage)
			}
		}
		stop()
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
