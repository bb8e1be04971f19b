// Command hubd runs the AlertMe/Iris hub: it opens the serial-attached
// radio, drives the protocol engine in pkg/alertme, and exposes a
// read-mostly operations API over HTTP.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/alertme/hub/pkg/alertme"
	"github.com/alertme/hub/pkg/api"
	"github.com/alertme/hub/pkg/serialmodem"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	serialPort := flag.String("port", "/dev/ttyUSB0", "path to the ZigBee serial radio")
	apiAddr := flag.String("api-addr", ":8080", "address for the operations HTTP API")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	modem, err := serialmodem.Open(*serialPort, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Str("port", *serialPort).Msg("failed to open serial radio")
	}
	defer func() {
		if err := modem.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close serial radio")
		}
	}()

	hub := alertme.NewHub(modem, log.Logger)

	go hub.Run(ctx)

	router := api.NewRouter(hub)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info().Msg("shutting down")
		cancel()
		os.Exit(0)
	}()

	log.Info().Str("address", *apiAddr).Msg("starting operations API")
	if err := router.Run(*apiAddr); err != nil {
		log.Fatal().Err(err).Msg("api server failed")
	}
}
