package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/alimikegami/pos-microservices/marketplace-service/config"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	a := app.App{Config: config.CreateNewConfig()}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		if err := a.StopServer(); err != nil {
			log.Error().Err(err).Msg("shutdown finished with errors")
		}
	}()

	if err := a.Start(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
