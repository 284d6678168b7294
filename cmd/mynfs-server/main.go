package main

import (
	"os"

	"github.com/mynfs/mynfs/pkg/common"
	"github.com/mynfs/mynfs/pkg/server"
	"github.com/mynfs/mynfs/pkg/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configManager, err := common.NewConfigManager[types.AppConfig]()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating config manager")
	}
	config := configManager.GetConfig()
	if config.PrettyLogs {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	srv, err := server.NewServer(config)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating file server")
	}

	if err := srv.Start(); err != nil {
		log.Fatal().Err(err).Msg("file server failed")
	}
}
