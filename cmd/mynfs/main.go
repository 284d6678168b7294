package main

import (
	"os"

	"github.com/mynfs/mynfs/pkg/cli"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := cli.Execute(); err != nil {
		cli.PrintFormattedError(os.Stderr, err)
		os.Exit(1)
	}
}
