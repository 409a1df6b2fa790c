package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kodekulture/wordjourney/internal/config"
)

func main() {
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	lvl, err := zerolog.ParseLevel(config.GetOrDefault("LOG_LEVEL", "info"))
	if err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := newRoot().ExecuteContext(context.Background()); err != nil {
		zlog.Fatal().Err(err).Msg("wordjourney")
	}
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "wordjourney",
		Short:         "Single player word puzzle server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newServeCmd(),
		newWordCmd(),
		newCheckCmd(),
	)
	return root
}
