// Command reduced serves the dimensionality-reduction HTTP API:
// /health, /, /reduce, /create-matrix. Configuration follows the
// teacher's flag-first CLI idiom; see the config package.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/cosmograph/reduce/config"
	"github.com/cosmograph/reduce/reduceapi"
	"github.com/cosmograph/reduce/server"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Parse(args)
	if err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	log := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	codec := reduceapi.NewMsgpackCodec()
	if !codec.Available() {
		log.Warn().Msg("model serialization self-test failed, /reduce learning and transform will report SerializationUnavailable")
	}

	defaults := reduceapi.Defaults{
		Neighbors:   cfg.DefaultNeighbors,
		MinDist:     cfg.DefaultMinDist,
		Spread:      cfg.DefaultSpread,
		RandomState: cfg.DefaultRandomState,
	}
	dispatcher := reduceapi.NewDispatcher(codec, defaults)
	srv := server.New(dispatcher, log)
	return srv.Serve(cfg.Addr)
}
