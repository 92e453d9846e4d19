package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"war/config"
	"war/engine"
	"war/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}
	if err := setupLogging(cfg, os.Stderr); err != nil {
		config.Exitf("logging: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debug().Uint64("seed", seed).Msg("dice seeded")

	resolver := game.NewResolver(game.NewSource(seed))
	session := engine.NewSession(os.Stdin, os.Stdout, resolver,
		engine.WithLabelLimits(cfg.MaxNameLength, cfg.MaxFactionLength),
	)

	if _, err := session.Run(); err != nil {
		os.Exit(1)
	}
	fmt.Println("Program finished.")
}

func setupLogging(cfg config.Config, out io.Writer) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	if cfg.LogJSON {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen})
	}
	return nil
}
