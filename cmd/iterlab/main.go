package main

import (
	"context"
	"os"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/logging"
)

type Config struct {
	LogLevel string `env:"ITERLAB_LOG_LEVEL" default:"info"`
	// Separator splits the list values given to the commands.
	Separator string `env:"ITERLAB_SEPARATOR" default:","`
}

func main() {
	ctx := context.Background()
	log := &logging.Logger{Out: os.Stderr}

	var c Config
	if err := env.Load(&c); err != nil {
		log.Fatal(ctx, "failed to load iterlab config", logging.ErrField(err))
		os.Exit(cli.ExitCodeError)
	}
	log.Level = logging.Level(c.LogLevel)

	cli.Main(ctx, NewMux(c, log))
}

func NewMux(c Config, log *logging.Logger) *cli.Mux {
	var m cli.Mux
	m.Handle("zip", ZipCommand{ListSeparator: c.Separator, Logger: log})
	m.Handle("range", RangeCommand{Logger: log})
	m.Handle("palindrome", PalindromeCommand{ListSeparator: c.Separator})
	m.Handle("bucket", BucketCommand{Logger: log})
	return &m
}
