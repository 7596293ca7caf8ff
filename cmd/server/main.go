package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/ddbb-bakery/pos/internal/config"
)

type options struct {
	config      string
	env         string
	migrateOnly bool
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(opts.config, opts.env)
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	if opts.migrateOnly {
		return migrateOnly(cfg)
	}

	srv, err := NewServer(cfg)
	if err != nil {
		return fmt.Errorf("service init failed: %w", err)
	}

	if err := srv.Start(); err != nil {
		return fmt.Errorf("service start failed: %w", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	return srv.Shutdown(cfg.ShutdownTimeoutDuration())
}

func parseFlags(args []string) (options, error) {
	var opts options

	flagSet := pflag.NewFlagSet("server", pflag.ContinueOnError)
	flagSet.StringVar(&opts.config, "config", "config.toml", "path to the base configuration file")
	flagSet.StringVar(&opts.env, "env", "", "configuration overlay to apply (default: $SERVICE_ENV)")
	flagSet.BoolVar(&opts.migrateOnly, "migrate-only", false, "apply database migrations and exit")

	if err := flagSet.Parse(args); err != nil {
		return opts, err
	}
	if flagSet.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", flagSet.Args())
	}
	return opts, nil
}
