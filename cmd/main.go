// Package main provides the CLI entrypoint for the VAT check service.
// It wires subcommands (check, serve), loads configuration, and initializes logging.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"vatcheck/internal/checker"
	"vatcheck/internal/config"
	"vatcheck/pkg/logger"
	"vatcheck/pkg/vies/soap"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// loadConfig reads the YAML file at path, or only the environment when the
// file does not exist.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return config.LoadEnv() //nolint: wrapcheck
	}

	return config.Load(path) //nolint: wrapcheck
}

// newChecker builds the VIES client and checker from configuration. A nil
// meter disables metrics.
func newChecker(cfg *config.Config, meter metric.Meter) checker.Checker {
	client := soap.New(&http.Client{}, cfg.VIES.Endpoint)

	c, err := checker.New(client, checker.NewOptions(cfg, meter))
	if err != nil {
		logger.Fatal(context.Background(), "could not create checker", zap.Error(err))
	}

	return c
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:          "vatcheck",
		Short:        "Validates EU VAT numbers against VIES",
		SilenceUsage: true,
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using a standalone flag set.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	pre := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	pre.SetOutput(io.Discard)
	configPath := pre.String("c", "config.yml", "The config file path")
	pre.String("config", "config.yml", "The config file path")
	_ = pre.Parse(os.Args[1:])
	if v := pre.Lookup("config").Value.String(); v != "config.yml" {
		*configPath = v
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	logger.Setup(cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		checkCommand(cfg),
		serveCommand(cfg),
	)

	err = rootCmd.ExecuteContext(ctx)
	stop()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
