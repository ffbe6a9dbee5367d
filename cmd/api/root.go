package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"shopapi/pkg/config"
	"shopapi/pkg/logger"
	"shopapi/pkg/otel"
)

// rootCmd is the base command. Configuration comes from the environment,
// see pkg/config; subcommands add flags on top.
var rootCmd = &cobra.Command{
	Use:           "shopapi",
	Short:         "Users, products and orders over HTTP",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// setup loads the configuration and builds a logger writing to w.
func setup(w io.Writer) (*config.Config, *logger.Logger, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, err
	}
	lvl, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return cfg, logger.New(w, lvl, cfg.Tracing.ServiceName, otel.GetTraceID), nil
}
