package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/api"
	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

func main() {
	logger := logging.NewLogger(os.Stderr, "info", "json")

	open := func(ctx context.Context, configPath string) (*api.Runtime, error) {
		envConfig, err := config.ProcessEnvironmentVariables(configPath)
		if err != nil {
			return nil, err
		}
		if err := envConfig.Validate(); err != nil {
			return nil, err
		}
		logging.Configure(logger, envConfig)
		logging.Configure(logrus.StandardLogger(), envConfig)

		logger.WithField("db", envConfig.DBPath).Debug("fintrack starting")
		return api.Bootstrap(ctx, envConfig, logger)
	}

	app := api.CLI{
		Logger: logger,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
		Open:   open,
	}
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
