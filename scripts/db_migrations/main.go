package main

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

func main() {
	app := &cli.App{
		Name:  "db_migrations",
		Usage: "bring the fintrack database schema up to date",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "YAML config file", EnvVars: []string{"FINTRACK_CONFIG"}},
		},
		Action: migrate,
	}
	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("db_migrations")
	}
}

func migrate(c *cli.Context) error {
	env, err := config.ProcessEnvironmentVariables(c.String("config"))
	if err != nil {
		return err
	}
	if err := env.Validate(); err != nil {
		return err
	}
	logger := logging.SetupLogging(env)

	if err := os.MkdirAll(filepath.Dir(env.DBPath), 0o755); err != nil {
		return err
	}

	status, err := storage.RunMigrations(env.DBPath)
	if err != nil {
		logger.WithError(err).Error("storage.RunMigrations")
		return err
	}

	logger.WithFields(logrus.Fields{
		"db":                   env.DBPath,
		"preMigrationVersion":  status.PreVersion,
		"postMigrationVersion": status.PostVersion,
	}).Info("Migration status")
	return nil
}
