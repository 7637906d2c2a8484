package api

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/account"
	"github.com/carson-networks/finance-tracker/internal/handlers/chart"
	"github.com/carson-networks/finance-tracker/internal/handlers/status"
	"github.com/carson-networks/finance-tracker/internal/handlers/transaction"
)

// CLI exposes the services as the fintrack command line. Open is called
// once per run with the --config value, before any command executes.
type CLI struct {
	Logger *logrus.Logger
	Out    io.Writer
	ErrOut io.Writer
	Open   func(ctx context.Context, configPath string) (*Runtime, error)

	runtime *Runtime
}

func (a *CLI) App() *cli.App {
	accountHandler := account.NewHandler(nil)
	transactionHandler := transaction.NewHandler(nil)
	chartHandler := chart.NewHandler(nil, nil, "")
	statusHandler := status.NewHandler(nil, "", "")

	before := func(c *cli.Context) error {
		rt, err := a.Open(c.Context, c.String("config"))
		if err != nil {
			return err
		}
		a.runtime = rt

		svc := rt.Service
		accountHandler.AccountService = svc.Account
		transactionHandler.TransactionService = svc.Transaction
		chartHandler.ChartService = svc.Chart
		chartHandler.AccountService = svc.Account
		chartHandler.ChartDir = rt.Config.ChartDir
		statusHandler.StatusService = svc.Status
		statusHandler.PhotoDir = rt.Config.PhotoDir
		statusHandler.ChartDir = rt.Config.ChartDir
		return nil
	}

	after := func(c *cli.Context) error {
		if a.runtime == nil {
			return nil
		}
		err := a.runtime.Close()
		a.runtime = nil
		return err
	}

	return &cli.App{
		Name:      "fintrack",
		Usage:     "personal finance tracker",
		Writer:    a.Out,
		ErrWriter: a.ErrOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "YAML config file",
				EnvVars: []string{"FINTRACK_CONFIG"},
			},
		},
		Before: before,
		After:  after,
		Commands: []*cli.Command{
			accountHandler.Command(a.Logger),
			transactionHandler.Command(a.Logger),
			chartHandler.Command(a.Logger),
			statusHandler.Command(a.Logger),
		},
	}
}

func (a *CLI) Run(ctx context.Context, args []string) error {
	return a.App().RunContext(ctx, args)
}
