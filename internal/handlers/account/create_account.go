package account

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/finance-tracker/internal/logging"
)

func (h *Handler) createCommand(logger *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "create an account",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Usage: "account name", Required: true},
			&cli.StringFlag{Name: "balance", Usage: "starting balance, e.g. 1234.56", Value: "0"},
		},
		Action: logging.CommandWrapper("CreateAccount", logger, h.handleCreate),
	}
}

func parseBalance(raw string) (decimal.Decimal, error) {
	balance, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid balance %q: %w", raw, err)
	}
	return balance, nil
}

func (h *Handler) handleCreate(c *cli.Context, logData *logging.LogData) error {
	balance, err := parseBalance(c.String("balance"))
	if err != nil {
		return err
	}

	stopTimer := logData.AddTiming("createAccountMs")
	id, err := h.AccountService.CreateAccount(c.Context, c.String("name"), balance)
	stopTimer()
	if err != nil {
		return err
	}

	logData.AddData("accountID", id)
	fmt.Fprintf(c.App.Writer, "created account %d\n", id)
	return nil
}
