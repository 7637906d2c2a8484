package account

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/finance-tracker/internal/logging"
)

func (h *Handler) deleteCommand(logger *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "delete an account and all of its transactions",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "id", Usage: "account id", Required: true},
		},
		Action: logging.CommandWrapper("DeleteAccount", logger, h.handleDelete),
	}
}

func (h *Handler) handleDelete(c *cli.Context, logData *logging.LogData) error {
	id := c.Int64("id")
	logData.AddData("accountID", id)

	removed, err := h.AccountService.DeleteAccount(c.Context, id)
	if err != nil {
		return err
	}

	logData.AddData("removedTransactions", removed)
	fmt.Fprintf(c.App.Writer, "deleted account %d and %d transaction(s)\n", id, removed)
	return nil
}
