package transaction

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/finance-tracker/internal/logging"
)

func (h *Handler) deleteCommand(logger *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "delete a transaction and restore the account balance",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "id", Usage: "transaction id", Required: true},
		},
		Action: logging.CommandWrapper("DeleteTransaction", logger, h.handleDelete),
	}
}

func (h *Handler) handleDelete(c *cli.Context, logData *logging.LogData) error {
	id := c.Int64("id")
	logData.AddData("transactionID", id)

	if err := h.TransactionService.RemoveTransaction(c.Context, id); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "deleted transaction %d\n", id)
	return nil
}
