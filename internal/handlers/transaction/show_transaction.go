package transaction

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/finance-tracker/internal/logging"
)

func (h *Handler) showCommand(logger *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "print one transaction and its receipt path",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "id", Usage: "transaction id", Required: true},
		},
		Action: logging.CommandWrapper("ShowTransaction", logger, h.handleShow),
	}
}

func (h *Handler) handleShow(c *cli.Context, logData *logging.LogData) error {
	id := c.Int64("id")
	logData.AddData("transactionID", id)

	tx, err := h.TransactionService.GetTransaction(c.Context, id)
	if err != nil {
		return err
	}

	out := c.App.Writer
	fmt.Fprintf(out, "id:       %d\n", tx.ID)
	fmt.Fprintf(out, "date:     %s\n", tx.Date)
	fmt.Fprintf(out, "account:  %d\n", tx.AccountID)
	fmt.Fprintf(out, "category: %s\n", tx.Category)
	fmt.Fprintf(out, "amount:   %s\n", tx.Amount.StringFixed(2))
	fmt.Fprintf(out, "comment:  %s\n", tx.Comment)
	if tx.PhotoPath == "" {
		fmt.Fprintln(out, "photo:    none")
	} else {
		fmt.Fprintf(out, "photo:    %s\n", tx.PhotoPath)
	}
	return nil
}
