package transaction

import (
	"fmt"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

func (h *Handler) listCommand(logger *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list transactions",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "account", Usage: "only this account"},
		},
		Action: logging.CommandWrapper("ListTransactions", logger, h.handleList),
	}
}

func (h *Handler) handleList(c *cli.Context, logData *logging.LogData) error {
	var filter *service.TransactionFilter
	if c.IsSet("account") {
		accountID := c.Int64("account")
		filter = &service.TransactionFilter{AccountID: &accountID}
		logData.AddData("accountID", accountID)
	}

	stopTimer := logData.AddTiming("listTransactionsMs")
	txs, err := h.TransactionService.ListTransactions(c.Context, filter)
	stopTimer()
	if err != nil {
		return err
	}
	logData.AddData("count", len(txs))

	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tACCOUNT\tCATEGORY\tAMOUNT\tCOMMENT\tPHOTO")
	for _, tx := range txs {
		photo := ""
		if tx.PhotoPath != "" {
			photo = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			tx.ID, tx.Date, tx.AccountName, tx.Category, tx.Amount.StringFixed(2), tx.Comment, photo)
	}
	return w.Flush()
}
