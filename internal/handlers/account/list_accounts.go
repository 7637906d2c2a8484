package account

import (
	"fmt"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/finance-tracker/internal/logging"
)

func (h *Handler) listCommand(logger *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:   "list",
		Usage:  "list accounts with their balances",
		Action: logging.CommandWrapper("ListAccounts", logger, h.handleList),
	}
}

func (h *Handler) handleList(c *cli.Context, logData *logging.LogData) error {
	stopTimer := logData.AddTiming("listAccountsMs")
	accounts, err := h.AccountService.ListAccounts(c.Context)
	stopTimer()
	if err != nil {
		return err
	}
	logData.AddData("count", len(accounts))

	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tBALANCE")
	for _, acc := range accounts {
		fmt.Fprintf(w, "%d\t%s\t%s\n", acc.ID, acc.Name, acc.Balance.StringFixed(2))
	}
	return w.Flush()
}
