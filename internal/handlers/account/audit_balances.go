package account

import (
	"fmt"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/finance-tracker/internal/logging"
)

func (h *Handler) auditCommand(logger *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:   "audit",
		Usage:  "compare stored balances with their transaction history",
		Action: logging.CommandWrapper("AuditBalances", logger, h.handleAudit),
	}
}

func (h *Handler) reconcileCommand(logger *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:  "reconcile",
		Usage: "rewrite an account balance from its transaction history",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "id", Usage: "account id", Required: true},
		},
		Action: logging.CommandWrapper("ReconcileAccount", logger, h.handleReconcile),
	}
}

func (h *Handler) handleAudit(c *cli.Context, logData *logging.LogData) error {
	drifts, err := h.AccountService.AuditBalances(c.Context)
	if err != nil {
		return err
	}

	drifted := 0
	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTORED\tEXPECTED\tSTATE")
	for _, d := range drifts {
		state := "ok"
		if d.Drifted() {
			state = "DRIFT"
			drifted++
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			d.AccountID, d.AccountName, d.Stored.StringFixed(2), d.Expected.StringFixed(2), state)
	}
	logData.AddData("drifted", drifted)
	return w.Flush()
}

func (h *Handler) handleReconcile(c *cli.Context, logData *logging.LogData) error {
	id := c.Int64("id")
	logData.AddData("accountID", id)

	drift, err := h.AccountService.ReconcileAccount(c.Context, id)
	if err != nil {
		return err
	}

	if !drift.Drifted() {
		fmt.Fprintf(c.App.Writer, "account %d already consistent at %s\n", id, drift.Expected.StringFixed(2))
		return nil
	}
	logData.AddData("previousBalance", drift.Stored.String())
	fmt.Fprintf(c.App.Writer, "account %d balance %s -> %s\n",
		id, drift.Stored.StringFixed(2), drift.Expected.StringFixed(2))
	return nil
}
