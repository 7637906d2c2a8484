package transaction

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

func (h *Handler) createCommand(logger *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "record a transaction; amounts are expenses unless --income is set",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "account", Usage: "account id"},
			&cli.StringFlag{Name: "amount", Usage: "unsigned amount, e.g. 12.99", Required: true},
			&cli.BoolFlag{Name: "income", Usage: "record as income instead of expense"},
			&cli.StringFlag{Name: "date", Usage: "YYYY-MM-DD, defaults to today"},
			&cli.StringFlag{Name: "category", Usage: "category label"},
			&cli.StringFlag{Name: "comment", Usage: "free text"},
			&cli.StringFlag{Name: "photo", Usage: "receipt image to copy into the photo store"},
		},
		Action: logging.CommandWrapper("CreateTransaction", logger, h.handleCreate),
	}
}

func (h *Handler) parseCreateInput(c *cli.Context) (service.NewTransaction, error) {
	magnitude, err := decimal.NewFromString(c.String("amount"))
	if err != nil {
		return service.NewTransaction{}, fmt.Errorf("%w: %q", service.ErrInvalidAmount, c.String("amount"))
	}

	date := c.String("date")
	if date == "" {
		date = h.Now().Format("2006-01-02")
	}

	direction := service.Expense
	if c.Bool("income") {
		direction = service.Income
	}

	return service.NewTransaction{
		Date:        date,
		AccountID:   c.Int64("account"),
		Category:    c.String("category"),
		Magnitude:   magnitude,
		Direction:   direction,
		Comment:     c.String("comment"),
		PhotoSource: c.String("photo"),
	}, nil
}

func (h *Handler) handleCreate(c *cli.Context, logData *logging.LogData) error {
	in, err := h.parseCreateInput(c)
	if err != nil {
		return err
	}
	logData.AddData("accountID", in.AccountID)
	logData.AddData("direction", in.Direction.String())

	stopTimer := logData.AddTiming("recordTransactionMs")
	result, err := h.TransactionService.RecordTransaction(c.Context, in)
	stopTimer()
	if err != nil {
		return err
	}

	logData.AddData("transactionID", result.ID)
	if result.PhotoWarning != nil {
		logData.AddData("photoWarning", result.PhotoWarning.Error())
		fmt.Fprintf(c.App.Writer, "warning: receipt not attached: %v\n", result.PhotoWarning)
	}
	fmt.Fprintf(c.App.Writer, "recorded transaction %d (%s)\n", result.ID, result.Amount.StringFixed(2))
	return nil
}
