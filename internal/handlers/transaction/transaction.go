package transaction

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/finance-tracker/internal/service"
)

type transactionService interface {
	RecordTransaction(ctx context.Context, in service.NewTransaction) (*service.RecordResult, error)
	RemoveTransaction(ctx context.Context, id int64) error
	ListTransactions(ctx context.Context, filter *service.TransactionFilter) ([]service.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (*service.Transaction, error)
}

// Handler serves the tx subcommands.
type Handler struct {
	TransactionService transactionService
	// Now supplies the default date. Tests pin it.
	Now func() time.Time
}

func NewHandler(svc transactionService) *Handler {
	return &Handler{TransactionService: svc, Now: time.Now}
}

// Command returns the "tx" command tree.
func (h *Handler) Command(logger *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:  "tx",
		Usage: "record and inspect transactions",
		Subcommands: []*cli.Command{
			h.createCommand(logger),
			h.listCommand(logger),
			h.deleteCommand(logger),
			h.showCommand(logger),
		},
	}
}
