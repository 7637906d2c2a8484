package account

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/finance-tracker/internal/service"
)

type accountService interface {
	CreateAccount(ctx context.Context, name string, initialBalance decimal.Decimal) (int64, error)
	ListAccounts(ctx context.Context) ([]service.Account, error)
	DeleteAccount(ctx context.Context, id int64) (int, error)
	AuditBalances(ctx context.Context) ([]service.BalanceDrift, error)
	ReconcileAccount(ctx context.Context, id int64) (service.BalanceDrift, error)
}

// Handler serves the account subcommands.
type Handler struct {
	AccountService accountService
}

func NewHandler(svc accountService) *Handler {
	return &Handler{AccountService: svc}
}

// Command returns the "account" command tree.
func (h *Handler) Command(logger *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:  "account",
		Usage: "manage accounts",
		Subcommands: []*cli.Command{
			h.createCommand(logger),
			h.listCommand(logger),
			h.deleteCommand(logger),
			h.auditCommand(logger),
			h.reconcileCommand(logger),
		},
	}
}
