package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/account"
)

type CreateAccount struct {
	Name            string
	StartingBalance decimal.Decimal

	// CreatedID is set after Perform succeeds.
	CreatedID int64
}

func (c *CreateAccount) ActionName() string { return "CreateAccount" }

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Account.Insert(ctx, &account.AccountCreate{
		Name:            c.Name,
		StartingBalance: c.StartingBalance,
	})
	if err != nil {
		return err
	}
	c.CreatedID = id
	return nil
}
