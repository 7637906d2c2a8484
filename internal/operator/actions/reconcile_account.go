package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// ReconcileAccount rewrites the stored balance as starting balance plus the
// sum of the account's transactions.
type ReconcileAccount struct {
	AccountID int64

	// Set after Perform succeeds.
	AccountName string
	Stored      decimal.Decimal
	Expected    decimal.Decimal
}

func (r *ReconcileAccount) ActionName() string { return "ReconcileAccount" }

func (r *ReconcileAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	acc, err := writer.Account.FindByID(ctx, r.AccountID)
	if err != nil {
		return err
	}

	rows, err := writer.Transaction.ListByAccount(ctx, r.AccountID)
	if err != nil {
		return err
	}

	expected := acc.StartingBalance
	for _, row := range rows {
		expected = expected.Add(row.Amount)
	}

	if !expected.Equal(acc.Balance) {
		if _, err := writer.Account.SetBalance(ctx, r.AccountID, expected); err != nil {
			return err
		}
	}

	r.AccountName = acc.Name
	r.Stored = acc.Balance
	r.Expected = expected
	return nil
}
