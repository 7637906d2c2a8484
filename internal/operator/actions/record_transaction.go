package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// RecordTransaction inserts a transaction and adds its amount to the owning
// account's balance in the same storage transaction.
type RecordTransaction struct {
	Date      string
	AccountID int64
	Category  string
	Amount    decimal.Decimal // signed
	Comment   string
	PhotoPath string

	// CreatedID is set after Perform succeeds.
	CreatedID int64
}

func (t *RecordTransaction) ActionName() string { return "RecordTransaction" }

func (t *RecordTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	// Fails with account.ErrNotFound before anything is written.
	if _, err := writer.Account.FindByID(ctx, t.AccountID); err != nil {
		return err
	}

	id, err := writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		Date:      t.Date,
		AccountID: t.AccountID,
		Category:  t.Category,
		Amount:    t.Amount,
		Comment:   t.Comment,
		PhotoPath: t.PhotoPath,
	})
	if err != nil {
		return err
	}

	if _, err := writer.Account.AdjustBalance(ctx, t.AccountID, t.Amount); err != nil {
		return err
	}

	t.CreatedID = id
	return nil
}
