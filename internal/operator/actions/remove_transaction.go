package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// RemoveTransaction deletes a transaction by id and subtracts its amount from
// the owning account. If the account is already gone the balance step is a
// no-op.
type RemoveTransaction struct {
	ID int64

	// Removed is the deleted row, set after Perform succeeds.
	Removed *transaction.Transaction
	// AccountMissing reports that no balance was adjusted.
	AccountMissing bool
}

func (r *RemoveTransaction) ActionName() string { return "RemoveTransaction" }

func (r *RemoveTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Transaction.FindByID(ctx, r.ID)
	if err != nil {
		return err
	}

	deleted, err := writer.Transaction.Delete(ctx, r.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return transaction.ErrNotFound
	}

	found, err := writer.Account.AdjustBalance(ctx, row.AccountID, row.Amount.Neg())
	if err != nil {
		return err
	}

	r.Removed = row
	r.AccountMissing = !found
	return nil
}
