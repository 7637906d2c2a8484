package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/account"
)

// DeleteAccount removes the account's transactions first, then the account.
type DeleteAccount struct {
	AccountID int64

	// Set after Perform succeeds. PhotoPaths lists the receipt copies the
	// removed transactions referenced.
	RemovedTransactions int
	PhotoPaths          []string
}

func (d *DeleteAccount) ActionName() string { return "DeleteAccount" }

func (d *DeleteAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := writer.Account.FindByID(ctx, d.AccountID); err != nil {
		return err
	}

	rows, err := writer.Transaction.ListByAccount(ctx, d.AccountID)
	if err != nil {
		return err
	}
	var photos []string
	for _, row := range rows {
		if row.PhotoPath.Valid {
			photos = append(photos, row.PhotoPath.String)
		}
	}

	removed, err := writer.Transaction.DeleteByAccount(ctx, d.AccountID)
	if err != nil {
		return err
	}

	deleted, err := writer.Account.Delete(ctx, d.AccountID)
	if err != nil {
		return err
	}
	if !deleted {
		return account.ErrNotFound
	}

	d.RemovedTransactions = removed
	d.PhotoPaths = photos
	return nil
}
