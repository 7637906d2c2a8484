package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/storage/account"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

type Writer struct {
	ctx         context.Context
	tx          bob.Tx
	Account     *account.Writer
	Transaction *transaction.Writer
}

func NewWriter(ctx context.Context, tx bob.Tx) Writer {
	return Writer{
		ctx:         ctx,
		tx:          tx,
		Account:     account.NewWriter(tx),
		Transaction: transaction.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return Unavailable(w.tx.Commit(w.ctx))
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(w.ctx)
}
