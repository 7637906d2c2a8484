package account

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/dm"
	"github.com/stephenafamo/bob/dialect/sqlite/im"
	"github.com/stephenafamo/bob/dialect/sqlite/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/finance-tracker/internal/storage/dberr"
)

// Writer runs account writes inside the transaction it was built with.
type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// Insert creates an account whose balance starts at StartingBalance and
// returns the generated id.
func (w *Writer) Insert(ctx context.Context, create *AccountCreate) (int64, error) {
	q := sqlite.Insert(
		im.Into(tableName, "name", "balance", "starting_balance"),
		im.Values(sqlite.Arg(create.Name, create.StartingBalance, create.StartingBalance)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, w.tx, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, dberr.Wrap(err)
	}
	return id, nil
}

// AdjustBalance adds delta to the stored balance. A missing account is a
// no-op: it reports false with a nil error.
func (w *Writer) AdjustBalance(ctx context.Context, id int64, delta decimal.Decimal) (bool, error) {
	current, err := w.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return w.SetBalance(ctx, id, current.Balance.Add(delta))
}

// SetBalance overwrites the stored balance. Reports false when no row matched.
func (w *Writer) SetBalance(ctx context.Context, id int64, balance decimal.Decimal) (bool, error) {
	q := sqlite.Update(
		um.Table(tableName),
		um.SetCol("balance").ToArg(balance),
		um.Where(sqlite.Quote("id").EQ(sqlite.Arg(id))),
		um.Returning("id"),
	)
	ids, err := bob.All(ctx, w.tx, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return false, dberr.Wrap(err)
	}
	return len(ids) > 0, nil
}

// Delete removes the account row only; transactions are the caller's concern.
func (w *Writer) Delete(ctx context.Context, id int64) (bool, error) {
	q := sqlite.Delete(
		dm.From(tableName),
		dm.Where(sqlite.Quote("id").EQ(sqlite.Arg(id))),
		dm.Returning("id"),
	)
	ids, err := bob.All(ctx, w.tx, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return false, dberr.Wrap(err)
	}
	return len(ids) > 0, nil
}
