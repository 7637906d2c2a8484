package transaction

import (
	"context"
	"database/sql"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/dm"
	"github.com/stephenafamo/bob/dialect/sqlite/im"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/finance-tracker/internal/storage/dberr"
)

// Writer runs transaction writes inside the transaction it was built with.
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

// Insert stores the row and returns its generated id. It does not touch the
// account balance.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (int64, error) {
	photo := sql.NullString{String: create.PhotoPath, Valid: create.PhotoPath != ""}
	q := sqlite.Insert(
		im.Into(tableName, "date", "account_id", "category", "amount", "comment", "photo_path"),
		im.Values(sqlite.Arg(
			create.Date,
			create.AccountID,
			create.Category,
			create.Amount,
			create.Comment,
			photo,
		)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, w.tx, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, dberr.Wrap(err)
	}
	return id, nil
}

// Delete removes one transaction by primary key. Reports false when no row
// matched.
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

// DeleteByAccount removes every transaction referencing accountID and
// returns how many were removed.
func (w *Writer) DeleteByAccount(ctx context.Context, accountID int64) (int, error) {
	q := sqlite.Delete(
		dm.From(tableName),
		dm.Where(sqlite.Quote("account_id").EQ(sqlite.Arg(accountID))),
		dm.Returning("id"),
	)
	ids, err := bob.All(ctx, w.tx, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, dberr.Wrap(err)
	}
	return len(ids), nil
}
