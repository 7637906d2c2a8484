package transaction

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/dialect"
	"github.com/stephenafamo/bob/dialect/sqlite/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/finance-tracker/internal/storage/dberr"
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// List returns transactions joined with their account name, in insertion
// order. Rows whose account no longer exists are excluded by the inner join.
func (r *Reader) List(ctx context.Context, filter *TransactionFilter) ([]*JoinedTransaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(joinedColumns...),
		sm.From(tableName),
		sm.InnerJoin("accounts").On(
			sqlite.Quote("accounts", "id").EQ(sqlite.Quote(tableName, "account_id")),
		),
	}
	if filter != nil && filter.AccountID != nil {
		queryMods = append(queryMods,
			sm.Where(sqlite.Quote(tableName, "account_id").EQ(sqlite.Arg(*filter.AccountID))),
		)
	}
	queryMods = append(queryMods, sm.OrderBy(sqlite.Quote(tableName, "id")).Asc())

	rows, err := bob.All(ctx, r.exec, sqlite.Select(queryMods...), scan.StructMapper[*JoinedTransaction]())
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	return rows, nil
}

// ListByAccount returns the account's rows without joining, so it works for
// accounts that are already gone.
func (r *Reader) ListByAccount(ctx context.Context, accountID int64) ([]*Transaction, error) {
	q := sqlite.Select(
		sm.Columns(columns...),
		sm.From(tableName),
		sm.Where(sqlite.Quote("account_id").EQ(sqlite.Arg(accountID))),
		sm.OrderBy("id").Asc(),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	return rows, nil
}

// FindByID returns ErrNotFound when no transaction has the id.
func (r *Reader) FindByID(ctx context.Context, id int64) (*Transaction, error) {
	q := sqlite.Select(
		sm.Columns(columns...),
		sm.From(tableName),
		sm.Where(sqlite.Quote("id").EQ(sqlite.Arg(id))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[*Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	return row, nil
}

// Count counts every row, dangling ones included.
func (r *Reader) Count(ctx context.Context) (int64, error) {
	q := sqlite.Select(
		sm.Columns("COUNT(*)"),
		sm.From(tableName),
	)
	n, err := bob.One(ctx, r.exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, dberr.Wrap(err)
	}
	return n, nil
}

// CountDangling counts rows whose account_id matches no account.
func (r *Reader) CountDangling(ctx context.Context) (int64, error) {
	q := sqlite.Select(
		sm.Columns("COUNT(*)"),
		sm.From(tableName),
		sm.Where(sqlite.Raw("account_id NOT IN (SELECT id FROM accounts)")),
	)
	n, err := bob.One(ctx, r.exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, dberr.Wrap(err)
	}
	return n, nil
}
