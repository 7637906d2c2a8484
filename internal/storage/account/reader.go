package account

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
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

// List returns every account in insertion order.
func (r *Reader) List(ctx context.Context) ([]*Account, error) {
	q := sqlite.Select(
		sm.Columns(columns...),
		sm.From(tableName),
		sm.OrderBy("id").Asc(),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[*Account]())
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	return rows, nil
}

// FindByID returns ErrNotFound when no account has the id.
func (r *Reader) FindByID(ctx context.Context, id int64) (*Account, error) {
	q := sqlite.Select(
		sm.Columns(columns...),
		sm.From(tableName),
		sm.Where(sqlite.Quote("id").EQ(sqlite.Arg(id))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[*Account]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	return row, nil
}
