package account

import (
	"errors"

	"github.com/shopspring/decimal"
)

const tableName = "accounts"

// ErrNotFound is returned by lookups by id when no row matches.
var ErrNotFound = errors.New("account not found")

// Account represents an account record.
type Account struct {
	ID              int64           `db:"id"`
	Name            string          `db:"name"`
	Balance         decimal.Decimal `db:"balance"`
	StartingBalance decimal.Decimal `db:"starting_balance"`
}

// AccountCreate is the input for creating a new account. Nothing is
// validated here; callers own name and balance rules.
type AccountCreate struct {
	Name            string
	StartingBalance decimal.Decimal
}

var columns = []any{"id", "name", "balance", "starting_balance"}
