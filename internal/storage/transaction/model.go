package transaction

import (
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"
)

const tableName = "transactions"

// ErrNotFound is returned by lookups by id when no row matches.
var ErrNotFound = errors.New("transaction not found")

// Transaction represents a transaction record.
type Transaction struct {
	ID        int64           `db:"id"`
	Date      string          `db:"date"`
	AccountID int64           `db:"account_id"`
	Category  string          `db:"category"`
	Amount    decimal.Decimal `db:"amount"`
	Comment   string          `db:"comment"`
	PhotoPath sql.NullString  `db:"photo_path"`
}

// JoinedTransaction is a transaction row with the owning account's name.
type JoinedTransaction struct {
	Transaction
	AccountName string `db:"account_name"`
}

// TransactionCreate is the input for creating a new transaction. Amount is
// already signed; the account is neither checked nor updated.
type TransactionCreate struct {
	Date      string
	AccountID int64
	Category  string
	Amount    decimal.Decimal
	Comment   string
	PhotoPath string // empty stores NULL
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	AccountID *int64
}

var columns = []any{"id", "date", "account_id", "category", "amount", "comment", "photo_path"}

// joinedColumns are qualified because both tables have an id column.
var joinedColumns = []any{
	"transactions.id",
	"transactions.date",
	"transactions.account_id",
	"transactions.category",
	"transactions.amount",
	"transactions.comment",
	"transactions.photo_path",
	"accounts.name AS account_name",
}
