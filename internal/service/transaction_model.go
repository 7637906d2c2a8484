package service

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// Direction decides the sign of a recorded amount.
type Direction int

const (
	Expense Direction = iota
	Income
)

func (d Direction) String() string {
	if d == Income {
		return "income"
	}
	return "expense"
}

// Transaction is the service representation of a transaction. AccountName is
// only filled by ListTransactions.
type Transaction struct {
	ID          int64
	Date        string
	AccountID   int64
	AccountName string
	Category    string
	Amount      decimal.Decimal
	Comment     string
	PhotoPath   string
}

// NewTransaction is the input for RecordTransaction. Magnitude is unsigned;
// Direction picks the sign. PhotoSource, when set, is copied into the photo
// store.
type NewTransaction struct {
	Date        string
	AccountID   int64
	Category    string
	Magnitude   decimal.Decimal
	Direction   Direction
	Comment     string
	PhotoSource string
}

// RecordResult describes a recorded transaction. PhotoWarning is set when the
// receipt could not be copied and the transaction was saved without it.
type RecordResult struct {
	ID           int64
	Amount       decimal.Decimal
	PhotoPath    string
	PhotoWarning error
}

// TransactionFilter narrows ListTransactions. Nil lists everything.
type TransactionFilter struct {
	AccountID *int64
}

func transactionFromStorage(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:        row.ID,
		Date:      row.Date,
		AccountID: row.AccountID,
		Category:  row.Category,
		Amount:    row.Amount,
		Comment:   row.Comment,
		PhotoPath: row.PhotoPath.String,
	}
}
