package service

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage/account"
)

// Account is the service representation of an account.
type Account struct {
	ID              int64
	Name            string
	Balance         decimal.Decimal
	StartingBalance decimal.Decimal
}

// BalanceDrift compares a stored balance with starting balance plus the sum
// of the account's transactions.
type BalanceDrift struct {
	AccountID   int64
	AccountName string
	Stored      decimal.Decimal
	Expected    decimal.Decimal
}

func (d BalanceDrift) Drifted() bool {
	return !d.Stored.Equal(d.Expected)
}

func accountFromStorage(row *account.Account) Account {
	return Account{
		ID:              row.ID,
		Name:            row.Name,
		Balance:         row.Balance,
		StartingBalance: row.StartingBalance,
	}
}
