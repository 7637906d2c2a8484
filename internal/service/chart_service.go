package service

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/chart"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

type ChartService struct {
	storage *storage.Storage
}

func NewChartService(store *storage.Storage) *ChartService {
	return &ChartService{storage: store}
}

// BalanceSeries returns the cumulative daily balance of the account's
// transactions. Rows of a deleted account are not listed, so such an account
// yields chart.ErrNoData like an empty one.
func (s *ChartService) BalanceSeries(ctx context.Context, accountID int64) ([]chart.Point, error) {
	if accountID == 0 {
		return nil, ErrMissingAccount
	}

	rows, err := s.storage.Read().Transactions.List(ctx, &transaction.TransactionFilter{AccountID: &accountID})
	if err != nil {
		return nil, err
	}

	entries := make([]chart.Entry, len(rows))
	for i, row := range rows {
		entries[i] = chart.Entry{Date: row.Date, AccountID: row.AccountID, Amount: row.Amount}
	}
	return chart.BalanceSeries(entries, accountID)
}
