package service

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// Status summarizes the local data set.
type Status struct {
	DBPath          string
	Accounts        int
	Transactions    int
	DanglingRows    int64
	DriftedAccounts int
}

type StatusService struct {
	storage  *storage.Storage
	accounts *AccountService
}

func NewStatusService(store *storage.Storage, accounts *AccountService) *StatusService {
	return &StatusService{storage: store, accounts: accounts}
}

func (s *StatusService) Status(ctx context.Context) (*Status, error) {
	reader := s.storage.Read()

	drifts, err := s.accounts.AuditBalances(ctx)
	if err != nil {
		return nil, err
	}
	total, err := reader.Transactions.Count(ctx)
	if err != nil {
		return nil, err
	}
	dangling, err := reader.Transactions.CountDangling(ctx)
	if err != nil {
		return nil, err
	}

	status := &Status{
		DBPath:       s.storage.Path,
		Accounts:     len(drifts),
		Transactions: int(total),
		DanglingRows: dangling,
	}
	for _, d := range drifts {
		if d.Drifted() {
			status.DriftedAccounts++
		}
	}
	return status, nil
}
