package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/receipt"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/account"
)

// AccountService handles account business logic.
type AccountService struct {
	storage  *storage.Storage
	operator *operator.Operator
	receipts *receipt.Store
	logger   *logrus.Logger
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage, op *operator.Operator, receipts *receipt.Store, logger *logrus.Logger) *AccountService {
	return &AccountService{storage: store, operator: op, receipts: receipts, logger: logger}
}

// CreateAccount creates an account whose balance starts at initialBalance
// and returns its id.
func (s *AccountService) CreateAccount(ctx context.Context, name string, initialBalance decimal.Decimal) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, ErrInvalidName
	}

	action := &actions.CreateAccount{Name: name, StartingBalance: initialBalance}
	if err := s.operator.Process(ctx, action); err != nil {
		return 0, fmt.Errorf("create account: %w", err)
	}
	return action.CreatedID, nil
}

// ListAccounts returns every account in creation order.
func (s *AccountService) ListAccounts(ctx context.Context) ([]Account, error) {
	rows, err := s.storage.Read().Accounts.List(ctx)
	if err != nil {
		return nil, err
	}

	accounts := make([]Account, len(rows))
	for i, row := range rows {
		accounts[i] = accountFromStorage(row)
	}
	return accounts, nil
}

// GetAccount retrieves an account by ID.
func (s *AccountService) GetAccount(ctx context.Context, id int64) (*Account, error) {
	row, err := s.storage.Read().Accounts.FindByID(ctx, id)
	if errors.Is(err, account.ErrNotFound) {
		return nil, ErrMissingAccount
	}
	if err != nil {
		return nil, err
	}
	acc := accountFromStorage(row)
	return &acc, nil
}

// DeleteAccount removes the account and all of its transactions, returning
// how many transactions went with it. Their receipt copies are removed
// afterwards.
func (s *AccountService) DeleteAccount(ctx context.Context, id int64) (int, error) {
	action := &actions.DeleteAccount{AccountID: id}
	err := s.operator.Process(ctx, action)
	if errors.Is(err, account.ErrNotFound) {
		return 0, ErrMissingAccount
	}
	if err != nil {
		return 0, fmt.Errorf("delete account %d: %w", id, err)
	}
	for _, path := range action.PhotoPaths {
		discardPhoto(s.receipts, s.logger, path)
	}
	return action.RemovedTransactions, nil
}

// AuditBalances reports, for every account, the stored balance next to the
// balance its transactions imply. Nothing is written.
func (s *AccountService) AuditBalances(ctx context.Context) ([]BalanceDrift, error) {
	reader := s.storage.Read()
	rows, err := reader.Accounts.List(ctx)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	drifts := make([]BalanceDrift, 0, len(rows))
	for _, row := range rows {
		stopTimer := logData.AddToExistingTiming("auditListTransactionsMs")
		txs, err := reader.Transactions.ListByAccount(ctx, row.ID)
		stopTimer()
		if err != nil {
			return nil, err
		}
		expected := row.StartingBalance
		for _, tx := range txs {
			expected = expected.Add(tx.Amount)
		}

		drift := BalanceDrift{
			AccountID:   row.ID,
			AccountName: row.Name,
			Stored:      row.Balance,
			Expected:    expected,
		}
		if drift.Drifted() {
			s.logger.WithFields(logrus.Fields{
				"accountID": row.ID,
				"stored":    row.Balance.String(),
				"expected":  expected.String(),
			}).Warn("AccountService.AuditBalances.drift")
		}
		drifts = append(drifts, drift)
	}
	return drifts, nil
}

// ReconcileAccount rewrites the stored balance from the transaction history.
func (s *AccountService) ReconcileAccount(ctx context.Context, id int64) (BalanceDrift, error) {
	action := &actions.ReconcileAccount{AccountID: id}
	err := s.operator.Process(ctx, action)
	if errors.Is(err, account.ErrNotFound) {
		return BalanceDrift{}, ErrMissingAccount
	}
	if err != nil {
		return BalanceDrift{}, fmt.Errorf("reconcile account %d: %w", id, err)
	}
	return BalanceDrift{
		AccountID:   id,
		AccountName: action.AccountName,
		Stored:      action.Stored,
		Expected:    action.Expected,
	}, nil
}
