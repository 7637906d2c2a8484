package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/receipt"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/account"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

const dateLayout = "2006-01-02"

// TransactionService handles transaction business logic. Every mutation goes
// through the operator so the owning account's balance moves with it.
type TransactionService struct {
	storage  *storage.Storage
	operator *operator.Operator
	receipts *receipt.Store
	logger   *logrus.Logger
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, op *operator.Operator, receipts *receipt.Store, logger *logrus.Logger) *TransactionService {
	return &TransactionService{storage: store, operator: op, receipts: receipts, logger: logger}
}

// RecordTransaction validates the input, copies the receipt photo if one is
// given and records the signed amount against the account.
func (s *TransactionService) RecordTransaction(ctx context.Context, in NewTransaction) (*RecordResult, error) {
	if in.AccountID == 0 {
		return nil, ErrMissingAccount
	}
	if _, err := time.Parse(dateLayout, in.Date); err != nil {
		return nil, ErrInvalidDate
	}
	if in.Magnitude.IsZero() || in.Magnitude.IsNegative() {
		return nil, ErrInvalidAmount
	}

	amount := in.Magnitude
	if in.Direction == Expense {
		amount = amount.Neg()
	}
	result := &RecordResult{Amount: amount}
	logData := logging.GetLogData(ctx)

	if in.PhotoSource != "" {
		stopTimer := logData.AddTiming("photoCopyMs")
		stored, err := s.receipts.Save(in.PhotoSource)
		stopTimer()
		if err != nil {
			s.logger.WithError(err).WithField("source", in.PhotoSource).
				Warn("TransactionService.RecordTransaction.photoSkipped")
			logData.AddData("photoSkipped", true)
			result.PhotoWarning = err
		} else {
			result.PhotoPath = stored
		}
	}

	action := &actions.RecordTransaction{
		Date:      in.Date,
		AccountID: in.AccountID,
		Category:  strings.TrimSpace(in.Category),
		Amount:    amount,
		Comment:   in.Comment,
		PhotoPath: result.PhotoPath,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		discardPhoto(s.receipts, s.logger, result.PhotoPath)
		if errors.Is(err, account.ErrNotFound) {
			return nil, ErrMissingAccount
		}
		return nil, fmt.Errorf("record transaction: %w", err)
	}

	result.ID = action.CreatedID
	return result, nil
}

// RemoveTransaction deletes the transaction and takes its amount back out of
// the account balance. The stored receipt copy is removed afterwards.
func (s *TransactionService) RemoveTransaction(ctx context.Context, id int64) error {
	action := &actions.RemoveTransaction{ID: id}
	err := s.operator.Process(ctx, action)
	if errors.Is(err, transaction.ErrNotFound) {
		return ErrTransactionNotFound
	}
	if err != nil {
		return fmt.Errorf("remove transaction %d: %w", id, err)
	}

	if action.AccountMissing {
		s.logger.WithFields(logrus.Fields{
			"transactionID": id,
			"accountID":     action.Removed.AccountID,
		}).Warn("TransactionService.RemoveTransaction.danglingAccount")
	}
	if action.Removed.PhotoPath.Valid {
		discardPhoto(s.receipts, s.logger, action.Removed.PhotoPath.String)
	}
	return nil
}

// ListTransactions returns transactions joined with their account names.
// Rows whose account no longer exists are left out.
func (s *TransactionService) ListTransactions(ctx context.Context, filter *TransactionFilter) ([]Transaction, error) {
	var storageFilter *transaction.TransactionFilter
	if filter != nil {
		storageFilter = &transaction.TransactionFilter{AccountID: filter.AccountID}
	}

	rows, err := s.storage.Read().Transactions.List(ctx, storageFilter)
	if err != nil {
		return nil, err
	}

	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = transactionFromStorage(&row.Transaction)
		converted[i].AccountName = row.AccountName
	}
	return converted, nil
}

// GetTransaction retrieves a transaction by ID.
func (s *TransactionService) GetTransaction(ctx context.Context, id int64) (*Transaction, error) {
	row, err := s.storage.Read().Transactions.FindByID(ctx, id)
	if errors.Is(err, transaction.ErrNotFound) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	tx := transactionFromStorage(row)
	return &tx, nil
}

// discardPhoto removes a stored receipt copy. Failures are logged only; the
// database change has already happened.
func discardPhoto(receipts *receipt.Store, logger *logrus.Logger, path string) {
	if path == "" {
		return
	}
	if err := receipts.Remove(path); err != nil {
		logger.WithError(err).WithField("path", path).Warn("Service.discardPhoto.failed")
	}
}
