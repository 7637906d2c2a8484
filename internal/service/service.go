package service

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/receipt"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Account     *AccountService
	Transaction *TransactionService
	Chart       *ChartService
	Status      *StatusService
}

// NewService wires the services over one storage handle and operator.
func NewService(store *storage.Storage, op *operator.Operator, receipts *receipt.Store, logger *logrus.Logger) *Service {
	accounts := NewAccountService(store, op, receipts, logger)
	return &Service{
		Account:     accounts,
		Transaction: NewTransactionService(store, op, receipts, logger),
		Chart:       NewChartService(store),
		Status:      NewStatusService(store, accounts),
	}
}
