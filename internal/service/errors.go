package service

import (
	"errors"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

var (
	ErrStorageUnavailable  = storage.ErrUnavailable
	ErrInvalidAmount       = errors.New("amount must be a non-zero magnitude")
	ErrMissingAccount      = errors.New("no account selected or account does not exist")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidDate         = errors.New("date must be YYYY-MM-DD")
	ErrInvalidName         = errors.New("account name cannot be empty")
)
