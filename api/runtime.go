package api

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/receipt"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// Runtime is everything a command needs once configuration is known. Close
// releases the storage handle.
type Runtime struct {
	Config  *config.Config
	Service *service.Service
	Close   func() error
}

// Bootstrap opens storage and the photo store for cfg and wires the services.
func Bootstrap(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Runtime, error) {
	store, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	receipts, err := receipt.NewStore(cfg.PhotoDir, logger)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	op := operator.NewOperator(store, logger)
	return &Runtime{
		Config:  cfg,
		Service: service.NewService(store, op, receipts, logger),
		Close:   store.Close,
	}, nil
}
