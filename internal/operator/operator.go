package operator

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// Operator runs each action inside its own storage transaction, on the
// caller's goroutine. Every write in an action commits together or not at all.
type Operator struct {
	storage *storage.Storage
	logger  *logrus.Logger
}

func NewOperator(s *storage.Storage, logger *logrus.Logger) *Operator {
	return &Operator{
		storage: s,
		logger:  logger,
	}
}

// Process performs action and commits, or rolls back and returns the
// action's error.
func (o *Operator) Process(ctx context.Context, action actions.IAction) error {
	writer, err := o.storage.Write(ctx)
	if err != nil {
		return err
	}

	err = action.Perform(ctx, writer)
	if err != nil {
		if rbErr := writer.Rollback(); rbErr != nil {
			o.logger.WithError(rbErr).WithField("action", action.ActionName()).Warn("Operator.Process.rollback failed")
		}
		return err
	}

	if err = writer.Commit(); err != nil {
		return err
	}

	o.logger.WithField("action", action.ActionName()).Debug("Operator.Process.committed")
	return nil
}
