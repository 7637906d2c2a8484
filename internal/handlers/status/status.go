package status

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type statusService interface {
	Status(ctx context.Context) (*service.Status, error)
}

// Handler prints where data lives and whether balances are consistent.
type Handler struct {
	StatusService statusService
	PhotoDir      string
	ChartDir      string
}

func NewHandler(svc statusService, photoDir string, chartDir string) *Handler {
	return &Handler{StatusService: svc, PhotoDir: photoDir, ChartDir: chartDir}
}

func (h *Handler) Command(logger *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:   "status",
		Usage:  "show storage paths and consistency counters",
		Action: logging.CommandWrapper("Status", logger, h.handle),
	}
}

func (h *Handler) handle(c *cli.Context, logData *logging.LogData) error {
	status, err := h.StatusService.Status(c.Context)
	if err != nil {
		return err
	}
	logData.AddData("drifted", status.DriftedAccounts)
	logData.AddData("dangling", status.DanglingRows)

	out := c.App.Writer
	fmt.Fprintf(out, "database:        %s\n", status.DBPath)
	fmt.Fprintf(out, "photos:          %s\n", h.PhotoDir)
	fmt.Fprintf(out, "charts:          %s\n", h.ChartDir)
	fmt.Fprintf(out, "accounts:        %s\n", humanize.Comma(int64(status.Accounts)))
	fmt.Fprintf(out, "transactions:    %s\n", humanize.Comma(int64(status.Transactions)))
	fmt.Fprintf(out, "drifted:         %d\n", status.DriftedAccounts)
	fmt.Fprintf(out, "dangling rows:   %d\n", status.DanglingRows)
	return nil
}
