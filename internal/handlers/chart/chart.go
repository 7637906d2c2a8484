package chart

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/finance-tracker/internal/chart"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type chartService interface {
	BalanceSeries(ctx context.Context, accountID int64) ([]chart.Point, error)
}

type accountGetter interface {
	GetAccount(ctx context.Context, id int64) (*service.Account, error)
}

// Handler serves the chart command. Relative PDF paths land in ChartDir.
type Handler struct {
	ChartService   chartService
	AccountService accountGetter
	ChartDir       string
}

func NewHandler(charts chartService, accounts accountGetter, chartDir string) *Handler {
	return &Handler{ChartService: charts, AccountService: accounts, ChartDir: chartDir}
}

func (h *Handler) Command(logger *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:  "chart",
		Usage: "show an account's balance over time",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "account", Usage: "account id"},
			&cli.StringFlag{Name: "pdf", Usage: "also render the chart to this PDF file"},
		},
		Action: logging.CommandWrapper("Chart", logger, h.handle),
	}
}

func (h *Handler) handle(c *cli.Context, logData *logging.LogData) error {
	accountID := c.Int64("account")
	logData.AddData("accountID", accountID)

	stopTimer := logData.AddTiming("balanceSeriesMs")
	points, err := h.ChartService.BalanceSeries(c.Context, accountID)
	stopTimer()
	if errors.Is(err, chart.ErrNoData) {
		logData.AddData("noData", true)
		fmt.Fprintf(c.App.Writer, "account %d has no transactions to chart\n", accountID)
		return nil
	}
	if err != nil {
		return err
	}
	logData.AddData("points", len(points))

	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tBALANCE")
	for _, p := range points {
		fmt.Fprintf(w, "%s\t%s\n", chart.Label(p.Date), p.Balance.StringFixed(2))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if c.String("pdf") == "" {
		return nil
	}
	path, err := h.writePDF(c.Context, accountID, c.String("pdf"), points)
	if err != nil {
		return err
	}
	logData.AddData("pdf", path)
	fmt.Fprintf(c.App.Writer, "chart written to %s\n", path)
	return nil
}

func (h *Handler) writePDF(ctx context.Context, accountID int64, target string, points []chart.Point) (string, error) {
	title := fmt.Sprintf("Account %d", accountID)
	if acc, err := h.AccountService.GetAccount(ctx, accountID); err == nil {
		title = acc.Name
	}

	path := target
	if !filepath.IsAbs(path) && filepath.Dir(path) == "." {
		path = filepath.Join(h.ChartDir, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create chart dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create chart file: %w", err)
	}

	err = chart.RenderPDF(f, title+" balance", points)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}
