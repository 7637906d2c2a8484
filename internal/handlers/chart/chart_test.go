package chart

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/finance-tracker/internal/chart"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type mockChartService struct {
	mock.Mock
}

func (m *mockChartService) BalanceSeries(ctx context.Context, accountID int64) ([]chart.Point, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]chart.Point), args.Error(1)
}

type mockAccountGetter struct {
	mock.Mock
}

func (m *mockAccountGetter) GetAccount(ctx context.Context, id int64) (*service.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Account), args.Error(1)
}

func run(t *testing.T, h *Handler, args ...string) (string, error) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	out := &bytes.Buffer{}
	app := &cli.App{
		Name:      "fintrack",
		Writer:    out,
		ErrWriter: io.Discard,
		Commands:  []*cli.Command{h.Command(logger)},
	}
	err := app.RunContext(context.Background(), append([]string{"fintrack", "chart"}, args...))
	return out.String(), err
}

var points = []chart.Point{
	{Date: "2024-01-01", Balance: decimal.NewFromInt(-30)},
	{Date: "2024-01-03", Balance: decimal.NewFromInt(-20)},
}

func TestChart_PrintsSeries(t *testing.T) {
	charts := new(mockChartService)
	charts.On("BalanceSeries", mock.Anything, int64(1)).Return(points, nil)

	out, err := run(t, NewHandler(charts, new(mockAccountGetter), t.TempDir()), "--account", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "01 Jan 24")
	assert.Contains(t, out, "-20.00")
}

func TestChart_NoDataIsNotAnError(t *testing.T) {
	charts := new(mockChartService)
	charts.On("BalanceSeries", mock.Anything, int64(6)).Return(nil, chart.ErrNoData)

	out, err := run(t, NewHandler(charts, new(mockAccountGetter), t.TempDir()), "--account", "6")
	require.NoError(t, err)
	assert.Equal(t, "account 6 has no transactions to chart\n", out)
}

func TestChart_MissingAccount(t *testing.T) {
	charts := new(mockChartService)
	charts.On("BalanceSeries", mock.Anything, int64(0)).Return(nil, service.ErrMissingAccount)

	_, err := run(t, NewHandler(charts, new(mockAccountGetter), t.TempDir()))
	assert.ErrorIs(t, err, service.ErrMissingAccount)
}

func TestChart_WritesPDFIntoChartDir(t *testing.T) {
	chartDir := filepath.Join(t.TempDir(), "charts")
	charts := new(mockChartService)
	charts.On("BalanceSeries", mock.Anything, int64(1)).Return(points, nil)
	accounts := new(mockAccountGetter)
	accounts.On("GetAccount", mock.Anything, int64(1)).Return(&service.Account{ID: 1, Name: "Checking"}, nil)

	out, err := run(t, NewHandler(charts, accounts, chartDir), "--account", "1", "--pdf", "checking.pdf")
	require.NoError(t, err)

	path := filepath.Join(chartDir, "checking.pdf")
	assert.Contains(t, out, "chart written to "+path)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
}

func TestWritePDF_RenderFailureLeavesNoFile(t *testing.T) {
	chartDir := t.TempDir()
	accounts := new(mockAccountGetter)
	accounts.On("GetAccount", mock.Anything, int64(1)).Return(nil, service.ErrMissingAccount)
	h := NewHandler(new(mockChartService), accounts, chartDir)

	_, err := h.writePDF(context.Background(), 1, "empty.pdf", nil)
	assert.ErrorIs(t, err, chart.ErrNoData)

	entries, err := os.ReadDir(chartDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
