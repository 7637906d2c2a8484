package api

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/storage/storagetest"
)

type harness struct {
	cfg    *config.Config
	logger *logrus.Logger
	opened []string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &harness{cfg: storagetest.Config(t), logger: logger}
}

func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	app := CLI{
		Logger: h.logger,
		Out:    out,
		ErrOut: io.Discard,
		Open: func(ctx context.Context, configPath string) (*Runtime, error) {
			h.opened = append(h.opened, configPath)
			return Bootstrap(ctx, h.cfg, h.logger)
		},
	}
	err := app.Run(context.Background(), append([]string{"fintrack"}, args...))
	return out.String(), err
}

func (h *harness) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := h.run(t, args...)
	require.NoError(t, err, out)
	return out
}

func TestCLI_AccountAndTransactionFlow(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, "created account 1\n", h.mustRun(t, "account", "add", "--name", "Checking", "--balance", "100"))
	h.mustRun(t, "tx", "add", "--account", "1", "--amount", "50", "--date", "2024-01-01", "--category", "Rent")
	h.mustRun(t, "tx", "add", "--account", "1", "--amount", "20", "--income", "--date", "2024-01-01")
	h.mustRun(t, "tx", "add", "--account", "1", "--amount", "10", "--income", "--date", "2024-01-03")

	out := h.mustRun(t, "account", "list")
	assert.Contains(t, out, "80.00")

	out = h.mustRun(t, "chart", "--account", "1")
	assert.Contains(t, out, "01 Jan 24")
	assert.Contains(t, out, "-30.00")
	assert.Contains(t, out, "-20.00")

	assert.Equal(t, "deleted transaction 1\n", h.mustRun(t, "tx", "delete", "--id", "1"))
	assert.Contains(t, h.mustRun(t, "account", "list"), "130.00")

	out = h.mustRun(t, "status")
	assert.Contains(t, out, h.cfg.DBPath)
	assert.Contains(t, out, "drifted:         0")
}

func TestCLI_PhotoAttachedAndShown(t *testing.T) {
	h := newHarness(t)
	h.mustRun(t, "account", "add", "--name", "Cash")

	src := filepath.Join(t.TempDir(), "receipt.jpg")
	require.NoError(t, os.WriteFile(src, []byte("jpeg"), 0o644))
	h.mustRun(t, "tx", "add", "--account", "1", "--amount", "3.20", "--date", "2024-05-05", "--photo", src)
	require.NoError(t, os.Remove(src))

	out := h.mustRun(t, "tx", "show", "--id", "1")
	assert.Contains(t, out, "photo:    "+h.cfg.PhotoDir)
}

func TestCLI_ErrorsReturned(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "tx", "add", "--account", "9", "--amount", "1", "--date", "2024-01-01")
	assert.ErrorContains(t, err, "account")

	_, err = h.run(t, "tx", "add", "--account", "9", "--amount", "0", "--date", "2024-01-01")
	assert.ErrorContains(t, err, "non-zero")

	out, err := h.run(t, "chart", "--account", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "no transactions")
}

func TestCLI_ConfigFlagPassedToOpen(t *testing.T) {
	h := newHarness(t)
	h.mustRun(t, "--config", "/etc/fintrack.yaml", "account", "list")
	assert.Equal(t, []string{"/etc/fintrack.yaml"}, h.opened)
}
