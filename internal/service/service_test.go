package service

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/chart"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/receipt"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/storagetest"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

type fixture struct {
	svc      *Service
	store    *storage.Storage
	receipts *receipt.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := storagetest.Open(t)
	receipts, err := receipt.NewStore(filepath.Join(t.TempDir(), "photos"), logger)
	require.NoError(t, err)

	return &fixture{
		svc:      NewService(store, operator.NewOperator(store, logger), receipts, logger),
		store:    store,
		receipts: receipts,
	}
}

func (f *fixture) account(t *testing.T, name string, balance string) int64 {
	t.Helper()
	id, err := f.svc.Account.CreateAccount(context.Background(), name, decimal.RequireFromString(balance))
	require.NoError(t, err)
	return id
}

func (f *fixture) record(t *testing.T, in NewTransaction) *RecordResult {
	t.Helper()
	result, err := f.svc.Transaction.RecordTransaction(context.Background(), in)
	require.NoError(t, err)
	return result
}

func (f *fixture) balance(t *testing.T, id int64) decimal.Decimal {
	t.Helper()
	acc, err := f.svc.Account.GetAccount(context.Background(), id)
	require.NoError(t, err)
	return acc.Balance
}

func expense(accountID int64, date string, magnitude string) NewTransaction {
	return NewTransaction{
		Date:      date,
		AccountID: accountID,
		Category:  "Groceries",
		Magnitude: decimal.RequireFromString(magnitude),
		Direction: Expense,
	}
}

func photoDirEntries(t *testing.T, f *fixture) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(f.receipts.Dir())
	require.NoError(t, err)
	return entries
}

// -- AccountService tests --

func TestCreateAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.svc.Account.CreateAccount(ctx, "  Checking ", decimal.RequireFromString("250.10"))
	require.NoError(t, err)

	acc, err := f.svc.Account.GetAccount(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Checking", acc.Name)
	assert.Equal(t, "250.1", acc.Balance.String())
	assert.True(t, acc.StartingBalance.Equal(acc.Balance))
}

func TestCreateAccount_EmptyName(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Account.CreateAccount(context.Background(), "   ", decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidName)

	accounts, err := f.svc.Account.ListAccounts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestGetAccount_Missing(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Account.GetAccount(context.Background(), 12)
	assert.ErrorIs(t, err, ErrMissingAccount)
}

func TestDeleteAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.account(t, "Cash", "0")
	f.record(t, expense(id, "2024-01-01", "5"))
	f.record(t, expense(id, "2024-01-02", "6"))

	removed, err := f.svc.Account.DeleteAccount(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	txs, err := f.svc.Transaction.ListTransactions(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, txs)

	_, err = f.svc.Account.DeleteAccount(ctx, id)
	assert.ErrorIs(t, err, ErrMissingAccount)
}

func TestDeleteAccount_RemovesPhotoCopies(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.account(t, "Cash", "0")
	other := f.account(t, "Card", "0")

	src := filepath.Join(t.TempDir(), "receipt.jpg")
	require.NoError(t, os.WriteFile(src, []byte("image"), 0o644))
	for _, accountID := range []int64{id, id, other} {
		in := expense(accountID, "2024-01-01", "5")
		in.PhotoSource = src
		f.record(t, in)
	}
	f.record(t, expense(id, "2024-01-02", "1"))
	require.Len(t, photoDirEntries(t, f), 3)

	removed, err := f.svc.Account.DeleteAccount(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)
	assert.Len(t, photoDirEntries(t, f), 1, "only the other account's copy remains")
}

func TestAuditBalances_RecordsLoopTiming(t *testing.T) {
	f := newFixture(t)
	f.account(t, "A", "0")
	f.account(t, "B", "0")

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logData := logging.NewLogData(logger)
	ctx := logging.WithLogData(context.Background(), logData)

	_, err := f.svc.Account.AuditBalances(ctx)
	require.NoError(t, err)
	assert.Contains(t, logData.Log().Data, "auditListTransactionsMs")
}

func TestAuditAndReconcile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.account(t, "Savings", "100")
	f.record(t, expense(id, "2024-01-01", "40"))

	drifts, err := f.svc.Account.AuditBalances(ctx)
	require.NoError(t, err)
	require.Len(t, drifts, 1)
	assert.False(t, drifts[0].Drifted())

	storagetest.Write(t, f.store, func(w *storage.Writer) {
		_, err := w.Account.SetBalance(ctx, id, decimal.NewFromInt(1))
		require.NoError(t, err)
	})

	drifts, err = f.svc.Account.AuditBalances(ctx)
	require.NoError(t, err)
	assert.True(t, drifts[0].Drifted())
	assert.Equal(t, "60", drifts[0].Expected.String())

	drift, err := f.svc.Account.ReconcileAccount(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Savings", drift.AccountName)
	assert.Equal(t, "1", drift.Stored.String())
	assert.Equal(t, "60", f.balance(t, id).String())

	_, err = f.svc.Account.ReconcileAccount(ctx, id+1)
	assert.ErrorIs(t, err, ErrMissingAccount)
}

// -- TransactionService tests --

func TestRecordTransaction_SignConvention(t *testing.T) {
	f := newFixture(t)
	id := f.account(t, "Checking", "0")

	spent := f.record(t, expense(id, "2024-01-01", "50"))
	assert.Equal(t, "-50", spent.Amount.String())

	income := expense(id, "2024-01-01", "20")
	income.Direction = Income
	earned := f.record(t, income)
	assert.Equal(t, "20", earned.Amount.String())

	assert.Equal(t, "-30", f.balance(t, id).String())
}

func TestRecordTransaction_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.account(t, "Checking", "10")

	tests := []struct {
		name string
		in   NewTransaction
		want error
	}{
		{name: "zero amount", in: expense(id, "2024-01-01", "0"), want: ErrInvalidAmount},
		{name: "negative magnitude", in: expense(id, "2024-01-01", "-3"), want: ErrInvalidAmount},
		{name: "no account", in: expense(0, "2024-01-01", "3"), want: ErrMissingAccount},
		{name: "unknown account", in: expense(id+10, "2024-01-01", "3"), want: ErrMissingAccount},
		{name: "bad date", in: expense(id, "01/02/2024", "3"), want: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Transaction.RecordTransaction(ctx, tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	txs, err := f.svc.Transaction.ListTransactions(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, txs)
	assert.Equal(t, "10", f.balance(t, id).String())
}

func TestRecordTransaction_PhotoCopySurvivesSourceDeletion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.account(t, "Checking", "0")

	src := filepath.Join(t.TempDir(), "receipt.jpg")
	require.NoError(t, os.WriteFile(src, []byte("image"), 0o644))

	in := expense(id, "2024-02-01", "12.99")
	in.PhotoSource = src
	result := f.record(t, in)
	require.NoError(t, result.PhotoWarning)
	require.NoError(t, os.Remove(src))

	tx, err := f.svc.Transaction.GetTransaction(ctx, result.ID)
	require.NoError(t, err)
	assert.Equal(t, result.PhotoPath, tx.PhotoPath)
	content, err := os.ReadFile(tx.PhotoPath)
	require.NoError(t, err)
	assert.Equal(t, "image", string(content))
}

func TestRecordTransaction_PhotoFailureIsWarning(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.account(t, "Checking", "0")

	in := expense(id, "2024-02-01", "4")
	in.PhotoSource = filepath.Join(t.TempDir(), "missing.jpg")
	result := f.record(t, in)

	assert.ErrorIs(t, result.PhotoWarning, receipt.ErrPhotoCopyFailed)
	assert.Empty(t, result.PhotoPath)

	tx, err := f.svc.Transaction.GetTransaction(ctx, result.ID)
	require.NoError(t, err)
	assert.Empty(t, tx.PhotoPath)
	assert.Equal(t, "-4", f.balance(t, id).String())
}

func TestRecordTransaction_PhotoLogData(t *testing.T) {
	f := newFixture(t)
	id := f.account(t, "Checking", "0")

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logData := logging.NewLogData(logger)
	ctx := logging.WithLogData(context.Background(), logData)

	in := expense(id, "2024-02-01", "4")
	in.PhotoSource = filepath.Join(t.TempDir(), "missing.jpg")
	_, err := f.svc.Transaction.RecordTransaction(ctx, in)
	require.NoError(t, err)

	fields := logData.Log().Data
	assert.Contains(t, fields, "photoCopyMs")
	assert.Equal(t, true, fields["photoSkipped"])
}

func TestRecordTransaction_FailedWriteDiscardsPhoto(t *testing.T) {
	f := newFixture(t)

	src := filepath.Join(t.TempDir(), "receipt.png")
	require.NoError(t, os.WriteFile(src, []byte("image"), 0o644))

	in := expense(404, "2024-02-01", "4")
	in.PhotoSource = src
	_, err := f.svc.Transaction.RecordTransaction(context.Background(), in)
	assert.ErrorIs(t, err, ErrMissingAccount)
	assert.Empty(t, photoDirEntries(t, f))
}

func TestRemoveTransaction(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.account(t, "Checking", "100")

	src := filepath.Join(t.TempDir(), "receipt.jpg")
	require.NoError(t, os.WriteFile(src, []byte("image"), 0o644))
	in := expense(id, "2024-03-01", "25")
	in.PhotoSource = src
	result := f.record(t, in)
	assert.Equal(t, "75", f.balance(t, id).String())

	require.NoError(t, f.svc.Transaction.RemoveTransaction(ctx, result.ID))
	assert.Equal(t, "100", f.balance(t, id).String())
	assert.Empty(t, photoDirEntries(t, f))

	err := f.svc.Transaction.RemoveTransaction(ctx, result.ID)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestListTransactions_Filter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := f.account(t, "Checking", "0")
	second := f.account(t, "Cash", "0")
	f.record(t, expense(first, "2024-01-01", "1"))
	f.record(t, expense(second, "2024-01-02", "2"))
	f.record(t, expense(first, "2024-01-03", "3"))

	all, err := f.svc.Transaction.ListTransactions(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := f.svc.Transaction.ListTransactions(ctx, &TransactionFilter{AccountID: &second})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Cash", filtered[0].AccountName)
	assert.Equal(t, "-2", filtered[0].Amount.String())
}

func TestGetTransaction_Missing(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Transaction.GetTransaction(context.Background(), 9)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

// -- ChartService tests --

func TestBalanceSeries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.account(t, "Checking", "0")

	f.record(t, expense(id, "2024-01-03", "10"))
	f.record(t, expense(id, "2024-01-01", "50"))
	gain := expense(id, "2024-01-01", "20")
	gain.Direction = Income
	f.record(t, gain)

	points, err := f.svc.Chart.BalanceSeries(ctx, id)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "2024-01-01", points[0].Date)
	assert.Equal(t, "-30", points[0].Balance.String())
	assert.Equal(t, "2024-01-03", points[1].Date)
	assert.Equal(t, "-40", points[1].Balance.String())
}

func TestBalanceSeries_DeletedAccountHasNoData(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	storagetest.Write(t, f.store, func(w *storage.Writer) {
		_, err := w.Transaction.Insert(ctx, &transaction.TransactionCreate{
			Date: "2024-01-01", AccountID: 55, Amount: decimal.NewFromInt(8),
		})
		require.NoError(t, err)
	})

	_, err := f.svc.Chart.BalanceSeries(ctx, 55)
	assert.ErrorIs(t, err, chart.ErrNoData)
}

func TestBalanceSeries_NoData(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.account(t, "Empty", "0")

	_, err := f.svc.Chart.BalanceSeries(ctx, id)
	assert.ErrorIs(t, err, chart.ErrNoData)

	_, err = f.svc.Chart.BalanceSeries(ctx, 0)
	assert.ErrorIs(t, err, ErrMissingAccount)
}

// -- StatusService tests --

func TestStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.account(t, "Checking", "0")
	f.record(t, expense(id, "2024-01-01", "1"))

	storagetest.Write(t, f.store, func(w *storage.Writer) {
		_, err := w.Transaction.Insert(ctx, &transaction.TransactionCreate{
			Date: "2024-01-01", AccountID: 77, Amount: decimal.NewFromInt(3),
		})
		require.NoError(t, err)
		_, err = w.Account.AdjustBalance(ctx, id, decimal.NewFromInt(9))
		require.NoError(t, err)
	})

	status, err := f.svc.Status.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, f.store.Path, status.DBPath)
	assert.Equal(t, 1, status.Accounts)
	assert.Equal(t, 2, status.Transactions)
	assert.Equal(t, int64(1), status.DanglingRows)
	assert.Equal(t, 1, status.DriftedAccounts)
}
