package menu

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/customerr"
	"max.ks1230/expense-tracker/internal/model/ledger"
	"max.ks1230/expense-tracker/internal/model/menu/mock"
)

var today = time.Date(2024, time.January, 20, 12, 0, 0, 0, time.UTC)

func newTestService(m *minimock.Controller, storage ledgerStore, exportPath string, in io.Reader, out io.Writer) *Service {
	app := mock.NewAppConfigMock(m)
	app.CurrencySymbolMock.Return("$")
	ledgerConf := mock.NewLedgerConfigMock(m)
	ledgerConf.ExportFileMock.Return(exportPath)

	s := NewService(storage, app, ledgerConf, in, out)
	s.now = func() time.Time { return today }
	return s
}

func runMenu(t *testing.T, storage ledgerStore, exportPath string, lines ...string) string {
	t.Helper()
	m := minimock.NewController(t)
	defer m.Finish()

	out := &bytes.Buffer{}
	s := newTestService(m, storage, exportPath, strings.NewReader(strings.Join(lines, "\n")+"\n"), out)

	require.NoError(t, s.Run(context.Background()))
	return out.String()
}

func newLedger(t *testing.T, records ...expense.Record) *ledger.Store {
	t.Helper()

	ctx := context.Background()
	s := ledger.New(filepath.Join(t.TempDir(), "expenses.csv"))
	require.NoError(t, s.Initialize(ctx))
	for _, rec := range records {
		require.NoError(t, s.Append(ctx, rec))
	}
	return s
}

var sample = []expense.Record{
	{Date: "2024-01-05", Amount: "10.00", Category: "Food", Description: "groceries"},
	{Date: "2024-01-20", Amount: "5.50", Category: "Food", Description: "coffee"},
	{Date: "2024-02-01", Amount: "20.00", Category: "Bills", Description: "phone"},
}

func Test_OnExitChoice_ShouldSayGoodbye(t *testing.T) {
	out := runMenu(t, newLedger(t), "", "8")

	assert.Contains(t, out, "1. Add Expense")
	assert.Contains(t, out, "8. Exit")
	assert.Contains(t, out, byeMessage)
}

func Test_OnEndOfInput_ShouldStopWithoutError(t *testing.T) {
	out := runMenu(t, newLedger(t), "")

	assert.Contains(t, out, chooseOptionPrompt)
	assert.NotContains(t, out, byeMessage)
}

func Test_OnUnknownChoice_ShouldAskAgain(t *testing.T) {
	out := runMenu(t, newLedger(t), "", "42", "8")

	assert.Contains(t, out, invalidChoiceMessage)
	assert.Contains(t, out, byeMessage)
}

func Test_OnAdd_ShouldAppendDatedExpense(t *testing.T) {
	store := newLedger(t)

	out := runMenu(t, store, "", "1", "12.5", "Transport", "bus ticket", "8")

	assert.Contains(t, out, addedMessage)
	records, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []expense.Record{
		{Date: "2024-01-20", Amount: "12.5", Category: "Transport", Description: "bus ticket"},
	}, records)
}

func Test_OnAddWithBadAmount_ShouldRejectAndKeepLedger(t *testing.T) {
	store := newLedger(t)

	out := runMenu(t, store, "", "1", "twelve", "Food", "", "8")

	assert.Contains(t, out, incorrectAmountMessage)
	records, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func Test_OnView_ShouldListNumberedRows(t *testing.T) {
	out := runMenu(t, newLedger(t, sample...), "", "2", "8")

	assert.Contains(t, out, "Date, Amount, Category, Description\n")
	assert.Contains(t, out, "1. 2024-01-05, 10.00, Food, groceries\n")
	assert.Contains(t, out, "3. 2024-02-01, 20.00, Bills, phone\n")
}

func Test_OnSummary_ShouldPrintTotalsPerCategory(t *testing.T) {
	out := runMenu(t, newLedger(t, sample...), "", "3", "8")

	assert.Contains(t, out, summaryTitle+"\nFood: $15.50\nBills: $20.00\n\nTotal: $35.50\n")
}

func Test_OnSummaryOfEmptyLedger_ShouldSayNoExpenses(t *testing.T) {
	out := runMenu(t, newLedger(t), "", "3", "8")

	assert.Contains(t, out, noExpensesMessage)
}

func Test_OnMonthly_ShouldPrintMatchingRows(t *testing.T) {
	out := runMenu(t, newLedger(t, sample...), "", "4", "2024-02", "4", "2023-12", "8")

	assert.Contains(t, out, "Expenses for 2024-02:\n2024-02-01, 20.00, Bills, phone\n")
	assert.Contains(t, out, "Expenses for 2023-12:\n"+noMonthExpensesMessage)
}

func Test_OnMonthlyWithEmptyAnswer_ShouldUseCurrentMonth(t *testing.T) {
	out := runMenu(t, newLedger(t, sample...), "", "4", "", "8")

	assert.Contains(t, out, "Expenses for 2024-01:\n"+
		"2024-01-05, 10.00, Food, groceries\n"+
		"2024-01-20, 5.50, Food, coffee\n")
}

func Test_OnSearch_ShouldIgnoreCase(t *testing.T) {
	out := runMenu(t, newLedger(t, sample...), "", "5", "PHONE", "5", "travel", "8")

	assert.Contains(t, out, searchTitle+"\n2024-02-01, 20.00, Bills, phone\n")
	assert.Contains(t, out, searchTitle+"\n"+noMatchesMessage)
}

func Test_OnDelete_ShouldRemoveChosenRow(t *testing.T) {
	store := newLedger(t, sample...)

	out := runMenu(t, store, "", "6", "2", "8")

	assert.Contains(t, out, deletedMessage)
	records, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []expense.Record{sample[0], sample[2]}, records)
}

func Test_OnDeleteWithBadPosition_ShouldKeepLedger(t *testing.T) {
	store := newLedger(t, sample...)
	before, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	out := runMenu(t, store, "", "6", "0", "6", "4", "6", "first", "8")

	assert.Equal(t, 3, strings.Count(out, invalidRowMessage))
	after, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func Test_OnExport_ShouldWriteReport(t *testing.T) {
	store := newLedger(t, sample...)
	dest := filepath.Join(t.TempDir(), "report.csv")

	out := runMenu(t, store, dest, "7", "8")

	assert.Contains(t, out, "Expenses exported successfully to "+dest+"!")
	want, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func Test_OnDeleteWithMalformedRow_ShouldStillDeleteIt(t *testing.T) {
	store := newLedger(t)
	raw := "Date,Amount,Category,Description\n2024-01-01,3\n2024-01-02,4,Food,x\n"
	require.NoError(t, os.WriteFile(store.Path(), []byte(raw), 0o644))

	out := runMenu(t, store, "", "6", "1", "8")

	assert.Contains(t, out, "Ledger line 2 is malformed")
	assert.Contains(t, out, deletedMessage)
	assert.NotContains(t, out, invalidChoiceMessage)
	assert.NotContains(t, out, failureMessage)
	got, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, "Date,Amount,Category,Description\n2024-01-02,4,Food,x\n", string(got))
}

func Test_OnStoreFailure_ShouldReportAndContinue(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	storage := mock.NewLedgerStoreMock(m)

	storage.ListAllMock.Return(nil, errors.New("disk on fire"))

	out := runMenu(t, storage, "", "2", "8")

	assert.Contains(t, out, failureMessage)
	assert.Contains(t, out, byeMessage)
}

func Test_OnDeleteFailure_ShouldReportAndContinue(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	storage := mock.NewLedgerStoreMock(m)

	storage.ListAllMock.Return(sample, nil)
	storage.DeleteAtMock.
		Inspect(func(_ context.Context, position int) {
			assert.Equal(m, 3, position)
		}).
		Return(expense.Record{}, &customerr.IOError{Op: "rename", Path: "expenses.csv", Err: os.ErrPermission})

	out := runMenu(t, storage, "", "6", "3", "8")

	assert.Contains(t, out, failureMessage)
	assert.NotContains(t, out, deletedMessage)
	assert.Contains(t, out, byeMessage)
}

func Test_OnAdd_ShouldPassTypedRecordToStore(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	storage := mock.NewLedgerStoreMock(m)

	storage.AppendMock.
		Inspect(func(_ context.Context, rec expense.Record) {
			assert.Equal(m, expense.Record{Date: "2024-01-20", Amount: "3.20", Category: "Food", Description: "bagel"}, rec)
		}).
		Return(nil)

	out := runMenu(t, storage, "", "1", " 3.20 ", "Food", "bagel", "8")

	assert.Contains(t, out, addedMessage)
}

func Test_OnCancelWhileWaitingForInput_ShouldStop(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	in, w := io.Pipe()
	t.Cleanup(func() { _ = w.Close() })
	s := newTestService(m, mock.NewLedgerStoreMock(m), "", in, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	res := make(chan error, 1)
	go func() {
		res <- s.Run(ctx)
	}()
	cancel()

	select {
	case err := <-res:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("menu kept waiting for input after cancel")
	}
}

func Test_OnFormatSummary_ShouldUseTwoDecimals(t *testing.T) {
	store := newLedger(t, expense.Record{Date: "2024-01-01", Amount: "1.005", Category: "Misc"})
	summary, err := store.SummarizeByCategory(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Misc: €1.01", "", "Total: €1.01"}, formatSummary(summary, "€"))
}
