package ledger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/customerr"
)

const header = "Date,Amount,Category,Description\n"

func newTestStore(t *testing.T, records ...expense.Record) *Store {
	t.Helper()

	s := New(filepath.Join(t.TempDir(), "expenses.csv"))
	require.NoError(t, s.Initialize(context.Background()))
	for _, rec := range records {
		require.NoError(t, s.Append(context.Background(), rec))
	}
	return s
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(raw)
}

var sample = []expense.Record{
	{Date: "2024-01-05", Amount: "10.00", Category: "Food", Description: "groceries"},
	{Date: "2024-01-20", Amount: "5.50", Category: "Food", Description: "coffee and cake"},
	{Date: "2024-02-01", Amount: "20.00", Category: "Bills", Description: "Phone plan"},
}

func Test_OnInitialize_ShouldWriteOnlyHeader(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, header, readFile(t, s.Path()))

	records, err := s.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func Test_OnInitialize_ShouldCreateMissingDirectory(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "data", "nested", "expenses.csv"))

	require.NoError(t, s.Initialize(context.Background()))
	assert.Equal(t, header, readFile(t, s.Path()))
}

func Test_OnInitializeTwice_ShouldNotAlterPopulatedFile(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, sample...)
	before := readFile(t, s.Path())

	require.NoError(t, s.Initialize(ctx))
	require.NoError(t, s.Initialize(ctx))

	assert.Equal(t, before, readFile(t, s.Path()))
}

func Test_OnAppend_ShouldRoundTripThroughListAll(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, sample[:2]...)

	before, err := s.ListAll(ctx)
	require.NoError(t, err)

	require.NoError(t, s.Append(ctx, sample[2]))

	after, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, append(before, sample[2]), after)
	assert.Equal(t,
		header+
			"2024-01-05,10.00,Food,groceries\n"+
			"2024-01-20,5.50,Food,coffee and cake\n"+
			"2024-02-01,20.00,Bills,Phone plan\n",
		readFile(t, s.Path()))
}

func Test_OnAppend_ShouldQuoteFieldsWithDelimiter(t *testing.T) {
	ctx := context.Background()
	rec := expense.Record{Date: "2024-03-01", Amount: "3", Category: "Food", Description: "bread, milk"}
	s := newTestStore(t, rec)

	records, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []expense.Record{rec}, records)
}

func Test_OnAppendInvalidAmount_ShouldFailWithValidationError(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, amount := range []string{"", "abc", "-1", "12.3.4"} {
		err := s.Append(ctx, expense.Record{Date: "2024-01-01", Amount: amount, Category: "Food"})

		var vErr *customerr.ValidationError
		require.True(t, errors.As(err, &vErr), amount)
		assert.Equal(t, "amount", vErr.Field)
		assert.Equal(t, amount, vErr.Value)
	}
	assert.Equal(t, header, readFile(t, s.Path()))
}

func Test_OnAppendZeroAmount_ShouldSucceed(t *testing.T) {
	s := newTestStore(t)

	assert.NoError(t, s.Append(context.Background(), expense.Record{Date: "2024-01-01", Amount: "0", Category: "Gift"}))
}

func Test_OnAppendWithoutLedger_ShouldFailWithIOError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")
	s := New(path)

	err := s.Append(context.Background(), sample[0])

	var ioErr *customerr.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.NoFileExists(t, path)
}

func Test_OnEach_ShouldStopAtCallbackError(t *testing.T) {
	s := newTestStore(t, sample...)
	stop := errors.New("stop")

	seen := 0
	err := s.Each(context.Background(), func(expense.Record) error {
		seen++
		if seen == 2 {
			return stop
		}
		return nil
	})

	assert.Equal(t, stop, err)
	assert.Equal(t, 2, seen)
}

func Test_OnListAllWithMalformedRow_ShouldFailWithParseError(t *testing.T) {
	s := newTestStore(t, sample[0])
	require.NoError(t, os.WriteFile(s.Path(), []byte(readFile(t, s.Path())+"2024-01-06,3\n"), 0o644))

	_, err := s.ListAll(context.Background())

	var pErr *customerr.ParseError
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, 3, pErr.Line)
}

func Test_OnDeleteAt_ShouldRemoveOnlyThatRow(t *testing.T) {
	ctx := context.Background()

	for pos := 1; pos <= len(sample); pos++ {
		s := newTestStore(t, sample...)

		removed, err := s.DeleteAt(ctx, pos)
		require.NoError(t, err)
		assert.Equal(t, sample[pos-1], removed)

		want := make([]expense.Record, 0, len(sample)-1)
		want = append(want, sample[:pos-1]...)
		want = append(want, sample[pos:]...)

		records, err := s.ListAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, records)
	}
}

func Test_OnDeleteAtOutOfRange_ShouldFailWithRangeErrorAndKeepFile(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, sample...)
	before := readFile(t, s.Path())

	for _, pos := range []int{0, -1, len(sample) + 1, 100} {
		_, err := s.DeleteAt(ctx, pos)

		var rErr *customerr.RangeError
		require.True(t, errors.As(err, &rErr), pos)
		assert.Equal(t, pos, rErr.Position)
		assert.Equal(t, before, readFile(t, s.Path()))
	}
}

func Test_OnDeleteAtEmptyLedger_ShouldFailWithRangeError(t *testing.T) {
	s := newTestStore(t)

	_, err := s.DeleteAt(context.Background(), 1)

	var rErr *customerr.RangeError
	require.True(t, errors.As(err, &rErr))
	assert.Equal(t, header, readFile(t, s.Path()))
}

func Test_OnDeleteAtMalformedRow_ShouldRemoveIt(t *testing.T) {
	s := newTestStore(t, sample[0])
	raw := readFile(t, s.Path()) + "2024-01-06,3\n" + "2024-01-07,4,Food,\"bread, milk\"\n"
	require.NoError(t, os.WriteFile(s.Path(), []byte(raw), 0o644))

	removed, err := s.DeleteAt(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, expense.Record{}, removed)
	assert.Equal(t,
		header+
			"2024-01-05,10.00,Food,groceries\n"+
			"2024-01-07,4,Food,\"bread, milk\"\n",
		readFile(t, s.Path()))

	records, err := s.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func Test_OnDeleteAt_ShouldLeaveNoTempFiles(t *testing.T) {
	s := newTestStore(t, sample...)

	_, err := s.DeleteAt(context.Background(), 2)
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "expenses.csv", entries[0].Name())
}

func Test_OnExport_ShouldCopyBytes(t *testing.T) {
	s := newTestStore(t, sample...)
	dest := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, os.WriteFile(dest, []byte("stale content that is longer than nothing"), 0o644))

	require.NoError(t, s.Export(context.Background(), dest))

	assert.Equal(t, readFile(t, s.Path()), readFile(t, dest))
}

func Test_OnExportOntoItself_ShouldKeepLedger(t *testing.T) {
	s := newTestStore(t, sample...)
	before := readFile(t, s.Path())

	require.NoError(t, s.Export(context.Background(), s.Path()))

	assert.Equal(t, before, readFile(t, s.Path()))
}

func Test_OnExportWithoutLedger_ShouldFailWithIOError(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing.csv"))

	err := s.Export(context.Background(), filepath.Join(t.TempDir(), "out.csv"))

	var ioErr *customerr.IOError
	assert.True(t, errors.As(err, &ioErr))
}

func Test_OnSummarizeByCategory_ShouldSumInFirstSeenOrder(t *testing.T) {
	s := newTestStore(t, sample...)

	summary, err := s.SummarizeByCategory(context.Background())
	require.NoError(t, err)

	cats := summary.Categories()
	require.Len(t, cats, 2)
	assert.Equal(t, "Food", cats[0].Category)
	assert.True(t, decimal.RequireFromString("15.50").Equal(cats[0].Total), cats[0].Total.String())
	assert.Equal(t, "Bills", cats[1].Category)
	assert.True(t, decimal.RequireFromString("20.00").Equal(cats[1].Total), cats[1].Total.String())

	assert.Equal(t, "35.5", summary.Total().String())
}

func Test_OnSummarizeEmptyLedger_ShouldReturnEmptySummary(t *testing.T) {
	s := newTestStore(t)

	summary, err := s.SummarizeByCategory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Len())
	assert.True(t, summary.Total().IsZero())
}

func Test_OnSummarizeWithBadAmount_ShouldAbortWithParseError(t *testing.T) {
	s := newTestStore(t, sample[0])
	raw := readFile(t, s.Path()) + "2024-01-07,ten,Food,lunch\n2024-01-08,1,Food,tea\n"
	require.NoError(t, os.WriteFile(s.Path(), []byte(raw), 0o644))

	summary, err := s.SummarizeByCategory(context.Background())

	assert.Nil(t, summary)
	var pErr *customerr.ParseError
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, 3, pErr.Line)
}

func Test_OnSummarizeAfterMultilineField_ShouldReportFileLine(t *testing.T) {
	s := newTestStore(t, expense.Record{Date: "2024-01-05", Amount: "1", Category: "Food", Description: "first\nsecond"})
	require.NoError(t, os.WriteFile(s.Path(), []byte(readFile(t, s.Path())+"2024-01-06,ten,Food,lunch\n"), 0o644))

	_, err := s.SummarizeByCategory(context.Background())

	var pErr *customerr.ParseError
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, 4, pErr.Line)
}
