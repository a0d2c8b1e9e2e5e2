package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/expense-tracker/internal/entity/expense"
)

func Test_OnFilterByMonth_ShouldReturnMatchesInOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, sample...)

	records, found, err := s.FilterByMonth(ctx, "2024-01")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, sample[:2], records)

	records, found, err = s.FilterByMonth(ctx, "2024-03")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, records)
}

func Test_OnFilterByMonth_ShouldMatchPlainPrefix(t *testing.T) {
	s := newTestStore(t,
		expense.Record{Date: "2024-01-05", Amount: "1", Category: "A"},
		expense.Record{Date: "2024-10-05", Amount: "2", Category: "B"},
		expense.Record{Date: "2024-11-05", Amount: "3", Category: "C"},
	)

	records, found, err := s.FilterByMonth(context.Background(), "2024-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, records, 3)
}

func Test_OnSearch_ShouldIgnoreCase(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, sample...)

	for _, kw := range []string{"food", "FOOD", "oo"} {
		records, found, err := s.Search(ctx, kw)
		require.NoError(t, err)
		assert.True(t, found, kw)
		assert.Equal(t, sample[:2], records, kw)
	}

	records, found, err := s.Search(ctx, "phone")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, sample[2:], records)
}

func Test_OnSearchEmptyKeyword_ShouldMatchEverything(t *testing.T) {
	s := newTestStore(t, sample...)

	records, found, err := s.Search(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, sample, records)
}

func Test_OnSearchNoMatch_ShouldReportNotFound(t *testing.T) {
	s := newTestStore(t, sample...)

	records, found, err := s.Search(context.Background(), "travel")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, records)
}

func Test_OnCurrentMonth_ShouldFormatYearAndMonth(t *testing.T) {
	assert.Equal(t, "2024-02", CurrentMonth(time.Date(2024, time.February, 29, 18, 0, 0, 0, time.UTC)))
}
