package expense

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_OnNew_ShouldFormatDateAndTrimAmount(t *testing.T) {
	created := time.Date(2024, time.March, 7, 23, 59, 0, 0, time.UTC)

	rec := New(created, " 12.50 ", "Food", "lunch")

	assert.Equal(t, Record{Date: "2024-03-07", Amount: "12.50", Category: "Food", Description: "lunch"}, rec)
}

func Test_OnFromRow_ShouldRejectWrongFieldCount(t *testing.T) {
	_, err := FromRow([]string{"2024-01-01", "10"})
	assert.Error(t, err)

	rec, err := FromRow([]string{"2024-01-01", "10", "Bills", "rent"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01", "10", "Bills", "rent"}, rec.Row())
}

func Test_OnMatches_ShouldIgnoreCase(t *testing.T) {
	rec := Record{Category: "Food", Description: "Pizza Night"}

	for _, kw := range []string{"food", "FOOD", "oo", "pizza", "NIGHT", ""} {
		assert.True(t, rec.Matches(kw), kw)
	}
	assert.False(t, rec.Matches("bills"))
}

func Test_OnInMonth_ShouldUsePlainPrefix(t *testing.T) {
	rec := Record{Date: "2024-10-02"}

	assert.True(t, rec.InMonth("2024-10"))
	assert.True(t, rec.InMonth("2024-1"))
	assert.False(t, rec.InMonth("2024-01"))
}

func Test_OnString_ShouldJoinWithComma(t *testing.T) {
	rec := Record{Date: "2024-01-05", Amount: "10.00", Category: "Food", Description: "groceries"}

	assert.Equal(t, "2024-01-05, 10.00, Food, groceries", rec.String())
}
