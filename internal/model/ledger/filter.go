package ledger

import (
	"context"
	"time"

	"github.com/jinzhu/now"

	"max.ks1230/expense-tracker/internal/entity/expense"
)

// FilterByMonth returns the records whose date starts with month, in file
// order. found is false when nothing matched.
func (s *Store) FilterByMonth(ctx context.Context, month string) (records []expense.Record, found bool, err error) {
	_, done := s.startOperation(ctx, "filter_month")
	defer done(&err)

	records, err = s.collect(func(rec expense.Record) bool {
		return rec.InMonth(month)
	})
	if err != nil {
		return nil, false, err
	}
	return records, len(records) > 0, nil
}

// Search returns the records whose category or description contains keyword,
// ignoring case. An empty keyword matches everything.
func (s *Store) Search(ctx context.Context, keyword string) (records []expense.Record, found bool, err error) {
	_, done := s.startOperation(ctx, "search")
	defer done(&err)

	records, err = s.collect(func(rec expense.Record) bool {
		return rec.Matches(keyword)
	})
	if err != nil {
		return nil, false, err
	}
	return records, len(records) > 0, nil
}

func (s *Store) collect(keep func(expense.Record) bool) ([]expense.Record, error) {
	res := make([]expense.Record, 0)
	err := s.scan(func(rec expense.Record, _ int) error {
		if keep(rec) {
			res = append(res, rec)
		}
		return nil
	})
	return res, err
}

// CurrentMonth returns the month key of t, e.g. "2024-01".
func CurrentMonth(t time.Time) string {
	return now.With(t).BeginningOfMonth().Format(expense.MonthLayout)
}
