package ledger

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/customerr"
)

type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Summary holds per-category totals in the order categories were first seen.
type Summary struct {
	totals []CategoryTotal
	index  map[string]int
}

func newSummary() *Summary {
	return &Summary{
		totals: make([]CategoryTotal, 0),
		index:  make(map[string]int),
	}
}

func (s *Summary) add(category string, amount decimal.Decimal) {
	i, ok := s.index[category]
	if !ok {
		s.index[category] = len(s.totals)
		s.totals = append(s.totals, CategoryTotal{Category: category, Total: amount})
		return
	}
	s.totals[i].Total = s.totals[i].Total.Add(amount)
}

// Categories returns a copy of the totals in first-seen order.
func (s *Summary) Categories() []CategoryTotal {
	res := make([]CategoryTotal, len(s.totals))
	copy(res, s.totals)
	return res
}

func (s *Summary) Len() int {
	return len(s.totals)
}

// Total is the sum over all categories.
func (s *Summary) Total() decimal.Decimal {
	total := decimal.Zero
	for _, t := range s.totals {
		total = total.Add(t.Total)
	}
	return total
}

// SummarizeByCategory sums amounts per category in a single pass. The first
// row whose amount does not parse aborts the whole summary with a ParseError.
func (s *Store) SummarizeByCategory(ctx context.Context) (summary *Summary, err error) {
	_, done := s.startOperation(ctx, "summarize")
	defer done(&err)

	summary = newSummary()
	err = s.scan(func(rec expense.Record, line int) error {
		amount, err := decimal.NewFromString(strings.TrimSpace(rec.Amount))
		if err != nil {
			return &customerr.ParseError{Line: line, Err: err}
		}
		summary.add(rec.Category, amount)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}
