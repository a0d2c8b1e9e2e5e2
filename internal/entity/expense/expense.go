package expense

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// MonthLayout is the layout of the month keys accepted by month filters.
const MonthLayout = "2006-01"

// FieldCount is the number of columns of every ledger row.
const FieldCount = 4

var Header = []string{"Date", "Amount", "Category", "Description"}

type Record struct {
	Date        string
	Amount      string
	Category    string
	Description string
}

// New builds a record dated on the calendar day of created.
func New(created time.Time, amount, category, description string) Record {
	return Record{
		Date:        created.Format(DateLayout),
		Amount:      strings.TrimSpace(amount),
		Category:    category,
		Description: description,
	}
}

func FromRow(row []string) (Record, error) {
	if len(row) != FieldCount {
		return Record{}, fmt.Errorf("expected %d fields, got %d", FieldCount, len(row))
	}
	return Record{
		Date:        row[0],
		Amount:      row[1],
		Category:    row[2],
		Description: row[3],
	}, nil
}

func (r Record) Row() []string {
	return []string{r.Date, r.Amount, r.Category, r.Description}
}

func (r Record) String() string {
	return strings.Join(r.Row(), ", ")
}

// Matches reports whether keyword occurs in the category or the description,
// ignoring case. An empty keyword matches every record.
func (r Record) Matches(keyword string) bool {
	keyword = strings.ToLower(keyword)
	return strings.Contains(strings.ToLower(r.Category), keyword) ||
		strings.Contains(strings.ToLower(r.Description), keyword)
}

// InMonth reports whether the date starts with the given key. The match is a
// plain string prefix, so "2024-1" also matches "2024-10".
func (r Record) InMonth(month string) bool {
	return strings.HasPrefix(r.Date, month)
}
