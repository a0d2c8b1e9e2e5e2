package menu

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/customerr"
	"max.ks1230/expense-tracker/internal/model/ledger"
)

const (
	amountPrompt      = "Enter amount spent: "
	categoryPrompt    = "Enter category (e.g., Food, Transport, Bills): "
	descriptionPrompt = "Enter description: "
	monthPrompt       = "Enter the month (YYYY-MM, empty for the current one): "
	keywordPrompt     = "Enter category or keyword to search: "
	positionPrompt    = "Enter the row number to delete (starting from 1): "

	addedMessage           = "Expense added successfully!"
	incorrectAmountMessage = "Your expense amount is incorrect, it must be a non-negative number."
	noExpensesMessage      = "You have no expenses yet."
	summaryTitle           = "Expense Summary by Category:"
	noMonthExpensesMessage = "No expenses found for this month."
	searchTitle            = "Search Results:"
	noMatchesMessage       = "No matching expenses found."
	deletedMessage         = "Expense deleted successfully!"
	invalidRowMessage      = "Invalid row number."
	malformedRowMessage    = "Ledger line %d is malformed, so the expenses cannot be listed. Its row can still be deleted.\n"
)

func (s *Service) handleAdd(ctx context.Context) error {
	amount, err := s.prompt(ctx, amountPrompt)
	if err != nil {
		return err
	}
	category, err := s.prompt(ctx, categoryPrompt)
	if err != nil {
		return err
	}
	description, err := s.prompt(ctx, descriptionPrompt)
	if err != nil {
		return err
	}

	rec := expense.New(s.now(), amount, category, description)
	err = s.storage.Append(ctx, rec)

	var vErr *customerr.ValidationError
	if errors.As(err, &vErr) {
		s.println(incorrectAmountMessage)
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "handle add")
	}

	s.println(addedMessage)
	return nil
}

func (s *Service) handleView(ctx context.Context) error {
	records, err := s.storage.ListAll(ctx)
	if err != nil {
		return errors.Wrap(err, "handle view")
	}

	s.println(strings.Join(expense.Header, ", "))
	if len(records) == 0 {
		s.println(noExpensesMessage)
		return nil
	}
	for i, rec := range records {
		s.printf("%d. %s\n", i+1, rec)
	}
	return nil
}

func (s *Service) handleSummary(ctx context.Context) error {
	summary, err := s.storage.SummarizeByCategory(ctx)
	if err != nil {
		return errors.Wrap(err, "handle summary")
	}

	if summary.Len() == 0 {
		s.println(noExpensesMessage)
		return nil
	}

	s.println(summaryTitle)
	for _, line := range formatSummary(summary, s.symbol) {
		s.println(line)
	}
	return nil
}

func (s *Service) handleMonthly(ctx context.Context) error {
	month, err := s.prompt(ctx, monthPrompt)
	if err != nil {
		return err
	}
	if month == "" {
		month = ledger.CurrentMonth(s.now())
	}

	records, found, err := s.storage.FilterByMonth(ctx, month)
	if err != nil {
		return errors.Wrap(err, "handle monthly")
	}

	s.printf("Expenses for %s:\n", month)
	if !found {
		s.println(noMonthExpensesMessage)
		return nil
	}
	s.printRecords(records)
	return nil
}

func (s *Service) handleSearch(ctx context.Context) error {
	keyword, err := s.prompt(ctx, keywordPrompt)
	if err != nil {
		return err
	}

	records, found, err := s.storage.Search(ctx, keyword)
	if err != nil {
		return errors.Wrap(err, "handle search")
	}

	s.println(searchTitle)
	if !found {
		s.println(noMatchesMessage)
		return nil
	}
	s.printRecords(records)
	return nil
}

func (s *Service) handleDelete(ctx context.Context) error {
	err := s.handleView(ctx)
	var pErr *customerr.ParseError
	switch {
	case errors.As(err, &pErr):
		s.printf(malformedRowMessage, pErr.Line)
	case err != nil:
		return err
	}

	answer, err := s.prompt(ctx, positionPrompt)
	if err != nil {
		return err
	}
	position, err := strconv.Atoi(answer)
	if err != nil {
		s.println(invalidRowMessage)
		return nil
	}

	_, err = s.storage.DeleteAt(ctx, position)
	var rErr *customerr.RangeError
	if errors.As(err, &rErr) {
		s.println(invalidRowMessage)
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "handle delete")
	}

	s.println(deletedMessage)
	return nil
}

func (s *Service) handleExport(ctx context.Context) error {
	if err := s.storage.Export(ctx, s.exportPath); err != nil {
		return errors.Wrap(err, "handle export")
	}

	s.printf("Expenses exported successfully to %s!\n", s.exportPath)
	return nil
}

func (s *Service) printRecords(records []expense.Record) {
	for _, rec := range records {
		s.println(rec.String())
	}
}

// formatSummary renders one line per category followed by the total.
func formatSummary(summary *ledger.Summary, symbol string) []string {
	res := make([]string, 0, summary.Len()+2)
	for _, t := range summary.Categories() {
		res = append(res, t.Category+": "+symbol+t.Total.StringFixed(2))
	}
	res = append(res, "", "Total: "+symbol+summary.Total().StringFixed(2))
	return res
}
