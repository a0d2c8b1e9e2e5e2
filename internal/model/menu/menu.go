package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/ledger"
)

const (
	titleMessage         = "Expense Tracker"
	chooseOptionPrompt   = "Choose an option: "
	invalidChoiceMessage = "Invalid choice. Please try again."
	byeMessage           = "Exiting. Have a great day!"
	failureMessage       = "Something went wrong, the ledger was left unchanged."
)

const (
	addChoice     = "1"
	viewChoice    = "2"
	summaryChoice = "3"
	monthlyChoice = "4"
	searchChoice  = "5"
	deleteChoice  = "6"
	exportChoice  = "7"
	exitChoice    = "8"
)

var menuItems = []struct {
	choice string
	label  string
}{
	{addChoice, "Add Expense"},
	{viewChoice, "View Expenses"},
	{summaryChoice, "View Category Summary"},
	{monthlyChoice, "View Monthly Summary"},
	{searchChoice, "Search Expenses"},
	{deleteChoice, "Delete an Expense"},
	{exportChoice, "Export Expenses"},
	{exitChoice, "Exit"},
}

var errQuit = errors.New("quit")

//go:generate minimock -i ledgerStore -o ./mock/ledger_store_mock.go -n LedgerStoreMock
//go:generate minimock -i appConfig -o ./mock/app_config_mock.go -n AppConfigMock
//go:generate minimock -i ledgerConfig -o ./mock/ledger_config_mock.go -n LedgerConfigMock

type ledgerStore interface {
	Append(ctx context.Context, rec expense.Record) error
	ListAll(ctx context.Context) ([]expense.Record, error)
	SummarizeByCategory(ctx context.Context) (*ledger.Summary, error)
	FilterByMonth(ctx context.Context, month string) ([]expense.Record, bool, error)
	Search(ctx context.Context, keyword string) ([]expense.Record, bool, error)
	DeleteAt(ctx context.Context, position int) (expense.Record, error)
	Export(ctx context.Context, dest string) error
}

type appConfig interface {
	CurrencySymbol() string
}

type ledgerConfig interface {
	ExportFile() string
}

type handler func(ctx context.Context) error

type inputLine struct {
	text string
	err  error
}

type handlerMap map[string]handler

// Service runs the interactive menu: one handler per menu choice, each
// calling a single ledger operation.
type Service struct {
	handlersMap handlerMap
	storage     ledgerStore
	in          io.Reader
	lines       <-chan inputLine
	out         io.Writer
	symbol      string
	exportPath  string
	now         func() time.Time
}

func NewService(storage ledgerStore, app appConfig, ledgerConf ledgerConfig, in io.Reader, out io.Writer) *Service {
	s := &Service{
		storage:    storage,
		in:         in,
		out:        out,
		symbol:     app.CurrencySymbol(),
		exportPath: ledgerConf.ExportFile(),
		now:        time.Now,
	}
	s.handlersMap = newMap(s)
	return s
}

func newMap(s *Service) handlerMap {
	m := make(handlerMap)
	m[addChoice] = s.handleAdd
	m[viewChoice] = s.handleView
	m[summaryChoice] = s.handleSummary
	m[monthlyChoice] = s.handleMonthly
	m[searchChoice] = s.handleSearch
	m[deleteChoice] = s.handleDelete
	m[exportChoice] = s.handleExport
	m[exitChoice] = s.handleExit
	return m
}

// Run shows the menu until the user exits, the input ends or ctx is done.
// Failed actions are reported and the loop goes on.
func (s *Service) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	s.lines = readLines(s.in, done)

	for {
		s.printMenu()

		choice, err := s.prompt(ctx, chooseOptionPrompt)
		if err != nil {
			return s.endOfInput(err)
		}

		handle, ok := s.handlersMap[choice]
		if !ok {
			s.println(invalidChoiceMessage)
			continue
		}

		err = handle(ctx)
		switch {
		case errors.Is(err, errQuit):
			s.println(byeMessage)
			return nil
		case isEndOfInput(err):
			return s.endOfInput(err)
		case err != nil:
			logger.Error("menu action failed", zap.String("choice", choice), zap.Error(err))
			s.println(failureMessage)
		}
	}
}

func (s *Service) handleExit(_ context.Context) error {
	return errQuit
}

func (s *Service) printMenu() {
	s.println("")
	s.println(titleMessage)
	for _, item := range menuItems {
		s.printf("%s. %s\n", item.choice, item.label)
	}
}

// readLines scans in on its own goroutine and stops sending once done is
// closed.
func readLines(in io.Reader, done <-chan struct{}) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- inputLine{text: scanner.Text()}:
			case <-done:
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case lines <- inputLine{err: err}:
			case <-done:
			}
		}
	}()
	return lines
}

// prompt returns the next trimmed input line, io.EOF once the input is
// exhausted, or the context error if ctx is done first.
func (s *Service) prompt(ctx context.Context, text string) (string, error) {
	s.printf("%s", text)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		if line.err != nil {
			return "", errors.Wrap(line.err, "read input")
		}
		return strings.TrimSpace(line.text), nil
	}
}

func isEndOfInput(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func (s *Service) endOfInput(err error) error {
	if isEndOfInput(err) {
		s.println("")
		return nil
	}
	return err
}

func (s *Service) println(text string) {
	_, _ = fmt.Fprintln(s.out, text)
}

func (s *Service) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
