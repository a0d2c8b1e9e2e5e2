package ledger

import (
	"context"
	"encoding/csv"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/customerr"
)

const filePerm = 0o644

// Store keeps the expense ledger in a single CSV file. It holds nothing but
// the path: every operation opens, reads or writes, and closes the file, so
// there is never a cached copy that could go stale.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Initialize creates the ledger with only the header row. An existing file is
// left untouched.
func (s *Store) Initialize(ctx context.Context) (err error) {
	_, done := s.startOperation(ctx, "initialize")
	defer done(&err)

	if dir := filepath.Dir(s.path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return &customerr.IOError{Op: "create directory", Path: dir, Err: err}
		}
	}

	file, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	if err != nil {
		return &customerr.IOError{Op: "create", Path: s.path, Err: err}
	}

	if err = writeRows(file, [][]string{expense.Header}); err != nil {
		_ = file.Close()
		return &customerr.IOError{Op: "write header", Path: s.path, Err: err}
	}
	if err = file.Close(); err != nil {
		return &customerr.IOError{Op: "close", Path: s.path, Err: err}
	}

	logger.Info("ledger created", zap.String("path", s.path))
	return nil
}

// Append validates the amount of rec and adds it as the last row.
func (s *Store) Append(ctx context.Context, rec expense.Record) (err error) {
	_, done := s.startOperation(ctx, "append")
	defer done(&err)

	if err = validateAmount(rec.Amount); err != nil {
		return err
	}

	// no O_CREATE: a ledger without its header row must not be produced here
	file, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return &customerr.IOError{Op: "open", Path: s.path, Err: err}
	}

	if err = writeRows(file, [][]string{rec.Row()}); err != nil {
		_ = file.Close()
		return &customerr.IOError{Op: "append", Path: s.path, Err: err}
	}
	if err = file.Close(); err != nil {
		return &customerr.IOError{Op: "close", Path: s.path, Err: err}
	}

	recordsAppended.Inc()
	logger.Info("expense appended",
		zap.String("date", rec.Date),
		zap.String("amount", rec.Amount),
		zap.String("category", rec.Category))
	return nil
}

// Each calls fn for every record in file order, header excluded. The file is
// read one row at a time and reopened on every call. Iteration stops at the
// first error returned by fn, which Each then returns.
func (s *Store) Each(ctx context.Context, fn func(expense.Record) error) (err error) {
	_, done := s.startOperation(ctx, "each")
	defer done(&err)

	return s.scan(func(rec expense.Record, _ int) error {
		return fn(rec)
	})
}

// ListAll returns every record in file order, header excluded.
func (s *Store) ListAll(ctx context.Context) (records []expense.Record, err error) {
	_, done := s.startOperation(ctx, "list")
	defer done(&err)

	records = make([]expense.Record, 0)
	err = s.scan(func(rec expense.Record, _ int) error {
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteAt removes the row at position, where position 1 is the first row
// after the header. The whole file is rewritten through a temporary file, so
// it is either fully replaced or not touched at all.
func (s *Store) DeleteAt(ctx context.Context, position int) (removed expense.Record, err error) {
	_, done := s.startOperation(ctx, "delete")
	defer done(&err)

	rows, err := s.readRows()
	if err != nil {
		return expense.Record{}, err
	}

	if position < 1 || position >= len(rows) {
		return expense.Record{}, &customerr.RangeError{Position: position, Max: len(rows)}
	}

	// malformed rows may be deleted too, they just come back as a zero record
	removed, _ = expense.FromRow(rows[position])
	rest := make([][]string, 0, len(rows)-1)
	rest = append(rest, rows[:position]...)
	rest = append(rest, rows[position+1:]...)

	if err = s.replace(rest); err != nil {
		return expense.Record{}, err
	}

	logger.Info("expense deleted", zap.Int("position", position), zap.String("date", removed.Date))
	return removed, nil
}

// Export copies the ledger file byte for byte to dest, overwriting it.
func (s *Store) Export(ctx context.Context, dest string) (err error) {
	_, done := s.startOperation(ctx, "export")
	defer done(&err)

	src, err := os.Open(s.path)
	if err != nil {
		return &customerr.IOError{Op: "open", Path: s.path, Err: err}
	}
	defer src.Close()

	if sameFile(src, dest) {
		return nil
	}

	out, err := os.Create(dest)
	if err != nil {
		return &customerr.IOError{Op: "create", Path: dest, Err: err}
	}
	if _, err = io.Copy(out, src); err != nil {
		_ = out.Close()
		return &customerr.IOError{Op: "copy", Path: dest, Err: err}
	}
	if err = out.Close(); err != nil {
		return &customerr.IOError{Op: "close", Path: dest, Err: err}
	}

	logger.Info("ledger exported", zap.String("dest", dest))
	return nil
}

func (s *Store) startOperation(ctx context.Context, op string) (context.Context, func(*error)) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "ledger."+op)
	span.SetTag("ledger.path", s.path)
	logger.Debug(op+" - start", zap.String("path", s.path))
	start := time.Now()

	return ctx, func(errp *error) {
		failed := errp != nil && *errp != nil
		if failed {
			ext.Error.Set(span, true)
			span.LogKV("error", (*errp).Error())
			logger.Debug(op+" - failed", zap.Error(*errp))
		}
		observeOperation(op, time.Since(start), failed)
		span.Finish()
		logger.Debug(op + " - end")
	}
}

// scan reads the ledger one row at a time and calls fn with each record and
// the file line the record starts on.
func (s *Store) scan(fn func(rec expense.Record, line int) error) error {
	file, err := os.Open(s.path)
	if err != nil {
		return &customerr.IOError{Op: "open", Path: s.path, Err: err}
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = expense.FieldCount

	header := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return s.readError(err)
		}
		if header {
			header = false
			continue
		}

		line, _ := reader.FieldPos(0)
		rec, err := expense.FromRow(row)
		if err != nil {
			return &customerr.ParseError{Line: line, Err: err}
		}
		if err = fn(rec, line); err != nil {
			return err
		}
	}
}

// readRows returns every row of the file, header included, without checking
// the field count.
func (s *Store) readRows() ([][]string, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, &customerr.IOError{Op: "open", Path: s.path, Err: err}
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, s.readError(err)
	}
	return rows, nil
}

func (s *Store) replace(rows [][]string) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+"-*")
	if err != nil {
		return &customerr.IOError{Op: "create temp", Path: dir, Err: err}
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op once the rename succeeded
		_ = os.Remove(tmpName)
	}()

	if err = writeRows(tmp, rows); err != nil {
		_ = tmp.Close()
		return &customerr.IOError{Op: "write", Path: tmpName, Err: err}
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return &customerr.IOError{Op: "sync", Path: tmpName, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &customerr.IOError{Op: "close", Path: tmpName, Err: err}
	}

	if info, statErr := os.Stat(s.path); statErr == nil {
		_ = os.Chmod(tmpName, info.Mode().Perm())
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		return &customerr.IOError{Op: "rename", Path: s.path, Err: err}
	}
	return nil
}

func (s *Store) readError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &customerr.ParseError{Line: csvErr.StartLine, Err: csvErr.Err}
	}
	return &customerr.IOError{Op: "read", Path: s.path, Err: err}
}

func writeRows(w io.Writer, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.WriteAll(rows); err != nil {
		return errors.Wrap(err, "write rows")
	}
	return nil
}

func validateAmount(amount string) error {
	d, err := decimal.NewFromString(amount)
	if err != nil || d.IsNegative() {
		return &customerr.ValidationError{Field: "amount", Value: amount}
	}
	return nil
}

func sameFile(src *os.File, dest string) bool {
	srcInfo, err := src.Stat()
	if err != nil {
		return false
	}
	destInfo, err := os.Stat(dest)
	if err != nil {
		return false
	}
	return os.SameFile(srcInfo, destInfo)
}
