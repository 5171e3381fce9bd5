// Package pgmock provides test doubles for pg.DBTX backed by testify/mock.
package pgmock

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

// DB is a mock of pg.DBTX. Expectations receive the SQL string followed by
// the bind arguments as a single []any.
type DB struct {
	mock.Mock
}

func (m *DB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	ret := m.Called(ctx, sql, args)
	return ret.Get(0).(pgconn.CommandTag), ret.Error(1)
}

func (m *DB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	ret := m.Called(ctx, sql, args)
	rows, _ := ret.Get(0).(pgx.Rows)
	return rows, ret.Error(1)
}

func (m *DB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	ret := m.Called(ctx, sql, args)
	return ret.Get(0).(pgx.Row)
}

// Row is a single result row. Values are assigned to Scan destinations in
// order; Err, when set, is returned instead.
type Row struct {
	Values []any
	Err    error
}

// NewRow returns a row holding values.
func NewRow(values ...any) *Row {
	return &Row{Values: values}
}

// ErrRow returns a row whose Scan fails with err.
func ErrRow(err error) *Row {
	return &Row{Err: err}
}

func (r *Row) Scan(dest ...any) error {
	if r.Err != nil {
		return r.Err
	}
	return assign(r.Values, dest)
}

// Rows iterates over a fixed result set.
type Rows struct {
	Data   [][]any
	ErrVal error
	pos    int
	closed bool
}

// NewRows returns a result set with the given rows.
func NewRows(rows ...[]any) *Rows {
	return &Rows{Data: rows}
}

func (r *Rows) Close()                                       { r.closed = true }
func (r *Rows) Err() error                                   { return r.ErrVal }
func (r *Rows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *Rows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *Rows) RawValues() [][]byte                          { return nil }
func (r *Rows) Conn() *pgx.Conn                              { return nil }

// Closed reports whether Close was called.
func (r *Rows) Closed() bool { return r.closed }

func (r *Rows) Next() bool {
	if r.closed || r.pos >= len(r.Data) {
		r.closed = true
		return false
	}
	r.pos++
	return true
}

func (r *Rows) Scan(dest ...any) error {
	if r.pos == 0 {
		return fmt.Errorf("pgmock: Scan called before Next")
	}
	return assign(r.Data[r.pos-1], dest)
}

func (r *Rows) Values() ([]any, error) {
	if r.pos == 0 {
		return nil, fmt.Errorf("pgmock: Values called before Next")
	}
	return r.Data[r.pos-1], nil
}

// assign copies values into dest pointers. A nil value zeroes the target;
// otherwise the value must be assignable (or convertible) to the target, or
// to its element type when the target is itself a pointer.
func assign(values, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("pgmock: %d values for %d destinations", len(values), len(dest))
	}
	for i, d := range dest {
		target := reflect.ValueOf(d)
		if target.Kind() != reflect.Pointer || target.IsNil() {
			return fmt.Errorf("pgmock: destination %d is not a pointer", i)
		}
		target = target.Elem()

		if values[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}

		v := reflect.ValueOf(values[i])
		switch {
		case v.Type().AssignableTo(target.Type()):
			target.Set(v)
		case target.Kind() == reflect.Pointer && v.Type().ConvertibleTo(target.Type().Elem()):
			p := reflect.New(target.Type().Elem())
			p.Elem().Set(v.Convert(target.Type().Elem()))
			target.Set(p)
		case v.Type().ConvertibleTo(target.Type()):
			target.Set(v.Convert(target.Type()))
		default:
			return fmt.Errorf("pgmock: cannot assign %T to destination %d of type %s", values[i], i, target.Type())
		}
	}
	return nil
}
