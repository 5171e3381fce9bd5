package company

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/jobboard/core"
	"github.com/dmitrymomot/jobboard/pkg/pg"
	"github.com/dmitrymomot/jobboard/pkg/sqlbuild"
)

const returning = `handle, name, description, num_employees, logo_url`

// Storage persists companies in PostgreSQL.
type Storage struct {
	db pg.DBTX
}

// NewStorage creates a company storage on top of a pool or transaction.
func NewStorage(db pg.DBTX) *Storage {
	return &Storage{db: db}
}

// Create inserts a company. A taken handle is a conflict.
func (s *Storage) Create(ctx context.Context, in NewCompany) (Company, error) {
	row := s.db.QueryRow(ctx,
		`INSERT INTO companies (handle, name, description, num_employees, logo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+returning,
		in.Handle, in.Name, in.Description, in.NumEmployees, in.LogoURL,
	)

	c, err := scanCompany(row)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return Company{}, errors.Join(fmt.Errorf("duplicate company %s: %w", in.Handle, ErrDuplicateCompany), core.ErrConflict)
		}
		return Company{}, pg.MapError(err)
	}
	return c, nil
}

// Find returns companies matching f ordered by name.
func (s *Storage) Find(ctx context.Context, f Filter) ([]Company, error) {
	where, err := f.Where(0)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + returning + ` FROM companies`
	if !where.Empty() {
		query += ` ` + where.SQL
	}
	query += ` ORDER BY name`

	rows, err := s.db.Query(ctx, query, where.Args...)
	if err != nil {
		return nil, errors.Join(ErrFailedToQuery, pg.MapError(err))
	}
	companies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Company, error) {
		return scanCompany(row)
	})
	if err != nil {
		return nil, errors.Join(ErrFailedToQuery, pg.MapError(err))
	}
	return companies, nil
}

// Get returns the company with handle.
func (s *Storage) Get(ctx context.Context, handle string) (Company, error) {
	c, err := scanCompany(s.db.QueryRow(ctx, `SELECT `+returning+` FROM companies WHERE handle = $1`, handle))
	if err != nil {
		return Company{}, notFound(err, handle)
	}
	return c, nil
}

// Update applies a partial update; the handle is bound after the SET values.
func (s *Storage) Update(ctx context.Context, handle string, fields sqlbuild.Fields) (Company, error) {
	set, err := sqlbuild.PartialUpdate(fields.Bindable(), UpdateColumns)
	if err != nil {
		return Company{}, err
	}

	query := fmt.Sprintf(`UPDATE companies SET %s WHERE handle = %s RETURNING %s`,
		set.SQL, sqlbuild.Placeholder(set.Next()), returning)

	c, err := scanCompany(s.db.QueryRow(ctx, query, set.Bind(handle)...))
	if err != nil {
		return Company{}, notFound(err, handle)
	}
	return c, nil
}

// Delete removes the company with handle. Its jobs go with it.
func (s *Storage) Delete(ctx context.Context, handle string) error {
	var deleted string
	err := s.db.QueryRow(ctx, `DELETE FROM companies WHERE handle = $1 RETURNING handle`, handle).Scan(&deleted)
	if err != nil {
		return notFound(err, handle)
	}
	return nil
}

func scanCompany(row pgx.Row) (Company, error) {
	var c Company
	err := row.Scan(&c.Handle, &c.Name, &c.Description, &c.NumEmployees, &c.LogoURL)
	return c, err
}

func notFound(err error, handle string) error {
	if pg.IsNotFoundError(err) {
		return errors.Join(fmt.Errorf("no company: %s: %w", handle, ErrCompanyNotFound), core.ErrNotFound)
	}
	return pg.MapError(err)
}
