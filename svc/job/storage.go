package job

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/jobboard/core"
	"github.com/dmitrymomot/jobboard/pkg/pg"
	"github.com/dmitrymomot/jobboard/pkg/sqlbuild"
)

const returning = `id, title, salary, equity::text, company_handle`

// Storage persists jobs in PostgreSQL.
type Storage struct {
	db pg.DBTX
}

// NewStorage creates a job storage on top of a pool or transaction.
func NewStorage(db pg.DBTX) *Storage {
	return &Storage{db: db}
}

// Create inserts a job and returns it.
func (s *Storage) Create(ctx context.Context, in NewJob) (Job, error) {
	row := s.db.QueryRow(ctx,
		`INSERT INTO jobs (title, salary, equity, company_handle)
		VALUES ($1, $2, $3, $4)
		RETURNING `+returning,
		in.Title, in.Salary, in.Equity, in.CompanyHandle,
	)

	job, err := scanJob(row)
	if err != nil {
		if pg.IsForeignKeyViolationError(err) {
			return Job{}, errors.Join(ErrUnknownCompany, core.Invalid("companyHandle", "company does not exist"))
		}
		return Job{}, pg.MapError(err)
	}
	return job, nil
}

// Find returns jobs matching f ordered by title. A zero Filter returns all
// jobs.
func (s *Storage) Find(ctx context.Context, f Filter) ([]Job, error) {
	where, err := f.Where(0)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + returning + ` FROM jobs`
	if !where.Empty() {
		query += ` ` + where.SQL
	}
	query += ` ORDER BY title, id`

	return s.list(ctx, query, where.Args...)
}

// ByCompany returns the jobs posted by a company ordered by id.
func (s *Storage) ByCompany(ctx context.Context, handle string) ([]Job, error) {
	return s.list(ctx, `SELECT `+returning+` FROM jobs WHERE company_handle = $1 ORDER BY id`, handle)
}

// Get returns the job with id.
func (s *Storage) Get(ctx context.Context, id int64) (Job, error) {
	row := s.db.QueryRow(ctx, `SELECT `+returning+` FROM jobs WHERE id = $1`, id)
	job, err := scanJob(row)
	if err != nil {
		return Job{}, notFound(err, id)
	}
	return job, nil
}

// Update applies a partial update. The row id is bound after the SET
// values, at placeholder len(fields)+1.
func (s *Storage) Update(ctx context.Context, id int64, fields sqlbuild.Fields) (Job, error) {
	set, err := sqlbuild.PartialUpdate(fields.Bindable(), UpdateColumns)
	if err != nil {
		return Job{}, err
	}

	query := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = %s RETURNING %s`,
		set.SQL, sqlbuild.Placeholder(set.Next()), returning)

	job, err := scanJob(s.db.QueryRow(ctx, query, set.Bind(id)...))
	if err != nil {
		return Job{}, notFound(err, id)
	}
	return job, nil
}

// Delete removes the job with id.
func (s *Storage) Delete(ctx context.Context, id int64) error {
	var deleted int64
	err := s.db.QueryRow(ctx, `DELETE FROM jobs WHERE id = $1 RETURNING id`, id).Scan(&deleted)
	if err != nil {
		return notFound(err, id)
	}
	return nil
}

func (s *Storage) list(ctx context.Context, query string, args ...any) ([]Job, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Join(ErrFailedToQuery, pg.MapError(err))
	}

	jobs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Job, error) {
		return scanJob(row)
	})
	if err != nil {
		return nil, errors.Join(ErrFailedToQuery, pg.MapError(err))
	}
	return jobs, nil
}

func scanJob(row pgx.Row) (Job, error) {
	var j Job
	err := row.Scan(&j.ID, &j.Title, &j.Salary, &j.Equity, &j.CompanyHandle)
	return j, err
}

func notFound(err error, id int64) error {
	if pg.IsNotFoundError(err) {
		return errors.Join(fmt.Errorf("no job with id %d: %w", id, ErrJobNotFound), core.ErrNotFound)
	}
	return pg.MapError(err)
}
