package job_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jobboard/core"
	"github.com/dmitrymomot/jobboard/pkg/pg/pgmock"
	"github.com/dmitrymomot/jobboard/pkg/sqlbuild"
	"github.com/dmitrymomot/jobboard/svc/job"
)

func sqlContains(parts ...string) any {
	return mock.MatchedBy(func(sql string) bool {
		for _, p := range parts {
			if !strings.Contains(sql, p) {
				return false
			}
		}
		return true
	})
}

func jobRow(id int64) *pgmock.Row {
	return pgmock.NewRow(id, "Engineer", int64(100000), "0.5", "acme")
}

func TestStorage_Create(t *testing.T) {
	t.Parallel()

	t.Run("returns created job", func(t *testing.T) {
		t.Parallel()
		db := &pgmock.DB{}
		salary := int64(100000)
		equity := 0.5
		db.On("QueryRow", mock.Anything, sqlContains("INSERT INTO jobs"),
			[]any{"Engineer", &salary, &equity, "acme"}).Return(jobRow(1))

		got, err := job.NewStorage(db).Create(context.Background(), job.NewJob{
			Title: "Engineer", Salary: &salary, Equity: &equity, CompanyHandle: "acme",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
		require.NotNil(t, got.Equity)
		assert.Equal(t, "0.5", *got.Equity)
		db.AssertExpectations(t)
	})

	t.Run("unknown company is a validation error", func(t *testing.T) {
		t.Parallel()
		db := &pgmock.DB{}
		db.On("QueryRow", mock.Anything, mock.Anything, mock.Anything).
			Return(pgmock.ErrRow(&pgconn.PgError{Code: "23503"}))

		_, err := job.NewStorage(db).Create(context.Background(), job.NewJob{Title: "x", CompanyHandle: "nope"})
		require.Error(t, err)
		assert.ErrorIs(t, err, job.ErrUnknownCompany)
		assert.Equal(t, 400, core.StatusCode(err))
	})
}

func TestStorage_Find(t *testing.T) {
	t.Parallel()

	t.Run("filtered", func(t *testing.T) {
		t.Parallel()
		db := &pgmock.DB{}
		rows := pgmock.NewRows(
			[]any{int64(1), "Net engineer", int64(20000), nil, "acme"},
			[]any{int64(2), "Network admin", nil, "0.1", "globex"},
		)
		db.On("Query", mock.Anything,
			sqlContains("FROM jobs WHERE LOWER(title) LIKE LOWER($1) AND salary >= $2 ORDER BY title"),
			[]any{"%net%", "10000"}).Return(rows, nil)

		jobs, err := job.NewStorage(db).Find(context.Background(), job.Filter{Title: "net", MinSalary: "10000"})
		require.NoError(t, err)
		require.Len(t, jobs, 2)
		assert.Nil(t, jobs[0].Equity)
		assert.Nil(t, jobs[1].Salary)
		assert.True(t, rows.Closed())
		db.AssertExpectations(t)
	})

	t.Run("no filter selects everything", func(t *testing.T) {
		t.Parallel()
		db := &pgmock.DB{}
		db.On("Query", mock.Anything, mock.MatchedBy(func(sql string) bool {
			return !strings.Contains(sql, "WHERE")
		}), []any(nil)).Return(pgmock.NewRows(), nil)

		jobs, err := job.NewStorage(db).Find(context.Background(), job.Filter{})
		require.NoError(t, err)
		assert.NotNil(t, jobs)
		assert.Empty(t, jobs)
	})

	t.Run("invalid threshold never reaches the database", func(t *testing.T) {
		t.Parallel()
		db := &pgmock.DB{}

		_, err := job.NewStorage(db).Find(context.Background(), job.Filter{MinSalary: "lots"})
		require.Error(t, err)
		assert.Equal(t, 400, core.StatusCode(err))
		db.AssertNotCalled(t, "Query")
	})
}

func TestStorage_Get(t *testing.T) {
	t.Parallel()

	db := &pgmock.DB{}
	db.On("QueryRow", mock.Anything, sqlContains("WHERE id = $1"), []any{int64(45)}).
		Return(pgmock.ErrRow(pgx.ErrNoRows))

	_, err := job.NewStorage(db).Get(context.Background(), 45)
	require.Error(t, err)
	assert.ErrorIs(t, err, job.ErrJobNotFound)
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.Contains(t, err.Error(), "no job with id 45")
}

func TestStorage_Update(t *testing.T) {
	t.Parallel()

	t.Run("id follows set values", func(t *testing.T) {
		t.Parallel()
		db := &pgmock.DB{}
		db.On("QueryRow", mock.Anything,
			sqlContains(`UPDATE jobs SET "title"=$1, "salary"=$2 WHERE id = $3 RETURNING`),
			[]any{"Senior", "120000", int64(7)}).Return(jobRow(7))

		var fields sqlbuild.Fields
		require.NoError(t, json.Unmarshal([]byte(`{"title":"Senior","salary":120000}`), &fields))

		got, err := job.NewStorage(db).Update(context.Background(), 7, fields)
		require.NoError(t, err)
		assert.Equal(t, int64(7), got.ID)
		db.AssertExpectations(t)
	})

	t.Run("company handle is aliased", func(t *testing.T) {
		t.Parallel()
		db := &pgmock.DB{}
		db.On("QueryRow", mock.Anything, sqlContains(`SET "company_handle"=$1 WHERE id = $2`),
			[]any{"globex", int64(3)}).Return(jobRow(3))

		_, err := job.NewStorage(db).Update(context.Background(), 3,
			sqlbuild.Fields{{Name: "companyHandle", Value: "globex"}})
		require.NoError(t, err)
		db.AssertExpectations(t)
	})

	t.Run("no data", func(t *testing.T) {
		t.Parallel()
		db := &pgmock.DB{}

		_, err := job.NewStorage(db).Update(context.Background(), 3, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, sqlbuild.ErrNoData)
		assert.Equal(t, 400, core.StatusCode(err))
		db.AssertNotCalled(t, "QueryRow")
	})

	t.Run("missing job", func(t *testing.T) {
		t.Parallel()
		db := &pgmock.DB{}
		db.On("QueryRow", mock.Anything, mock.Anything, mock.Anything).Return(pgmock.ErrRow(pgx.ErrNoRows))

		_, err := job.NewStorage(db).Update(context.Background(), 0,
			sqlbuild.Fields{{Name: "title", Value: "x"}})
		assert.Equal(t, 404, core.StatusCode(err))
	})

	t.Run("value rejected by database", func(t *testing.T) {
		t.Parallel()
		db := &pgmock.DB{}
		db.On("QueryRow", mock.Anything, mock.Anything, mock.Anything).
			Return(pgmock.ErrRow(&pgconn.PgError{Code: "22P02"}))

		_, err := job.NewStorage(db).Update(context.Background(), 1,
			sqlbuild.Fields{{Name: "salary", Value: json.Number("1.5")}})
		assert.Equal(t, 400, core.StatusCode(err))
	})
}

func TestStorage_Delete(t *testing.T) {
	t.Parallel()

	db := &pgmock.DB{}
	db.On("QueryRow", mock.Anything, sqlContains("DELETE FROM jobs"), []any{int64(1)}).
		Return(pgmock.NewRow(int64(1))).Once()
	db.On("QueryRow", mock.Anything, sqlContains("DELETE FROM jobs"), []any{int64(2)}).
		Return(pgmock.ErrRow(pgx.ErrNoRows)).Once()

	s := job.NewStorage(db)
	require.NoError(t, s.Delete(context.Background(), 1))
	err := s.Delete(context.Background(), 2)
	assert.Equal(t, 404, core.StatusCode(err))
}
