package company_test

import (
	"context"
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
	"github.com/dmitrymomot/jobboard/svc/company"
)

func sqlContains(part string) any {
	return mock.MatchedBy(func(sql string) bool { return strings.Contains(sql, part) })
}

func TestFilterWhere(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter company.Filter
		sql    string
		args   []any
	}{
		{
			name:   "all criteria",
			filter: company.Filter{Name: "Net", MinEmployees: "10", MaxEmployees: "500"},
			sql:    "WHERE LOWER(name) LIKE LOWER($1) AND num_employees >= $2 AND num_employees <= $3",
			args:   []any{"%net%", "10", "500"},
		},
		{
			name:   "max only",
			filter: company.Filter{MaxEmployees: "100"},
			sql:    "WHERE num_employees <= $1",
			args:   []any{"100"},
		},
		{
			name:   "equal bounds",
			filter: company.Filter{MinEmployees: "5", MaxEmployees: "5.0"},
			sql:    "WHERE num_employees >= $1 AND num_employees <= $2",
			args:   []any{"5", "5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			clause, err := tt.filter.Where(0)
			require.NoError(t, err)
			assert.Equal(t, tt.sql, clause.SQL)
			assert.Equal(t, tt.args, clause.Args)
		})
	}
}

func TestFilterWhere_Errors(t *testing.T) {
	t.Parallel()

	_, err := company.Filter{MinEmployees: "100", MaxEmployees: "10"}.Where(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, company.ErrInvalidRange)
	assert.Equal(t, 400, core.StatusCode(err))

	_, err = company.Filter{MaxEmployees: "many"}.Where(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, sqlbuild.ErrInvalidNumber)
}

func TestStorage_Create_Duplicate(t *testing.T) {
	t.Parallel()

	db := &pgmock.DB{}
	db.On("QueryRow", mock.Anything, sqlContains("INSERT INTO companies"), mock.Anything).
		Return(pgmock.ErrRow(&pgconn.PgError{Code: "23505"}))

	_, err := company.NewStorage(db).Create(context.Background(), company.NewCompany{Handle: "acme", Name: "Acme"})
	require.Error(t, err)
	assert.ErrorIs(t, err, company.ErrDuplicateCompany)
	assert.Equal(t, 409, core.StatusCode(err))
}

func TestStorage_Find(t *testing.T) {
	t.Parallel()

	db := &pgmock.DB{}
	db.On("Query", mock.Anything, sqlContains("FROM companies WHERE LOWER(name) LIKE LOWER($1) ORDER BY name"),
		[]any{"%ac%"}).Return(pgmock.NewRows(
		[]any{"acme", "Acme", "Anvils", int64(50), nil},
	), nil)

	got, err := company.NewStorage(db).Find(context.Background(), company.Filter{Name: "AC"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "acme", got[0].Handle)
	require.NotNil(t, got[0].NumEmployees)
	assert.Equal(t, int64(50), *got[0].NumEmployees)
	assert.Nil(t, got[0].LogoURL)
	db.AssertExpectations(t)
}

func TestStorage_Update(t *testing.T) {
	t.Parallel()

	db := &pgmock.DB{}
	db.On("QueryRow", mock.Anything,
		sqlContains(`SET "num_employees"=$1, "logo_url"=$2 WHERE handle = $3`),
		[]any{"12", "http://a.png", "acme"}).
		Return(pgmock.NewRow("acme", "Acme", "Anvils", int64(12), "http://a.png"))

	fields := sqlbuild.Fields{
		{Name: "numEmployees", Value: "12"},
		{Name: "logoUrl", Value: "http://a.png"},
	}
	got, err := company.NewStorage(db).Update(context.Background(), "acme", fields)
	require.NoError(t, err)
	require.NotNil(t, got.LogoURL)
	assert.Equal(t, "http://a.png", *got.LogoURL)
	db.AssertExpectations(t)
}

func TestStorage_GetDelete_NotFound(t *testing.T) {
	t.Parallel()

	db := &pgmock.DB{}
	db.On("QueryRow", mock.Anything, mock.Anything, []any{"ghost"}).Return(pgmock.ErrRow(pgx.ErrNoRows))

	s := company.NewStorage(db)
	_, err := s.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)
	assert.Equal(t, 404, core.StatusCode(err))

	err = s.Delete(context.Background(), "ghost")
	assert.Equal(t, 404, core.StatusCode(err))
}
