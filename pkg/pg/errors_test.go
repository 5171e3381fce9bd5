package pg_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jobboard/core"
	"github.com/dmitrymomot/jobboard/pkg/pg"
)

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	dup := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}
	badInput := &pgconn.PgError{Code: "22P02"}
	badColumn := &pgconn.PgError{Code: "42703"}

	assert.True(t, pg.IsNotFoundError(fmt.Errorf("get: %w", pgx.ErrNoRows)))
	assert.False(t, pg.IsNotFoundError(nil))
	assert.True(t, pg.IsDuplicateKeyError(dup))
	assert.False(t, pg.IsDuplicateKeyError(fk))
	assert.True(t, pg.IsForeignKeyViolationError(fk))
	assert.False(t, pg.IsForeignKeyViolationError(nil))
	assert.True(t, pg.IsInvalidInputError(badInput))
	assert.False(t, pg.IsInvalidInputError(dup))
	assert.True(t, pg.IsUndefinedColumnError(badColumn))
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "no rows", err: pgx.ErrNoRows, wantStatus: 404},
		{name: "duplicate", err: &pgconn.PgError{Code: "23505"}, wantStatus: 409},
		{name: "invalid input", err: &pgconn.PgError{Code: "22P02"}, wantStatus: 400},
		{name: "undefined column", err: &pgconn.PgError{Code: "42703"}, wantStatus: 400},
		{name: "unknown", err: errors.New("connection reset"), wantStatus: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mapped := pg.MapError(tt.err)
			require.Error(t, mapped)
			assert.ErrorIs(t, mapped, tt.err)
			assert.Equal(t, tt.wantStatus, core.StatusCode(mapped))
		})
	}

	assert.NoError(t, pg.MapError(nil))
}

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	assert.NoError(t, pg.Healthcheck(pinger{})(context.Background()))

	down := errors.New("down")
	err := pg.Healthcheck(pinger{err: down})(context.Background())
	assert.ErrorIs(t, err, pg.ErrHealthcheckFailed)
	assert.ErrorIs(t, err, down)
}
