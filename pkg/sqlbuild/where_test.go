package sqlbuild_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jobboard/core"
	"github.com/dmitrymomot/jobboard/pkg/sqlbuild"
)

func TestWhereCompile(t *testing.T) {
	t.Parallel()

	t.Run("no predicates emits nothing", func(t *testing.T) {
		t.Parallel()

		clause := sqlbuild.NewWhere(0).Compile()
		assert.True(t, clause.Empty())
		assert.Empty(t, clause.Args)
		assert.Equal(t, 1, clause.Next())
	})

	t.Run("all predicates in call order", func(t *testing.T) {
		t.Parallel()

		clause := sqlbuild.NewWhere(0).
			Contains("title", "Eng").
			AtLeast("salary", "50000").
			Positive("equity").
			Compile()

		assert.Equal(t, "WHERE LOWER(title) LIKE LOWER($1) AND salary >= $2 AND equity > $3", clause.SQL)
		assert.Equal(t, []any{"%eng%", "50000", 0}, clause.Args)
	})

	t.Run("placeholders are contiguous when a criterion is skipped", func(t *testing.T) {
		t.Parallel()

		clause := sqlbuild.NewWhere(0).AtLeast("salary", "1").Positive("equity").Compile()
		assert.Equal(t, "WHERE salary >= $1 AND equity > $2", clause.SQL)
		assert.Equal(t, []any{"1", 0}, clause.Args)
	})

	t.Run("offset continues numbering", func(t *testing.T) {
		t.Parallel()

		clause := sqlbuild.NewWhere(2).AtMost("num_employees", "10").Compile()
		assert.Equal(t, "WHERE num_employees <= $3", clause.SQL)
	})

	t.Run("negative offset is clamped", func(t *testing.T) {
		t.Parallel()

		clause := sqlbuild.NewWhere(-5).AtLeast("salary", "1").Compile()
		assert.Equal(t, "WHERE salary >= $1", clause.SQL)
	})

	t.Run("term is bound, not inlined", func(t *testing.T) {
		t.Parallel()

		term := "x' OR '1'='1"
		clause := sqlbuild.NewWhere(0).Contains("title", term).Compile()
		assert.NotContains(t, clause.SQL, term)
		assert.Equal(t, []any{"%x' or '1'='1%"}, clause.Args)
	})
}

func TestWhereCompileIsStable(t *testing.T) {
	t.Parallel()

	w := sqlbuild.NewWhere(0).Contains("name", "net")
	first := w.Compile()
	w.AtLeast("num_employees", "3")
	assert.Equal(t, []any{"%net%"}, first.Args)
	assert.Equal(t, 2, w.Len())
}

func TestParseThreshold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    string
		wantOK  bool
		wantErr bool
	}{
		{raw: "", wantOK: false},
		{raw: "   ", wantOK: false},
		{raw: "0", want: "0", wantOK: true},
		{raw: "10000", want: "10000", wantOK: true},
		{raw: " 250 ", want: "250", wantOK: true},
		{raw: "1e3", want: "1000", wantOK: true},
		{raw: "0.5", want: "0.5", wantOK: true},
		{raw: "-1", want: "-1", wantOK: true},
		{raw: "abc", wantErr: true},
		{raw: "10k", wantErr: true},
		{raw: "NaN", wantErr: true},
		{raw: "Inf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			got, ok, err := sqlbuild.ParseThreshold("minSalary", tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, sqlbuild.ErrInvalidNumber)
				assert.Equal(t, 400, core.StatusCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
