package company

import (
	"errors"
	"strconv"

	"github.com/dmitrymomot/jobboard/core"
	"github.com/dmitrymomot/jobboard/pkg/sqlbuild"
)

// Filter holds the optional company search criteria.
type Filter struct {
	Name         string `query:"name"`
	MinEmployees string `query:"minEmployees"`
	MaxEmployees string `query:"maxEmployees"`
}

// Where compiles the filter in the order name, minEmployees, maxEmployees.
// A minimum above the maximum is rejected.
func (f Filter) Where(offset int) (sqlbuild.Clause, error) {
	minEmployees, hasMin, err := sqlbuild.ParseThreshold("minEmployees", f.MinEmployees)
	if err != nil {
		return sqlbuild.Clause{}, err
	}
	maxEmployees, hasMax, err := sqlbuild.ParseThreshold("maxEmployees", f.MaxEmployees)
	if err != nil {
		return sqlbuild.Clause{}, err
	}
	if hasMin && hasMax && greater(minEmployees, maxEmployees) {
		return sqlbuild.Clause{}, errors.Join(ErrInvalidRange,
			core.Invalid("minEmployees", "cannot be greater than maxEmployees"))
	}

	w := sqlbuild.NewWhere(offset)
	if f.Name != "" {
		w.Contains("name", f.Name)
	}
	if hasMin {
		w.AtLeast("num_employees", minEmployees)
	}
	if hasMax {
		w.AtMost("num_employees", maxEmployees)
	}
	return w.Compile(), nil
}

// greater compares two canonical thresholds.
func greater(a, b string) bool {
	x, _ := strconv.ParseFloat(a, 64)
	y, _ := strconv.ParseFloat(b, 64)
	return x > y
}
