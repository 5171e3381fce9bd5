package job

import "github.com/dmitrymomot/jobboard/pkg/sqlbuild"

// Filter holds the optional job search criteria. Values are the raw query
// string values; unknown parameters are ignored by the binder.
type Filter struct {
	Title     string `query:"title"`
	MinSalary string `query:"minSalary"`
	HasEquity string `query:"hasEquity"`
}

// Where compiles the filter. Predicates are emitted in the fixed order
// title, minSalary, hasEquity, numbered from offset+1. hasEquity only
// applies when it is exactly "true".
func (f Filter) Where(offset int) (sqlbuild.Clause, error) {
	w := sqlbuild.NewWhere(offset)

	if f.Title != "" {
		w.Contains("title", f.Title)
	}

	minSalary, ok, err := sqlbuild.ParseThreshold("minSalary", f.MinSalary)
	if err != nil {
		return sqlbuild.Clause{}, err
	}
	if ok {
		w.AtLeast("salary", minSalary)
	}

	if f.HasEquity == "true" {
		w.Positive("equity")
	}

	return w.Compile(), nil
}
