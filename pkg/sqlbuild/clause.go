package sqlbuild

import "strconv"

// Clause is a compiled SQL fragment. Placeholder $k in SQL is bound to
// Args[k-1].
type Clause struct {
	SQL  string
	Args []any
}

// Empty reports whether the clause contributes nothing to a query.
func (c Clause) Empty() bool {
	return c.SQL == ""
}

// Next returns the index of the next free placeholder, so callers can
// append their own bind values after the compiled ones.
func (c Clause) Next() int {
	return len(c.Args) + 1
}

// Bind returns the clause arguments followed by extra, in a new slice.
func (c Clause) Bind(extra ...any) []any {
	args := make([]any, 0, len(c.Args)+len(extra))
	args = append(args, c.Args...)
	return append(args, extra...)
}

// Placeholder returns the PostgreSQL positional parameter for index n.
func Placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}
