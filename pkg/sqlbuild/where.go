package sqlbuild

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Where accumulates optional search predicates. Placeholders are numbered
// in the order predicates are added, continuing after offset.
type Where struct {
	offset     int
	predicates []string
	args       []any
}

// NewWhere starts a predicate list whose first placeholder is $(offset+1).
func NewWhere(offset int) *Where {
	if offset < 0 {
		offset = 0
	}
	return &Where{offset: offset}
}

func (w *Where) add(predicate string, arg any) *Where {
	w.args = append(w.args, arg)
	w.predicates = append(w.predicates, strings.ReplaceAll(predicate, "?", Placeholder(w.offset+len(w.args))))
	return w
}

// Contains adds a case-insensitive substring match. The bind value is the
// lower-cased term wrapped in %.
func (w *Where) Contains(column, term string) *Where {
	pattern := "%" + cases.Lower(language.Und).String(term) + "%"
	return w.add("LOWER("+column+") LIKE LOWER(?)", pattern)
}

// AtLeast adds column >= value.
func (w *Where) AtLeast(column string, value any) *Where {
	return w.add(column+" >= ?", value)
}

// AtMost adds column <= value.
func (w *Where) AtMost(column string, value any) *Where {
	return w.add(column+" <= ?", value)
}

// Positive adds column > 0, i.e. the row has a non-zero amount of the
// attribute.
func (w *Where) Positive(column string) *Where {
	return w.add(column+" > ?", 0)
}

// Len returns the number of predicates added so far.
func (w *Where) Len() int {
	return len(w.predicates)
}

// Compile returns the WHERE clause, or an empty Clause when no predicate was
// added, so callers never emit a dangling WHERE.
func (w *Where) Compile() Clause {
	if len(w.predicates) == 0 {
		return Clause{}
	}
	args := make([]any, len(w.args))
	copy(args, w.args)
	return Clause{
		SQL:  "WHERE " + strings.Join(w.predicates, " AND "),
		Args: args,
	}
}
