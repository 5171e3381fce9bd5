package sqlbuild

import (
	"errors"
	"strings"

	"github.com/dmitrymomot/jobboard/core"
)

// PartialUpdate compiles fields into the body of a SET clause.
//
// The i-th field becomes "<column>"=$i, where the column is resolved through
// columns. Identifiers are wrapped in double quotes verbatim and are not
// escaped; only values are bound.
//
//	PartialUpdate(Fields{{"firstName", "Betty"}, {"lastName", "White"}},
//		Columns{"firstName": "first_name", "lastName": "last_name"})
//	// SQL:  "first_name"=$1, "last_name"=$2
//	// Args: ["Betty", "White"]
func PartialUpdate(fields Fields, columns Columns) (Clause, error) {
	if len(fields) == 0 {
		return Clause{}, errors.Join(ErrNoData, core.Invalid("data", "no data supplied"))
	}

	assignments := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))

	for i, field := range fields {
		if _, dup := seen[field.Name]; dup {
			return Clause{}, errors.Join(ErrDuplicateField, core.Invalid(field.Name, "duplicate field"))
		}
		seen[field.Name] = struct{}{}

		assignments = append(assignments, `"`+columns.Resolve(field.Name)+`"=`+Placeholder(i+1))
		args = append(args, field.Value)
	}

	return Clause{
		SQL:  strings.Join(assignments, ", "),
		Args: args,
	}, nil
}
