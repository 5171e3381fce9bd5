// Package sqlbuild compiles untrusted request input into parameterized
// PostgreSQL fragments.
//
// Two compilers are provided. PartialUpdate turns an ordered field mapping
// into a SET clause, and Where collects optional search predicates into a
// WHERE clause. Both return a Clause: SQL text containing $1..$n
// placeholders plus the bind values in matching order. Values are never
// written into the SQL text.
//
// # Usage
//
//	set, err := sqlbuild.PartialUpdate(fields, sqlbuild.Columns{"companyHandle": "company_handle"})
//	if err != nil {
//		return err // ValidationError when fields is empty
//	}
//	query := "UPDATE jobs SET " + set.SQL + " WHERE id = " + sqlbuild.Placeholder(set.Next())
//	row := db.QueryRow(ctx, query, set.Bind(id)...)
//
//	where := sqlbuild.NewWhere(0).
//		Contains("title", "eng").
//		AtLeast("salary", "50000").
//		Compile()
//	query = "SELECT ... FROM jobs " + where.SQL + " ORDER BY title"
//
// Column identifiers passed to either compiler are trusted: they come from
// code or from alias tables, and request bodies are schema-validated before
// their keys reach PartialUpdate.
package sqlbuild
