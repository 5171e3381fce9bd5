// Package job stores job postings and compiles job searches.
//
// Searches are built from a Filter whose fields come straight from the
// query string:
//
//	GET /jobs?title=net&minSalary=10000&hasEquity=true
//
// compiles to
//
//	WHERE LOWER(title) LIKE LOWER($1) AND salary >= $2 AND equity > $3
//
// with arguments ["%net%", "10000", 0]. Partial updates go through
// sqlbuild.PartialUpdate and continue its placeholder numbering for the row
// id.
package job
