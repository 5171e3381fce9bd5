// Package api mounts the jobboard REST endpoints.
//
// Every endpoint answers with the handler package's JSON envelope:
//
//	GET /jobs/1            -> {"data": {"job": {...}}}
//	DELETE /companies/acme -> {"data": {"deleted": "acme"}}
//
// Write endpoints validate their bodies against the embedded JSON schemas
// before decoding; schemas reject unknown properties, so the field names
// that reach sqlbuild.PartialUpdate are always known columns.
//
// Access rules:
//
//	/auth/*                        public
//	GET /jobs, /companies          public
//	POST|PATCH|DELETE jobs, companies  admin
//	POST /users, GET /users        admin
//	/users/{username}/...          the user themselves or an admin
//
// Anonymous and insufficiently privileged callers both get 401.
package api
