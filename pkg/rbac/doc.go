// Package rbac holds the access policy of the API: who may call an
// operation given the identity attached to the request.
//
// There are two roles, a regular user and an admin, plus anonymous callers.
// Policies are pure functions returning a Decision:
//
//   - RequireLoggedIn: any valid identity.
//   - RequireAdmin: an identity with the admin flag.
//   - RequireSelfOrAdmin: the identity named by the target username, or an admin.
//
// Guard wraps the policies as HTTP middleware that rejects the request
// before the handler runs. Both "not logged in" and "not allowed" are
// reported as 401; the API never answers 403.
//
// Basic usage:
//
//	guard := rbac.NewGuard(rbac.WithErrorHandler(handler.ErrorHandler(log)))
//
//	r.With(guard.Admin()).Post("/jobs", createJob)
//	r.With(guard.SelfOrAdmin(rbac.URLParam("username"))).Get("/users/{username}", getUser)
//
// Decisions compose with Check; the first denial wins:
//
//	d := rbac.Check(rbac.RequireLoggedIn(id), rbac.RequireSelfOrAdmin(id, target))
package rbac
