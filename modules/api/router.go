package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Mountable is implemented by every endpoint group.
type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures which endpoint groups to mount. Each group is
// optional.
type RouterOptions struct {
	Auth      Mountable
	Jobs      Mountable
	Companies Mountable
	Users     Mountable

	// Health answers GET /healthz.
	Health http.Handler

	// Middlewares run for every request, in order.
	Middlewares []func(http.Handler) http.Handler
}

// Router creates the API router.
//
// Example:
//
//	r := api.Router(api.RouterOptions{
//	    Middlewares: []func(http.Handler) http.Handler{requestid.Middleware, jwt.Authenticate(tokens, log)},
//	    Jobs:        api.NewJobs(jobs.NewStorage(pool), validator, log),
//	})
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	r.Use(opts.Middlewares...)

	if opts.Health != nil {
		r.Method(http.MethodGet, "/healthz", opts.Health)
	}
	if opts.Auth != nil {
		r.Mount("/auth", opts.Auth.Handle())
	}
	if opts.Jobs != nil {
		r.Mount("/jobs", opts.Jobs.Handle())
	}
	if opts.Companies != nil {
		r.Mount("/companies", opts.Companies.Handle())
	}
	if opts.Users != nil {
		r.Mount("/users", opts.Users.Handle())
	}

	return r
}
