package rbac

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/jobboard/core"
	"github.com/dmitrymomot/jobboard/pkg/jwt"
)

// ErrorHandler writes a denial response.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// ParamFunc extracts the target username from a request.
type ParamFunc func(r *http.Request) string

// URLParam reads the target username from a chi route parameter.
func URLParam(name string) ParamFunc {
	return func(r *http.Request) string {
		return chi.URLParam(r, name)
	}
}

// Guard turns policies into HTTP middleware.
type Guard struct {
	onDeny ErrorHandler
}

// GuardOption configures a Guard.
type GuardOption func(*Guard)

// WithErrorHandler sets how denials are written.
func WithErrorHandler(h ErrorHandler) GuardOption {
	return func(g *Guard) {
		if h != nil {
			g.onDeny = h
		}
	}
}

// NewGuard creates a Guard. Without options denials are written as plain
// text with the status from core.StatusCode.
func NewGuard(opts ...GuardOption) *Guard {
	g := &Guard{onDeny: defaultErrorHandler}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// LoggedIn rejects anonymous requests.
func (g *Guard) LoggedIn() func(http.Handler) http.Handler {
	return g.enforce(func(r *http.Request, id *jwt.Identity) Decision {
		return RequireLoggedIn(id)
	})
}

// Admin rejects requests from non-admins.
func (g *Guard) Admin() func(http.Handler) http.Handler {
	return g.enforce(func(r *http.Request, id *jwt.Identity) Decision {
		return RequireAdmin(id)
	})
}

// SelfOrAdmin rejects requests unless the caller is the user named by param
// or an admin.
func (g *Guard) SelfOrAdmin(param ParamFunc) func(http.Handler) http.Handler {
	return g.enforce(func(r *http.Request, id *jwt.Identity) Decision {
		return RequireSelfOrAdmin(id, param(r))
	})
}

func (g *Guard) enforce(policy func(r *http.Request, id *jwt.Identity) Decision) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id *jwt.Identity
			if identity, ok := jwt.IdentityFromContext(r.Context()); ok {
				id = &identity
			}

			if err := policy(r, id).Reason(); err != nil {
				g.onDeny(w, r, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

var defaultGuard = NewGuard()

// LoggedIn is Guard.LoggedIn on a default guard.
func LoggedIn() func(http.Handler) http.Handler { return defaultGuard.LoggedIn() }

// Admin is Guard.Admin on a default guard.
func Admin() func(http.Handler) http.Handler { return defaultGuard.Admin() }

// SelfOrAdmin is Guard.SelfOrAdmin on a default guard.
func SelfOrAdmin(param ParamFunc) func(http.Handler) http.Handler {
	return defaultGuard.SelfOrAdmin(param)
}

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	http.Error(w, core.Key(err), core.StatusCode(err))
}
