package rbac

import (
	"errors"

	"github.com/dmitrymomot/jobboard/pkg/jwt"
)

// Decision is the outcome of an access policy.
type Decision struct {
	Allowed bool
	Err     error
}

// Allow grants access.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny refuses access with err.
func Deny(err error) Decision {
	return Decision{Err: err}
}

// Reason returns nil for allowed decisions and the denial reason otherwise.
func (d Decision) Reason() error {
	if d.Allowed {
		return nil
	}
	if d.Err == nil {
		return ErrUnauthorized
	}
	return d.Err
}

// RequireLoggedIn allows any authenticated caller. A nil identity means
// the request is anonymous.
func RequireLoggedIn(id *jwt.Identity) Decision {
	if id == nil || id.Username == "" {
		return Deny(errors.Join(ErrNotLoggedIn, ErrUnauthenticated))
	}
	return Allow()
}

// RequireAdmin allows admins only.
func RequireAdmin(id *jwt.Identity) Decision {
	if d := RequireLoggedIn(id); !d.Allowed {
		return d
	}
	if !id.IsAdmin {
		return Deny(errors.Join(ErrAdminRequired, ErrUnauthorized))
	}
	return Allow()
}

// RequireSelfOrAdmin allows the user named username, or any admin.
// Usernames are compared exactly.
func RequireSelfOrAdmin(id *jwt.Identity, username string) Decision {
	if d := RequireLoggedIn(id); !d.Allowed {
		return d
	}
	if id.IsAdmin || id.Username == username {
		return Allow()
	}
	return Deny(errors.Join(ErrNotOwner, ErrUnauthorized))
}

// Check returns the first denial among decisions, or Allow when every
// decision allows.
func Check(decisions ...Decision) Decision {
	for _, d := range decisions {
		if !d.Allowed {
			return d
		}
	}
	return Allow()
}
