package rbac

import (
	"errors"

	"github.com/dmitrymomot/jobboard/core"
)

// Classification errors. Both surface as 401 with distinct keys.
var (
	ErrUnauthenticated = core.ErrUnauthenticated
	ErrUnauthorized    = core.ErrUnauthorized
)

// Domain errors for access decisions.
var (
	// ErrNotLoggedIn is returned when the request carries no identity.
	ErrNotLoggedIn = errors.New("rbac.not_logged_in")

	// ErrAdminRequired is returned when a non-admin calls an admin operation.
	ErrAdminRequired = errors.New("rbac.admin_required")

	// ErrNotOwner is returned when a non-admin targets another user's data.
	ErrNotOwner = errors.New("rbac.not_owner")
)
