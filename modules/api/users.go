package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/jobboard/handler"
	"github.com/dmitrymomot/jobboard/pkg/binder"
	"github.com/dmitrymomot/jobboard/pkg/jwt"
	"github.com/dmitrymomot/jobboard/pkg/logger"
	"github.com/dmitrymomot/jobboard/pkg/rbac"
	"github.com/dmitrymomot/jobboard/svc/user"
)

// ErrAdminFlagRequiresAdmin is returned when a non-admin tries to change
// the isAdmin flag.
var ErrAdminFlagRequiresAdmin = errors.New("only admins can change isAdmin")

// Users serves /users.
type Users struct {
	common
	store  UserStorage
	tokens TokenIssuer
}

// NewUsers creates the /users endpoint group.
func NewUsers(store UserStorage, tokens TokenIssuer, validator binder.DocumentValidator, log *slog.Logger) *Users {
	return &Users{common: newCommon(validator, log), store: store, tokens: tokens}
}

type usernameRequest struct {
	Username string `path:"username"`
}

type updateUserRequest struct {
	Username string `path:"username"`
	fieldsBody
}

type applyRequest struct {
	Username string `path:"username"`
	JobID    int64  `path:"id"`
}

// Handle returns the routes. Listing and creating users require an admin;
// everything under /{username} requires that user or an admin.
func (h *Users) Handle() http.Handler {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(h.guard.Admin())
		r.Post("/", handler.Wrap(h.create, handler.WithBinders(h.body(UserNewSchema)), h.handleErrors()))
		r.Get("/", handler.Wrap(h.list, h.handleErrors()))
	})

	r.Route("/{username}", func(r chi.Router) {
		r.Use(h.guard.SelfOrAdmin(rbac.URLParam("username")))
		r.Get("/", handler.Wrap(h.get, handler.WithBinders(bindPath), h.handleErrors()))
		r.Patch("/", handler.Wrap(h.update, handler.WithBinders(bindPath, h.body(UserUpdateSchema)), h.handleErrors()))
		r.Delete("/", handler.Wrap(h.delete, handler.WithBinders(bindPath), h.handleErrors()))
		r.Post("/jobs/{id}", handler.Wrap(h.apply, handler.WithBinders(bindPath), h.handleErrors()))
	})

	return r
}

// create adds a user, possibly an admin, and returns a token for them.
func (h *Users) create(ctx handler.Context, req user.NewUser) handler.Response {
	u, err := h.store.Register(ctx, req)
	if err != nil {
		return handler.JSONError(err)
	}
	token, err := h.tokens.Issue(u.Identity())
	if err != nil {
		return handler.JSONError(err)
	}
	h.log.InfoContext(ctx, "user created", logger.Username(u.Username), slog.Bool("is_admin", u.IsAdmin))
	return handler.Created(map[string]any{"user": u, "token": token})
}

func (h *Users) list(ctx handler.Context, _ struct{}) handler.Response {
	users, err := h.store.FindAll(ctx)
	if err != nil {
		return handler.JSONError(err)
	}
	return handler.JSON(map[string]any{"users": users})
}

func (h *Users) get(ctx handler.Context, req usernameRequest) handler.Response {
	u, err := h.store.Get(ctx, req.Username)
	if err != nil {
		return handler.JSONError(err)
	}
	return handler.JSON(map[string]any{"user": u})
}

func (h *Users) update(ctx handler.Context, req updateUserRequest) handler.Response {
	if req.Fields.Has("isAdmin") {
		caller, _ := jwt.IdentityFromContext(ctx)
		if !caller.IsAdmin {
			return handler.JSONError(errors.Join(ErrAdminFlagRequiresAdmin, rbac.ErrUnauthorized))
		}
	}

	u, err := h.store.Update(ctx, req.Username, req.Fields)
	if err != nil {
		return handler.JSONError(err)
	}
	return handler.JSON(map[string]any{"user": u})
}

func (h *Users) delete(ctx handler.Context, req usernameRequest) handler.Response {
	if err := h.store.Delete(ctx, req.Username); err != nil {
		return handler.JSONError(err)
	}
	h.log.InfoContext(ctx, "user deleted", logger.Username(req.Username))
	return handler.JSON(map[string]any{"deleted": req.Username})
}

func (h *Users) apply(ctx handler.Context, req applyRequest) handler.Response {
	if err := h.store.Apply(ctx, req.Username, req.JobID); err != nil {
		return handler.JSONError(err)
	}
	h.log.InfoContext(ctx, "applied for job", logger.Username(req.Username), logger.JobID(req.JobID))
	return handler.JSON(map[string]any{"applied": req.JobID})
}
