package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/jobboard/handler"
	"github.com/dmitrymomot/jobboard/pkg/binder"
	"github.com/dmitrymomot/jobboard/pkg/logger"
	"github.com/dmitrymomot/jobboard/svc/user"
)

// Auth serves /auth: token exchange and self-registration.
type Auth struct {
	common
	store  UserStorage
	tokens TokenIssuer
}

// NewAuth creates the /auth endpoint group.
func NewAuth(store UserStorage, tokens TokenIssuer, validator binder.DocumentValidator, log *slog.Logger) *Auth {
	return &Auth{common: newCommon(validator, log), store: store, tokens: tokens}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registration struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Handle returns the routes. Both are public.
func (h *Auth) Handle() http.Handler {
	r := chi.NewRouter()
	r.Post("/token", handler.Wrap(h.token, handler.WithBinders(h.body(UserAuthSchema)), h.handleErrors()))
	r.Post("/register", handler.Wrap(h.register, handler.WithBinders(h.body(UserRegisterSchema)), h.handleErrors()))
	return r
}

func (h *Auth) token(ctx handler.Context, req credentials) handler.Response {
	u, err := h.store.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return handler.JSONError(err)
	}
	token, err := h.tokens.Issue(u.Identity())
	if err != nil {
		return handler.JSONError(err)
	}
	return handler.JSON(map[string]any{"token": token})
}

// register signs up a regular user. Self-registered users are never
// admins.
func (h *Auth) register(ctx handler.Context, req registration) handler.Response {
	u, err := h.store.Register(ctx, user.NewUser{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		return handler.JSONError(err)
	}
	token, err := h.tokens.Issue(u.Identity())
	if err != nil {
		return handler.JSONError(err)
	}
	h.log.InfoContext(ctx, "user registered", logger.Username(u.Username))
	return handler.Created(map[string]any{"token": token})
}
