package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/jobboard/handler"
	"github.com/dmitrymomot/jobboard/pkg/binder"
	"github.com/dmitrymomot/jobboard/pkg/logger"
	"github.com/dmitrymomot/jobboard/svc/job"
)

// Jobs serves /jobs.
type Jobs struct {
	common
	store JobStorage
}

// NewJobs creates the /jobs endpoint group.
func NewJobs(store JobStorage, validator binder.DocumentValidator, log *slog.Logger) *Jobs {
	return &Jobs{common: newCommon(validator, log), store: store}
}

type jobIDRequest struct {
	ID int64 `path:"id"`
}

type updateJobRequest struct {
	ID int64 `path:"id"`
	fieldsBody
}

// Handle returns the routes. Reads are public, writes require an admin.
func (h *Jobs) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(h.list, handler.WithBinders(bindQuery), h.handleErrors()))
	r.Get("/{id}", handler.Wrap(h.get, handler.WithBinders(bindPath), h.handleErrors()))

	r.Group(func(r chi.Router) {
		r.Use(h.guard.Admin())
		r.Post("/", handler.Wrap(h.create, handler.WithBinders(h.body(JobNewSchema)), h.handleErrors()))
		r.Patch("/{id}", handler.Wrap(h.update, handler.WithBinders(bindPath, h.body(JobUpdateSchema)), h.handleErrors()))
		r.Delete("/{id}", handler.Wrap(h.delete, handler.WithBinders(bindPath), h.handleErrors()))
	})

	return r
}

func (h *Jobs) create(ctx handler.Context, req job.NewJob) handler.Response {
	j, err := h.store.Create(ctx, req)
	if err != nil {
		return handler.JSONError(err)
	}
	h.log.InfoContext(ctx, "job created", logger.JobID(j.ID), logger.CompanyHandle(j.CompanyHandle))
	return handler.Created(map[string]any{"job": j})
}

func (h *Jobs) list(ctx handler.Context, req job.Filter) handler.Response {
	jobs, err := h.store.Find(ctx, req)
	if err != nil {
		return handler.JSONError(err)
	}
	return handler.JSON(map[string]any{"jobs": jobs})
}

func (h *Jobs) get(ctx handler.Context, req jobIDRequest) handler.Response {
	j, err := h.store.Get(ctx, req.ID)
	if err != nil {
		return handler.JSONError(err)
	}
	return handler.JSON(map[string]any{"job": j})
}

func (h *Jobs) update(ctx handler.Context, req updateJobRequest) handler.Response {
	j, err := h.store.Update(ctx, req.ID, req.Fields)
	if err != nil {
		return handler.JSONError(err)
	}
	return handler.JSON(map[string]any{"job": j})
}

func (h *Jobs) delete(ctx handler.Context, req jobIDRequest) handler.Response {
	if err := h.store.Delete(ctx, req.ID); err != nil {
		return handler.JSONError(err)
	}
	h.log.InfoContext(ctx, "job deleted", logger.JobID(req.ID))
	return handler.JSON(map[string]any{"deleted": strconv.FormatInt(req.ID, 10)})
}
