package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/jobboard/handler"
	"github.com/dmitrymomot/jobboard/pkg/binder"
	"github.com/dmitrymomot/jobboard/pkg/logger"
	"github.com/dmitrymomot/jobboard/svc/company"
	"github.com/dmitrymomot/jobboard/svc/job"
)

// Companies serves /companies.
type Companies struct {
	common
	store CompanyStorage
	jobs  JobStorage
}

// NewCompanies creates the /companies endpoint group. jobs is used to list
// a company's postings.
func NewCompanies(store CompanyStorage, jobs JobStorage, validator binder.DocumentValidator, log *slog.Logger) *Companies {
	return &Companies{common: newCommon(validator, log), store: store, jobs: jobs}
}

type companyHandleRequest struct {
	Handle string `path:"handle"`
}

type updateCompanyRequest struct {
	Handle string `path:"handle"`
	fieldsBody
}

// companyWithJobs is the detail view of a company.
type companyWithJobs struct {
	company.Company
	Jobs []job.Job `json:"jobs"`
}

// Handle returns the routes. Reads are public, writes require an admin.
func (h *Companies) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(h.list, handler.WithBinders(bindQuery), h.handleErrors()))
	r.Get("/{handle}", handler.Wrap(h.get, handler.WithBinders(bindPath), h.handleErrors()))

	r.Group(func(r chi.Router) {
		r.Use(h.guard.Admin())
		r.Post("/", handler.Wrap(h.create, handler.WithBinders(h.body(CompanyNewSchema)), h.handleErrors()))
		r.Patch("/{handle}", handler.Wrap(h.update, handler.WithBinders(bindPath, h.body(CompanyUpdateSchema)), h.handleErrors()))
		r.Delete("/{handle}", handler.Wrap(h.delete, handler.WithBinders(bindPath), h.handleErrors()))
	})

	return r
}

func (h *Companies) create(ctx handler.Context, req company.NewCompany) handler.Response {
	c, err := h.store.Create(ctx, req)
	if err != nil {
		return handler.JSONError(err)
	}
	h.log.InfoContext(ctx, "company created", logger.CompanyHandle(c.Handle))
	return handler.Created(map[string]any{"company": c})
}

func (h *Companies) list(ctx handler.Context, req company.Filter) handler.Response {
	companies, err := h.store.Find(ctx, req)
	if err != nil {
		return handler.JSONError(err)
	}
	return handler.JSON(map[string]any{"companies": companies})
}

func (h *Companies) get(ctx handler.Context, req companyHandleRequest) handler.Response {
	c, err := h.store.Get(ctx, req.Handle)
	if err != nil {
		return handler.JSONError(err)
	}
	jobs, err := h.jobs.ByCompany(ctx, req.Handle)
	if err != nil {
		return handler.JSONError(err)
	}
	return handler.JSON(map[string]any{"company": companyWithJobs{Company: c, Jobs: jobs}})
}

func (h *Companies) update(ctx handler.Context, req updateCompanyRequest) handler.Response {
	c, err := h.store.Update(ctx, req.Handle, req.Fields)
	if err != nil {
		return handler.JSONError(err)
	}
	return handler.JSON(map[string]any{"company": c})
}

func (h *Companies) delete(ctx handler.Context, req companyHandleRequest) handler.Response {
	if err := h.store.Delete(ctx, req.Handle); err != nil {
		return handler.JSONError(err)
	}
	h.log.InfoContext(ctx, "company deleted", logger.CompanyHandle(req.Handle))
	return handler.JSON(map[string]any{"deleted": req.Handle})
}
