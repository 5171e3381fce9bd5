package api

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/jobboard/handler"
	"github.com/dmitrymomot/jobboard/pkg/binder"
	"github.com/dmitrymomot/jobboard/pkg/jwt"
	"github.com/dmitrymomot/jobboard/pkg/rbac"
	"github.com/dmitrymomot/jobboard/pkg/sqlbuild"
	"github.com/dmitrymomot/jobboard/svc/company"
	"github.com/dmitrymomot/jobboard/svc/job"
	"github.com/dmitrymomot/jobboard/svc/user"
)

// JobStorage is the job persistence used by the endpoints. *job.Storage
// implements it.
type JobStorage interface {
	Create(ctx context.Context, in job.NewJob) (job.Job, error)
	Find(ctx context.Context, f job.Filter) ([]job.Job, error)
	Get(ctx context.Context, id int64) (job.Job, error)
	Update(ctx context.Context, id int64, fields sqlbuild.Fields) (job.Job, error)
	Delete(ctx context.Context, id int64) error
	ByCompany(ctx context.Context, handle string) ([]job.Job, error)
}

// CompanyStorage is implemented by *company.Storage.
type CompanyStorage interface {
	Create(ctx context.Context, in company.NewCompany) (company.Company, error)
	Find(ctx context.Context, f company.Filter) ([]company.Company, error)
	Get(ctx context.Context, handle string) (company.Company, error)
	Update(ctx context.Context, handle string, fields sqlbuild.Fields) (company.Company, error)
	Delete(ctx context.Context, handle string) error
}

// UserStorage is implemented by *user.Storage.
type UserStorage interface {
	Register(ctx context.Context, in user.NewUser) (user.User, error)
	Authenticate(ctx context.Context, username, password string) (user.User, error)
	FindAll(ctx context.Context) ([]user.User, error)
	Get(ctx context.Context, username string) (user.User, error)
	Update(ctx context.Context, username string, fields sqlbuild.Fields) (user.User, error)
	Delete(ctx context.Context, username string) error
	Apply(ctx context.Context, username string, jobID int64) error
}

// TokenIssuer signs identity tokens. *jwt.Service implements it.
type TokenIssuer interface {
	Issue(id jwt.Identity) (string, error)
}

// common holds what every endpoint group shares.
type common struct {
	validator binder.DocumentValidator
	log       *slog.Logger
	onError   handler.ErrorHandler
	guard     *rbac.Guard
}

func newCommon(validator binder.DocumentValidator, log *slog.Logger) common {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	onError := handler.NewErrorHandler(log)
	return common{
		validator: validator,
		log:       log,
		onError:   onError,
		guard:     rbac.NewGuard(rbac.WithErrorHandler(handler.Responder(onError))),
	}
}

// body validates the request body against id, then decodes it.
func (c common) body(id string) handler.Bind {
	return binder.Schema(c.validator, id)
}

func (c common) handleErrors() handler.WrapOption {
	return handler.WithErrorHandler(c.onError)
}

var (
	bindPath  handler.Bind = binder.Path(binder.ChiParam)
	bindQuery handler.Bind = binder.Query()
)

// fieldsBody fills an update request's field mapping from a JSON object,
// keeping key order.
type fieldsBody struct {
	Fields sqlbuild.Fields `path:"-" query:"-"`
}

func (b *fieldsBody) UnmarshalJSON(data []byte) error {
	return b.Fields.UnmarshalJSON(data)
}
