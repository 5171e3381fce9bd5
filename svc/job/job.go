package job

import "github.com/dmitrymomot/jobboard/pkg/sqlbuild"

// Job is a job posting as returned to clients.
type Job struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Salary        *int64  `json:"salary"`
	Equity        *string `json:"equity"`
	CompanyHandle string  `json:"companyHandle"`
}

// NewJob is the input for Create.
type NewJob struct {
	Title         string   `json:"title"`
	Salary        *int64   `json:"salary,omitempty"`
	Equity        *float64 `json:"equity,omitempty"`
	CompanyHandle string   `json:"companyHandle"`
}

// UpdateColumns maps update field names to columns. The update schema only
// admits title, salary and equity; the alias is kept for callers that pass
// fields from other sources.
var UpdateColumns = sqlbuild.Columns{
	"companyHandle": "company_handle",
}
