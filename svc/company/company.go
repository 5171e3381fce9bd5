// Package company stores employers and compiles company searches.
package company

import "github.com/dmitrymomot/jobboard/pkg/sqlbuild"

// Company is an employer as returned to clients.
type Company struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	NumEmployees *int64  `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

// NewCompany is the input for Create.
type NewCompany struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	NumEmployees *int64  `json:"numEmployees,omitempty"`
	LogoURL      *string `json:"logoUrl,omitempty"`
}

// UpdateColumns maps update field names to columns.
var UpdateColumns = sqlbuild.Columns{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}
