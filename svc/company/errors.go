package company

import "errors"

var (
	ErrCompanyNotFound  = errors.New("company not found")
	ErrDuplicateCompany = errors.New("company already exists")
	ErrInvalidRange     = errors.New("minEmployees cannot be greater than maxEmployees")
	ErrFailedToQuery    = errors.New("failed to query companies")
)
