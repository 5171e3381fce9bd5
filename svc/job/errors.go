package job

import "errors"

var (
	ErrJobNotFound    = errors.New("job not found")
	ErrUnknownCompany = errors.New("job references an unknown company")
	ErrFailedToQuery  = errors.New("failed to query jobs")
)
