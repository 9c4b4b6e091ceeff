package application

import "errors"

// Sentinel errors mapped to HTTP statuses at the handler boundary.
var (
	ErrJobNotFound         = errors.New("job not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrCompanyNotFound     = errors.New("company not found")
	ErrMissingJobFields    = errors.New("missing required job fields")
	ErrMissingField        = errors.New("missing required field")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrInvalidResumeLink   = errors.New("resume link must be a valid absolute URL")
	ErrInvalidCredentials  = errors.New("invalid username or password")
)
