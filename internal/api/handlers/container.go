package handlers

import (
	"github.com/quickhire/quickhire-api/internal/application"
)

// Handlers bundles the HTTP handlers for route registration.
type Handlers struct {
	Auth        *AuthHandler
	Job         *JobHandler
	Application *ApplicationHandler
	Company     *CompanyHandler
}

func New(services *application.Services) *Handlers {
	return &Handlers{
		Auth:        NewAuthHandler(services.Auth),
		Job:         NewJobHandler(services.Job),
		Application: NewApplicationHandler(services.Submission),
		Company:     NewCompanyHandler(services.Company),
	}
}
