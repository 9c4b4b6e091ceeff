package application

import "github.com/quickhire/quickhire-api/internal/repository"

// Services bundles the application services for route wiring.
type Services struct {
	Job        *JobService
	Submission *SubmissionService
	Company    *CompanyService
	Auth       *AuthService
}

func New(repos *repository.Repos) *Services {
	return &Services{
		Job:        NewJobService(repos),
		Submission: NewSubmissionService(repos),
		Company:    NewCompanyService(repos),
		Auth:       NewAuthService(),
	}
}
