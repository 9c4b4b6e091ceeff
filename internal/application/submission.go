package application

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/quickhire/quickhire-api/internal/domain/application"
	"github.com/quickhire/quickhire-api/internal/repository"
	"gorm.io/gorm"
)

// Loose local@domain.tld shape, matching the original submission form.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SubmissionService validates and stores job applications and serves the
// admin review surface.
type SubmissionService struct {
	Repos *repository.Repos
}

func NewSubmissionService(repos *repository.Repos) *SubmissionService {
	return &SubmissionService{Repos: repos}
}

// Submit validates in order: required fields, email shape, resume URL, then
// job existence. Nothing is written unless every check passes. Duplicate
// submissions for the same job are allowed.
func (s *SubmissionService) Submit(input application.SubmitInput) (*application.Application, error) {
	if input.JobID == 0 {
		return nil, fmt.Errorf("%w: job_id", ErrMissingField)
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name", ErrMissingField)
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, fmt.Errorf("%w: email", ErrMissingField)
	}
	if strings.TrimSpace(input.ResumeLink) == "" {
		return nil, fmt.Errorf("%w: resume_link", ErrMissingField)
	}

	if !emailPattern.MatchString(input.Email) {
		return nil, ErrInvalidEmail
	}

	u, err := url.Parse(input.ResumeLink)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, ErrInvalidResumeLink
	}

	app := &application.Application{
		JobID:      input.JobID,
		Name:       input.Name,
		Email:      input.Email,
		ResumeLink: input.ResumeLink,
		CoverNote:  input.CoverNote,
		Status:     application.StatusPending,
	}

	// Existence check and insert share one transaction so the job cannot
	// vanish between them.
	err = s.Repos.Transaction(func(tx *repository.Repos) error {
		if _, err := tx.Job.FindByID(input.JobID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrJobNotFound
			}
			return fmt.Errorf("failed to check job: %w", err)
		}
		if err := tx.Application.Create(app); err != nil {
			return fmt.Errorf("failed to store application: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (s *SubmissionService) ListApplications() ([]application.Application, error) {
	return s.Repos.Application.FindAll()
}

func (s *SubmissionService) ListByJob(jobID uint) ([]application.Application, error) {
	return s.Repos.Application.FindByJobID(jobID)
}

// UpdateStatus stores any status text verbatim; repeating the same value is
// a no-op that still succeeds.
func (s *SubmissionService) UpdateStatus(id uint, status string) (*application.Application, error) {
	if _, err := s.Repos.Application.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to fetch application: %w", err)
	}

	if err := s.Repos.Application.UpdateStatus(id, status); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	app, err := s.Repos.Application.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch application: %w", err)
	}
	return app, nil
}

func (s *SubmissionService) DeleteApplication(id uint) error {
	if _, err := s.Repos.Application.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrApplicationNotFound
		}
		return fmt.Errorf("failed to fetch application: %w", err)
	}

	if err := s.Repos.Application.Delete(id); err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}
	return nil
}
