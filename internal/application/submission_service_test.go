package application_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/quickhire/quickhire-api/internal/application"
	domain "github.com/quickhire/quickhire-api/internal/domain/application"
	"github.com/quickhire/quickhire-api/internal/domain/job"
	"github.com/quickhire/quickhire-api/internal/repository"
	"github.com/quickhire/quickhire-api/internal/repository/mock"
	"gorm.io/gorm"
)

func setupSubmissionMocks(t *testing.T) (*application.SubmissionService, *mock.MockJobRepo, *mock.MockApplicationRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockJob := mock.NewMockJobRepo(ctrl)
	mockApp := mock.NewMockApplicationRepo(ctrl)
	repos := &repository.Repos{Job: mockJob, Application: mockApp}

	return application.NewSubmissionService(repos), mockJob, mockApp
}

func validInput() domain.SubmitInput {
	return domain.SubmitInput{
		JobID:      1,
		Name:       "Ann",
		Email:      "ann@x.com",
		ResumeLink: "https://r.example/ann",
	}
}

func TestSubmitValidationOrder(t *testing.T) {
	// No repository expectations are registered in the failure cases, so a
	// write (or premature job lookup) fails the test.
	t.Run("missing name", func(t *testing.T) {
		svc, _, _ := setupSubmissionMocks(t)

		input := validInput()
		input.Name = "  "
		_, err := svc.Submit(input)
		if !errors.Is(err, application.ErrMissingField) {
			t.Fatalf("expected ErrMissingField, got %v", err)
		}
	})

	t.Run("missing job_id", func(t *testing.T) {
		svc, _, _ := setupSubmissionMocks(t)

		input := validInput()
		input.JobID = 0
		_, err := svc.Submit(input)
		if !errors.Is(err, application.ErrMissingField) {
			t.Fatalf("expected ErrMissingField, got %v", err)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		svc, _, _ := setupSubmissionMocks(t)

		input := validInput()
		input.Email = "not-an-email"
		_, err := svc.Submit(input)
		if !errors.Is(err, application.ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("email without dot in domain", func(t *testing.T) {
		svc, _, _ := setupSubmissionMocks(t)

		input := validInput()
		input.Email = "ann@localhost"
		_, err := svc.Submit(input)
		if !errors.Is(err, application.ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("relative resume link", func(t *testing.T) {
		svc, _, _ := setupSubmissionMocks(t)

		input := validInput()
		input.ResumeLink = "/resumes/ann.pdf"
		_, err := svc.Submit(input)
		if !errors.Is(err, application.ErrInvalidResumeLink) {
			t.Fatalf("expected ErrInvalidResumeLink, got %v", err)
		}
	})

	t.Run("unresolved job writes nothing", func(t *testing.T) {
		svc, mockJob, _ := setupSubmissionMocks(t)

		mockJob.EXPECT().FindByID(uint(1)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Submit(validInput())
		if !errors.Is(err, application.ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})
}

func TestSubmitSuccess(t *testing.T) {
	svc, mockJob, mockApp := setupSubmissionMocks(t)

	mockJob.EXPECT().FindByID(uint(1)).Return(&job.Job{ID: 1}, nil)
	mockApp.EXPECT().Create(gomock.Any()).Do(func(a *domain.Application) {
		a.ID = 11
	}).Return(nil)

	app, err := svc.Submit(validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.ID != 11 {
		t.Fatalf("expected assigned id 11, got %d", app.ID)
	}
	if app.Status != domain.StatusPending {
		t.Fatalf("expected pending status, got %s", app.Status)
	}
	if app.JobID != 1 {
		t.Fatalf("expected job_id 1, got %d", app.JobID)
	}
}

func TestSubmitAllowsDuplicates(t *testing.T) {
	svc, mockJob, mockApp := setupSubmissionMocks(t)

	mockJob.EXPECT().FindByID(uint(1)).Return(&job.Job{ID: 1}, nil).Times(2)
	mockApp.EXPECT().Create(gomock.Any()).Return(nil).Times(2)

	for i := 0; i < 2; i++ {
		if _, err := svc.Submit(validInput()); err != nil {
			t.Fatalf("submission %d failed: %v", i+1, err)
		}
	}
}

func TestUpdateStatus(t *testing.T) {
	t.Run("accepts any text and is idempotent", func(t *testing.T) {
		svc, _, mockApp := setupSubmissionMocks(t)

		stored := &domain.Application{ID: 5, Status: domain.StatusAccepted}
		mockApp.EXPECT().FindByID(uint(5)).Return(stored, nil).Times(4)
		mockApp.EXPECT().UpdateStatus(uint(5), "accepted").Return(nil).Times(2)

		for i := 0; i < 2; i++ {
			app, err := svc.UpdateStatus(5, "accepted")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if app.Status != "accepted" {
				t.Fatalf("expected accepted, got %s", app.Status)
			}
		}
	})

	t.Run("not found", func(t *testing.T) {
		svc, _, mockApp := setupSubmissionMocks(t)

		mockApp.EXPECT().FindByID(uint(9)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.UpdateStatus(9, "reviewed")
		if !errors.Is(err, application.ErrApplicationNotFound) {
			t.Fatalf("expected ErrApplicationNotFound, got %v", err)
		}
	})
}

func TestDeleteApplication(t *testing.T) {
	svc, _, mockApp := setupSubmissionMocks(t)

	mockApp.EXPECT().FindByID(uint(3)).Return(&domain.Application{ID: 3}, nil)
	mockApp.EXPECT().Delete(uint(3)).Return(nil)

	if err := svc.DeleteApplication(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
