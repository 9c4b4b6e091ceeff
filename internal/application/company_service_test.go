package application_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/quickhire/quickhire-api/internal/application"
	"github.com/quickhire/quickhire-api/internal/domain/job"
	"github.com/quickhire/quickhire-api/internal/repository"
	"github.com/quickhire/quickhire-api/internal/repository/mock"
	"gorm.io/datatypes"
)

func setupCompanyMocks(t *testing.T) (*application.CompanyService, *mock.MockJobRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockJob := mock.NewMockJobRepo(ctrl)
	repos := &repository.Repos{Job: mockJob}

	return application.NewCompanyService(repos), mockJob
}

// Jobs arrive from the store newest-first.
func sampleJobs() []job.Job {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []job.Job{
		{ID: 3, Company: "Nimbus Labs", Location: "London", Tags: datatypes.JSONSlice[string]{"SaaS"}, CreatedAt: base.Add(48 * time.Hour)},
		{ID: 2, Company: "Brightside", Location: "Remote", CreatedAt: base.Add(24 * time.Hour)},
		{ID: 1, Company: "Nimbus Labs", Location: "Berlin", Tags: datatypes.JSONSlice[string]{"Backend"}, CreatedAt: base},
	}
}

func TestListCompanies(t *testing.T) {
	svc, mockJob := setupCompanyMocks(t)
	mockJob.EXPECT().FindAll().Return(sampleJobs(), nil)

	companies, err := svc.ListCompanies()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(companies) != 2 {
		t.Fatalf("expected 2 companies, got %d", len(companies))
	}

	nimbus := companies[0]
	if nimbus.Name != "Nimbus Labs" || nimbus.OpenRoles != 2 {
		t.Fatalf("expected Nimbus Labs with 2 roles first, got %+v", nimbus)
	}
	// Industry comes from the newest posting's first tag.
	if nimbus.Industry != "SaaS" {
		t.Fatalf("expected SaaS industry, got %s", nimbus.Industry)
	}
	if len(nimbus.Locations) != 2 || nimbus.Locations[0] != "London" {
		t.Fatalf("expected distinct locations newest-first, got %v", nimbus.Locations)
	}

	// Untagged companies fall back to the default industry.
	if companies[1].Industry != "Technology" {
		t.Fatalf("expected Technology fallback, got %s", companies[1].Industry)
	}
}

func TestListCompaniesDeterministic(t *testing.T) {
	svc, mockJob := setupCompanyMocks(t)
	mockJob.EXPECT().FindAll().Return(sampleJobs(), nil).Times(2)

	first, err := svc.ListCompanies()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.ListCompanies()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range first {
		if first[i].Logo != second[i].Logo || first[i].Industry != second[i].Industry {
			t.Fatalf("derived fields changed between requests: %+v vs %+v", first[i], second[i])
		}
	}
}

func TestGetCompany(t *testing.T) {
	t.Run("case-insensitive match", func(t *testing.T) {
		svc, mockJob := setupCompanyMocks(t)
		mockJob.EXPECT().FindAll().Return(sampleJobs(), nil)

		comp, jobs, err := svc.GetCompany("nimbus labs")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if comp.Name != "Nimbus Labs" {
			t.Fatalf("expected stored casing, got %s", comp.Name)
		}
		if len(jobs) != 2 {
			t.Fatalf("expected 2 jobs, got %d", len(jobs))
		}
	})

	t.Run("unknown company", func(t *testing.T) {
		svc, mockJob := setupCompanyMocks(t)
		mockJob.EXPECT().FindAll().Return(sampleJobs(), nil)

		_, _, err := svc.GetCompany("Acme")
		if err != application.ErrCompanyNotFound {
			t.Fatalf("expected ErrCompanyNotFound, got %v", err)
		}
	})
}
