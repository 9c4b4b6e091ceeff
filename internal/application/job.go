package application

import (
	"errors"
	"fmt"

	"github.com/quickhire/quickhire-api/internal/domain/job"
	"github.com/quickhire/quickhire-api/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// JobService handles the posting lifecycle and the listing/filter surface.
// Each filter applies exactly one channel (category, type or title); an
// empty fragment matches everything.
type JobService struct {
	Repos *repository.Repos
}

func NewJobService(repos *repository.Repos) *JobService {
	return &JobService{Repos: repos}
}

func (s *JobService) ListJobs() ([]job.Job, error) {
	return s.Repos.Job.FindAll()
}

func (s *JobService) FilterByCategory(fragment string) ([]job.Job, error) {
	return s.Repos.Job.FindByCategory(fragment)
}

func (s *JobService) FilterByType(fragment string) ([]job.Job, error) {
	return s.Repos.Job.FindByType(fragment)
}

func (s *JobService) SearchByTitle(fragment string) ([]job.Job, error) {
	return s.Repos.Job.FindByTitle(fragment)
}

func (s *JobService) GetJob(id uint) (*job.Job, error) {
	j, err := s.Repos.Job.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to fetch job: %w", err)
	}
	return j, nil
}

// CreateJob assigns the identifier and created_at stamp; salary defaults to
// null and the list fields to empty sequences.
func (s *JobService) CreateJob(input job.CreateJobInput) (*job.Job, error) {
	if input.Title == "" || input.Company == "" || input.Location == "" ||
		input.Description == "" || input.Type == "" {
		return nil, ErrMissingJobFields
	}

	newJob := &job.Job{
		Title:            input.Title,
		Company:          input.Company,
		Location:         input.Location,
		Category:         input.Category,
		Type:             input.Type,
		Salary:           input.Salary,
		Description:      input.Description,
		Requirements:     toJSONSlice(input.Requirements),
		Responsibilities: toJSONSlice(input.Responsibilities),
		Tags:             toJSONSlice(input.Tags),
	}

	if err := s.Repos.Job.Create(newJob); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return newJob, nil
}

// UpdateJob applies a partial field set; list fields supplied as flat
// comma-delimited text have already been split by StringList binding.
func (s *JobService) UpdateJob(id uint, input job.UpdateJobInput) (*job.Job, error) {
	j, err := s.Repos.Job.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to fetch job: %w", err)
	}

	if input.Title != nil {
		j.Title = *input.Title
	}
	if input.Company != nil {
		j.Company = *input.Company
	}
	if input.Location != nil {
		j.Location = *input.Location
	}
	if input.Category != nil {
		j.Category = *input.Category
	}
	if input.Type != nil {
		j.Type = *input.Type
	}
	if input.Salary != nil {
		j.Salary = input.Salary
	}
	if input.Description != nil {
		j.Description = *input.Description
	}
	if input.Requirements != nil {
		j.Requirements = toJSONSlice(*input.Requirements)
	}
	if input.Responsibilities != nil {
		j.Responsibilities = toJSONSlice(*input.Responsibilities)
	}
	if input.Tags != nil {
		j.Tags = toJSONSlice(*input.Tags)
	}

	if err := s.Repos.Job.Update(j); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return j, nil
}

func (s *JobService) DeleteJob(id uint) error {
	if _, err := s.Repos.Job.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrJobNotFound
		}
		return fmt.Errorf("failed to fetch job: %w", err)
	}

	if err := s.Repos.Job.Delete(id); err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}

// toJSONSlice keeps absent list fields as empty sequences, never null.
func toJSONSlice(l job.StringList) datatypes.JSONSlice[string] {
	if l == nil {
		return datatypes.JSONSlice[string]{}
	}
	return datatypes.JSONSlice[string](l)
}
