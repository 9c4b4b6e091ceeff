package application

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/quickhire/quickhire-api/internal/domain/company"
	"github.com/quickhire/quickhire-api/internal/domain/job"
	"github.com/quickhire/quickhire-api/internal/repository"
)

const defaultIndustry = "Technology"

// CompanyService derives the company view by grouping jobs at query time.
// There is no persisted company entity; every display field is a
// deterministic function of the postings so repeated requests agree.
type CompanyService struct {
	Repos *repository.Repos
}

func NewCompanyService(repos *repository.Repos) *CompanyService {
	return &CompanyService{Repos: repos}
}

// ListCompanies groups all jobs by company. Sorted by open-role count
// descending, then name ascending.
func (s *CompanyService) ListCompanies() ([]company.Company, error) {
	jobs, err := s.Repos.Job.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch jobs: %w", err)
	}

	byName := make(map[string][]job.Job)
	for _, j := range jobs {
		byName[j.Company] = append(byName[j.Company], j)
	}

	companies := make([]company.Company, 0, len(byName))
	for name, group := range byName {
		companies = append(companies, derive(name, group))
	}

	sort.Slice(companies, func(i, k int) bool {
		if companies[i].OpenRoles != companies[k].OpenRoles {
			return companies[i].OpenRoles > companies[k].OpenRoles
		}
		return companies[i].Name < companies[k].Name
	})
	return companies, nil
}

// GetCompany returns one derived company plus its postings, matched
// case-insensitively on the name.
func (s *CompanyService) GetCompany(name string) (*company.Company, []job.Job, error) {
	jobs, err := s.Repos.Job.FindAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch jobs: %w", err)
	}

	var group []job.Job
	for _, j := range jobs {
		if strings.EqualFold(j.Company, name) {
			group = append(group, j)
		}
	}
	if len(group) == 0 {
		return nil, nil, ErrCompanyNotFound
	}

	derived := derive(group[0].Company, group)
	return &derived, group, nil
}

// derive builds the read model from a company's postings, which arrive
// newest-first from the store.
func derive(name string, group []job.Job) company.Company {
	c := company.Company{
		Name:           name,
		OpenRoles:      len(group),
		Industry:       defaultIndustry,
		Logo:           avatarURL(name),
		LatestPostedAt: group[0].CreatedAt,
	}
	if len(group[0].Tags) > 0 {
		c.Industry = group[0].Tags[0]
	}

	seen := make(map[string]bool)
	for _, j := range group {
		if !seen[j.Location] {
			seen[j.Location] = true
			c.Locations = append(c.Locations, j.Location)
		}
	}
	return c
}

func avatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&size=128"
}
