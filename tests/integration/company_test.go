package integration

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/quickhire/quickhire-api/internal/domain/job"
	"github.com/quickhire/quickhire-api/internal/repository"
)

type companyPayload struct {
	Name      string   `json:"name"`
	OpenRoles int      `json:"open_roles"`
	Locations []string `json:"locations"`
	Industry  string   `json:"industry"`
	Logo      string   `json:"logo"`
}

func seedCompanies(t *testing.T, repos *repository.Repos) {
	t.Helper()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	seedJob(t, repos, job.Job{Title: "Backend Engineer", Company: "Nimbus Labs",
		Location: "Berlin", Type: "Full Time", Description: "d",
		Tags: datatypes.JSONSlice[string]{"Backend"}, CreatedAt: base})
	seedJob(t, repos, job.Job{Title: "SRE", Company: "Nimbus Labs",
		Location: "London", Type: "Full Time", Description: "d",
		Tags: datatypes.JSONSlice[string]{"SaaS"}, CreatedAt: base.Add(48 * time.Hour)})
	seedJob(t, repos, job.Job{Title: "Designer", Company: "Brightside",
		Location: "Remote", Type: "Contract", Description: "d",
		CreatedAt: base.Add(24 * time.Hour)})
}

func TestListCompaniesAggregation(t *testing.T) {
	r, repos := newTestServer(t)
	seedCompanies(t, repos)

	w := doRequest(t, r, http.MethodGet, "/companies", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var companies []companyPayload
	decodeData(t, decodeEnvelope(t, w), &companies)
	require.Len(t, companies, 2)

	// Most open roles first.
	require.Equal(t, "Nimbus Labs", companies[0].Name)
	require.Equal(t, 2, companies[0].OpenRoles)
	// Industry tracks the newest posting's first tag.
	require.Equal(t, "SaaS", companies[0].Industry)
	require.ElementsMatch(t, []string{"Berlin", "London"}, companies[0].Locations)
	require.Contains(t, companies[0].Logo, "ui-avatars.com")

	require.Equal(t, "Brightside", companies[1].Name)
	// Untagged postings fall back to the default industry.
	require.Equal(t, "Technology", companies[1].Industry)
}

func TestGetCompanyByName(t *testing.T) {
	r, repos := newTestServer(t)
	seedCompanies(t, repos)

	// Lookup is case-insensitive; the response keeps the stored casing.
	w := doRequest(t, r, http.MethodGet, "/companies/nimbus%20labs", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Company companyPayload `json:"company"`
		Jobs    []jobPayload   `json:"jobs"`
	}
	decodeData(t, decodeEnvelope(t, w), &data)
	require.Equal(t, "Nimbus Labs", data.Company.Name)
	require.Len(t, data.Jobs, 2)
	// Newest posting first.
	require.Equal(t, "SRE", data.Jobs[0].Title)

	w = doRequest(t, r, http.MethodGet, "/companies/Acme", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Company not found", decodeEnvelope(t, w).Message)
}

func TestCompaniesEmptyStore(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodGet, "/companies", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var companies []companyPayload
	decodeData(t, decodeEnvelope(t, w), &companies)
	require.Empty(t, companies)
}
