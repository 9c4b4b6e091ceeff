package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quickhire/quickhire-api/internal/application"
	"github.com/quickhire/quickhire-api/pkg/response"
)

// CompanyHandler serves the derived company view. Companies are grouped
// from job postings at query time; nothing is persisted.
type CompanyHandler struct {
	svc *application.CompanyService
}

func NewCompanyHandler(svc *application.CompanyService) *CompanyHandler {
	return &CompanyHandler{svc: svc}
}

// ListCompanies godoc
// @Summary List companies derived from job postings
// @Tags companies
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /companies [get]
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.svc.ListCompanies()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error("Failed to fetch companies"))
		return
	}
	c.JSON(http.StatusOK, response.OK(companies))
}

// GetCompany godoc
// @Summary Get one company and its open jobs
// @Tags companies
// @Produce json
// @Param name path string true "Company name"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /companies/{name} [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	name := c.Param("name")

	comp, jobs, err := h.svc.GetCompany(name)
	if err != nil {
		if errors.Is(err, application.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, response.Error("Company not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error("Failed to fetch company"))
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{
		"company": comp,
		"jobs":    jobs,
	}))
}
