package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quickhire/quickhire-api/internal/application"
	"github.com/quickhire/quickhire-api/internal/domain/job"
	"github.com/quickhire/quickhire-api/pkg/response"
	"github.com/quickhire/quickhire-api/pkg/utils"
)

// JobHandler handles the job listing, filter and admin mutation endpoints.
type JobHandler struct {
	svc *application.JobService
}

func NewJobHandler(svc *application.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

// ListJobs godoc
// @Summary List all jobs, newest first
// @Tags jobs
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.svc.ListJobs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error("Failed to fetch jobs"))
		return
	}
	c.JSON(http.StatusOK, response.OK(jobs))
}

// FilterByCategory godoc
// @Summary Filter jobs by category substring
// @Tags jobs
// @Produce json
// @Param category query string true "Category fragment (case-insensitive)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /jobs/filter/category [get]
func (h *JobHandler) FilterByCategory(c *gin.Context) {
	// An empty value means "all jobs"; an absent parameter is a client error.
	fragment, ok := c.GetQuery("category")
	if !ok {
		c.JSON(http.StatusBadRequest, response.Error("Category query param is required"))
		return
	}

	jobs, err := h.svc.FilterByCategory(fragment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error("Failed to fetch jobs by category"))
		return
	}
	c.JSON(http.StatusOK, response.OK(jobs))
}

// FilterByType godoc
// @Summary Filter jobs by employment type substring
// @Tags jobs
// @Produce json
// @Param job_type query string true "Type fragment (case-insensitive)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /jobs/filter/type [get]
func (h *JobHandler) FilterByType(c *gin.Context) {
	fragment, ok := c.GetQuery("job_type")
	if !ok {
		c.JSON(http.StatusBadRequest, response.Error("job_type query param is required"))
		return
	}

	jobs, err := h.svc.FilterByType(fragment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error("Failed to fetch jobs by job type"))
		return
	}
	c.JSON(http.StatusOK, response.OK(jobs))
}

// SearchByTitle godoc
// @Summary Search jobs by title substring
// @Tags jobs
// @Produce json
// @Param title query string true "Title fragment (case-insensitive)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /jobs/search/title [get]
func (h *JobHandler) SearchByTitle(c *gin.Context) {
	fragment, ok := c.GetQuery("title")
	if !ok {
		c.JSON(http.StatusBadRequest, response.Error("title query param is required"))
		return
	}

	jobs, err := h.svc.SearchByTitle(fragment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error("Failed to search jobs by title"))
		return
	}
	c.JSON(http.StatusOK, response.OK(jobs))
}

// GetJob godoc
// @Summary Get one job by id
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope "Invalid job ID"
// @Failure 404 {object} response.Envelope "Job not found"
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid job ID"))
		return
	}

	j, err := h.svc.GetJob(id)
	if err != nil {
		if errors.Is(err, application.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, response.Error("Job not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error("Failed to fetch job"))
		return
	}
	c.JSON(http.StatusOK, response.OK(j))
}

// CreateJob godoc
// @Summary Create a job posting (admin)
// @Tags jobs
// @Accept json
// @Produce json
// @Param input body job.CreateJobInput true "Job fields"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope "Missing required fields"
// @Security BearerAuth
// @Router /api/jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var input job.CreateJobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid payload"))
		return
	}

	j, err := h.svc.CreateJob(input)
	if err != nil {
		if errors.Is(err, application.ErrMissingJobFields) {
			c.JSON(http.StatusBadRequest, response.Error("Required fields: title, company, location, job_type, description"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error("Failed to create job"))
		return
	}
	c.JSON(http.StatusCreated, response.Created("Job created successfully", j))
}

// UpdateJob godoc
// @Summary Partially update a job (admin)
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Param input body job.UpdateJobInput true "Fields to replace; list fields accept comma-delimited strings"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid job ID"))
		return
	}

	var input job.UpdateJobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid payload"))
		return
	}

	j, err := h.svc.UpdateJob(id, input)
	if err != nil {
		if errors.Is(err, application.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, response.Error("Job not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error("Failed to update job"))
		return
	}
	c.JSON(http.StatusOK, response.Envelope{Success: true, Message: "Job updated successfully", Data: j})
}

// DeleteJob godoc
// @Summary Delete a job (admin)
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid job ID"))
		return
	}

	if err := h.svc.DeleteJob(id); err != nil {
		if errors.Is(err, application.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, response.Error("Job not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error("Failed to delete job"))
		return
	}
	c.JSON(http.StatusOK, response.OKMessage("Job deleted successfully"))
}
