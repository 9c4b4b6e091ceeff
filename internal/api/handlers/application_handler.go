package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quickhire/quickhire-api/internal/application"
	domain "github.com/quickhire/quickhire-api/internal/domain/application"
	"github.com/quickhire/quickhire-api/pkg/response"
	"github.com/quickhire/quickhire-api/pkg/utils"
)

// ApplicationHandler handles application submission and the admin review
// endpoints.
type ApplicationHandler struct {
	svc *application.SubmissionService
}

func NewApplicationHandler(svc *application.SubmissionService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

// Submit godoc
// @Summary Submit a job application
// @Tags applications
// @Accept json
// @Produce json
// @Param input body application.SubmitInput true "Application payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope "Missing field, bad email or bad resume link"
// @Failure 404 {object} response.Envelope "Referenced job does not exist"
// @Router /applications [post]
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var input domain.SubmitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid payload"))
		return
	}

	app, err := h.svc.Submit(input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrMissingField),
			errors.Is(err, application.ErrInvalidEmail),
			errors.Is(err, application.ErrInvalidResumeLink):
			c.JSON(http.StatusBadRequest, response.Error(err.Error()))
		case errors.Is(err, application.ErrJobNotFound):
			c.JSON(http.StatusNotFound, response.Error("Job not found"))
		default:
			c.JSON(http.StatusInternalServerError, response.Error("Failed to submit application"))
		}
		return
	}
	c.JSON(http.StatusCreated, response.Created("Application submitted successfully", app))
}

// ListApplications godoc
// @Summary List all applications, newest first (admin)
// @Tags applications
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /api/applications [get]
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	apps, err := h.svc.ListApplications()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error("Failed to fetch applications"))
		return
	}
	c.JSON(http.StatusOK, response.OK(apps))
}

// ListByJob godoc
// @Summary List applications for one job (admin)
// @Tags applications
// @Produce json
// @Param jobId path int true "Job ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Security BearerAuth
// @Router /api/applications/job/{jobId} [get]
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	jobID, err := utils.ParseIDParam(c, "jobId")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid job ID"))
		return
	}

	apps, err := h.svc.ListByJob(jobID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error("Failed to fetch applications"))
		return
	}
	c.JSON(http.StatusOK, response.OK(apps))
}

// UpdateStatus godoc
// @Summary Update an application's status field (admin)
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param input body application.UpdateStatusInput true "New status"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /api/applications/{id} [put]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid application ID"))
		return
	}

	var input domain.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("status is required"))
		return
	}

	app, err := h.svc.UpdateStatus(id, input.Status)
	if err != nil {
		if errors.Is(err, application.ErrApplicationNotFound) {
			c.JSON(http.StatusNotFound, response.Error("Application not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error("Failed to update application"))
		return
	}
	c.JSON(http.StatusOK, response.Envelope{Success: true, Message: "Application status updated", Data: app})
}

// DeleteApplication godoc
// @Summary Delete an application (admin)
// @Tags applications
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /api/applications/{id} [delete]
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid application ID"))
		return
	}

	if err := h.svc.DeleteApplication(id); err != nil {
		if errors.Is(err, application.ErrApplicationNotFound) {
			c.JSON(http.StatusNotFound, response.Error("Application not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error("Failed to delete application"))
		return
	}
	c.JSON(http.StatusOK, response.OKMessage("Application deleted successfully"))
}
