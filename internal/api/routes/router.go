package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/quickhire/quickhire-api/docs"
	"github.com/quickhire/quickhire-api/internal/api/handlers"
	"github.com/quickhire/quickhire-api/internal/api/middleware"
	"github.com/quickhire/quickhire-api/internal/application"
	"github.com/quickhire/quickhire-api/internal/repository"
)

func RegisterRoutes(r *gin.Engine) {
	repos := repository.New()
	RegisterRoutesWithRepos(r, repos)
}

// RegisterRoutesWithRepos wires the full surface against the given
// repositories (tests pass their own).
func RegisterRoutesWithRepos(r *gin.Engine, repos *repository.Repos) {
	middleware.Init()

	services := application.New(repos)
	h := handlers.New(services)

	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "QuickHire Server is LIVE")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/auth/login", h.Auth.Login)
	r.POST("/auth/logout", h.Auth.Logout)
	r.GET("/auth/status", middleware.JWTAuthMiddleware(), h.Auth.Status)

	// Public read surface
	jobs := r.Group("/jobs")
	{
		jobs.GET("", h.Job.ListJobs)
		jobs.GET("/filter/category", h.Job.FilterByCategory)
		jobs.GET("/filter/type", h.Job.FilterByType)
		jobs.GET("/search/title", h.Job.SearchByTitle)
		jobs.GET("/:id", h.Job.GetJob)
	}

	companies := r.Group("/companies")
	{
		companies.GET("", h.Company.ListCompanies)
		companies.GET("/:name", h.Company.GetCompany)
	}

	// Applicant identity lives with the external provider; submission is
	// open at this layer.
	r.POST("/applications", h.Application.Submit)

	// Admin mutations
	admin := r.Group("/", middleware.JWTAuthMiddleware(), middleware.Admin())
	{
		admin.POST("/api/jobs", h.Job.CreateJob)
		admin.PUT("/jobs/:id", h.Job.UpdateJob)
		admin.DELETE("/jobs/:id", h.Job.DeleteJob)

		admin.GET("/api/applications", h.Application.ListApplications)
		admin.GET("/api/applications/job/:jobId", h.Application.ListByJob)
		admin.PUT("/api/applications/:id", h.Application.UpdateStatus)
		admin.DELETE("/api/applications/:id", h.Application.DeleteApplication)

		admin.GET("/ws/applications", h.Application.StreamApplications)
	}
}
