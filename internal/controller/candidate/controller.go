// Package candidate provides HTTP handlers for the public job board.
package candidate

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aps-backend/internal/controller"
	"aps-backend/internal/model"
	"aps-backend/internal/state"
	"aps-backend/internal/utilities"
)

// CandidateController serves the candidate store
type CandidateController struct {
	Store *state.CandidateStore
}

// NewCandidateController creates a new instance of CandidateController
func NewCandidateController(store *state.CandidateStore) *CandidateController {
	return &CandidateController{
		Store: store,
	}
}

// ApplyResponse is returned after a successful application
type ApplyResponse struct {
	Success       bool              `json:"success"`
	ApplicationID string            `json:"applicationId"`
	Message       string            `json:"message"`
	Application   model.Application `json:"application"`
}

// GetJobs returns the cached job list
// @Summary List jobs
// @Description Jobs are regenerated on every load, search or refresh
// @Tags Candidate
// @Produce json
// @Success 200 {array} model.Job
// @Router /jobs [get]
func (cc *CandidateController) GetJobs(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Store.Jobs())
}

// GetJob returns one cached job
// @Summary Get job by id
// @Tags Candidate
// @Produce json
// @Param id path string true "Job id"
// @Success 200 {object} model.Job
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Router /jobs/{id} [get]
func (cc *CandidateController) GetJob(c *gin.Context) {
	job, ok := cc.Store.Job(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, utilities.Fail("Job not found"))
		return
	}
	c.JSON(http.StatusOK, job)
}

// SearchJobs regenerates the job list and filters it
// @Summary Search jobs
// @Description Every query is optional. City and searchTerm match case-insensitive substrings.
// @Tags Candidate
// @Produce json
// @Param sector query string false "Sector id"
// @Param designation query string false "Designation id"
// @Param city query string false "City substring"
// @Param searchTerm query string false "Substring of designation, sector or keywords"
// @Success 200 {array} model.Job
// @Failure 400 {object} utilities.ErrorResponse "Malformed query"
// @Failure 500 {object} utilities.ErrorResponse "Data source error"
// @Router /jobs/search [get]
func (cc *CandidateController) SearchJobs(c *gin.Context) {
	var filters model.JobFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, utilities.Fail(err.Error()))
		return
	}

	jobs, err := cc.Store.SearchJobs(c.Request.Context(), filters)
	if err != nil {
		controller.RespondError(c, err, "Failed to search jobs")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetSectors returns the sector list
// @Summary List sectors
// @Tags Candidate
// @Produce json
// @Success 200 {array} model.Sector
// @Router /sectors [get]
func (cc *CandidateController) GetSectors(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Store.Sectors())
}

// GetDesignations returns the designations of one sector
// @Summary List designations of a sector
// @Tags Candidate
// @Produce json
// @Param id path string true "Sector id"
// @Success 200 {array} model.Designation
// @Failure 500 {object} utilities.ErrorResponse "Data source error"
// @Router /sectors/{id}/designations [get]
func (cc *CandidateController) GetDesignations(c *gin.Context) {
	designations, err := cc.Store.GetDesignationsBySector(c.Request.Context(), c.Param("id"))
	if err != nil {
		controller.RespondError(c, err, "Failed to retrieve designations")
		return
	}
	c.JSON(http.StatusOK, designations)
}

// ApplyToJob records an application for the job in the path
// @Summary Apply to a job
// @Description Applying twice to the same job records two applications
// @Tags Candidate
// @Accept json
// @Produce json
// @Param id path string true "Job id"
// @Param candidate body model.CandidateData true "Application form"
// @Success 201 {object} ApplyResponse
// @Failure 400 {object} utilities.ErrorResponse "Invalid application form"
// @Failure 500 {object} utilities.ErrorResponse "Storage error"
// @Router /jobs/{id}/apply [post]
func (cc *CandidateController) ApplyToJob(c *gin.Context) {
	var candidate model.CandidateData
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, utilities.Fail("Name and a valid email must be provided"))
		return
	}

	application, err := cc.Store.ApplyToJob(c.Request.Context(), c.Param("id"), candidate)
	if err != nil {
		controller.RespondError(c, err, "Failed to submit application")
		return
	}

	c.JSON(http.StatusCreated, ApplyResponse{
		Success:       true,
		ApplicationID: application.ApplicationID,
		Message:       "Application submitted successfully",
		Application:   application,
	})
}

// GetApplications returns every application made in this session
// @Summary List applications
// @Tags Candidate
// @Produce json
// @Success 200 {array} model.Application
// @Router /applications [get]
func (cc *CandidateController) GetApplications(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Store.AppliedJobs())
}

// Refresh reloads jobs and sectors
// @Summary Reload the job board
// @Tags Candidate
// @Produce json
// @Success 200 {array} model.Job
// @Failure 500 {object} utilities.ErrorResponse "Data source error"
// @Router /jobs/refresh [post]
func (cc *CandidateController) Refresh(c *gin.Context) {
	if err := cc.Store.Refresh(c.Request.Context()); err != nil {
		controller.RespondError(c, err, "Failed to refresh jobs")
		return
	}
	c.JSON(http.StatusOK, cc.Store.Jobs())
}
