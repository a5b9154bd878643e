// Package hr provides HTTP handlers for the HR console.
package hr

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"aps-backend/internal/activity"
	"aps-backend/internal/blob"
	"aps-backend/internal/controller"
	"aps-backend/internal/model"
	"aps-backend/internal/state"
	"aps-backend/internal/utilities"
)

// HRController handles HR console endpoints
type HRController struct {
	Store    *state.HRStore
	Blob     blob.Sink
	Prefix   string
	Activity *activity.Recorder
}

// NewHRController creates a new instance of HRController. A nil sink keeps
// uploaded files out of object storage.
func NewHRController(store *state.HRStore, sink blob.Sink, prefix string, recorder *activity.Recorder) *HRController {
	return &HRController{
		Store:    store,
		Blob:     sink,
		Prefix:   prefix,
		Activity: recorder,
	}
}

type statusUpdate struct {
	Status   model.ResumeStatus `json:"status" binding:"required,resume_status"`
	Feedback string             `json:"feedback"`
}

type parseRequest struct {
	FileName   string `json:"fileName" binding:"required"`
	FileSize   int64  `json:"fileSize"`
	StorageKey string `json:"storageKey"`
}

// GetResumes returns the cached resumes, newest uploads first
// @Summary List resumes
// @Tags HR
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Resume
// @Failure 401 {object} utilities.ErrorResponse "Not logged in"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as HR"
// @Router /hr/resumes [get]
func (hc *HRController) GetResumes(c *gin.Context) {
	c.JSON(http.StatusOK, hc.Store.Resumes())
}

// SearchResumes filters a fresh batch of resumes
// @Summary Search resumes
// @Description Name matches a case-insensitive substring, sector and status must match exactly
// @Tags HR
// @Produce json
// @Security BearerAuth
// @Param name query string false "Candidate name substring"
// @Param sector query string false "Sector name"
// @Param status query string false "Resume status"
// @Success 200 {array} model.Resume
// @Failure 400 {object} utilities.ErrorResponse "Unknown status"
// @Router /hr/resumes/search [get]
func (hc *HRController) SearchResumes(c *gin.Context) {
	var filters model.ResumeFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, utilities.Fail(err.Error()))
		return
	}
	if filters.Status != "" && !filters.Status.Valid() {
		c.JSON(http.StatusBadRequest, utilities.Fail("Unknown resume status: "+string(filters.Status)))
		return
	}

	resumes, err := hc.Store.SearchResumes(c.Request.Context(), filters)
	if err != nil {
		controller.RespondError(c, err, "Failed to search resumes")
		return
	}
	c.JSON(http.StatusOK, resumes)
}

// ParseResume extracts structured data from an uploaded resume
// @Summary Parse a resume
// @Tags HR
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param file body parseRequest true "File to parse"
// @Success 200 {object} datasource.ParseResult
// @Failure 400 {object} utilities.ErrorResponse "File name missing"
// @Router /hr/resumes/parse [post]
func (hc *HRController) ParseResume(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.Fail("File name must be provided"))
		return
	}

	result, err := hc.Store.ParseResume(c.Request.Context(), model.UploadedFile{
		Name:       req.FileName,
		Size:       req.FileSize,
		StorageKey: req.StorageKey,
	})
	if err != nil {
		controller.RespondError(c, err, "Failed to parse resume")
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateResumeStatus moves a resume to another status
// @Summary Update resume status
// @Description An unknown resume id is accepted and changes nothing
// @Tags HR
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resume id"
// @Param update body statusUpdate true "New status and optional feedback"
// @Success 200 {object} utilities.MessageResponse
// @Failure 400 {object} utilities.ErrorResponse "Unknown status"
// @Router /hr/resumes/{id}/status [patch]
func (hc *HRController) UpdateResumeStatus(c *gin.Context) {
	var req statusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.Fail("A known status must be provided"))
		return
	}

	id := c.Param("id")
	if err := hc.Store.UpdateResumeStatus(c.Request.Context(), id, req.Status, req.Feedback); err != nil {
		controller.RespondError(c, err, "Failed to update resume status")
		return
	}

	hc.record(c, activity.TypeEdit, "Changed status to "+string(req.Status), id)
	c.JSON(http.StatusOK, utilities.Ok("Resume status updated"))
}

// GetPermissions returns what the HR user may do
// @Summary HR permissions
// @Tags HR
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.HRPermissions
// @Router /hr/permissions [get]
func (hc *HRController) GetPermissions(c *gin.Context) {
	c.JSON(http.StatusOK, hc.Store.Permissions())
}

// GetSectors returns the sectors HR can file resumes under
// @Summary HR sectors
// @Tags HR
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Sector
// @Router /hr/sectors [get]
func (hc *HRController) GetSectors(c *gin.Context) {
	c.JSON(http.StatusOK, hc.Store.Sectors())
}

// Refresh reloads resumes, sectors, permissions and the dashboard layout
// @Summary Reload the HR console
// @Tags HR
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utilities.MessageResponse
// @Failure 500 {object} utilities.ErrorResponse "Data source error"
// @Router /hr/refresh [post]
func (hc *HRController) Refresh(c *gin.Context) {
	if err := hc.Store.Refresh(c.Request.Context()); err != nil {
		controller.RespondError(c, err, "Failed to refresh HR data")
		return
	}
	c.JSON(http.StatusOK, utilities.Ok("HR data refreshed"))
}

func (hc *HRController) record(c *gin.Context, kind, action, target string) {
	if hc.Activity == nil {
		return
	}
	name := "HR"
	if user, err := utilities.ExtractUser(c); err == nil {
		name = user.Name
	}
	hc.Activity.Record(context.WithoutCancel(c.Request.Context()), activity.Entry{
		Type:   kind,
		User:   name,
		Action: action,
		Target: target,
		IP:     c.ClientIP(),
	})
}
