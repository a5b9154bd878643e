// Package admin provides HTTP handlers for the admin control panel.
package admin

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"aps-backend/internal/activity"
	"aps-backend/internal/controller"
	"aps-backend/internal/model"
	"aps-backend/internal/state"
	"aps-backend/internal/utilities"
)

// AdminController handles admin endpoints
type AdminController struct {
	Store    *state.AdminStore
	Activity *activity.Recorder
}

// NewAdminController creates a new instance of AdminController
func NewAdminController(store *state.AdminStore, recorder *activity.Recorder) *AdminController {
	return &AdminController{
		Store:    store,
		Activity: recorder,
	}
}

type featureToggle struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// GetEmployees returns every employee
// @Summary List employees
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Employee
// @Failure 401 {object} utilities.ErrorResponse "Not logged in"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as admin"
// @Router /admin/employees [get]
func (ac *AdminController) GetEmployees(c *gin.Context) {
	c.JSON(http.StatusOK, ac.Store.Employees())
}

// GetEmployee returns one employee
// @Summary Get employee by id
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee id"
// @Success 200 {object} model.Employee
// @Failure 404 {object} utilities.ErrorResponse "Employee not found"
// @Router /admin/employees/{id} [get]
func (ac *AdminController) GetEmployee(c *gin.Context) {
	emp, ok := ac.Store.Employee(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, utilities.Fail("Employee not found"))
		return
	}
	c.JSON(http.StatusOK, emp)
}

// CreateEmployee onboards a new employee
// @Summary Create employee
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param employee body model.EmployeeInput true "Name and email are required"
// @Success 201 {object} model.Employee
// @Failure 400 {object} utilities.ErrorResponse "Invalid employee"
// @Router /admin/employees [post]
func (ac *AdminController) CreateEmployee(c *gin.Context) {
	var input model.EmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utilities.Fail(err.Error()))
		return
	}
	if input.Name == "" || input.Email == "" {
		c.JSON(http.StatusBadRequest, utilities.Fail("Name and email must be provided"))
		return
	}

	emp, err := ac.Store.CreateEmployee(c.Request.Context(), input)
	if err != nil {
		controller.RespondError(c, err, "Failed to create employee")
		return
	}

	ac.record(c, activity.TypeEdit, "Created employee", emp.Name)
	c.JSON(http.StatusCreated, emp)
}

// UpdateEmployee merges the non-empty fields of the body into the employee
// @Summary Update employee
// @Description Empty fields are left unchanged. An unknown id is accepted and changes nothing.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee id"
// @Param employee body model.EmployeeInput true "Fields to change"
// @Success 200 {object} utilities.MessageResponse
// @Failure 400 {object} utilities.ErrorResponse "Invalid employee"
// @Router /admin/employees/{id} [put]
func (ac *AdminController) UpdateEmployee(c *gin.Context) {
	var input model.EmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utilities.Fail(err.Error()))
		return
	}

	id := c.Param("id")
	if err := ac.Store.UpdateEmployee(c.Request.Context(), id, input); err != nil {
		controller.RespondError(c, err, "Failed to update employee")
		return
	}

	ac.record(c, activity.TypeEdit, "Updated employee", id)
	c.JSON(http.StatusOK, utilities.Ok("Employee updated successfully"))
}

// DeleteEmployee removes an employee
// @Summary Delete employee
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee id"
// @Success 200 {object} utilities.MessageResponse
// @Router /admin/employees/{id} [delete]
func (ac *AdminController) DeleteEmployee(c *gin.Context) {
	id := c.Param("id")
	if err := ac.Store.DeleteEmployee(c.Request.Context(), id); err != nil {
		controller.RespondError(c, err, "Failed to delete employee")
		return
	}

	ac.record(c, activity.TypeDelete, "Deleted employee", id)
	c.JSON(http.StatusOK, utilities.Ok("Employee deleted successfully"))
}

// GetHRUsers returns the HR accounts
// @Summary List HR users
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.HRUser
// @Router /admin/hr-users [get]
func (ac *AdminController) GetHRUsers(c *gin.Context) {
	c.JSON(http.StatusOK, ac.Store.HRUsers())
}

// GetSettings returns the system settings
// @Summary System settings
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.SystemSettings
// @Router /admin/settings [get]
func (ac *AdminController) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, ac.Store.SystemSettings())
}

// UpdateSettings replaces the sections present in the body
// @Summary Update system settings
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param settings body model.SystemSettingsPatch true "Sections to replace"
// @Success 200 {object} model.SystemSettings
// @Failure 400 {object} utilities.ErrorResponse "Malformed body"
// @Router /admin/settings [put]
func (ac *AdminController) UpdateSettings(c *gin.Context) {
	var patch model.SystemSettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, utilities.Fail(err.Error()))
		return
	}

	settings, err := ac.Store.UpdateSystemSettings(c.Request.Context(), patch)
	if err != nil {
		controller.RespondError(c, err, "Failed to update settings")
		return
	}

	ac.record(c, activity.TypeEdit, "Updated system settings", "settings")
	c.JSON(http.StatusOK, settings)
}

// ToggleFeature turns one feature flag on or off
// @Summary Toggle a feature
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Feature name, e.g. voiceCommands"
// @Param toggle body featureToggle true "Desired state"
// @Success 200 {object} utilities.MessageResponse
// @Failure 400 {object} utilities.ErrorResponse "Unknown feature"
// @Router /admin/features/{name} [put]
func (ac *AdminController) ToggleFeature(c *gin.Context) {
	var req featureToggle
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.Fail("Enabled must be provided"))
		return
	}

	name := c.Param("name")
	message, err := ac.Store.ToggleFeature(c.Request.Context(), name, *req.Enabled)
	if err != nil {
		controller.RespondError(c, err, "Failed to toggle feature")
		return
	}

	ac.record(c, activity.TypeEdit, message, name)
	c.JSON(http.StatusOK, utilities.Ok(message))
}

// GetPermissions returns the permission matrix of every HR user
// @Summary HR permission matrix
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]model.HRPermissions
// @Router /admin/permissions [get]
func (ac *AdminController) GetPermissions(c *gin.Context) {
	c.JSON(http.StatusOK, ac.Store.Permissions())
}

// UpdatePermissions replaces the permissions of one HR user
// @Summary Update HR permissions
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "HR user id"
// @Param permissions body model.HRPermissions true "Full permission set"
// @Success 200 {object} utilities.MessageResponse
// @Failure 400 {object} utilities.ErrorResponse "Malformed body"
// @Router /admin/permissions/{userId} [put]
func (ac *AdminController) UpdatePermissions(c *gin.Context) {
	var permissions model.HRPermissions
	if err := c.ShouldBindJSON(&permissions); err != nil {
		c.JSON(http.StatusBadRequest, utilities.Fail(err.Error()))
		return
	}

	userID := c.Param("userId")
	if err := ac.Store.UpdatePermissions(c.Request.Context(), userID, permissions); err != nil {
		controller.RespondError(c, err, "Failed to update permissions")
		return
	}

	ac.record(c, activity.TypeEdit, "Updated permissions", userID)
	c.JSON(http.StatusOK, utilities.Ok("Permissions updated successfully"))
}

// GetAnalytics returns the insight figures
// @Summary Analytics
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Analytics
// @Router /admin/analytics [get]
func (ac *AdminController) GetAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, ac.Store.Analytics())
}

// GetActivityLogs returns the audit trail loaded from the data source
// @Summary Activity logs
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ActivityLog
// @Router /admin/activity-logs [get]
func (ac *AdminController) GetActivityLogs(c *gin.Context) {
	c.JSON(http.StatusOK, ac.Store.ActivityLogs())
}

// ApproveReport approves a generated report
// @Summary Approve report
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report id"
// @Success 200 {object} utilities.MessageResponse
// @Router /admin/reports/{id}/approve [post]
func (ac *AdminController) ApproveReport(c *gin.Context) {
	id := c.Param("id")
	message, err := ac.Store.ApproveReport(c.Request.Context(), id)
	if err != nil {
		controller.RespondError(c, err, "Failed to approve report")
		return
	}

	ac.record(c, activity.TypeEdit, "Approved report", id)
	c.JSON(http.StatusOK, utilities.Ok(message))
}

// Refresh reloads every admin dataset
// @Summary Reload the admin panel
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utilities.MessageResponse
// @Failure 500 {object} utilities.ErrorResponse "Data source error"
// @Router /admin/refresh [post]
func (ac *AdminController) Refresh(c *gin.Context) {
	if err := ac.Store.Refresh(c.Request.Context()); err != nil {
		controller.RespondError(c, err, "Failed to refresh admin data")
		return
	}
	c.JSON(http.StatusOK, utilities.Ok("Admin data refreshed"))
}

func (ac *AdminController) record(c *gin.Context, kind, action, target string) {
	if ac.Activity == nil {
		return
	}
	name := "Admin"
	if user, err := utilities.ExtractUser(c); err == nil {
		name = user.Name
	}
	ac.Activity.Record(context.WithoutCancel(c.Request.Context()), activity.Entry{
		Type:   kind,
		User:   name,
		Action: action,
		Target: target,
		IP:     c.ClientIP(),
	})
}
