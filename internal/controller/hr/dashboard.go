package hr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aps-backend/internal/activity"
	"aps-backend/internal/controller"
	"aps-backend/internal/model"
	"aps-backend/internal/utilities"
)

type layoutRequest struct {
	Widgets []model.DashboardWidget `json:"widgets" binding:"required,dive"`
}

type reportRequest struct {
	Type      string          `json:"type" binding:"required,oneof=daily weekly monthly custom"`
	DateRange model.DateRange `json:"dateRange"`
}

// NotificationsResponse is the notification feed with its unread badge count
type NotificationsResponse struct {
	Notifications []model.Notification `json:"notifications"`
	UnreadCount   int                  `json:"unreadCount"`
}

// GetDashboard returns the dashboard widget layout
// @Summary Dashboard layout
// @Tags HR
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.DashboardWidget
// @Router /hr/dashboard [get]
func (hc *HRController) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, hc.Store.DashboardWidgets())
}

// SaveDashboard replaces and persists the dashboard widget layout
// @Summary Save dashboard layout
// @Tags HR
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param layout body layoutRequest true "Widgets in display order"
// @Success 200 {array} model.DashboardWidget
// @Failure 400 {object} utilities.ErrorResponse "Unknown widget type"
// @Failure 500 {object} utilities.ErrorResponse "Storage error"
// @Router /hr/dashboard [put]
func (hc *HRController) SaveDashboard(c *gin.Context) {
	var req layoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.Fail("Every widget needs an id and a known type"))
		return
	}

	if err := hc.Store.SaveDashboardLayout(c.Request.Context(), req.Widgets); err != nil {
		controller.RespondError(c, err, "Failed to save dashboard layout")
		return
	}
	c.JSON(http.StatusOK, hc.Store.DashboardWidgets())
}

// GetReports returns the reports generated in this session
// @Summary List reports
// @Tags HR
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Report
// @Router /hr/reports [get]
func (hc *HRController) GetReports(c *gin.Context) {
	c.JSON(http.StatusOK, hc.Store.Reports())
}

// GenerateReport builds a new report
// @Summary Generate a report
// @Tags HR
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param report body reportRequest true "daily, weekly, monthly or custom"
// @Success 201 {object} model.Report
// @Failure 400 {object} utilities.ErrorResponse "Unknown report type"
// @Router /hr/reports [post]
func (hc *HRController) GenerateReport(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.Fail("Report type must be daily, weekly, monthly or custom"))
		return
	}

	report, err := hc.Store.GenerateReport(c.Request.Context(), req.Type, req.DateRange)
	if err != nil {
		controller.RespondError(c, err, "Failed to generate report")
		return
	}

	hc.record(c, activity.TypeView, "Generated report", report.Type)
	c.JSON(http.StatusCreated, report)
}

// GetNotifications returns the notification feed
// @Summary List notifications
// @Tags HR
// @Produce json
// @Security BearerAuth
// @Param filter query string false "all, unread or a notification type"
// @Success 200 {object} NotificationsResponse
// @Router /hr/notifications [get]
func (hc *HRController) GetNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, NotificationsResponse{
		Notifications: hc.Store.Notifications(c.Query("filter")),
		UnreadCount:   hc.Store.UnreadCount(),
	})
}

// MarkNotificationRead flags a notification as read
// @Summary Mark notification as read
// @Tags HR
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification id"
// @Success 200 {object} utilities.MessageResponse
// @Failure 404 {object} utilities.ErrorResponse "Notification not found"
// @Router /hr/notifications/{id}/read [patch]
func (hc *HRController) MarkNotificationRead(c *gin.Context) {
	if err := hc.Store.MarkNotificationAsRead(c.Param("id")); err != nil {
		c.JSON(controller.ErrorStatus(err), utilities.Fail("Notification not found"))
		return
	}
	c.JSON(http.StatusOK, utilities.Ok("Notification marked as read"))
}

// DeleteNotification removes a notification
// @Summary Delete notification
// @Tags HR
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification id"
// @Success 200 {object} utilities.MessageResponse
// @Failure 404 {object} utilities.ErrorResponse "Notification not found"
// @Router /hr/notifications/{id} [delete]
func (hc *HRController) DeleteNotification(c *gin.Context) {
	if err := hc.Store.DeleteNotification(c.Param("id")); err != nil {
		c.JSON(controller.ErrorStatus(err), utilities.Fail("Notification not found"))
		return
	}
	c.JSON(http.StatusOK, utilities.Ok("Notification deleted"))
}
