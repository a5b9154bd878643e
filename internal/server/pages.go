package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"aps-backend/internal/middleware"
	"aps-backend/internal/model"
	"aps-backend/internal/utilities"
)

// Layouts a page can render in
const (
	LayoutCandidate = "candidate"
	LayoutHR        = "hr"
	LayoutAdmin     = "admin"
	LayoutBare      = "bare"
)

// Page tells the client which screen to render for a path
type Page struct {
	Layout string            `json:"layout"`
	Page   string            `json:"page"`
	Params map[string]string `json:"params,omitempty"`
}

func page(layout, name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := Page{Layout: layout, Page: name}
		for _, param := range c.Params {
			if p.Params == nil {
				p.Params = map[string]string{}
			}
			p.Params[param.Key] = param.Value
		}
		c.JSON(http.StatusOK, p)
	}
}

func (s *Server) registerPages(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/candidate")
	})

	candidate := r.Group("/candidate")
	{
		candidate.GET("", page(LayoutCandidate, "candidate_home"))
		candidate.GET("/apply", page(LayoutCandidate, "candidate_apply"))
		candidate.GET("/apply/:jobId", page(LayoutCandidate, "candidate_apply"))
	}

	r.GET("/hr/login", page(LayoutBare, "hr_login"))
	hr := r.Group("/hr", middleware.RequireRolePage(s.App.Auth, model.RoleHR))
	{
		hr.GET("", page(LayoutHR, "hr_dashboard"))
		hr.GET("/upload", page(LayoutHR, "hr_resume_upload"))
		hr.GET("/search", page(LayoutHR, "hr_resume_search"))
		hr.GET("/reports", page(LayoutHR, "hr_reports"))
		hr.GET("/settings", page(LayoutHR, "hr_settings"))
	}

	r.GET("/admin/login", page(LayoutBare, "admin_login"))
	admin := r.Group("/admin", middleware.RequireRolePage(s.App.Auth, model.RoleAdmin))
	{
		admin.GET("", page(LayoutAdmin, "admin_dashboard"))
		admin.GET("/control-panel", page(LayoutAdmin, "admin_control_panel"))
		admin.GET("/integrations", page(LayoutAdmin, "admin_integrations"))
		admin.GET("/onboarding", page(LayoutAdmin, "admin_onboarding"))
		admin.GET("/recruitment", page(LayoutAdmin, "admin_recruitment"))
		admin.GET("/insights", page(LayoutAdmin, "admin_insights"))
		admin.GET("/settings", page(LayoutAdmin, "admin_settings"))
	}

	r.GET("/help", page(LayoutBare, "help_center"))
	r.GET("/activity-log", page(LayoutBare, "activity_log"))
	r.GET(middleware.UnauthorizedPath, func(c *gin.Context) {
		c.JSON(http.StatusForbidden, Page{Layout: LayoutBare, Page: "unauthorized"})
	})

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, utilities.Fail("Endpoint not found"))
			return
		}
		c.JSON(http.StatusNotFound, Page{Layout: LayoutBare, Page: "not_found"})
	})
}
