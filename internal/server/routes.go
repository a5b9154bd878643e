// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"aps-backend/internal/auth"
	"aps-backend/internal/controller/admin"
	"aps-backend/internal/controller/candidate"
	"aps-backend/internal/controller/command"
	"aps-backend/internal/controller/common"
	"aps-backend/internal/controller/hr"
	"aps-backend/internal/middleware"
	"aps-backend/internal/model"
	"aps-backend/internal/storage"
	"aps-backend/internal/validation"

	// Init swagger doc
	_ "aps-backend/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *Server) RegisterRoutes() http.Handler {
	if err := validation.RegisterGin(); err != nil {
		log.Printf("Failed to register validators: %v", err)
	}

	r := gin.New()
	r.Use(
		gin.Logger(),
		middleware.RequestID(),
		middleware.Recovery(s.Tracker),
		middleware.SafeHeader(),
		cors.New(cors.Config{
			AllowOrigins:     s.Config.Server.AllowOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
			AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDKey},
			ExposeHeaders:    []string{middleware.RequestIDKey, "Retry-After"},
			AllowCredentials: true,
		}),
	)

	authHandler := auth.NewHandler(s.App.Auth, s.Activity, s.Tracker, s.Attempts)
	candidateController := candidate.NewCandidateController(s.App.Candidate)
	hrController := hr.NewHRController(s.App.HR, s.Blob, s.Config.Blob.Prefix, s.Activity)
	adminController := admin.NewAdminController(s.App.Admin, s.Activity)
	commonController := common.NewCommonController(s.Activity)
	commandController := command.NewCommandController()

	r.GET("/health", s.healthHandler)
	v1 := r.Group("/api/v1", middleware.RateLimiterMiddleware(uint(s.Config.Server.RateLimit)))
	{
		authRoute := v1.Group("/auth")
		{
			authRoute.POST("login/:role", authHandler.LoginHandler)

			session := authRoute.Group("", middleware.RequireAuth(s.App.Auth))
			session.POST("logout", authHandler.LogoutHandler)
			session.GET("me", authHandler.MeHandler)
			session.PATCH("me", authHandler.UpdateMeHandler)
		}

		// Candidate job board, no login
		v1.GET("/jobs", candidateController.GetJobs)
		v1.GET("/jobs/search", candidateController.SearchJobs)
		v1.POST("/jobs/refresh", candidateController.Refresh)
		v1.GET("/jobs/:id", candidateController.GetJob)
		v1.POST("/jobs/:id/apply", candidateController.ApplyToJob)
		v1.GET("/sectors", candidateController.GetSectors)
		v1.GET("/sectors/:id/designations", candidateController.GetDesignations)
		v1.GET("/applications", candidateController.GetApplications)

		v1.GET("/help", commonController.SearchFAQ)
		v1.GET("/activity-log", commonController.GetActivityLog)

		commands := v1.Group("/commands")
		{
			commands.POST("voice", commandController.Voice)
			commands.POST("shortcut", commandController.Shortcut)
			commands.GET("shortcuts", commandController.ListShortcuts)
		}

		hrRoute := v1.Group("/hr", middleware.RequireAuth(s.App.Auth), middleware.CheckRole(model.RoleHR))
		{
			hrRoute.GET("resumes", hrController.GetResumes)
			hrRoute.GET("resumes/search", hrController.SearchResumes)
			hrRoute.POST("resumes", middleware.SizeLimit(s.Config.Server.MaxUploadSize), hrController.UploadResume)
			hrRoute.POST("resumes/parse", hrController.ParseResume)
			hrRoute.PATCH("resumes/:id/status", hrController.UpdateResumeStatus)
			hrRoute.GET("resumes/:id/file", hrController.DownloadResume)
			hrRoute.GET("dashboard", hrController.GetDashboard)
			hrRoute.PUT("dashboard", hrController.SaveDashboard)
			hrRoute.GET("reports", hrController.GetReports)
			hrRoute.POST("reports", hrController.GenerateReport)
			hrRoute.GET("permissions", hrController.GetPermissions)
			hrRoute.GET("sectors", hrController.GetSectors)
			hrRoute.GET("notifications", hrController.GetNotifications)
			hrRoute.PATCH("notifications/:id/read", hrController.MarkNotificationRead)
			hrRoute.DELETE("notifications/:id", hrController.DeleteNotification)
			hrRoute.POST("refresh", hrController.Refresh)
		}

		adminRoute := v1.Group("/admin", middleware.RequireAuth(s.App.Auth), middleware.CheckRole(model.RoleAdmin))
		{
			adminRoute.GET("employees", adminController.GetEmployees)
			adminRoute.POST("employees", adminController.CreateEmployee)
			adminRoute.GET("employees/:id", adminController.GetEmployee)
			adminRoute.PUT("employees/:id", adminController.UpdateEmployee)
			adminRoute.DELETE("employees/:id", adminController.DeleteEmployee)
			adminRoute.GET("hr-users", adminController.GetHRUsers)
			adminRoute.GET("settings", adminController.GetSettings)
			adminRoute.PUT("settings", adminController.UpdateSettings)
			adminRoute.PUT("features/:name", adminController.ToggleFeature)
			adminRoute.GET("permissions", adminController.GetPermissions)
			adminRoute.PUT("permissions/:userId", adminController.UpdatePermissions)
			adminRoute.GET("analytics", adminController.GetAnalytics)
			adminRoute.GET("activity-logs", adminController.GetActivityLogs)
			adminRoute.POST("reports/:id/approve", adminController.ApproveReport)
			adminRoute.POST("refresh", adminController.Refresh)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	s.registerPages(r)

	return r
}

func (s *Server) healthHandler(c *gin.Context) {
	stats := storage.Health(c.Request.Context(), s.Storage)
	stats["loading"] = "false"
	if s.App.Candidate.Loading() || s.App.HR.Loading() || s.App.Admin.Loading() {
		stats["loading"] = "true"
	}
	status := http.StatusOK
	if stats["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, stats)
}
