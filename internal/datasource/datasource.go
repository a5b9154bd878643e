// Package datasource defines the backend contract the state stores talk to,
// and the latency-simulating mock that implements it.
package datasource

import (
	"context"

	"aps-backend/internal/model"
)

// Result is the flat success/error envelope every mutating call answers with
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// LoginResult is the answer of AuthAPI.Login
type LoginResult struct {
	Result
	User  *model.User `json:"user,omitempty"`
	Token string      `json:"token,omitempty"`
}

// ApplyResult is the answer of CandidateAPI.ApplyToJob
type ApplyResult struct {
	Result
	ApplicationID string `json:"applicationId,omitempty"`
}

// UploadResult is the answer of HRAPI.UploadResume
type UploadResult struct {
	Result
	Resume *model.Resume `json:"resume,omitempty"`
}

// ParseResult is the answer of HRAPI.ParseResume
type ParseResult struct {
	Result
	Data       model.ParsedResume `json:"data"`
	Confidence float64            `json:"confidence"`
}

// ReportResult is the answer of HRAPI.GenerateReport
type ReportResult struct {
	Result
	Report *model.Report `json:"report,omitempty"`
}

// EmployeeResult is the answer of AdminAPI.CreateEmployee
type EmployeeResult struct {
	Result
	Employee *model.Employee `json:"employee,omitempty"`
}

// AuthAPI signs console users in
type AuthAPI interface {
	Login(ctx context.Context, credentials model.Credentials, role string) (LoginResult, error)
}

// CandidateAPI serves the public job board
type CandidateAPI interface {
	GetJobs(ctx context.Context) ([]model.Job, error)
	GetSectors(ctx context.Context) ([]model.Sector, error)
	GetDesignationsBySector(ctx context.Context, sectorID string) ([]model.Designation, error)
	SearchJobs(ctx context.Context, filters model.JobFilters) ([]model.Job, error)
	ApplyToJob(ctx context.Context, jobID string, candidate model.CandidateData) (ApplyResult, error)
}

// HRAPI serves the HR resume console
type HRAPI interface {
	GetResumes(ctx context.Context) ([]model.Resume, error)
	GetHRSectors(ctx context.Context) ([]model.Sector, error)
	GetPermissions(ctx context.Context) (model.HRPermissions, error)
	UploadResume(ctx context.Context, file model.UploadedFile, metadata model.ResumeMetadata) (UploadResult, error)
	ParseResume(ctx context.Context, file model.UploadedFile) (ParseResult, error)
	UpdateResumeStatus(ctx context.Context, resumeID string, status model.ResumeStatus, feedback string) (Result, error)
	SearchResumes(ctx context.Context, filters model.ResumeFilters) ([]model.Resume, error)
	GenerateReport(ctx context.Context, reportType string, dateRange model.DateRange) (ReportResult, error)
}

// AdminAPI serves the admin control panel
type AdminAPI interface {
	GetEmployees(ctx context.Context) ([]model.Employee, error)
	GetHRUsers(ctx context.Context) ([]model.HRUser, error)
	GetSystemSettings(ctx context.Context) (model.SystemSettings, error)
	GetAdminPermissions(ctx context.Context) (map[string]model.HRPermissions, error)
	GetAnalytics(ctx context.Context) (model.Analytics, error)
	GetActivityLogs(ctx context.Context) ([]model.ActivityLog, error)
	CreateEmployee(ctx context.Context, input model.EmployeeInput) (EmployeeResult, error)
	UpdateEmployee(ctx context.Context, employeeID string, input model.EmployeeInput) (Result, error)
	DeleteEmployee(ctx context.Context, employeeID string) (Result, error)
	UpdatePermissions(ctx context.Context, userID string, permissions model.HRPermissions) (Result, error)
	UpdateSystemSettings(ctx context.Context, patch model.SystemSettingsPatch) (Result, error)
	ApproveReport(ctx context.Context, reportID string) (Result, error)
	ToggleFeature(ctx context.Context, feature string, enabled bool) (Result, error)
}

// DataSource is everything the application needs from a backend
type DataSource interface {
	AuthAPI
	CandidateAPI
	HRAPI
	AdminAPI
}
