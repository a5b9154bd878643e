package datasource

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"aps-backend/internal/model"
)

// GetEmployees returns the employee fixtures
func (m *MockAPI) GetEmployees(ctx context.Context) ([]model.Employee, error) {
	if err := wait(ctx, m.delays.Base); err != nil {
		return nil, err
	}
	return m.gen.Employees(), nil
}

// GetHRUsers returns the HR account fixtures
func (m *MockAPI) GetHRUsers(ctx context.Context) ([]model.HRUser, error) {
	if err := wait(ctx, m.delays.Base); err != nil {
		return nil, err
	}
	return m.gen.HRUsers(), nil
}

// GetSystemSettings returns the settings fixture
func (m *MockAPI) GetSystemSettings(ctx context.Context) (model.SystemSettings, error) {
	if err := wait(ctx, m.delays.Base); err != nil {
		return model.SystemSettings{}, err
	}
	return model.SystemSettings{
		Features: model.FeatureFlags{
			PermanentApprovalMode: false,
			ConfidentialityMode:   false,
			AutoAssignment:        true,
			EmailNotifications:    true,
			VoiceCommands:         true,
		},
		APIConfig: model.APIConfig{
			ResumeParser: "enabled",
			Cloudinary:   "enabled",
			Sendgrid:     "enabled",
			Pusher:       "enabled",
		},
	}, nil
}

// GetAdminPermissions returns the permission matrix keyed by HR user id
func (m *MockAPI) GetAdminPermissions(ctx context.Context) (map[string]model.HRPermissions, error) {
	if err := wait(ctx, m.delays.Base); err != nil {
		return nil, err
	}
	return map[string]model.HRPermissions{
		"hr_1": defaultHRPermissions(),
	}, nil
}

// GetAnalytics returns the analytics fixture
func (m *MockAPI) GetAnalytics(ctx context.Context) (model.Analytics, error) {
	if err := wait(ctx, m.delays.Base); err != nil {
		return model.Analytics{}, err
	}
	return model.Analytics{
		TotalResumes:   1250,
		MonthlyGrowth:  15.5,
		ConversionRate: 23.8,
		TopSectors: []model.SectorCount{
			{Name: "Technology", Count: 450},
			{Name: "Healthcare", Count: 320},
			{Name: "Finance", Count: 280},
		},
		HiringFunnel: model.HiringFunnel{
			Applied:     1250,
			Screened:    875,
			Interviewed: 425,
			Hired:       180,
		},
	}, nil
}

// GetActivityLogs generates a new activity batch on every call
func (m *MockAPI) GetActivityLogs(ctx context.Context) ([]model.ActivityLog, error) {
	if err := wait(ctx, m.delays.Base); err != nil {
		return nil, err
	}
	return m.gen.ActivityLogs(), nil
}

// CreateEmployee echoes input back as an active employee
func (m *MockAPI) CreateEmployee(ctx context.Context, input model.EmployeeInput) (EmployeeResult, error) {
	if err := wait(ctx, m.delays.CreateEmployee); err != nil {
		return EmployeeResult{}, err
	}

	return EmployeeResult{
		Result: Result{Success: true},
		Employee: &model.Employee{
			ID:          fmt.Sprintf("emp_%s", uuid.NewString()),
			Name:        input.Name,
			Email:       input.Email,
			Role:        input.Role,
			Department:  input.Department,
			JoinedAt:    input.JoinedAt,
			Permissions: input.Permissions,
			CreatedAt:   m.now(),
			Status:      "active",
		},
	}, nil
}

// UpdateEmployee always succeeds
func (m *MockAPI) UpdateEmployee(ctx context.Context, employeeID string, input model.EmployeeInput) (Result, error) {
	return m.ack(ctx, "Employee updated successfully")
}

// DeleteEmployee always succeeds
func (m *MockAPI) DeleteEmployee(ctx context.Context, employeeID string) (Result, error) {
	return m.ack(ctx, "Employee deleted successfully")
}

// UpdatePermissions always succeeds
func (m *MockAPI) UpdatePermissions(ctx context.Context, userID string, permissions model.HRPermissions) (Result, error) {
	return m.ack(ctx, "Permissions updated successfully")
}

// UpdateSystemSettings always succeeds
func (m *MockAPI) UpdateSystemSettings(ctx context.Context, patch model.SystemSettingsPatch) (Result, error) {
	return m.ack(ctx, "System settings updated successfully")
}

// ApproveReport always succeeds
func (m *MockAPI) ApproveReport(ctx context.Context, reportID string) (Result, error) {
	return m.ack(ctx, "Report approved successfully")
}

// ToggleFeature always succeeds
func (m *MockAPI) ToggleFeature(ctx context.Context, feature string, enabled bool) (Result, error) {
	state := "disabled"
	if enabled {
		state = "enabled"
	}
	return m.ack(ctx, fmt.Sprintf("%s %s successfully", feature, state))
}

func (m *MockAPI) ack(ctx context.Context, message string) (Result, error) {
	if err := wait(ctx, m.delays.Base); err != nil {
		return Result{}, err
	}
	return Result{Success: true, Message: message}, nil
}
