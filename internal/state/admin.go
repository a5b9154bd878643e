package state

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"aps-backend/internal/datasource"
	"aps-backend/internal/model"
	"aps-backend/internal/utilities"
)

// AdminStore holds the admin control panel state
type AdminStore struct {
	api     datasource.AdminAPI
	loading loadingFlag

	mu           sync.RWMutex
	employees    []model.Employee
	hrUsers      []model.HRUser
	settings     model.SystemSettings
	permissions  map[string]model.HRPermissions
	analytics    model.Analytics
	activityLogs []model.ActivityLog
}

// NewAdminStore creates an empty store
func NewAdminStore(api datasource.AdminAPI) *AdminStore {
	return &AdminStore{
		api:          api,
		employees:    []model.Employee{},
		hrUsers:      []model.HRUser{},
		permissions:  map[string]model.HRPermissions{},
		activityLogs: []model.ActivityLog{},
	}
}

// Load issues the six admin reads in parallel
func (a *AdminStore) Load(ctx context.Context) error {
	defer a.loading.start()()

	var (
		employees   []model.Employee
		hrUsers     []model.HRUser
		settings    model.SystemSettings
		permissions map[string]model.HRPermissions
		analytics   model.Analytics
		logs        []model.ActivityLog
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		employees, err = a.api.GetEmployees(gctx)
		return err
	})
	g.Go(func() (err error) {
		hrUsers, err = a.api.GetHRUsers(gctx)
		return err
	})
	g.Go(func() (err error) {
		settings, err = a.api.GetSystemSettings(gctx)
		return err
	})
	g.Go(func() (err error) {
		permissions, err = a.api.GetAdminPermissions(gctx)
		return err
	})
	g.Go(func() (err error) {
		analytics, err = a.api.GetAnalytics(gctx)
		return err
	})
	g.Go(func() (err error) {
		logs, err = a.api.GetActivityLogs(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load admin data: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.employees = employees
	a.hrUsers = hrUsers
	a.settings = settings
	a.permissions = permissions
	a.analytics = analytics
	a.activityLogs = logs
	return nil
}

// Refresh is Load
func (a *AdminStore) Refresh(ctx context.Context) error {
	return a.Load(ctx)
}

// CreateEmployee creates an employee and prepends it
func (a *AdminStore) CreateEmployee(ctx context.Context, input model.EmployeeInput) (model.Employee, error) {
	defer a.loading.start()()

	res, err := a.api.CreateEmployee(ctx, input)
	if err != nil {
		return model.Employee{}, fmt.Errorf("create employee: %w", err)
	}
	if !res.Success || res.Employee == nil {
		return model.Employee{}, &ActionError{Op: "create employee", Message: res.Error}
	}

	emp := *res.Employee

	a.mu.Lock()
	defer a.mu.Unlock()
	a.employees = append([]model.Employee{emp}, a.employees...)
	return emp, nil
}

// UpdateEmployee merges the non-empty fields of input into the cached employee.
// An unknown id is accepted and changes nothing.
func (a *AdminStore) UpdateEmployee(ctx context.Context, employeeID string, input model.EmployeeInput) error {
	res, err := a.api.UpdateEmployee(ctx, employeeID, input)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if !res.Success {
		return &ActionError{Op: "update employee", Message: res.Error}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.employees {
		if a.employees[i].ID == employeeID {
			utilities.MergeNonEmpty(&a.employees[i], &input)
		}
	}
	return nil
}

// DeleteEmployee drops the employee from the cached list
func (a *AdminStore) DeleteEmployee(ctx context.Context, employeeID string) error {
	res, err := a.api.DeleteEmployee(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if !res.Success {
		return &ActionError{Op: "delete employee", Message: res.Error}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	kept := a.employees[:0]
	for _, e := range a.employees {
		if e.ID != employeeID {
			kept = append(kept, e)
		}
	}
	a.employees = kept
	return nil
}

// UpdatePermissions replaces the permission matrix of one user
func (a *AdminStore) UpdatePermissions(ctx context.Context, userID string, permissions model.HRPermissions) error {
	res, err := a.api.UpdatePermissions(ctx, userID, permissions)
	if err != nil {
		return fmt.Errorf("update permissions: %w", err)
	}
	if !res.Success {
		return &ActionError{Op: "update permissions", Message: res.Error}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.permissions == nil {
		a.permissions = map[string]model.HRPermissions{}
	}
	a.permissions[userID] = permissions
	return nil
}

// UpdateSystemSettings applies patch to the cached settings
func (a *AdminStore) UpdateSystemSettings(ctx context.Context, patch model.SystemSettingsPatch) (model.SystemSettings, error) {
	res, err := a.api.UpdateSystemSettings(ctx, patch)
	if err != nil {
		return model.SystemSettings{}, fmt.Errorf("update system settings: %w", err)
	}
	if !res.Success {
		return model.SystemSettings{}, &ActionError{Op: "update settings", Message: res.Error}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.settings = patch.Apply(a.settings)
	return a.settings, nil
}

// ApproveReport passes through to the data source
func (a *AdminStore) ApproveReport(ctx context.Context, reportID string) (string, error) {
	res, err := a.api.ApproveReport(ctx, reportID)
	if err != nil {
		return "", fmt.Errorf("approve report: %w", err)
	}
	if !res.Success {
		return "", &ActionError{Op: "approve report", Message: res.Error}
	}
	return res.Message, nil
}

// ToggleFeature flips one feature flag. Unknown feature names are rejected
// before the data source is called.
func (a *AdminStore) ToggleFeature(ctx context.Context, feature string, enabled bool) (string, error) {
	var probe model.FeatureFlags
	if err := probe.Set(feature, enabled); err != nil {
		return "", &ActionError{Op: "toggle feature", Message: err.Error()}
	}

	res, err := a.api.ToggleFeature(ctx, feature, enabled)
	if err != nil {
		return "", fmt.Errorf("toggle feature: %w", err)
	}
	if !res.Success {
		return "", &ActionError{Op: "toggle feature", Message: res.Error}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	_ = a.settings.Features.Set(feature, enabled)
	return res.Message, nil
}

// Employees returns the cached employees
func (a *AdminStore) Employees() []model.Employee {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return cloneSlice(a.employees)
}

// Employee looks a cached employee up by id
func (a *AdminStore) Employee(id string) (model.Employee, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, e := range a.employees {
		if e.ID == id {
			return e, true
		}
	}
	return model.Employee{}, false
}

// HRUsers returns the cached HR accounts
func (a *AdminStore) HRUsers() []model.HRUser {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return cloneSlice(a.hrUsers)
}

// SystemSettings returns the cached settings
func (a *AdminStore) SystemSettings() model.SystemSettings {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.settings
}

// Permissions returns a copy of the permission matrix keyed by user id
func (a *AdminStore) Permissions() map[string]model.HRPermissions {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make(map[string]model.HRPermissions, len(a.permissions))
	for k, v := range a.permissions {
		out[k] = v
	}
	return out
}

// Analytics returns the cached analytics
func (a *AdminStore) Analytics() model.Analytics {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := a.analytics
	out.TopSectors = cloneSlice(a.analytics.TopSectors)
	return out
}

// ActivityLogs returns the cached activity logs
func (a *AdminStore) ActivityLogs() []model.ActivityLog {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return cloneSlice(a.activityLogs)
}

// Loading reports whether an operation is in flight
func (a *AdminStore) Loading() bool {
	return a.loading.get()
}
