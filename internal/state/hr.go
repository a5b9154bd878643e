package state

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"aps-backend/internal/datasource"
	"aps-backend/internal/model"
	"aps-backend/internal/storage"
)

const (
	seededNotifications = 5
	maxNotifications    = 50
)

// Notification filters besides the notification types
const (
	NotificationFilterAll    = "all"
	NotificationFilterUnread = "unread"
)

// HRStore holds the HR console state
type HRStore struct {
	api     datasource.HRAPI
	storage storage.Storage
	loading loadingFlag
	now     func() time.Time

	mu            sync.RWMutex
	resumes       []model.Resume
	sectors       []model.Sector
	permissions   model.HRPermissions
	widgets       []model.DashboardWidget
	reports       []model.Report
	notifications []model.Notification
}

// NewHRStore creates an empty store
func NewHRStore(api datasource.HRAPI, s storage.Storage) *HRStore {
	return &HRStore{
		api:           api,
		storage:       s,
		now:           time.Now,
		resumes:       []model.Resume{},
		sectors:       []model.Sector{},
		widgets:       model.DefaultDashboardWidgets(),
		reports:       []model.Report{},
		notifications: []model.Notification{},
	}
}

// Load fetches resumes, sectors and permissions in parallel and restores the
// dashboard layout, falling back to the default widgets.
func (h *HRStore) Load(ctx context.Context) error {
	defer h.loading.start()()

	var (
		resumes     []model.Resume
		sectors     []model.Sector
		permissions model.HRPermissions
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		resumes, err = h.api.GetResumes(gctx)
		return err
	})
	g.Go(func() (err error) {
		sectors, err = h.api.GetHRSectors(gctx)
		return err
	})
	g.Go(func() (err error) {
		permissions, err = h.api.GetPermissions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load HR data: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.resumes = resumes
	h.sectors = sectors
	h.permissions = permissions
	h.notifications = h.seedNotifications(resumes)

	var widgets []model.DashboardWidget
	err := storage.GetJSON(ctx, h.storage, storage.KeyHRDashboard, &widgets)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		h.widgets = model.DefaultDashboardWidgets()
	case err != nil:
		h.widgets = model.DefaultDashboardWidgets()
		return fmt.Errorf("load dashboard layout: %w", err)
	default:
		h.widgets = widgets
	}
	return nil
}

// Refresh is Load
func (h *HRStore) Refresh(ctx context.Context) error {
	return h.Load(ctx)
}

// seedNotifications announces the most recent pending resumes
func (h *HRStore) seedNotifications(resumes []model.Resume) []model.Notification {
	pending := make([]model.Resume, 0, len(resumes))
	for _, r := range resumes {
		if r.Status == model.ResumeStatusPending {
			pending = append(pending, r)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].UploadedAt.After(pending[j].UploadedAt)
	})
	if len(pending) > seededNotifications {
		pending = pending[:seededNotifications]
	}

	out := make([]model.Notification, 0, len(pending))
	for _, r := range pending {
		out = append(out, model.Notification{
			ID:        "notif_" + uuid.NewString(),
			Type:      model.NotificationResume,
			Message:   fmt.Sprintf("New resume from %s for %s awaiting review", r.Name, r.Designation),
			Timestamp: r.UploadedAt,
		})
	}
	return out
}

// notify prepends a notification. Callers hold h.mu.
func (h *HRStore) notify(kind, message string) {
	n := model.Notification{
		ID:        "notif_" + uuid.NewString(),
		Type:      kind,
		Message:   message,
		Timestamp: h.now(),
	}
	h.notifications = append([]model.Notification{n}, h.notifications...)
	if len(h.notifications) > maxNotifications {
		h.notifications = h.notifications[:maxNotifications]
	}
}

// UploadResume sends a resume to the data source and prepends the result
func (h *HRStore) UploadResume(ctx context.Context, file model.UploadedFile, metadata model.ResumeMetadata) (model.Resume, error) {
	defer h.loading.start()()

	res, err := h.api.UploadResume(ctx, file, metadata)
	if err != nil {
		return model.Resume{}, fmt.Errorf("upload resume: %w", err)
	}
	if !res.Success || res.Resume == nil {
		return model.Resume{}, &ActionError{Op: "upload", Message: res.Error}
	}

	resume := *res.Resume

	h.mu.Lock()
	defer h.mu.Unlock()
	h.resumes = append([]model.Resume{resume}, h.resumes...)
	h.notify(model.NotificationResume, fmt.Sprintf("Resume uploaded for %s", resume.Name))
	return resume, nil
}

// ParseResume passes through to the data source
func (h *HRStore) ParseResume(ctx context.Context, file model.UploadedFile) (datasource.ParseResult, error) {
	res, err := h.api.ParseResume(ctx, file)
	if err != nil {
		return datasource.ParseResult{}, fmt.Errorf("parse resume: %w", err)
	}
	if !res.Success {
		return res, &ActionError{Op: "parse", Message: res.Error}
	}
	return res, nil
}

// UpdateResumeStatus sets status, feedback and updatedAt on the cached resume.
// An unknown id is accepted and changes nothing.
func (h *HRStore) UpdateResumeStatus(ctx context.Context, resumeID string, status model.ResumeStatus, feedback string) error {
	if !status.Valid() {
		return &ActionError{Op: "update status", Message: fmt.Sprintf("invalid resume status: %s", status)}
	}

	res, err := h.api.UpdateResumeStatus(ctx, resumeID, status, feedback)
	if err != nil {
		return fmt.Errorf("update resume status: %w", err)
	}
	if !res.Success {
		return &ActionError{Op: "update status", Message: res.Error}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	now := h.now()
	for i := range h.resumes {
		if h.resumes[i].ID != resumeID {
			continue
		}
		h.resumes[i].Status = status
		h.resumes[i].Feedback = feedback
		h.resumes[i].UpdatedAt = &now
		h.notify(model.NotificationResume, fmt.Sprintf("Resume of %s marked as %s", h.resumes[i].Name, status))
	}
	return nil
}

// SearchResumes replaces the cached resumes with the search result
func (h *HRStore) SearchResumes(ctx context.Context, filters model.ResumeFilters) ([]model.Resume, error) {
	defer h.loading.start()()

	resumes, err := h.api.SearchResumes(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("search resumes: %w", err)
	}

	h.mu.Lock()
	h.resumes = resumes
	h.mu.Unlock()
	return cloneSlice(resumes), nil
}

// SaveDashboardLayout replaces and persists the dashboard widgets
func (h *HRStore) SaveDashboardLayout(ctx context.Context, widgets []model.DashboardWidget) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.widgets = cloneSlice(widgets)
	return storage.SetJSON(ctx, h.storage, storage.KeyHRDashboard, widgets)
}

// GenerateReport asks the data source for a report and prepends it
func (h *HRStore) GenerateReport(ctx context.Context, reportType string, dateRange model.DateRange) (model.Report, error) {
	res, err := h.api.GenerateReport(ctx, reportType, dateRange)
	if err != nil {
		return model.Report{}, fmt.Errorf("generate report: %w", err)
	}
	if !res.Success || res.Report == nil {
		return model.Report{}, &ActionError{Op: "report", Message: res.Error}
	}

	report := *res.Report

	h.mu.Lock()
	defer h.mu.Unlock()
	h.reports = append([]model.Report{report}, h.reports...)
	h.notify(model.NotificationSystem, fmt.Sprintf("Report %s is ready", report.Type))
	return report, nil
}

// Resumes returns the cached resumes
func (h *HRStore) Resumes() []model.Resume {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return cloneSlice(h.resumes)
}

// Sectors returns the cached sectors
func (h *HRStore) Sectors() []model.Sector {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return cloneSlice(h.sectors)
}

// Permissions returns the permission matrix of the HR user
func (h *HRStore) Permissions() model.HRPermissions {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.permissions
}

// DashboardWidgets returns the dashboard layout
func (h *HRStore) DashboardWidgets() []model.DashboardWidget {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return cloneSlice(h.widgets)
}

// Reports returns the generated reports, newest first
func (h *HRStore) Reports() []model.Report {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return cloneSlice(h.reports)
}

// Notifications returns the notifications matching filter: all, unread or a notification type
func (h *HRStore) Notifications(filter string) []model.Notification {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]model.Notification, 0, len(h.notifications))
	for _, n := range h.notifications {
		switch filter {
		case "", NotificationFilterAll:
		case NotificationFilterUnread:
			if n.Read {
				continue
			}
		default:
			if n.Type != filter {
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

// UnreadCount returns the number of unread notifications
func (h *HRStore) UnreadCount() int {
	return len(h.Notifications(NotificationFilterUnread))
}

// MarkNotificationAsRead flags one notification as read
func (h *HRStore) MarkNotificationAsRead(id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := range h.notifications {
		if h.notifications[i].ID == id {
			h.notifications[i].Read = true
			return nil
		}
	}
	return ErrNotFound
}

// DeleteNotification removes one notification
func (h *HRStore) DeleteNotification(id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := range h.notifications {
		if h.notifications[i].ID == id {
			h.notifications = append(h.notifications[:i], h.notifications[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Loading reports whether an operation is in flight
func (h *HRStore) Loading() bool {
	return h.loading.get()
}
