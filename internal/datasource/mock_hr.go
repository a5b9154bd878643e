package datasource

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"aps-backend/internal/model"
)

// ParseConfidence is the constant confidence reported by ParseResume
const ParseConfidence = 0.95

// CannedParsedResume is returned by ParseResume whatever the file content
var CannedParsedResume = model.ParsedResume{
	Name:              "John Doe",
	Email:             "john.doe@email.com",
	Phone:             "+91 9876543210",
	City:              "Mumbai",
	Experience:        "3 years",
	Skills:            []string{"JavaScript", "React", "Node.js", "Python"},
	Sector:            "Technology",
	Designation:       "Software Developer",
	Education:         "B.Tech Computer Science",
	PreviousCompanies: []string{"TechCorp", "StartupXYZ"},
}

// GetResumes generates a new resume batch on every call
func (m *MockAPI) GetResumes(ctx context.Context) ([]model.Resume, error) {
	if err := wait(ctx, m.delays.Base); err != nil {
		return nil, err
	}
	return m.gen.Resumes(), nil
}

// GetHRSectors returns the sector fixtures
func (m *MockAPI) GetHRSectors(ctx context.Context) ([]model.Sector, error) {
	return m.GetSectors(ctx)
}

// GetPermissions returns the permission matrix of the signed in HR user
func (m *MockAPI) GetPermissions(ctx context.Context) (model.HRPermissions, error) {
	if err := wait(ctx, m.delays.Base); err != nil {
		return model.HRPermissions{}, err
	}
	return defaultHRPermissions(), nil
}

func defaultHRPermissions() model.HRPermissions {
	return model.HRPermissions{
		CanUpload:        true,
		CanEdit:          true,
		CanDelete:        false,
		CanManageSectors: true,
		CanViewReports:   true,
		CanExport:        true,
	}
}

// UploadResume builds a pending resume from metadata, falling back to placeholder values
func (m *MockAPI) UploadResume(ctx context.Context, file model.UploadedFile, metadata model.ResumeMetadata) (UploadResult, error) {
	if err := wait(ctx, m.delays.Upload); err != nil {
		return UploadResult{}, err
	}

	resume := &model.Resume{
		ID:          fmt.Sprintf("resume_%s", uuid.NewString()),
		Name:        orDefault(metadata.Name, "John Doe"),
		Email:       orDefault(metadata.Email, "john@example.com"),
		Phone:       orDefault(metadata.Phone, "+91 9876543210"),
		FileName:    file.Name,
		FileSize:    file.Size,
		StorageKey:  file.StorageKey,
		UploadedAt:  m.now(),
		Status:      model.ResumeStatusPending,
		Sector:      orDefault(metadata.Sector, "Technology"),
		Designation: orDefault(metadata.Designation, "Software Developer"),
		Experience:  orDefault(metadata.Experience, "2-5 years"),
		ParsedData:  metadata,
	}

	return UploadResult{Result: Result{Success: true}, Resume: resume}, nil
}

// ParseResume is a stub: it ignores the file and returns CannedParsedResume
func (m *MockAPI) ParseResume(ctx context.Context, file model.UploadedFile) (ParseResult, error) {
	if err := wait(ctx, m.delays.Parse); err != nil {
		return ParseResult{}, err
	}

	data := CannedParsedResume
	data.Skills = append([]string(nil), CannedParsedResume.Skills...)
	data.PreviousCompanies = append([]string(nil), CannedParsedResume.PreviousCompanies...)

	return ParseResult{
		Result:     Result{Success: true},
		Data:       data,
		Confidence: ParseConfidence,
	}, nil
}

// UpdateResumeStatus always succeeds
func (m *MockAPI) UpdateResumeStatus(ctx context.Context, resumeID string, status model.ResumeStatus, feedback string) (Result, error) {
	if err := wait(ctx, m.delays.Base); err != nil {
		return Result{}, err
	}
	return Result{Success: true, Message: "Resume status updated successfully"}, nil
}

// SearchResumes regenerates the resume batch and filters it
func (m *MockAPI) SearchResumes(ctx context.Context, filters model.ResumeFilters) ([]model.Resume, error) {
	if err := wait(ctx, m.delays.Base); err != nil {
		return nil, err
	}
	return FilterResumes(m.gen.Resumes(), filters), nil
}

// GenerateReport returns a report with fixed counters
func (m *MockAPI) GenerateReport(ctx context.Context, reportType string, dateRange model.DateRange) (ReportResult, error) {
	if err := wait(ctx, m.delays.Report); err != nil {
		return ReportResult{}, err
	}

	return ReportResult{
		Result: Result{Success: true},
		Report: &model.Report{
			ID:          fmt.Sprintf("report_%s", uuid.NewString()),
			Type:        reportType,
			DateRange:   dateRange,
			GeneratedAt: m.now(),
			Data: model.ReportData{
				TotalResumes:  150,
				ApprovedCount: 45,
				RejectedCount: 25,
				PendingCount:  80,
			},
		},
	}, nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
