package model

import (
	"fmt"
	"time"
)

// Employee is a staff account managed from the admin panel
type Employee struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Department  string    `json:"department"`
	JoinedAt    string    `json:"joinedAt,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	Status      string    `json:"status"`
	Permissions []string  `json:"permissions"`
}

// EmployeeInput is the create/update payload. Zero fields are left untouched on update.
type EmployeeInput struct {
	Name        string   `json:"name"`
	Email       string   `json:"email" binding:"omitempty,email"`
	Role        string   `json:"role" binding:"omitempty,role"`
	Department  string   `json:"department"`
	JoinedAt    string   `json:"joinedAt"`
	Status      string   `json:"status"`
	Permissions []string `json:"permissions"`
}

// HRUser is the admin's view of an HR account
type HRUser struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	LastLogin       time.Time `json:"lastLogin"`
	ResumesUploaded int       `json:"resumesUploaded"`
	Status          string    `json:"status"`
}

// HRPermissions is the permission matrix of one HR user
type HRPermissions struct {
	CanUpload        bool `json:"canUpload"`
	CanEdit          bool `json:"canEdit"`
	CanDelete        bool `json:"canDelete"`
	CanManageSectors bool `json:"canManageSectors"`
	CanViewReports   bool `json:"canViewReports"`
	CanExport        bool `json:"canExport"`
}

// FeatureFlags are the admin-toggleable features
type FeatureFlags struct {
	PermanentApprovalMode bool `json:"permanentApprovalMode"`
	ConfidentialityMode   bool `json:"confidentialityMode"`
	AutoAssignment        bool `json:"autoAssignment"`
	EmailNotifications    bool `json:"emailNotifications"`
	VoiceCommands         bool `json:"voiceCommands"`
}

// Set toggles a feature by its json name
func (f *FeatureFlags) Set(name string, enabled bool) error {
	switch name {
	case "permanentApprovalMode":
		f.PermanentApprovalMode = enabled
	case "confidentialityMode":
		f.ConfidentialityMode = enabled
	case "autoAssignment":
		f.AutoAssignment = enabled
	case "emailNotifications":
		f.EmailNotifications = enabled
	case "voiceCommands":
		f.VoiceCommands = enabled
	default:
		return fmt.Errorf("unknown feature: %s", name)
	}
	return nil
}

// APIConfig is the integration status board
type APIConfig struct {
	ResumeParser string `json:"resumeParser"`
	Cloudinary   string `json:"cloudinary"`
	Sendgrid     string `json:"sendgrid"`
	Pusher       string `json:"pusher"`
}

// SystemSettings groups feature flags and integration config
type SystemSettings struct {
	Features  FeatureFlags `json:"features"`
	APIConfig APIConfig    `json:"apiConfig"`
}

// SystemSettingsPatch replaces whole sections of SystemSettings. Nil sections are kept.
type SystemSettingsPatch struct {
	Features  *FeatureFlags `json:"features"`
	APIConfig *APIConfig    `json:"apiConfig"`
}

// Apply merges the patch into s
func (p SystemSettingsPatch) Apply(s SystemSettings) SystemSettings {
	if p.Features != nil {
		s.Features = *p.Features
	}
	if p.APIConfig != nil {
		s.APIConfig = *p.APIConfig
	}
	return s
}

// SectorCount is one bar of the top sectors chart
type SectorCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// HiringFunnel holds stage counts of the hiring pipeline
type HiringFunnel struct {
	Applied     int `json:"applied"`
	Screened    int `json:"screened"`
	Interviewed int `json:"interviewed"`
	Hired       int `json:"hired"`
}

// Analytics is the admin insight fixture
type Analytics struct {
	TotalResumes   int           `json:"totalResumes"`
	MonthlyGrowth  float64       `json:"monthlyGrowth"`
	ConversionRate float64       `json:"conversionRate"`
	TopSectors     []SectorCount `json:"topSectors"`
	HiringFunnel   HiringFunnel  `json:"hiringFunnel"`
}

// ActivityLog is a single audit trail entry
type ActivityLog struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
	IP        string    `json:"ip"`
}
