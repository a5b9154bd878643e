package model

import (
	"time"
)

// ResumeStatus is the lifecycle tag of an uploaded resume
type ResumeStatus string

// Resume statuses
const (
	ResumeStatusPending     ResumeStatus = "pending"
	ResumeStatusApproved    ResumeStatus = "approved"
	ResumeStatusRejected    ResumeStatus = "rejected"
	ResumeStatusUnderReview ResumeStatus = "under_review"
	ResumeStatusShortlisted ResumeStatus = "shortlisted"
	ResumeStatusHired       ResumeStatus = "hired"
)

// ResumeStatuses lists every known status
var ResumeStatuses = []ResumeStatus{
	ResumeStatusPending,
	ResumeStatusApproved,
	ResumeStatusRejected,
	ResumeStatusUnderReview,
	ResumeStatusShortlisted,
	ResumeStatusHired,
}

// Valid reports whether s is a known status
func (s ResumeStatus) Valid() bool {
	for _, v := range ResumeStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Resume is a candidate resume managed by HR
type Resume struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	Sector      string         `json:"sector"`
	Designation string         `json:"designation"`
	Experience  string         `json:"experience"`
	FileName    string         `json:"fileName"`
	FileSize    int64          `json:"fileSize,omitempty"`
	StorageKey  string         `json:"storageKey,omitempty"`
	UploadedAt  time.Time      `json:"uploadedAt"`
	UpdatedAt   *time.Time     `json:"updatedAt,omitempty"`
	Status      ResumeStatus   `json:"status"`
	Feedback    string         `json:"feedback,omitempty"`
	ParsedData  ResumeMetadata `json:"parsedData"`
}

// ResumeMetadata is what the uploader knows about the candidate. Every field is optional.
type ResumeMetadata struct {
	Name        string   `json:"name,omitempty" form:"name"`
	Email       string   `json:"email,omitempty" form:"email"`
	Phone       string   `json:"phone,omitempty" form:"phone"`
	City        string   `json:"city,omitempty" form:"city"`
	Sector      string   `json:"sector,omitempty" form:"sector"`
	Designation string   `json:"designation,omitempty" form:"designation"`
	Experience  string   `json:"experience,omitempty" form:"experience"`
	Education   string   `json:"education,omitempty" form:"education"`
	Skills      []string `json:"skills,omitempty" form:"skills"`
}

// UploadedFile describes a file handed to the data source
type UploadedFile struct {
	Name       string `json:"name"`
	Size       int64  `json:"size"`
	StorageKey string `json:"storageKey,omitempty"`
}

// ParsedResume is the structured payload returned by resume parsing
type ParsedResume struct {
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	City              string   `json:"city"`
	Experience        string   `json:"experience"`
	Skills            []string `json:"skills"`
	Sector            string   `json:"sector"`
	Designation       string   `json:"designation"`
	Education         string   `json:"education"`
	PreviousCompanies []string `json:"previousCompanies"`
}

// ResumeFilters narrows a resume search. Empty fields are ignored.
type ResumeFilters struct {
	Name   string       `json:"name" form:"name"`
	Sector string       `json:"sector" form:"sector"`
	Status ResumeStatus `json:"status" form:"status"`
}
