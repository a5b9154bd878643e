package model

import (
	"time"
)

// ApplicationStatusPending is the status of every freshly submitted application
const ApplicationStatusPending = "pending"

// Application is one candidate application. The full list is persisted under aps_applied_jobs.
type Application struct {
	JobID         string    `json:"jobId"`
	ApplicationID string    `json:"applicationId"`
	AppliedAt     time.Time `json:"appliedAt"`
	Status        string    `json:"status"`
}

// CandidateData is the application form submitted by a candidate
type CandidateData struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone"`
	Experience string `json:"experience"`
	CoverNote  string `json:"coverNote"`
}
