package model

import "time"

// Sector is a top-level job category
type Sector struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Designation is a job title inside a sector
type Designation struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SectorID string `json:"sectorId"`
}

// Range is an inclusive min/max pair, used for salary (LPA) and experience (years)
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Job is a generated job listing. IDs are only stable within one generated batch.
type Job struct {
	ID            string    `json:"id"`
	Designation   string    `json:"designation"`
	DesignationID string    `json:"designationId,omitempty"`
	Sector        string    `json:"sector"`
	SectorID      string    `json:"sectorId"`
	City          string    `json:"city"`
	Area          string    `json:"area"`
	Salary        Range     `json:"salary"`
	Experience    Range     `json:"experience"`
	Keywords      []string  `json:"keywords"`
	PostedAt      time.Time `json:"postedAt"`
	Featured      bool      `json:"featured"`
	Urgent        bool      `json:"urgent"`
}

// JobFilters narrows a job search. Empty fields are ignored.
type JobFilters struct {
	Sector      string `json:"sector" form:"sector"`
	Designation string `json:"designation" form:"designation"`
	City        string `json:"city" form:"city"`
	SearchTerm  string `json:"searchTerm" form:"searchTerm"`
}

// IsEmpty reports whether no filter is set
func (f JobFilters) IsEmpty() bool {
	return f.Sector == "" && f.Designation == "" && f.City == "" && f.SearchTerm == ""
}
