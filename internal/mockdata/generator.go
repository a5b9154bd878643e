// Package mockdata produces the pseudo random records served by the mock data source.
package mockdata

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"aps-backend/internal/model"
)

// Batch sizes of the generated collections
const (
	JobCount      = 50
	ResumeCount   = 100
	ActivityCount = 50
)

const day = 24 * time.Hour

// Generator builds fresh domain records on every call.
// It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

// New creates a Generator seeded with seed, so batches are reproducible
func New(seed int64) *Generator {
	return &Generator{
		rnd: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

// NewRandom creates a Generator seeded from the clock
func NewRandom() *Generator {
	return New(time.Now().UnixNano())
}

// Sectors returns the sector fixtures
func (g *Generator) Sectors() []model.Sector {
	out := make([]model.Sector, len(sectors))
	copy(out, sectors)
	return out
}

// Designations returns the designation fixtures
func (g *Generator) Designations() []model.Designation {
	out := make([]model.Designation, len(designations))
	copy(out, designations)
	return out
}

// DesignationsBySector returns the designations that belong to sectorID
func (g *Generator) DesignationsBySector(sectorID string) []model.Designation {
	out := []model.Designation{}
	for _, d := range designations {
		if d.SectorID == sectorID {
			out = append(out, d)
		}
	}
	return out
}

// KeywordsBySector returns the skill keywords of a sector, or a generic set for unknown sectors
func (g *Generator) KeywordsBySector(sectorID string) []string {
	kw, ok := keywords[sectorID]
	if !ok {
		kw = genericKeywords
	}
	out := make([]string, len(kw))
	copy(out, kw)
	return out
}

// Jobs generates a fresh batch of JobCount jobs
func (g *Generator) Jobs() []model.Job {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	jobs := make([]model.Job, 0, JobCount)
	for i := 0; i < JobCount; i++ {
		sector := sectors[g.rnd.Intn(len(sectors))]
		city := Cities[g.rnd.Intn(len(Cities))]
		cityAreas := areas[city]
		area := cityAreas[g.rnd.Intn(len(cityAreas))]

		// Only the first designation of a sector is ever used
		designation, designationID := "General Position", ""
		if ds := g.DesignationsBySector(sector.ID); len(ds) > 0 {
			designation, designationID = ds[0].Name, ds[0].ID
		}

		jobs = append(jobs, model.Job{
			ID:            fmt.Sprintf("job_%d", i+1),
			Designation:   designation,
			DesignationID: designationID,
			Sector:        sector.Name,
			SectorID:      sector.ID,
			City:          city,
			Area:          area,
			Salary: model.Range{
				Min: g.rnd.Intn(15) + 3,
				Max: g.rnd.Intn(20) + 10,
			},
			Experience: model.Range{
				Min: g.rnd.Intn(3),
				Max: g.rnd.Intn(8) + 2,
			},
			Keywords: g.KeywordsBySector(sector.ID),
			PostedAt: now.Add(-time.Duration(g.rnd.Int63n(int64(30 * day)))),
			Featured: g.rnd.Float64() > 0.8,
			Urgent:   g.rnd.Float64() > 0.9,
		})
	}
	return jobs
}

// Resumes generates a fresh batch of ResumeCount resumes
func (g *Generator) Resumes() []model.Resume {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	resumes := make([]model.Resume, 0, ResumeCount)
	for i := 0; i < ResumeCount; i++ {
		sector := sectors[g.rnd.Intn(len(sectors))]
		designation := "General"
		if ds := g.DesignationsBySector(sector.ID); len(ds) > 0 {
			designation = ds[0].Name
		}

		skills := g.KeywordsBySector(sector.ID)
		if len(skills) > 5 {
			skills = skills[:5]
		}

		resumes = append(resumes, model.Resume{
			ID:          fmt.Sprintf("resume_%d", i+1),
			Name:        candidateNames[g.rnd.Intn(len(candidateNames))],
			Email:       fmt.Sprintf("candidate%d@example.com", i+1),
			Phone:       fmt.Sprintf("+91 %d", g.rnd.Int63n(9000000000)+1000000000),
			Sector:      sector.Name,
			Designation: designation,
			Experience:  fmt.Sprintf("%d years", g.rnd.Intn(10)),
			FileName:    fmt.Sprintf("resume_%d.pdf", i+1),
			UploadedAt:  now.Add(-time.Duration(g.rnd.Int63n(int64(60 * day)))),
			Status:      generatedStatuses[g.rnd.Intn(len(generatedStatuses))],
			ParsedData: model.ResumeMetadata{
				Skills:    skills,
				Education: "Bachelor of Technology",
				City:      "Mumbai",
			},
		})
	}
	return resumes
}

// Employees returns the employee fixtures
func (g *Generator) Employees() []model.Employee {
	return []model.Employee{
		{
			ID:          "emp_1",
			Name:        "Rajesh Kumar",
			Email:       "rajesh@akshyapatra.com",
			Role:        model.RoleHR,
			Department:  "Human Resources",
			JoinedAt:    "2023-01-15",
			Status:      "active",
			Permissions: []string{"read", "write", "upload"},
		},
		{
			ID:          "emp_2",
			Name:        "Sneha Patel",
			Email:       "sneha@akshyapatra.com",
			Role:        model.RoleHR,
			Department:  "Recruitment",
			JoinedAt:    "2023-03-20",
			Status:      "active",
			Permissions: []string{"read", "write"},
		},
	}
}

// HRUsers returns the HR account fixtures, with login times relative to now
func (g *Generator) HRUsers() []model.HRUser {
	now := g.now()
	return []model.HRUser{
		{
			ID:              "hr_1",
			Name:            "Rajesh Kumar",
			Email:           "rajesh@akshyapatra.com",
			LastLogin:       now,
			ResumesUploaded: 45,
			Status:          "online",
		},
		{
			ID:              "hr_2",
			Name:            "Sneha Patel",
			Email:           "sneha@akshyapatra.com",
			LastLogin:       now.Add(-2 * time.Hour),
			ResumesUploaded: 32,
			Status:          "away",
		},
	}
}

// ActivityLogs generates a fresh batch of ActivityCount entries from the last week
func (g *Generator) ActivityLogs() []model.ActivityLog {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	logs := make([]model.ActivityLog, 0, ActivityCount)
	for i := 0; i < ActivityCount; i++ {
		logs = append(logs, model.ActivityLog{
			ID:        fmt.Sprintf("log_%d", i+1),
			User:      activityUsers[g.rnd.Intn(len(activityUsers))],
			Action:    activityActions[g.rnd.Intn(len(activityActions))],
			Details:   "Sample activity details",
			Timestamp: now.Add(-time.Duration(g.rnd.Int63n(int64(7 * day)))),
			IP:        "192.168.1.100",
		})
	}
	return logs
}
