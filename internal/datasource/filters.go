package datasource

import (
	"strings"

	"aps-backend/internal/model"
)

// FilterJobs applies f to jobs. Sector and designation match ids exactly,
// city and search term match case-insensitive substrings.
func FilterJobs(jobs []model.Job, f model.JobFilters) []model.Job {
	out := make([]model.Job, 0, len(jobs))
	city := strings.ToLower(f.City)
	term := strings.ToLower(f.SearchTerm)

	for _, job := range jobs {
		if f.Sector != "" && job.SectorID != f.Sector {
			continue
		}
		if f.Designation != "" && job.DesignationID != f.Designation {
			continue
		}
		if city != "" && !strings.Contains(strings.ToLower(job.City), city) {
			continue
		}
		if term != "" && !jobMatchesTerm(job, term) {
			continue
		}
		out = append(out, job)
	}
	return out
}

func jobMatchesTerm(job model.Job, term string) bool {
	if strings.Contains(strings.ToLower(job.Designation), term) ||
		strings.Contains(strings.ToLower(job.Sector), term) {
		return true
	}
	for _, kw := range job.Keywords {
		if strings.Contains(strings.ToLower(kw), term) {
			return true
		}
	}
	return false
}

// FilterResumes applies f to resumes. Name matches a case-insensitive substring,
// sector and status match exactly.
func FilterResumes(resumes []model.Resume, f model.ResumeFilters) []model.Resume {
	out := make([]model.Resume, 0, len(resumes))
	name := strings.ToLower(f.Name)

	for _, r := range resumes {
		if name != "" && !strings.Contains(strings.ToLower(r.Name), name) {
			continue
		}
		if f.Sector != "" && r.Sector != f.Sector {
			continue
		}
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		out = append(out, r)
	}
	return out
}
