package mockdata

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobs_ShapeAndRanges(t *testing.T) {
	g := New(1)
	jobs := g.Jobs()

	require.Len(t, jobs, JobCount)
	for i, job := range jobs {
		assert.Equal(t, "job_"+strconv.Itoa(i+1), job.ID)
		assert.Contains(t, Cities, job.City)
		assert.Contains(t, areas[job.City], job.Area)
		assert.GreaterOrEqual(t, job.Salary.Min, 3)
		assert.Less(t, job.Salary.Min, 18)
		assert.GreaterOrEqual(t, job.Salary.Max, 10)
		assert.GreaterOrEqual(t, job.Experience.Max, 2)
		assert.NotEmpty(t, job.Keywords)
	}
}

func TestJobs_SectorsWithoutDesignationsUseGeneralPosition(t *testing.T) {
	g := New(7)
	for _, job := range g.Jobs() {
		if job.SectorID == "retail" || job.SectorID == "manufacturing" {
			assert.Equal(t, "General Position", job.Designation)
			assert.Empty(t, job.DesignationID)
			continue
		}
		assert.NotEmpty(t, job.DesignationID)
	}
}

func TestJobs_SameSeedSameBatch(t *testing.T) {
	a, b := New(42), New(42)
	ja, jb := a.Jobs(), b.Jobs()
	for i := range ja {
		assert.Equal(t, ja[i].City, jb[i].City)
		assert.Equal(t, ja[i].SectorID, jb[i].SectorID)
	}
}

func TestResumes(t *testing.T) {
	g := New(3)
	resumes := g.Resumes()

	require.Len(t, resumes, ResumeCount)
	for _, r := range resumes {
		assert.True(t, r.Status.Valid())
		assert.True(t, strings.HasPrefix(r.Phone, "+91 "))
		assert.LessOrEqual(t, len(r.ParsedData.Skills), 5)
		assert.Equal(t, "Mumbai", r.ParsedData.City)
	}
}

func TestDesignationsBySector(t *testing.T) {
	g := New(1)
	assert.Len(t, g.DesignationsBySector("tech"), 6)
	assert.Len(t, g.DesignationsBySector("healthcare"), 4)
	assert.Empty(t, g.DesignationsBySector("retail"))
}

func TestKeywordsBySector_Unknown(t *testing.T) {
	g := New(1)
	assert.Equal(t, []string{"General", "Communication", "Teamwork", "Problem Solving"}, g.KeywordsBySector("space"))
}

func TestKeywordsBySector_ReturnsCopy(t *testing.T) {
	g := New(1)
	kw := g.KeywordsBySector("tech")
	kw[0] = "COBOL"
	assert.Equal(t, "JavaScript", g.KeywordsBySector("tech")[0])
}

func TestFixtures(t *testing.T) {
	g := New(1)
	assert.Len(t, g.Sectors(), 6)
	assert.Len(t, g.Employees(), 2)
	assert.Len(t, g.HRUsers(), 2)
	assert.Len(t, g.ActivityLogs(), ActivityCount)
}
