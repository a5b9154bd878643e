package state

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aps-backend/internal/mockdata"
	"aps-backend/internal/model"
	"aps-backend/internal/storage"
)

var candidate = model.CandidateData{Name: "Asha", Email: "asha@example.com"}

func TestCandidateLoad(t *testing.T) {
	ctx := context.Background()
	s := newMemory()
	require.NoError(t, storage.SetJSON(ctx, s, storage.KeyAppliedJobs, []model.Application{{JobID: "job_1", ApplicationID: "app_1"}}))

	c := NewCandidateStore(newAPI(), s)
	require.NoError(t, c.Load(ctx))

	assert.Len(t, c.Jobs(), mockdata.JobCount)
	assert.Len(t, c.Sectors(), 6)
	require.Len(t, c.AppliedJobs(), 1)
	assert.Equal(t, "app_1", c.AppliedJobs()[0].ApplicationID)
	assert.False(t, c.Loading())
}

func TestCandidateApplyDuplicates(t *testing.T) {
	ctx := context.Background()
	s := newMemory()
	c := NewCandidateStore(newAPI(), s)

	const n = 3
	ids := map[string]bool{}
	for i := 0; i < n; i++ {
		app, err := c.ApplyToJob(ctx, "job_1", candidate)
		require.NoError(t, err)
		assert.Equal(t, model.ApplicationStatusPending, app.Status)
		assert.Equal(t, "job_1", app.JobID)
		ids[app.ApplicationID] = true
	}
	assert.Len(t, ids, n)

	var stored []model.Application
	require.NoError(t, storage.GetJSON(ctx, s, storage.KeyAppliedJobs, &stored))
	assert.Len(t, stored, n)
	assert.Len(t, c.AppliedJobs(), n)
}

func TestCandidateApplyRejected(t *testing.T) {
	ctx := context.Background()
	s := newMemory()
	c := NewCandidateStore(&countingAPI{MockAPI: newAPI(), fail: true}, s)

	_, err := c.ApplyToJob(ctx, "job_1", candidate)
	require.Error(t, err)
	assert.True(t, IsActionError(err))
	assert.Empty(t, c.AppliedJobs())

	_, err = s.GetItem(ctx, storage.KeyAppliedJobs)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCandidateSearchJobs(t *testing.T) {
	ctx := context.Background()
	c := NewCandidateStore(newAPI(), newMemory())

	jobs, err := c.SearchJobs(ctx, model.JobFilters{City: "Mumbai"})
	require.NoError(t, err)
	for _, j := range jobs {
		assert.True(t, strings.EqualFold(j.City, "mumbai"))
	}
	assert.Equal(t, jobs, c.Jobs())

	all, err := c.SearchJobs(ctx, model.JobFilters{})
	require.NoError(t, err)
	assert.Len(t, all, mockdata.JobCount)
}

func TestCandidateDesignations(t *testing.T) {
	c := NewCandidateStore(newAPI(), newMemory())

	designations, err := c.GetDesignationsBySector(context.Background(), "tech")
	require.NoError(t, err)
	require.NotEmpty(t, designations)
	for _, d := range designations {
		assert.Equal(t, "tech", d.SectorID)
	}
}

func TestCandidateAccessorsCopy(t *testing.T) {
	c := NewCandidateStore(newAPI(), newMemory())
	require.NoError(t, c.Load(context.Background()))

	jobs := c.Jobs()
	jobs[0].ID = "tampered"
	assert.NotEqual(t, "tampered", c.Jobs()[0].ID)

	_, ok := c.Job(c.Jobs()[1].ID)
	assert.True(t, ok)
	_, ok = c.Job("missing")
	assert.False(t, ok)
}
