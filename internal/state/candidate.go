package state

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"aps-backend/internal/datasource"
	"aps-backend/internal/model"
	"aps-backend/internal/storage"
)

// CandidateStore holds the job board and the candidate's applications
type CandidateStore struct {
	api     datasource.CandidateAPI
	storage storage.Storage
	loading loadingFlag
	now     func() time.Time

	mu          sync.RWMutex
	jobs        []model.Job
	sectors     []model.Sector
	appliedJobs []model.Application
}

// NewCandidateStore creates an empty store
func NewCandidateStore(api datasource.CandidateAPI, s storage.Storage) *CandidateStore {
	return &CandidateStore{
		api:         api,
		storage:     s,
		now:         time.Now,
		jobs:        []model.Job{},
		sectors:     []model.Sector{},
		appliedJobs: []model.Application{},
	}
}

// Load fetches jobs and sectors in parallel, then restores applications from storage
func (c *CandidateStore) Load(ctx context.Context) error {
	defer c.loading.start()()

	var (
		jobs    []model.Job
		sectors []model.Sector
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		jobs, err = c.api.GetJobs(gctx)
		return err
	})
	g.Go(func() (err error) {
		sectors, err = c.api.GetSectors(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load candidate data: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.jobs = jobs
	c.sectors = sectors

	var applied []model.Application
	err := storage.GetJSON(ctx, c.storage, storage.KeyAppliedJobs, &applied)
	switch {
	case errors.Is(err, storage.ErrNotFound):
	case err != nil:
		return fmt.Errorf("load applied jobs: %w", err)
	default:
		c.appliedJobs = applied
	}
	return nil
}

// Refresh is Load
func (c *CandidateStore) Refresh(ctx context.Context) error {
	return c.Load(ctx)
}

// ApplyToJob submits an application and appends it to the persisted list.
// Applying twice to the same job records two applications.
func (c *CandidateStore) ApplyToJob(ctx context.Context, jobID string, candidate model.CandidateData) (model.Application, error) {
	defer c.loading.start()()

	res, err := c.api.ApplyToJob(ctx, jobID, candidate)
	if err != nil {
		return model.Application{}, fmt.Errorf("apply to job: %w", err)
	}
	if !res.Success {
		return model.Application{}, &ActionError{Op: "apply", Message: res.Error}
	}

	application := model.Application{
		JobID:         jobID,
		ApplicationID: res.ApplicationID,
		AppliedAt:     c.now(),
		Status:        model.ApplicationStatusPending,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.appliedJobs = append(c.appliedJobs, application)
	if err := storage.SetJSON(ctx, c.storage, storage.KeyAppliedJobs, c.appliedJobs); err != nil {
		return application, fmt.Errorf("persist applied jobs: %w", err)
	}
	return application, nil
}

// GetDesignationsBySector passes through to the data source without touching state
func (c *CandidateStore) GetDesignationsBySector(ctx context.Context, sectorID string) ([]model.Designation, error) {
	return c.api.GetDesignationsBySector(ctx, sectorID)
}

// SearchJobs replaces the cached jobs with the search result
func (c *CandidateStore) SearchJobs(ctx context.Context, filters model.JobFilters) ([]model.Job, error) {
	defer c.loading.start()()

	jobs, err := c.api.SearchJobs(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("search jobs: %w", err)
	}

	c.mu.Lock()
	c.jobs = jobs
	c.mu.Unlock()
	return cloneSlice(jobs), nil
}

// Jobs returns the cached jobs
func (c *CandidateStore) Jobs() []model.Job {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneSlice(c.jobs)
}

// Job looks a cached job up by id
func (c *CandidateStore) Job(id string) (model.Job, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, j := range c.jobs {
		if j.ID == id {
			return j, true
		}
	}
	return model.Job{}, false
}

// Sectors returns the cached sectors
func (c *CandidateStore) Sectors() []model.Sector {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneSlice(c.sectors)
}

// AppliedJobs returns every recorded application
func (c *CandidateStore) AppliedJobs() []model.Application {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneSlice(c.appliedJobs)
}

// Loading reports whether an operation is in flight
func (c *CandidateStore) Loading() bool {
	return c.loading.get()
}
