package datasource

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"aps-backend/internal/model"
)

// GetJobs generates a new job batch on every call
func (m *MockAPI) GetJobs(ctx context.Context) ([]model.Job, error) {
	if err := wait(ctx, m.delays.Base); err != nil {
		return nil, err
	}
	return m.gen.Jobs(), nil
}

// GetSectors returns the sector fixtures
func (m *MockAPI) GetSectors(ctx context.Context) ([]model.Sector, error) {
	if err := wait(ctx, m.delays.Base); err != nil {
		return nil, err
	}
	return m.gen.Sectors(), nil
}

// GetDesignationsBySector returns the designations of one sector
func (m *MockAPI) GetDesignationsBySector(ctx context.Context, sectorID string) ([]model.Designation, error) {
	if err := wait(ctx, m.delays.Base); err != nil {
		return nil, err
	}
	return m.gen.DesignationsBySector(sectorID), nil
}

// SearchJobs regenerates the job batch and filters it, so identical filters
// can yield different results across calls.
func (m *MockAPI) SearchJobs(ctx context.Context, filters model.JobFilters) ([]model.Job, error) {
	if err := wait(ctx, m.delays.Base); err != nil {
		return nil, err
	}
	return FilterJobs(m.gen.Jobs(), filters), nil
}

// ApplyToJob always succeeds; nothing is recorded on the "server" side
func (m *MockAPI) ApplyToJob(ctx context.Context, jobID string, candidate model.CandidateData) (ApplyResult, error) {
	if err := wait(ctx, m.delays.Apply); err != nil {
		return ApplyResult{}, err
	}
	return ApplyResult{
		Result:        Result{Success: true, Message: "Application submitted successfully"},
		ApplicationID: fmt.Sprintf("app_%s", uuid.NewString()),
	}, nil
}
