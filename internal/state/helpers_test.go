package state

import (
	"context"
	"sync/atomic"

	"aps-backend/internal/datasource"
	"aps-backend/internal/mockdata"
	"aps-backend/internal/model"
	"aps-backend/internal/storage"
)

func newAPI() *datasource.MockAPI {
	return datasource.NewMockAPI(mockdata.New(7), datasource.Delays{})
}

// countingAPI counts logins and can be told to reject every call
type countingAPI struct {
	*datasource.MockAPI
	logins atomic.Int32
	fail   bool
}

func (c *countingAPI) Login(ctx context.Context, creds model.Credentials, role string) (datasource.LoginResult, error) {
	c.logins.Add(1)
	return c.MockAPI.Login(ctx, creds, role)
}

func (c *countingAPI) UploadResume(ctx context.Context, file model.UploadedFile, md model.ResumeMetadata) (datasource.UploadResult, error) {
	if c.fail {
		return datasource.UploadResult{Result: datasource.Result{Error: "Resume upload failed. Please try again."}}, nil
	}
	return c.MockAPI.UploadResume(ctx, file, md)
}

func (c *countingAPI) ApplyToJob(ctx context.Context, jobID string, cd model.CandidateData) (datasource.ApplyResult, error) {
	if c.fail {
		return datasource.ApplyResult{Result: datasource.Result{Error: "Application failed. Please try again."}}, nil
	}
	return c.MockAPI.ApplyToJob(ctx, jobID, cd)
}

var hrCreds = model.Credentials{Email: "hr@akshyapatra.com", Password: "hr123456"}
var adminCreds = model.Credentials{Email: "admin@akshyapatra.com", Password: "admin123456"}

func newMemory() *storage.Memory {
	return storage.NewMemory()
}
