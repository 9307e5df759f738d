package services

import (
	"context"

	"github.com/dmitrijs2005/dayjournal/internal/client/api"
	"github.com/dmitrijs2005/dayjournal/internal/client/models"
)

// fakeClient implements api.Client for service unit tests.
type fakeClient struct {
	RegisterResp *api.AuthResponse
	RegisterErr  error
	LoginResp    *api.AuthResponse
	LoginErr     error

	ListResp  []models.Entry
	ListErr   error
	CreateRet *models.Entry
	CreateErr error
	UpdateRet *models.Entry
	UpdateErr error
	DeleteErr error

	ProfileRet       *models.Profile
	ProfileErr       error
	UpdateProfileErr error

	FrequencyRet []models.FrequencyBucket
	CategoryRet  []models.CategoryCount
	WordCountRet *models.WordCount
	SummaryErr   error

	// captured arguments
	LastRegister api.RegisterRequest
	LastLogin    api.LoginRequest
	LastDraft    models.EntryDraft
	LastPatch    models.EntryPatch
	LastUpdateID int64
	LastDeleteID int64
	LastUsername string
}

func (f *fakeClient) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	f.LastRegister = req
	return f.RegisterResp, f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	f.LastLogin = req
	return f.LoginResp, f.LoginErr
}

func (f *fakeClient) ListEntries(ctx context.Context) ([]models.Entry, error) {
	return f.ListResp, f.ListErr
}

func (f *fakeClient) CreateEntry(ctx context.Context, draft models.EntryDraft) (*models.Entry, error) {
	f.LastDraft = draft
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) UpdateEntry(ctx context.Context, id int64, patch models.EntryPatch) (*models.Entry, error) {
	f.LastUpdateID = id
	f.LastPatch = patch
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) DeleteEntry(ctx context.Context, id int64) error {
	f.LastDeleteID = id
	return f.DeleteErr
}

func (f *fakeClient) GetProfile(ctx context.Context) (*models.Profile, error) {
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) UpdateProfile(ctx context.Context, upd api.ProfileUpdate) error {
	f.LastUsername = upd.Username
	return f.UpdateProfileErr
}

func (f *fakeClient) Frequency(ctx context.Context) ([]models.FrequencyBucket, error) {
	return f.FrequencyRet, f.SummaryErr
}

func (f *fakeClient) Categories(ctx context.Context) ([]models.CategoryCount, error) {
	return f.CategoryRet, f.SummaryErr
}

func (f *fakeClient) WordCount(ctx context.Context) (*models.WordCount, error) {
	return f.WordCountRet, f.SummaryErr
}
