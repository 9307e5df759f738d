package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/dayjournal/internal/client/api"
	"github.com/dmitrijs2005/dayjournal/internal/client/models"
)

// EntryService defines journal entry operations. The server is the source
// of truth; every method returns the server's view of the affected records.
type EntryService interface {
	List(ctx context.Context) ([]models.Entry, error)
	Create(ctx context.Context, draft models.EntryDraft) (*models.Entry, error)
	Update(ctx context.Context, id int64, patch models.EntryPatch) (*models.Entry, error)
	Delete(ctx context.Context, id int64) error
}

type entryService struct {
	client api.Client
}

func NewEntryService(client api.Client) EntryService {
	return &entryService{client: client}
}

func (s *entryService) List(ctx context.Context) ([]models.Entry, error) {
	entries, err := s.client.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching entries: %w", err)
	}
	return entries, nil
}

func (s *entryService) Create(ctx context.Context, draft models.EntryDraft) (*models.Entry, error) {
	entry, err := s.client.CreateEntry(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("error creating entry: %w", err)
	}
	return entry, nil
}

func (s *entryService) Update(ctx context.Context, id int64, patch models.EntryPatch) (*models.Entry, error) {
	entry, err := s.client.UpdateEntry(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("error updating entry: %w", err)
	}
	return entry, nil
}

func (s *entryService) Delete(ctx context.Context, id int64) error {
	if err := s.client.DeleteEntry(ctx, id); err != nil {
		return fmt.Errorf("error deleting entry: %w", err)
	}
	return nil
}
