package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/dayjournal/internal/client/api"
	"github.com/dmitrijs2005/dayjournal/internal/client/models"
)

// ProfileService covers the settings screen and the dashboard summaries.
type ProfileService interface {
	Get(ctx context.Context) (*models.Profile, error)
	Update(ctx context.Context, username string) error

	Frequency(ctx context.Context) ([]models.FrequencyBucket, error)
	Categories(ctx context.Context) ([]models.CategoryCount, error)
	WordCount(ctx context.Context) (*models.WordCount, error)
}

type profileService struct {
	client api.Client
}

func NewProfileService(client api.Client) ProfileService {
	return &profileService{client: client}
}

func (s *profileService) Get(ctx context.Context) (*models.Profile, error) {
	profile, err := s.client.GetProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) Update(ctx context.Context, username string) error {
	if err := s.client.UpdateProfile(ctx, api.ProfileUpdate{Username: username}); err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}
	return nil
}

func (s *profileService) Frequency(ctx context.Context) ([]models.FrequencyBucket, error) {
	buckets, err := s.client.Frequency(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching frequency summary: %w", err)
	}
	return buckets, nil
}

func (s *profileService) Categories(ctx context.Context) ([]models.CategoryCount, error) {
	counts, err := s.client.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching category summary: %w", err)
	}
	return counts, nil
}

func (s *profileService) WordCount(ctx context.Context) (*models.WordCount, error) {
	wc, err := s.client.WordCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching word count: %w", err)
	}
	return wc, nil
}
