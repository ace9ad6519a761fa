package services

import (
	"context"

	"github.com/asimraja/crease/internal/logger"
	"github.com/asimraja/crease/internal/repository"
)

// SettingsService handles settings-related business logic
type SettingsService struct {
	log  logger.Logger
	repo repository.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(log logger.Logger, repo repository.SettingsRepository) *SettingsService {
	return &SettingsService{log: log, repo: repo}
}

// GetBaseURL returns the application base URL used for join links and QR codes
func (s *SettingsService) GetBaseURL(ctx context.Context) (string, error) {
	value, err := s.repo.GetSetting(ctx, "base_url")
	if err != nil {
		if err == repository.ErrNotFound {
			return "", nil // No default - setting not yet configured
		}
		return "", err // Propagate database errors
	}
	return value, nil
}

// SetBaseURL saves the application base URL
func (s *SettingsService) SetBaseURL(ctx context.Context, url string) error {
	return s.repo.SetSetting(ctx, "base_url", url)
}

// GetLeagueName returns the configured league name
func (s *SettingsService) GetLeagueName(ctx context.Context) (string, error) {
	value, err := s.repo.GetSetting(ctx, "league_name")
	if err != nil {
		if err == repository.ErrNotFound {
			return "Cricket League", nil
		}
		return "", err
	}
	return value, nil
}

// SetLeagueName saves the league name
func (s *SettingsService) SetLeagueName(ctx context.Context, name string) error {
	return s.repo.SetSetting(ctx, "league_name", name)
}

// GetSetting retrieves a raw setting value
func (s *SettingsService) GetSetting(ctx context.Context, key string) (string, error) {
	return s.repo.GetSetting(ctx, key)
}

// SetSetting saves a raw setting value
func (s *SettingsService) SetSetting(ctx context.Context, key, value string) error {
	return s.repo.SetSetting(ctx, key, value)
}

// GetStats returns overall league counts for the admin dashboard
func (s *SettingsService) GetStats(ctx context.Context) (map[string]interface{}, error) {
	return s.repo.GetLeagueStats(ctx)
}
