// Package service provides business logic layer for the season module.
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	seasonModel "github.com/shafraaxz/horse-league-sub002/internal/season/model"
	"github.com/shafraaxz/horse-league-sub002/internal/season/repository"
)

// Service defines the interface for season business logic operations.
type Service interface {
	// CreateSeason creates a new season.
	CreateSeason(ctx context.Context, req *seasonModel.CreateSeasonRequest) (*seasonModel.SeasonResponse, error)

	// GetSeason returns a season by id.
	GetSeason(ctx context.Context, seasonID string) (*seasonModel.SeasonResponse, error)

	// ListSeasons returns all seasons.
	ListSeasons(ctx context.Context) ([]seasonModel.SeasonResponse, error)

	// UpdateSeason updates season details.
	UpdateSeason(ctx context.Context, seasonID string, req *seasonModel.UpdateSeasonRequest) (*seasonModel.SeasonResponse, error)

	// ActivateSeason marks a season active, deactivating all others.
	ActivateSeason(ctx context.Context, seasonID string) (*seasonModel.SeasonResponse, error)

	// DeleteSeason removes a season.
	DeleteSeason(ctx context.Context, seasonID string) error
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new season service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, db: db, logger: logger}
}

// CreateSeason creates a new season.
func (s *service) CreateSeason(ctx context.Context, req *seasonModel.CreateSeasonRequest) (*seasonModel.SeasonResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, seasonModel.ErrInvalidSeasonName
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, seasonModel.ErrInvalidDates
	}

	season := &seasonModel.Season{
		SeasonID:  uuid.NewString(),
		Name:      name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}

	if err := s.repo.Create(ctx, season); err != nil {
		return nil, err
	}

	s.logger.Infow("season created", "season_id", season.SeasonID, "name", season.Name)
	return season.ToResponse(), nil
}

// GetSeason returns a season by id.
func (s *service) GetSeason(ctx context.Context, seasonID string) (*seasonModel.SeasonResponse, error) {
	season, err := s.repo.GetByID(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	return season.ToResponse(), nil
}

// ListSeasons returns all seasons.
func (s *service) ListSeasons(ctx context.Context) ([]seasonModel.SeasonResponse, error) {
	seasons, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]seasonModel.SeasonResponse, 0, len(seasons))
	for i := range seasons {
		resp = append(resp, *seasons[i].ToResponse())
	}
	return resp, nil
}

// UpdateSeason updates season details.
func (s *service) UpdateSeason(ctx context.Context, seasonID string, req *seasonModel.UpdateSeasonRequest) (*seasonModel.SeasonResponse, error) {
	season, err := s.repo.GetByID(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, seasonModel.ErrInvalidSeasonName
		}
		season.Name = name
	}
	if req.StartDate != nil {
		season.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		season.EndDate = *req.EndDate
	}
	if !season.EndDate.After(season.StartDate) {
		return nil, seasonModel.ErrInvalidDates
	}

	if err := s.repo.Update(ctx, season); err != nil {
		return nil, err
	}
	return season.ToResponse(), nil
}

// ActivateSeason marks a season active, deactivating all others in one
// transaction so exactly one season is active at a time.
func (s *service) ActivateSeason(ctx context.Context, seasonID string) (*seasonModel.SeasonResponse, error) {
	season, err := s.repo.GetByID(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)
		if err := txRepo.DeactivateAll(ctx); err != nil {
			return err
		}
		season.IsActive = true
		return txRepo.Update(ctx, season)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("season activated", "season_id", season.SeasonID)
	return season.ToResponse(), nil
}

// DeleteSeason removes a season.
func (s *service) DeleteSeason(ctx context.Context, seasonID string) error {
	return s.repo.Delete(ctx, seasonID)
}
