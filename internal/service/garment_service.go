package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/daveonthegit/OutfAI/internal/models"
)

var ErrGarmentNotFound = errors.New("garment not found")

// GarmentStore is the wardrobe storage surface the garment service needs.
type GarmentStore interface {
	ListByOwner(ownerID int) ([]models.Garment, error)
	Get(id int) (*models.Garment, error)
	Create(ownerID int, req models.CreateGarmentRequest) (*models.Garment, error)
	Delete(id int) error
}

type GarmentService struct {
	repo GarmentStore
	rdb  *redis.Client
}

func NewGarmentService(repo GarmentStore, rdb *redis.Client) *GarmentService {
	return &GarmentService{repo: repo, rdb: rdb}
}

func (s *GarmentService) List(ctx context.Context, ownerID int) ([]models.Garment, error) {
	return s.repo.ListByOwner(ownerID)
}

func (s *GarmentService) Create(ctx context.Context, ownerID int, req models.CreateGarmentRequest) (*models.Garment, error) {
	if !models.ValidCategories[req.Category] {
		return nil, fmt.Errorf("invalid category: %s", req.Category)
	}
	if req.Season != "" && !models.ValidSeasons[req.Season] {
		return nil, fmt.Errorf("invalid season: %s", req.Season)
	}

	garment, err := s.repo.Create(ownerID, req)
	if err != nil {
		return nil, err
	}

	s.invalidateRecommendations(ctx, ownerID)
	return garment, nil
}

func (s *GarmentService) Delete(ctx context.Context, id int) error {
	garment, err := s.repo.Get(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrGarmentNotFound
		}
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrGarmentNotFound
		}
		return err
	}

	s.invalidateRecommendations(ctx, garment.OwnerID)
	return nil
}

// invalidateRecommendations drops every cached recommendation response for
// an owner after their wardrobe changes.
func (s *GarmentService) invalidateRecommendations(ctx context.Context, ownerID int) {
	if s.rdb == nil {
		return
	}
	iter := s.rdb.Scan(ctx, 0, fmt.Sprintf("recommendations:%d:*", ownerID), 100).Iterator()
	for iter.Next(ctx) {
		s.rdb.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		slog.Warn("failed to invalidate recommendation cache", "owner_id", ownerID, "error", err)
	}
}
