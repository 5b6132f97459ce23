package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/daveonthegit/OutfAI/internal/engine"
	"github.com/daveonthegit/OutfAI/internal/models"
)

const recommendationCacheTTL = 10 * time.Minute

// GarmentSource supplies a wardrobe for recommendation. Garments must come
// back in id-ascending order.
type GarmentSource interface {
	ListByOwner(ownerID int) ([]models.Garment, error)
}

// SnapshotStore persists generated outfits.
type SnapshotStore interface {
	InsertSnapshot(outfit models.Outfit) error
	ListByOwner(ownerID, limit int) ([]models.OutfitSnapshot, error)
	ClearByOwner(ownerID int) error
}

type RecommendationService struct {
	garments GarmentSource
	outfits  SnapshotStore
	rdb      *redis.Client
	engine   *engine.Engine
}

func NewRecommendationService(garments GarmentSource, outfits SnapshotStore, rdb *redis.Client, eng *engine.Engine) *RecommendationService {
	return &RecommendationService{
		garments: garments,
		outfits:  outfits,
		rdb:      rdb,
		engine:   eng,
	}
}

// Recommend generates outfit recommendations for the context's owner.
func (s *RecommendationService) Recommend(ctx context.Context, rc models.RecommendationContext) (*models.RecommendationResult, error) {
	cacheKey := recommendationCacheKey(rc)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var result models.RecommendationResult
			if json.Unmarshal([]byte(cached), &result) == nil {
				slog.Debug("recommendations cache hit", "owner_id", rc.OwnerID)
				return &result, nil
			}
		}
	}

	garments, err := s.garments.ListByOwner(rc.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("list garments: %w", err)
	}

	result := s.engine.GenerateOutfits(garments, rc)

	// Persist snapshots asynchronously
	if result.Outcome == models.OutcomeOK {
		outfits := result.Outfits
		go func() {
			if err := s.outfits.ClearByOwner(rc.OwnerID); err != nil {
				slog.Warn("failed to clear outfit snapshots", "owner_id", rc.OwnerID, "error", err)
				return
			}
			for _, outfit := range outfits {
				if err := s.outfits.InsertSnapshot(outfit); err != nil {
					slog.Warn("failed to store outfit snapshot", "owner_id", rc.OwnerID, "error", err)
				}
			}
		}()
	}

	if s.rdb != nil {
		if data, err := json.Marshal(result); err == nil {
			s.rdb.Set(ctx, cacheKey, data, recommendationCacheTTL)
		}
	}

	return &result, nil
}

// GetOutfits returns the persisted snapshots for an owner.
func (s *RecommendationService) GetOutfits(ctx context.Context, ownerID, limit int) ([]models.OutfitSnapshot, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.outfits.ListByOwner(ownerID, limit)
}

func recommendationCacheKey(rc models.RecommendationContext) string {
	temp := "na"
	if rc.Temperature != nil {
		temp = strconv.FormatFloat(*rc.Temperature, 'f', 1, 64)
	}
	return fmt.Sprintf("recommendations:%d:%s:%s:%s:%d", rc.OwnerID, rc.Mood, rc.Weather, temp, rc.Limit)
}
