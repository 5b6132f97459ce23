package repository

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/daveonthegit/OutfAI/internal/models"
)

type OutfitRepository struct {
	db *sql.DB
}

func NewOutfitRepository(db *sql.DB) *OutfitRepository {
	return &OutfitRepository{db: db}
}

// InsertSnapshot stores a generated outfit.
func (r *OutfitRepository) InsertSnapshot(outfit models.Outfit) error {
	garmentIDs := make(pq.Int64Array, 0, len(outfit.GarmentIDs))
	for _, id := range outfit.GarmentIDs {
		garmentIDs = append(garmentIDs, int64(id))
	}
	_, err := r.db.Exec(`
		INSERT INTO outfit_snapshots (outfit_id, owner_id, garment_ids, score, explanation, generated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`, outfit.ID, outfit.OwnerID, garmentIDs, outfit.Score, outfit.Explanation)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

// ListByOwner retrieves the top N outfit snapshots for a wardrobe owner.
func (r *OutfitRepository) ListByOwner(ownerID, limit int) ([]models.OutfitSnapshot, error) {
	rows, err := r.db.Query(`
		SELECT id, outfit_id, owner_id, garment_ids, score, explanation, generated_at
		FROM outfit_snapshots
		WHERE owner_id = $1
		ORDER BY score DESC, id
		LIMIT $2
	`, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []models.OutfitSnapshot
	for rows.Next() {
		var s models.OutfitSnapshot
		var garmentIDs pq.Int64Array
		if err := rows.Scan(&s.ID, &s.OutfitID, &s.OwnerID, &garmentIDs, &s.Score, &s.Explanation, &s.GeneratedAt); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		s.GarmentIDs = make([]int, 0, len(garmentIDs))
		for _, id := range garmentIDs {
			s.GarmentIDs = append(s.GarmentIDs, int(id))
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}

// ClearByOwner removes all snapshots for an owner (before regeneration).
func (r *OutfitRepository) ClearByOwner(ownerID int) error {
	_, err := r.db.Exec(`DELETE FROM outfit_snapshots WHERE owner_id = $1`, ownerID)
	if err != nil {
		return fmt.Errorf("clear snapshots: %w", err)
	}
	return nil
}
