package repository

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/daveonthegit/OutfAI/internal/models"
)

type GarmentRepository struct {
	db *sql.DB
}

func NewGarmentRepository(db *sql.DB) *GarmentRepository {
	return &GarmentRepository{db: db}
}

// ListByOwner returns a wardrobe in id-ascending order. The stable order
// matters: the engine picks "first" shoes and accessories by id.
func (r *GarmentRepository) ListByOwner(ownerID int) ([]models.Garment, error) {
	rows, err := r.db.Query(`
		SELECT id, owner_id, category, primary_color, material, season, tags, created_at
		FROM garments
		WHERE owner_id = $1
		ORDER BY id
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query garments: %w", err)
	}
	defer rows.Close()

	var garments []models.Garment
	for rows.Next() {
		var g models.Garment
		if err := rows.Scan(
			&g.ID, &g.OwnerID, &g.Category, &g.PrimaryColor,
			&g.Material, &g.Season, pq.Array(&g.Tags), &g.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan garment: %w", err)
		}
		garments = append(garments, g)
	}
	return garments, rows.Err()
}

// Get returns a garment by id.
func (r *GarmentRepository) Get(id int) (*models.Garment, error) {
	var g models.Garment
	err := r.db.QueryRow(`
		SELECT id, owner_id, category, primary_color, material, season, tags, created_at
		FROM garments WHERE id = $1
	`, id).Scan(
		&g.ID, &g.OwnerID, &g.Category, &g.PrimaryColor,
		&g.Material, &g.Season, pq.Array(&g.Tags), &g.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// Create inserts a new garment into a wardrobe.
func (r *GarmentRepository) Create(ownerID int, req models.CreateGarmentRequest) (*models.Garment, error) {
	season := req.Season
	if season == "" {
		season = models.SeasonAllSeason
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	var g models.Garment
	err := r.db.QueryRow(`
		INSERT INTO garments (owner_id, category, primary_color, material, season, tags)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, owner_id, category, primary_color, material, season, tags, created_at
	`, ownerID, req.Category, req.PrimaryColor, req.Material, season, pq.Array(tags)).Scan(
		&g.ID, &g.OwnerID, &g.Category, &g.PrimaryColor,
		&g.Material, &g.Season, pq.Array(&g.Tags), &g.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create garment: %w", err)
	}
	return &g, nil
}

// Delete removes a garment.
func (r *GarmentRepository) Delete(id int) error {
	result, err := r.db.Exec(`DELETE FROM garments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete garment: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
