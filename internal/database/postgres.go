package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"github.com/daveonthegit/OutfAI/internal/config"
)

func NewPostgres(cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)

	slog.Info("connected to PostgreSQL", "db", cfg.DBName)

	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func runMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS garments (
			id SERIAL PRIMARY KEY,
			owner_id INTEGER NOT NULL,
			category VARCHAR(20) NOT NULL,
			primary_color VARCHAR(50) NOT NULL,
			material VARCHAR(100) NOT NULL DEFAULT '',
			season VARCHAR(20) NOT NULL DEFAULT 'all-season',
			tags TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS outfit_snapshots (
			id SERIAL PRIMARY KEY,
			outfit_id VARCHAR(36) NOT NULL,
			owner_id INTEGER NOT NULL,
			garment_ids INTEGER[] NOT NULL,
			score INTEGER NOT NULL,
			explanation TEXT NOT NULL DEFAULT '',
			generated_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_garments_owner_id ON garments(owner_id)`,
		`CREATE INDEX IF NOT EXISTS idx_outfit_snapshots_owner_id ON outfit_snapshots(owner_id)`,
		`CREATE INDEX IF NOT EXISTS idx_outfit_snapshots_score ON outfit_snapshots(score DESC)`,
		// Seed a demo wardrobe if the table is empty
		`INSERT INTO garments (owner_id, category, primary_color, material, season, tags)
		 SELECT v.owner_id, v.category, v.primary_color, v.material, v.season, v.tags::text[]
		 FROM (VALUES
			(1, 'top', 'white', 'cotton', 'all-season', '{casual,versatile-high,minimalist}'),
			(1, 'top', 'blue', 'linen', 'summer', '{casual,weekend}'),
			(1, 'top', 'black', 'silk', 'all-season', '{formal,work,classic}'),
			(1, 'bottom', 'navy', 'denim', 'all-season', '{casual,versatile-high}'),
			(1, 'bottom', 'gray', 'wool', 'winter', '{formal,work,classic}'),
			(1, 'shoes', 'white', 'canvas', 'all-season', '{casual,versatile-high,minimalist}'),
			(1, 'shoes', 'black', 'leather', 'all-season', '{formal,work,classic,versatile-medium}'),
			(1, 'outerwear', 'beige', 'wool', 'winter', '{classic,work}'),
			(1, 'accessory', 'black', 'leather', 'all-season', '{versatile-high,classic}'),
			(1, 'accessory', 'orange', 'knit', 'fall', '{casual,weekend,bold}')
		 ) AS v(owner_id, category, primary_color, material, season, tags)
		 WHERE NOT EXISTS (SELECT 1 FROM garments)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}

	slog.Info("database migrations completed")
	return nil
}
