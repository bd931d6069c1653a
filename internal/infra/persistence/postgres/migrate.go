package postgres

import (
	"context"

	"cafemap/internal/errors"
	"cafemap/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Indexes GORM tags cannot express.
var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS postgis`,
	`CREATE INDEX IF NOT EXISTS idx_cafes_geog ON cafes USING GIST ((ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography))`,
	`CREATE INDEX IF NOT EXISTS idx_cafes_features ON cafes USING GIN (features jsonb_path_ops)`,
}

// Migrate creates the cafe schema. It is safe to run on every start.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.Exec(schemaStatements[0]).Error; err != nil {
		return errors.Wrap(err, "failed to enable postgis")
	}

	if err := db.AutoMigrate(&model.CafeModel{}, &model.ReviewModel{}, &model.SubmitterContactModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate cafe schema")
	}

	for _, stmt := range schemaStatements[1:] {
		if err := db.Exec(stmt).Error; err != nil {
			return errors.Wrapf(err, "failed to execute %q", stmt)
		}
	}

	return nil
}
