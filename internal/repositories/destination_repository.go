package repositories

import (
	"context"
	"errors"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"voyago/internal/models/db_models"
)

type DestinationRepository interface {
	Upsert(ctx context.Context, destination *db_models.DestinationEmbedding) error
	FindByID(ctx context.Context, destinationID string) (*db_models.DestinationEmbedding, error)
	SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.DestinationEmbedding, error)
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{
		db: db,
	}
}

func (d *destinationRepository) Upsert(ctx context.Context, destination *db_models.DestinationEmbedding) error {
	return d.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "destination_id"}},
			UpdateAll: true,
		}).
		Create(destination).Error
}

func (d *destinationRepository) FindByID(ctx context.Context, destinationID string) (*db_models.DestinationEmbedding, error) {
	var destination db_models.DestinationEmbedding
	err := d.db.WithContext(ctx).First(&destination, "destination_id = ?", destinationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &destination, nil
}

func (d *destinationRepository) SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.DestinationEmbedding, error) {
	var results []db_models.DestinationEmbedding

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM destination_embeddings
        WHERE (1 - (embedding <=> $1)) > 0.5
        ORDER BY embedding <=> $1
        LIMIT $2
    `

	err := d.db.WithContext(ctx).Raw(query, vector.String(), limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
