package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

type DestinationEmbedding struct {
	DestinationID string `gorm:"primaryKey;column:destination_id"`
	Name          string
	Country       string
	Region        string
	Aliases       pq.StringArray  `gorm:"type:text[]"`
	Summary       string
	Embedding     pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt     time.Time       `gorm:"autoCreateTime"`
}
