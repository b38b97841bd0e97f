package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"roamly/internal/models/db_models"
)

type POIRecordRepository interface {
	Create(ctx context.Context, record *db_models.POIRecord) (uuid.UUID, error)
	GetByExternalID(ctx context.Context, externalID string) (*db_models.POIRecord, error)
	ListAll(ctx context.Context) ([]db_models.POIRecord, error)
}

type poiRecordRepository struct {
	db *gorm.DB
}

func NewPOIRecordRepository(db *gorm.DB) POIRecordRepository {
	return &poiRecordRepository{db: db}
}

func (r *poiRecordRepository) Create(ctx context.Context, record *db_models.POIRecord) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return uuid.Nil, err
	}
	return record.ID, nil
}

func (r *poiRecordRepository) GetByExternalID(ctx context.Context, externalID string) (*db_models.POIRecord, error) {
	var record db_models.POIRecord
	err := r.db.WithContext(ctx).
		First(&record, "external_id = ?", externalID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// ListAll feeds the startup catalog load; ordering is stable so catalog
// order (and with it greedy tie-breaking) does not change between boots.
func (r *poiRecordRepository) ListAll(ctx context.Context) ([]db_models.POIRecord, error) {
	var records []db_models.POIRecord
	err := r.db.WithContext(ctx).
		Order("created_at, external_id").
		Find(&records).Error

	if err != nil {
		return nil, err
	}
	return records, nil
}
