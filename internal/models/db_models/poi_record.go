package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// POIRecord is the Postgres row behind a catalog entry. Opening hours are
// stored as "HH:MM" strings, same format as the CSV seed.
type POIRecord struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ExternalID    string         `gorm:"uniqueIndex;not null"`
	Name          string         `gorm:"not null"`
	Latitude      float64        `gorm:"not null"`
	Longitude     float64        `gorm:"not null"`
	Category      string         `gorm:"not null"`
	PriceTier     string         `gorm:"type:varchar(3);not null"`
	AvgDwellMin   int            `gorm:"not null;check:avg_dwell_min > 0"`
	AdmissionCost float64        `gorm:"not null;check:admission_cost >= 0"`
	OpenFrom      string         `gorm:"type:varchar(5);not null"`
	OpenTo        string         `gorm:"type:varchar(5);not null"`
	Tags          pq.StringArray `gorm:"type:text[]"`
	CreatedAt     int64          `gorm:"autoCreateTime"`
	UpdatedAt     int64          `gorm:"autoUpdateTime"`
}

func (POIRecord) TableName() string {
	return "poi_records"
}

func (p *POIRecord) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now().Unix()
	p.CreatedAt = now
	p.UpdatedAt = now
	return nil
}

func (p *POIRecord) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now().Unix()
	return nil
}
