package model

import (
	"time"

	"github.com/google/uuid"
)

type ContentPage struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PageId        string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	Title         string     `gorm:"type:varchar(512);not null"`
	Body          string     `gorm:"type:text"`
	Space         string     `gorm:"type:varchar(255)"`
	SpaceId       int64      `gorm:"default:0"`
	SpaceKey      string     `gorm:"type:varchar(64);index"`
	Type          string     `gorm:"type:varchar(32)"`
	Version       int        `gorm:"default:1"`
	LastUpdate    time.Time  `gorm:"not null;index"`
	LastUpdater   string     `gorm:"type:varchar(255)"`
	Indexed       bool       `gorm:"default:false"`
	LastIndexedAt *time.Time `gorm:""`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
}

func (ContentPage) TableName() string {
	return "content_pages"
}
