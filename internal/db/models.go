package db

import (
	"time"

	"gorm.io/datatypes"
)

type Script struct {
	ID         uint           `gorm:"primaryKey"`
	Title      string         `gorm:"size:200;not null"`
	Author     string         `gorm:"size:200"`
	Characters int            `gorm:"not null;default:0"`
	Source     datatypes.JSON `gorm:"type:jsonb;not null"`
	Options    datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time      `gorm:"not null"`
	UpdatedAt  time.Time      `gorm:"not null"`
}

type CatalogCharacter struct {
	ID        uint           `gorm:"primaryKey"`
	Key       string         `gorm:"size:64;uniqueIndex;not null"`
	Name      string         `gorm:"size:120;not null"`
	Team      string         `gorm:"size:32;not null"`
	Edition   string         `gorm:"size:32"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}

type CatalogJinx struct {
	ID        uint      `gorm:"primaryKey"`
	FirstKey  string    `gorm:"size:64;not null;uniqueIndex:idx_catalog_jinxes_pair"`
	SecondKey string    `gorm:"size:64;not null;uniqueIndex:idx_catalog_jinxes_pair"`
	Text      string    `gorm:"type:text;not null"`
	OldText   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
