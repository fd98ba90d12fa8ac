package model

import (
	"time"

	"github.com/google/uuid"
)

type CachedContent struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Url       string    `gorm:"type:text;not null;uniqueIndex"`
	Content   string    `gorm:"type:text;not null"`
	FetchedAt time.Time `gorm:"autoCreateTime"`
	ExpiresAt time.Time `gorm:"index"`
}

func (CachedContent) TableName() string {
	return "cached_content"
}
