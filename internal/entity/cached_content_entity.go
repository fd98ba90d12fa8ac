package entity

import (
	"time"

	"github.com/google/uuid"
)

type CachedContent struct {
	Id        uuid.UUID
	Url       string
	Content   string
	FetchedAt time.Time
	ExpiresAt time.Time
}
