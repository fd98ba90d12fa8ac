package entity

import (
	"time"

	"github.com/jvalenzano/forestgpt-app/pkg/store"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id        uuid.UUID
	SessionId string
	Role      string
	Content   string
	Sources   []store.Source
	Images    []store.Image
	CreatedAt time.Time
}
