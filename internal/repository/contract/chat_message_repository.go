package contract

import (
	"context"

	"github.com/jvalenzano/forestgpt-app/internal/entity"

	"github.com/google/uuid"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.ChatMessage, error)
	FindBySessionId(ctx context.Context, sessionId string) ([]*entity.ChatMessage, error)
}
