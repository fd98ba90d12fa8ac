package contract

import (
	"context"

	"github.com/jvalenzano/forestgpt-app/internal/entity"

	"github.com/google/uuid"
)

type DebugLogRepository interface {
	Create(ctx context.Context, log *entity.DebugLog) error
	// FindByMessageId returns (nil, nil) when no log exists for the message.
	FindByMessageId(ctx context.Context, messageId uuid.UUID) (*entity.DebugLog, error)
}
