package implementation

import (
	"context"
	"errors"

	"github.com/jvalenzano/forestgpt-app/internal/entity"
	"github.com/jvalenzano/forestgpt-app/internal/mapper"
	"github.com/jvalenzano/forestgpt-app/internal/model"
	"github.com/jvalenzano/forestgpt-app/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatMessageRepository(db *gorm.DB) contract.ChatMessageRepository {
	return &ChatMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatMessageRepositoryImpl) Create(ctx context.Context, message *entity.ChatMessage) error {
	m := r.mapper.ChatMessageToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*message = *r.mapper.ChatMessageToEntity(m)
	return nil
}

func (r *ChatMessageRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.ChatMessage, error) {
	var m model.ChatMessage
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ChatMessageToEntity(&m), nil
}

func (r *ChatMessageRepositoryImpl) FindBySessionId(ctx context.Context, sessionId string) ([]*entity.ChatMessage, error) {
	var models []model.ChatMessage
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionId).
		Order("created_at asc").
		Find(&models).Error; err != nil {
		return nil, err
	}

	messages := make([]*entity.ChatMessage, 0, len(models))
	for i := range models {
		messages = append(messages, r.mapper.ChatMessageToEntity(&models[i]))
	}
	return messages, nil
}
