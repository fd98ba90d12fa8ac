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

type DebugLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewDebugLogRepository(db *gorm.DB) contract.DebugLogRepository {
	return &DebugLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *DebugLogRepositoryImpl) Create(ctx context.Context, log *entity.DebugLog) error {
	m := r.mapper.DebugLogToModel(log)
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *DebugLogRepositoryImpl) FindByMessageId(ctx context.Context, messageId uuid.UUID) (*entity.DebugLog, error) {
	var m model.DebugLog
	if err := r.db.WithContext(ctx).First(&m, "message_id = ?", messageId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.DebugLogToEntity(&m), nil
}
