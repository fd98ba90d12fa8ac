package implementation

import (
	"context"
	"errors"

	"github.com/jvalenzano/forestgpt-app/internal/entity"
	"github.com/jvalenzano/forestgpt-app/internal/mapper"
	"github.com/jvalenzano/forestgpt-app/internal/model"
	"github.com/jvalenzano/forestgpt-app/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CachedContentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewCachedContentRepository(db *gorm.DB) contract.CachedContentRepository {
	return &CachedContentRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *CachedContentRepositoryImpl) FindByUrl(ctx context.Context, url string) (*entity.CachedContent, error) {
	var m model.CachedContent
	if err := r.db.WithContext(ctx).First(&m, "url = ?", url).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CachedContentToEntity(&m), nil
}

func (r *CachedContentRepositoryImpl) Upsert(ctx context.Context, content *entity.CachedContent) error {
	m := r.mapper.CachedContentToModel(content)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "url"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "fetched_at", "expires_at"}),
		}).
		Create(m).Error
}

func (r *CachedContentRepositoryImpl) DeleteByUrl(ctx context.Context, url string) error {
	return r.db.WithContext(ctx).Where("url = ?", url).Delete(&model.CachedContent{}).Error
}
