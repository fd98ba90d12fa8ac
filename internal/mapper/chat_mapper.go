package mapper

import (
	"encoding/json"

	"github.com/jvalenzano/forestgpt-app/internal/entity"
	"github.com/jvalenzano/forestgpt-app/internal/model"
	"github.com/jvalenzano/forestgpt-app/pkg/store"

	"gorm.io/datatypes"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Message Mappers

func (m *ChatMapper) ChatMessageToModel(e *entity.ChatMessage) *model.ChatMessage {
	if e == nil {
		return nil
	}
	return &model.ChatMessage{
		Id:        e.Id,
		SessionId: e.SessionId,
		Role:      e.Role,
		Content:   e.Content,
		Sources:   toJSON(e.Sources),
		Images:    toJSON(e.Images),
		CreatedAt: e.CreatedAt,
	}
}

func (m *ChatMapper) ChatMessageToEntity(mm *model.ChatMessage) *entity.ChatMessage {
	if mm == nil {
		return nil
	}
	var sources []store.Source
	fromJSON(mm.Sources, &sources)
	var images []store.Image
	fromJSON(mm.Images, &images)

	return &entity.ChatMessage{
		Id:        mm.Id,
		SessionId: mm.SessionId,
		Role:      mm.Role,
		Content:   mm.Content,
		Sources:   sources,
		Images:    images,
		CreatedAt: mm.CreatedAt,
	}
}

// Cached Content Mappers

func (m *ChatMapper) CachedContentToModel(e *entity.CachedContent) *model.CachedContent {
	if e == nil {
		return nil
	}
	return &model.CachedContent{
		Id:        e.Id,
		Url:       e.Url,
		Content:   e.Content,
		FetchedAt: e.FetchedAt,
		ExpiresAt: e.ExpiresAt,
	}
}

func (m *ChatMapper) CachedContentToEntity(mm *model.CachedContent) *entity.CachedContent {
	if mm == nil {
		return nil
	}
	return &entity.CachedContent{
		Id:        mm.Id,
		Url:       mm.Url,
		Content:   mm.Content,
		FetchedAt: mm.FetchedAt,
		ExpiresAt: mm.ExpiresAt,
	}
}

// Debug Log Mappers

func (m *ChatMapper) DebugLogToModel(e *entity.DebugLog) *model.DebugLog {
	if e == nil {
		return nil
	}
	return &model.DebugLog{
		Id:                  e.Id,
		SessionId:           e.SessionId,
		MessageId:           e.MessageId,
		QueryClassification: toJSON(e.QueryClassification),
		ScrapedUrls:         toJSON(e.ScrapedUrls),
		ContentProcessing:   toJSON(e.ContentProcessing),
		LLMDetails:          toJSON(e.LLMDetails),
		RawContentPreview:   e.RawContentPreview,
		CreatedAt:           e.CreatedAt,
	}
}

func (m *ChatMapper) DebugLogToEntity(mm *model.DebugLog) *entity.DebugLog {
	if mm == nil {
		return nil
	}
	e := &entity.DebugLog{
		Id:                mm.Id,
		SessionId:         mm.SessionId,
		MessageId:         mm.MessageId,
		RawContentPreview: mm.RawContentPreview,
		CreatedAt:         mm.CreatedAt,
	}
	fromJSON(mm.QueryClassification, &e.QueryClassification)
	fromJSON(mm.ScrapedUrls, &e.ScrapedUrls)
	fromJSON(mm.ContentProcessing, &e.ContentProcessing)
	fromJSON(mm.LLMDetails, &e.LLMDetails)
	return e
}

// toJSON marshals owned value types; these cannot fail at runtime.
func toJSON(v interface{}) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("null")
	}
	return datatypes.JSON(b)
}

func fromJSON(data datatypes.JSON, out interface{}) {
	if len(data) == 0 {
		return
	}
	_ = json.Unmarshal(data, out)
}
