package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DebugLog struct {
	Id                  uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId           string         `gorm:"type:varchar(64);not null;index"`
	MessageId           uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	QueryClassification datatypes.JSON `gorm:"type:jsonb"`
	ScrapedUrls         datatypes.JSON `gorm:"type:jsonb"`
	ContentProcessing   datatypes.JSON `gorm:"type:jsonb"`
	LLMDetails          datatypes.JSON `gorm:"type:jsonb;column:llm_details"`
	RawContentPreview   string         `gorm:"type:text"`
	CreatedAt           time.Time      `gorm:"autoCreateTime"`
}

func (DebugLog) TableName() string {
	return "debug_logs"
}
