package entity

import (
	"time"

	"github.com/jvalenzano/forestgpt-app/pkg/store"

	"github.com/google/uuid"
)

// ContentProcessingStats records pipeline sizes in bytes; the debug
// endpoint converts them to KB for display.
type ContentProcessingStats struct {
	RawContentSize int `json:"rawContentSize"`
	ProcessedSize  int `json:"processedSize"`
	Chunks         int `json:"chunks"`
}

type DebugLog struct {
	Id                  uuid.UUID
	SessionId           string
	MessageId           uuid.UUID
	QueryClassification store.Classification
	ScrapedUrls         []store.URLStatus
	ContentProcessing   ContentProcessingStats
	LLMDetails          store.LLMDetails
	RawContentPreview   string
	CreatedAt           time.Time
}
