package dto

import (
	"time"

	"github.com/jvalenzano/forestgpt-app/pkg/store"
)

type ChatRequest struct {
	Message string `json:"message" validate:"required,min=1,max=500"`
}

type ChatMessageResponse struct {
	Id        string         `json:"id"`
	Role      string         `json:"role"`
	Content   string         `json:"content"`
	Timestamp time.Time      `json:"timestamp"`
	Sources   []store.Source `json:"sources"`
	Images    []store.Image  `json:"images"`
}

type ChatResponse struct {
	Message   ChatMessageResponse `json:"message"`
	DebugInfo *DebugInformation   `json:"debugInfo,omitempty"`
}

type DebugToggleRequest struct {
	IsEnabled *bool `json:"isEnabled" validate:"required"`
}

type DebugToggleResponse struct {
	Success bool `json:"success"`
}

// ContentProcessingInfo reports pipeline sizes in KB for display.
type ContentProcessingInfo struct {
	RawContentSize float64 `json:"rawContentSize"`
	ProcessedSize  float64 `json:"processedSize"`
	Chunks         int     `json:"chunks"`
}

type DebugInformation struct {
	QueryClassification store.Classification  `json:"queryClassification"`
	ScrapedUrls         []store.URLStatus     `json:"scrapedUrls"`
	ContentProcessing   ContentProcessingInfo `json:"contentProcessing"`
	LLMDetails          store.LLMDetails      `json:"llmDetails"`
	RawContentPreview   string                `json:"rawContentPreview"`
}

type TestScrapeResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Duration string `json:"duration"`
}
