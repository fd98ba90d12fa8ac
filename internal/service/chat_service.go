package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jvalenzano/forestgpt-app/internal/constant"
	"github.com/jvalenzano/forestgpt-app/internal/dto"
	"github.com/jvalenzano/forestgpt-app/internal/entity"
	"github.com/jvalenzano/forestgpt-app/internal/pkg/logger"
	"github.com/jvalenzano/forestgpt-app/internal/repository/contract"
	"github.com/jvalenzano/forestgpt-app/internal/repository/memory"
	"github.com/jvalenzano/forestgpt-app/pkg/pipeline/classifier"
	"github.com/jvalenzano/forestgpt-app/pkg/pipeline/processor"
	"github.com/jvalenzano/forestgpt-app/pkg/pipeline/ranker"
	"github.com/jvalenzano/forestgpt-app/pkg/pipeline/response"
	"github.com/jvalenzano/forestgpt-app/pkg/pipeline/scraper"
	"github.com/jvalenzano/forestgpt-app/pkg/store"

	"github.com/google/uuid"
)

var (
	ErrDebugDisabled = errors.New("debug mode is not enabled")
	ErrNoMessages    = errors.New("no messages found for this session")
	ErrNoDebugLog    = errors.New("no debug log found for the latest message")
)

type IChatService interface {
	SendChat(ctx context.Context, sessionId string, request *dto.ChatRequest) (*dto.ChatResponse, error)
	ToggleDebug(ctx context.Context, sessionId string, enabled bool) error
	GetDebugInfo(ctx context.Context, sessionId string) (*dto.DebugInformation, error)
	TestScrape(ctx context.Context) (*dto.TestScrapeResponse, error)
}

// chatService runs the query-to-answer pipeline for each chat turn:
// classify, scrape, process, generate, persist, and optionally record
// debug telemetry.
type chatService struct {
	messageRepo  contract.ChatMessageRepository
	debugLogRepo contract.DebugLogRepository
	sessions     *memory.SessionRepository

	queryClassifier   *classifier.Classifier
	contentScraper    *scraper.Scraper
	contentProcessor  *processor.Processor
	responseGenerator *response.Generator
	fetcher           *scraper.Fetcher

	log logger.ILogger
}

func NewChatService(
	messageRepo contract.ChatMessageRepository,
	debugLogRepo contract.DebugLogRepository,
	sessions *memory.SessionRepository,
	queryClassifier *classifier.Classifier,
	contentScraper *scraper.Scraper,
	contentProcessor *processor.Processor,
	responseGenerator *response.Generator,
	fetcher *scraper.Fetcher,
	log logger.ILogger,
) IChatService {
	return &chatService{
		messageRepo:       messageRepo,
		debugLogRepo:      debugLogRepo,
		sessions:          sessions,
		queryClassifier:   queryClassifier,
		contentScraper:    contentScraper,
		contentProcessor:  contentProcessor,
		responseGenerator: responseGenerator,
		fetcher:           fetcher,
		log:               log,
	}
}

func (s *chatService) SendChat(ctx context.Context, sessionId string, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	session, found := s.sessions.Get(sessionId)
	if !found {
		session = &store.Session{ID: sessionId}
		s.sessions.Save(session)
	}

	userMessage := &entity.ChatMessage{
		Id:        uuid.New(),
		SessionId: sessionId,
		Role:      constant.ChatMessageRoleUser,
		Content:   request.Message,
		CreatedAt: time.Now(),
	}
	if err := s.messageRepo.Create(ctx, userMessage); err != nil {
		return nil, err
	}

	// 1. Classify the query
	classification := s.queryClassifier.Classify(ctx, request.Message)

	// 2. Scrape relevant content based on classification
	bundle := s.contentScraper.Scrape(ctx, request.Message, classification)

	// 3. Process content
	processed := s.contentProcessor.Process(bundle)

	// 4. Generate response with LLM
	result := s.responseGenerator.Generate(ctx, request.Message, processed)

	sources := s.enhanceSourceTitles(ctx, result.Sources)

	botMessage := &entity.ChatMessage{
		Id:        uuid.New(),
		SessionId: sessionId,
		Role:      constant.ChatMessageRoleBot,
		Content:   result.ResponseHTML,
		Sources:   sources,
		Images:    result.Images,
		CreatedAt: time.Now(),
	}
	if err := s.messageRepo.Create(ctx, botMessage); err != nil {
		return nil, err
	}

	resp := &dto.ChatResponse{
		Message: dto.ChatMessageResponse{
			Id:        botMessage.Id.String(),
			Role:      botMessage.Role,
			Content:   botMessage.Content,
			Timestamp: botMessage.CreatedAt,
			Sources:   sources,
			Images:    result.Images,
		},
	}

	if session.DebugMode {
		debugLog := &entity.DebugLog{
			Id:                  uuid.New(),
			SessionId:           sessionId,
			MessageId:           botMessage.Id,
			QueryClassification: classification,
			ScrapedUrls:         bundle.URLStatuses,
			ContentProcessing: entity.ContentProcessingStats{
				RawContentSize: bundle.RawSize,
				ProcessedSize:  processed.ProcessedSize,
				Chunks:         len(processed.Chunks),
			},
			LLMDetails:        result.Details,
			RawContentPreview: bundle.Preview,
			CreatedAt:         time.Now(),
		}
		if err := s.debugLogRepo.Create(ctx, debugLog); err != nil {
			// Debug telemetry is best-effort; the answer still goes out
			s.log.Warn("chat", "failed to persist debug log", map[string]interface{}{"error": err.Error()})
		}
		resp.DebugInfo = debugInfoFromLog(debugLog)
	}

	return resp, nil
}

func (s *chatService) ToggleDebug(_ context.Context, sessionId string, enabled bool) error {
	session, found := s.sessions.Get(sessionId)
	if !found {
		session = &store.Session{ID: sessionId}
	}
	session.DebugMode = enabled
	s.sessions.Save(session)
	return nil
}

func (s *chatService) GetDebugInfo(ctx context.Context, sessionId string) (*dto.DebugInformation, error) {
	session, found := s.sessions.Get(sessionId)
	if !found || !session.DebugMode {
		return nil, ErrDebugDisabled
	}

	messages, err := s.messageRepo.FindBySessionId(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, ErrNoMessages
	}

	var latestBot *entity.ChatMessage
	for _, m := range messages {
		if m.Role == constant.ChatMessageRoleBot {
			latestBot = m
		}
	}
	if latestBot == nil {
		return nil, ErrNoMessages
	}

	debugLog, err := s.debugLogRepo.FindByMessageId(ctx, latestBot.Id)
	if err != nil {
		return nil, err
	}
	if debugLog == nil {
		return nil, ErrNoDebugLog
	}

	return debugInfoFromLog(debugLog), nil
}

// TestScrape exercises the scrape path with a fixed query so operators can
// check connectivity to the target site.
func (s *chatService) TestScrape(ctx context.Context) (*dto.TestScrapeResponse, error) {
	start := time.Now()

	bundle := s.contentScraper.Scrape(ctx, "hiking trails", classifier.DefaultClassification())
	s.log.Info("chat", "test scrape complete", map[string]interface{}{
		"urls":     len(bundle.URLStatuses),
		"raw_size": bundle.RawSize,
	})

	return &dto.TestScrapeResponse{
		Success:  true,
		Message:  "Test scrape completed, check server logs for details",
		Duration: fmt.Sprintf("%.2f seconds", time.Since(start).Seconds()),
	}, nil
}

// enhanceSourceTitles fetches each cited page (almost always a cache hit by
// now) and attaches a display title. Sentinel sources pass through as-is.
func (s *chatService) enhanceSourceTitles(ctx context.Context, sources []store.Source) []store.Source {
	if len(sources) == 0 {
		return sources
	}
	enhanced := make([]store.Source, 0, len(sources))
	for _, src := range sources {
		if src.URL == store.SentinelNoInformation || src.URL == store.SentinelError {
			enhanced = append(enhanced, src)
			continue
		}
		res := s.fetcher.Fetch(ctx, src.URL)
		if res.Status == 200 && res.HTML != "" {
			src.Title = ranker.ExtractPageTitle(res.HTML, src.URL)
		}
		enhanced = append(enhanced, src)
	}
	return enhanced
}

func debugInfoFromLog(log *entity.DebugLog) *dto.DebugInformation {
	return &dto.DebugInformation{
		QueryClassification: log.QueryClassification,
		ScrapedUrls:         log.ScrapedUrls,
		ContentProcessing: dto.ContentProcessingInfo{
			RawContentSize: float64(log.ContentProcessing.RawContentSize) / 1024,
			ProcessedSize:  float64(log.ContentProcessing.ProcessedSize) / 1024,
			Chunks:         log.ContentProcessing.Chunks,
		},
		LLMDetails:        log.LLMDetails,
		RawContentPreview: log.RawContentPreview,
	}
}
