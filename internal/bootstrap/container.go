package bootstrap

import (
	"log"

	"github.com/jvalenzano/forestgpt-app/internal/config"
	"github.com/jvalenzano/forestgpt-app/internal/controller"
	"github.com/jvalenzano/forestgpt-app/internal/pkg/logger"
	"github.com/jvalenzano/forestgpt-app/internal/repository/contract"
	"github.com/jvalenzano/forestgpt-app/internal/repository/implementation"
	"github.com/jvalenzano/forestgpt-app/internal/repository/memory"
	"github.com/jvalenzano/forestgpt-app/internal/service"
	"github.com/jvalenzano/forestgpt-app/pkg/cache"
	"github.com/jvalenzano/forestgpt-app/pkg/llm/factory"
	"github.com/jvalenzano/forestgpt-app/pkg/pipeline/classifier"
	"github.com/jvalenzano/forestgpt-app/pkg/pipeline/processor"
	"github.com/jvalenzano/forestgpt-app/pkg/pipeline/ranker"
	"github.com/jvalenzano/forestgpt-app/pkg/pipeline/response"
	"github.com/jvalenzano/forestgpt-app/pkg/pipeline/scraper"
	"github.com/jvalenzano/forestgpt-app/pkg/pipeline/urlgen"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController controller.IChatController

	// Session store, shared with the session middleware
	SessionRepository *memory.SessionRepository

	Logger logger.ILogger
}

// NewContainer wires the whole dependency graph. The db handle may be nil,
// in which case messages and debug logs live in process memory only.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 1. Repositories
	var (
		messageRepo  contract.ChatMessageRepository
		cachedRepo   contract.CachedContentRepository
		debugLogRepo contract.DebugLogRepository
	)
	if db != nil {
		messageRepo = implementation.NewChatMessageRepository(db)
		cachedRepo = implementation.NewCachedContentRepository(db)
		debugLogRepo = implementation.NewDebugLogRepository(db)
	} else {
		log.Println("[INFO] No database configured, using in-memory storage")
		messageRepo = memory.NewChatMessageMemoryRepository()
		cachedRepo = memory.NewCachedContentMemoryRepository()
		debugLogRepo = memory.NewDebugLogMemoryRepository()
	}
	sessionRepo := memory.NewSessionRepository()

	// 2. Content cache backend
	var contentCache cache.ContentCache
	switch cfg.Cache.Backend {
	case "redis":
		redisCache, err := cache.NewRedisCache(cfg.Cache.RedisURL, cfg.Cache.TTL)
		if err != nil {
			log.Panicf("Unable to connect to Redis cache: %v", err)
		}
		contentCache = redisCache
		log.Println("[INFO] Using content cache: REDIS")
	case "database":
		if db == nil {
			log.Panicf("CACHE_BACKEND=database requires DB_CONNECTION_STRING")
		}
		contentCache = cache.NewDatabaseCache(cachedRepo, cfg.Cache.TTL)
		log.Println("[INFO] Using content cache: DATABASE")
	default:
		contentCache = cache.NewMemoryCache(cfg.Cache.TTL)
		log.Println("[INFO] Using content cache: MEMORY")
	}

	// 3. LLM provider
	baseURL := cfg.LLM.BaseURL
	if cfg.LLM.Provider == "ollama" {
		baseURL = cfg.LLM.OllamaBaseURL
	}
	llmProvider, err := factory.NewLLMProvider(cfg.LLM.Provider, cfg.LLM.Model, cfg.LLM.APIKey, baseURL)
	if err != nil {
		log.Panicf("Unable to initialize LLM provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.LLM.Provider, cfg.LLM.Model)

	// 4. Pipeline components
	limiter := scraper.NewIntervalLimiter(cfg.Scrape.MinRequestInterval)
	fetcher := scraper.NewFetcher(contentCache, limiter, cfg.Scrape.Timeout, sysLogger)
	urlGenerator := urlgen.NewGenerator(cfg.Scrape.Domain)
	contentScraper := scraper.NewScraper(fetcher, urlGenerator, sysLogger)
	contentProcessor := processor.NewProcessor(cfg.Scrape.Domain, cfg.Scrape.MaxChunkSize, sysLogger)
	queryClassifier := classifier.NewClassifier(llmProvider, sysLogger)

	sourceRanker := ranker.NewSourceRanker(ranker.DefaultSourceWeights(), ranker.DefaultImageWeights())
	tokenCounter := response.NewTokenCounter(cfg.LLM.Model)
	responseGenerator := response.NewGenerator(
		llmProvider,
		sourceRanker,
		tokenCounter,
		cfg.LLM.Model,
		cfg.Scrape.MaxContextTokens,
		sysLogger,
	)

	// 5. Services
	chatService := service.NewChatService(
		messageRepo,
		debugLogRepo,
		sessionRepo,
		queryClassifier,
		contentScraper,
		contentProcessor,
		responseGenerator,
		fetcher,
		sysLogger,
	)

	// 6. Controllers
	chatController := controller.NewChatController(chatService)

	return &Container{
		ChatController:    chatController,
		SessionRepository: sessionRepo,
		Logger:            sysLogger,
	}
}
