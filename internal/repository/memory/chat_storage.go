package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jvalenzano/forestgpt-app/internal/entity"
	"github.com/jvalenzano/forestgpt-app/internal/repository/contract"

	"github.com/google/uuid"
)

// In-memory storage implementations. Interchangeable with the GORM-backed
// ones; used when no database is configured and in tests.

type ChatMessageMemoryRepository struct {
	mu        sync.RWMutex
	byId      map[uuid.UUID]*entity.ChatMessage
	bySession map[string][]*entity.ChatMessage
}

var _ contract.ChatMessageRepository = &ChatMessageMemoryRepository{}

func NewChatMessageMemoryRepository() *ChatMessageMemoryRepository {
	return &ChatMessageMemoryRepository{
		byId:      make(map[uuid.UUID]*entity.ChatMessage),
		bySession: make(map[string][]*entity.ChatMessage),
	}
}

func (r *ChatMessageMemoryRepository) Create(_ context.Context, message *entity.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	copied := *message
	r.byId[copied.Id] = &copied
	r.bySession[copied.SessionId] = append(r.bySession[copied.SessionId], &copied)
	return nil
}

func (r *ChatMessageMemoryRepository) FindById(_ context.Context, id uuid.UUID) (*entity.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if m, ok := r.byId[id]; ok {
		copied := *m
		return &copied, nil
	}
	return nil, nil
}

func (r *ChatMessageMemoryRepository) FindBySessionId(_ context.Context, sessionId string) ([]*entity.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.bySession[sessionId]
	out := make([]*entity.ChatMessage, 0, len(stored))
	for _, m := range stored {
		copied := *m
		out = append(out, &copied)
	}
	return out, nil
}

type CachedContentMemoryRepository struct {
	mu    sync.RWMutex
	byUrl map[string]*entity.CachedContent
}

var _ contract.CachedContentRepository = &CachedContentMemoryRepository{}

func NewCachedContentMemoryRepository() *CachedContentMemoryRepository {
	return &CachedContentMemoryRepository{
		byUrl: make(map[string]*entity.CachedContent),
	}
}

func (r *CachedContentMemoryRepository) FindByUrl(_ context.Context, url string) (*entity.CachedContent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.byUrl[url]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, nil
}

func (r *CachedContentMemoryRepository) Upsert(_ context.Context, content *entity.CachedContent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *content
	r.byUrl[copied.Url] = &copied
	return nil
}

func (r *CachedContentMemoryRepository) DeleteByUrl(_ context.Context, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byUrl, url)
	return nil
}

type DebugLogMemoryRepository struct {
	mu        sync.RWMutex
	byMessage map[uuid.UUID]*entity.DebugLog
}

var _ contract.DebugLogRepository = &DebugLogMemoryRepository{}

func NewDebugLogMemoryRepository() *DebugLogMemoryRepository {
	return &DebugLogMemoryRepository{
		byMessage: make(map[uuid.UUID]*entity.DebugLog),
	}
}

func (r *DebugLogMemoryRepository) Create(_ context.Context, log *entity.DebugLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}
	copied := *log
	r.byMessage[copied.MessageId] = &copied
	return nil
}

func (r *DebugLogMemoryRepository) FindByMessageId(_ context.Context, messageId uuid.UUID) (*entity.DebugLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if l, ok := r.byMessage[messageId]; ok {
		copied := *l
		return &copied, nil
	}
	return nil, nil
}
