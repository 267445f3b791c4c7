package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Fernandolass/frontend-lab-eng-sub000/domain"
	"github.com/Fernandolass/frontend-lab-eng-sub000/dto"
	"github.com/Fernandolass/frontend-lab-eng-sub000/repositories"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// DraftStore keeps unsaved material selections per environment
type DraftStore interface {
	Get(ctx context.Context, environmentID string) (dto.Draft, error)
	Put(ctx context.Context, draft dto.Draft) error
	Delete(ctx context.Context, environmentID string) error
}

// RedisDraftStore stores drafts as JSON values with a TTL
type RedisDraftStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisDraftStore creates a redis backed draft store
func NewRedisDraftStore(rdb *redis.Client, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{rdb: rdb, ttl: ttl}
}

func draftKey(environmentID string) string {
	return "draft:ambiente:" + environmentID
}

func (s *RedisDraftStore) Get(ctx context.Context, environmentID string) (dto.Draft, error) {
	raw, err := s.rdb.Get(ctx, draftKey(environmentID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return dto.Draft{}, fmt.Errorf("draft %w", ErrNotFound)
	}
	if err != nil {
		return dto.Draft{}, err
	}
	var draft dto.Draft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return dto.Draft{}, fmt.Errorf("decode draft: %w", err)
	}
	return draft, nil
}

func (s *RedisDraftStore) Put(ctx context.Context, draft dto.Draft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, draftKey(draft.EnvironmentID), raw, s.ttl).Err()
}

func (s *RedisDraftStore) Delete(ctx context.Context, environmentID string) error {
	return s.rdb.Del(ctx, draftKey(environmentID)).Err()
}

type memoryDraft struct {
	draft     dto.Draft
	expiresAt time.Time
}

// MemoryDraftStore is an in-process DraftStore used when no redis address is
// configured
type MemoryDraftStore struct {
	mu     sync.Mutex
	drafts map[string]memoryDraft
	ttl    time.Duration
	now    func() time.Time
}

// NewMemoryDraftStore creates an in-memory draft store
func NewMemoryDraftStore(ttl time.Duration) *MemoryDraftStore {
	return &MemoryDraftStore{drafts: make(map[string]memoryDraft), ttl: ttl, now: time.Now}
}

func (s *MemoryDraftStore) Get(_ context.Context, environmentID string) (dto.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[environmentID]
	if !ok || (s.ttl > 0 && s.now().After(d.expiresAt)) {
		delete(s.drafts, environmentID)
		return dto.Draft{}, fmt.Errorf("draft %w", ErrNotFound)
	}
	return copyDraft(d.draft), nil
}

func (s *MemoryDraftStore) Put(_ context.Context, draft dto.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draft.EnvironmentID] = memoryDraft{draft: copyDraft(draft), expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryDraftStore) Delete(_ context.Context, environmentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, environmentID)
	return nil
}

func copyDraft(d dto.Draft) dto.Draft {
	out := dto.Draft{EnvironmentID: d.EnvironmentID, Selections: make(map[string]string, len(d.Selections))}
	for k, v := range d.Selections {
		out.Selections[k] = v
	}
	return out
}

// DraftService validates drafts before handing them to the store
type DraftService struct {
	store           DraftStore
	environmentRepo *repositories.EnvironmentRepository
}

// NewDraftService creates a new draft service instance
func NewDraftService(store DraftStore, db *gorm.DB) *DraftService {
	return &DraftService{store: store, environmentRepo: repositories.NewEnvironmentRepository(db)}
}

// GetDraft returns the saved selections of an environment
func (s *DraftService) GetDraft(ctx context.Context, environmentID string) (dto.Draft, error) {
	return s.store.Get(ctx, environmentID)
}

// SaveDraft replaces the selections of an environment. Catalog items are
// stored with their catalog spelling and empty descriptions dropped.
func (s *DraftService) SaveDraft(ctx context.Context, environmentID string, selections map[string]string) (dto.Draft, error) {
	if _, err := s.environmentRepo.FindByID(environmentID); err != nil {
		return dto.Draft{}, notFound(err, "environment")
	}
	draft, err := NormalizeDraft(environmentID, selections)
	if err != nil {
		return dto.Draft{}, err
	}
	if err := s.store.Put(ctx, draft); err != nil {
		return dto.Draft{}, fmt.Errorf("save draft: %w", err)
	}
	return draft, nil
}

// DeleteDraft discards the selections of an environment
func (s *DraftService) DeleteDraft(ctx context.Context, environmentID string) error {
	return s.store.Delete(ctx, environmentID)
}

// NormalizeDraft builds a draft from raw selections
func NormalizeDraft(environmentID string, selections map[string]string) (dto.Draft, error) {
	draft := dto.Draft{EnvironmentID: environmentID, Selections: make(map[string]string, len(selections))}
	for item, description := range selections {
		canonical, ok := domain.CanonicalItem(item)
		if !ok {
			canonical = strings.TrimSpace(item)
		}
		if canonical == "" {
			return dto.Draft{}, validationf("item name cannot be empty")
		}
		if d := strings.TrimSpace(description); d != "" {
			draft.Selections[canonical] = d
		}
	}
	return draft, nil
}
