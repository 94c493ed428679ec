package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"courseplatform-backend/internal/domains/course/model"
	"courseplatform-backend/pkg/cache"
)

const draftKeyPrefix = "draft:course:"

type redisDraftStore struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewDraftStore builds a DraftStore on top of the shared cache. ttl is the
// full lifetime granted to a draft on every write.
func NewDraftStore(c cache.Cache, ttl time.Duration) DraftStore {
	return &redisDraftStore{cache: c, ttl: ttl}
}

func draftKey(id uuid.UUID) string {
	return draftKeyPrefix + id.String()
}

func (s *redisDraftStore) Get(ctx context.Context, id uuid.UUID) (*model.Draft, error) {
	var draft model.Draft
	found, err := s.cache.Get(ctx, draftKey(id), &draft)
	if errors.Is(err, cache.ErrBadValue) {
		return nil, fmt.Errorf("%w: %v", model.ErrDraftCorrupt, err)
	}
	if err != nil {
		return nil, fmt.Errorf("load draft %s: %w", id, err)
	}
	if !found {
		return nil, model.ErrDraftNotFound
	}
	if err := draft.ValidateRecord(); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *redisDraftStore) Save(ctx context.Context, draft *model.Draft) error {
	return s.cache.Set(ctx, draftKey(draft.ID), draft, s.ttl)
}

func (s *redisDraftStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.cache.Delete(ctx, draftKey(id))
}
