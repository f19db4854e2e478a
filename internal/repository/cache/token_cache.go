package cache

import (
	"fmt"

	"github.com/hrishikesh1231/hrishi-service-backend/internal/models"
	"github.com/hrishikesh1231/hrishi-service-backend/internal/repository"
)

const tokensKey = "admin_push_tokens"

// TokenCacheRepo fronts the token repository with a short-lived cache so the
// notifier worker does not hit the database on every event.
type TokenCacheRepo struct {
	repo repository.Tokens
	cch  KV
}

func NewTokenCache(repo repository.Tokens, cch KV) *TokenCacheRepo {
	return &TokenCacheRepo{repo: repo, cch: cch}
}

func (t *TokenCacheRepo) List() ([]models.AdminPushToken, error) {
	if v, ok := t.cch.Get(tokensKey); ok {
		tokens, ok := v.([]models.AdminPushToken)
		if !ok {
			return nil, fmt.Errorf("unexpected cached value for %s", tokensKey)
		}
		return tokens, nil
	}

	tokens, err := t.repo.List()
	if err != nil {
		return nil, err
	}
	t.cch.Put(tokensKey, tokens)
	return tokens, nil
}

// Upsert writes through to the repository and drops the cached snapshot.
func (t *TokenCacheRepo) Upsert(tok models.AdminPushToken) error {
	if err := t.repo.Upsert(tok); err != nil {
		return err
	}
	t.cch.Delete(tokensKey)
	return nil
}
