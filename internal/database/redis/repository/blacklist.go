package repository

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/core"
	client "storefront/internal/database/client"
	"storefront/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklistRepository 登出後的 token 黑名單，TTL 對齊 token 剩餘效期。
type TokenBlacklistRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
}

func NewTokenBlacklistRepository(trace *telemetry.Trace, client *client.RedisClient) *TokenBlacklistRepository {
	return &TokenBlacklistRepository{trace: trace, client: client.Client()}
}

// Add 把 token ID 加入黑名單；ttl <= 0 代表 token 已過期，不需要記錄。
func (repository *TokenBlacklistRepository) Add(contextValue context.Context, tokenID string, ttl time.Duration) (returnedError error) {
	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()
	_ = span

	if ttl <= 0 {
		return nil
	}
	returnedError = repository.client.Set(contextValue, repository.buildKey(tokenID), 1, ttl).Err()
	return returnedError
}

// Contains 檢查 token ID 是否在黑名單內
func (repository *TokenBlacklistRepository) Contains(contextValue context.Context, tokenID string) (found bool, returnedError error) {
	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()
	_ = span

	count, err := repository.client.Exists(contextValue, repository.buildKey(tokenID)).Result()
	if err != nil {
		returnedError = err
		return false, returnedError
	}
	return count > 0, nil
}

func (r *TokenBlacklistRepository) buildKey(tokenID string) string {
	return fmt.Sprintf("%s:%s:%s", core.RedisKeyServerName, core.RedisKeyBlacklist, tokenID)
}
