package repository

import (
	"github.com/google/wire"
)

// 統一管理所有 Redis repository
type RedisRepository struct {
	LoginAttempts *LoginAttemptRepository
	Blacklist     *TokenBlacklistRepository
}

// 建立 Redis repository 物件
func NewRedisRepository(
	loginAttempts *LoginAttemptRepository,
	blacklist *TokenBlacklistRepository,
) *RedisRepository {
	return &RedisRepository{
		LoginAttempts: loginAttempts,
		Blacklist:     blacklist,
	}
}

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewLoginAttemptRepository,
	NewTokenBlacklistRepository,
	NewRedisRepository)
