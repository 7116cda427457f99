package cache

import (
	"Nexus/models"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const levelTableKey = "nexus:member_levels"

// LevelStorage 积分等级表缓存，后台修改后删除
type LevelStorage struct {
	redis *redis.Client
}

func NewLevelStorage(rds *redis.Client) *LevelStorage {
	return &LevelStorage{rds}
}

// Get 未命中返回 nil, nil
func (l *LevelStorage) Get(ctx context.Context) ([]models.MemberLevel, error) {
	raw, err := l.redis.Get(ctx, levelTableKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var levels []models.MemberLevel
	if err := json.Unmarshal(raw, &levels); err != nil {
		return nil, err
	}
	return levels, nil
}

func (l *LevelStorage) Set(ctx context.Context, levels []models.MemberLevel, ttl time.Duration) error {
	raw, err := json.Marshal(levels)
	if err != nil {
		return err
	}
	return l.redis.Set(ctx, levelTableKey, raw, ttl).Err()
}

func (l *LevelStorage) Invalidate(ctx context.Context) error {
	return l.redis.Del(ctx, levelTableKey).Err()
}
