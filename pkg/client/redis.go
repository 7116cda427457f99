package client

import (
	"Nexus/config"
	"Nexus/pkg/log"
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient 连接失败不退出，等级表缓存会回落到直接读库
func NewRedisClient(conf *config.Config) *redis.Client {
	dialTimeout := conf.Redis.DialTimeout
	if dialTimeout == 0 {
		dialTimeout = 2 * time.Second
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:        conf.Redis.Addr(),
		Username:    conf.Redis.Username,
		Password:    conf.Redis.Password,
		DB:          conf.Redis.Database,
		DialTimeout: dialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.L.Warn("redis unreachable, level cache disabled until it recovers",
			zap.String("addr", conf.Redis.Addr()), zap.Error(err))
		return rdb
	}
	log.L.Info("redis connected", zap.String("addr", conf.Redis.Addr()))
	return rdb
}
