package config

import (
	"fmt"
	"time"
)

// Redis 只用于等级表缓存，不可用时服务降级为直接读库
type Redis struct {
	Address     string        `json:"address" yaml:"address"`
	Port        int           `json:"port" yaml:"port"`
	Username    string        `json:"username" yaml:"username"`
	Password    string        `json:"password" yaml:"password"`
	Database    int           `json:"database" yaml:"database"`
	DialTimeout time.Duration `json:"dial_timeout" yaml:"dial_timeout"`
}

func (r *Redis) Addr() string {
	port := r.Port
	if port == 0 {
		port = 6379
	}
	return fmt.Sprintf("%s:%d", r.Address, port)
}
