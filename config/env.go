package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// envOverrides 允许通过环境变量覆盖敏感配置，避免把密码写进 yaml
type envOverrides struct {
	MySQLHost     string `envconfig:"MYSQL_HOST"`
	MySQLPassword string `envconfig:"MYSQL_PASSWORD"`
	RedisAddress  string `envconfig:"REDIS_ADDRESS"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	JwtSecret     string `envconfig:"JWT_SECRET"`
	HashIDSalt    string `envconfig:"HASHID_SALT"`
	HttpPort      int    `envconfig:"HTTP_PORT"`
	NodeID        int64  `envconfig:"NODE_ID"`
}

const envPrefix = "NEXUS"

func (c *Config) applyEnv() error {
	var env envOverrides
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return fmt.Errorf("环境变量解析失败: %w", err)
	}
	if env.MySQLHost != "" {
		c.MySQL.Host = env.MySQLHost
	}
	if env.MySQLPassword != "" {
		c.MySQL.Password = env.MySQLPassword
	}
	if env.RedisAddress != "" {
		c.Redis.Address = env.RedisAddress
	}
	if env.RedisPassword != "" {
		c.Redis.Password = env.RedisPassword
	}
	if env.JwtSecret != "" {
		c.Jwt.Secret = env.JwtSecret
	}
	if env.HashIDSalt != "" {
		c.Member.HashIDSalt = env.HashIDSalt
	}
	if env.HttpPort != 0 {
		c.Server.Http = env.HttpPort
	}
	if env.NodeID != 0 {
		c.Server.NodeID = env.NodeID
	}
	return nil
}
