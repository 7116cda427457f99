package config

import "time"

// Member 会员体系相关配置
type Member struct {
	BatchConcurrency int           `json:"batch_concurrency" yaml:"batch_concurrency"`
	HashIDSalt       string        `json:"hashid_salt" yaml:"hashid_salt"`
	LevelCacheTTL    time.Duration `json:"level_cache_ttl" yaml:"level_cache_ttl"`
	LeaderboardLimit int           `json:"leaderboard_limit" yaml:"leaderboard_limit"`
	// ModuleCacheTTL 模块开关的进程内缓存时长，多实例下开关变更最多延迟这么久生效
	ModuleCacheTTL time.Duration `json:"module_cache_ttl" yaml:"module_cache_ttl"`
}

func (m *Member) fillDefaults() {
	if m.BatchConcurrency == 0 {
		m.BatchConcurrency = 4
	}
	if m.LevelCacheTTL == 0 {
		m.LevelCacheTTL = 10 * time.Minute
	}
	if m.ModuleCacheTTL == 0 {
		m.ModuleCacheTTL = 30 * time.Second
	}
	if m.LeaderboardLimit == 0 {
		m.LeaderboardLimit = 10
	}
}
