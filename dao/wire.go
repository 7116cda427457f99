package dao

import (
	"Nexus/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewMembers,
	NewMemberLevels,
	NewPointsLog,
	NewMemberFollows,
	NewSubmissions,
	NewPointsRules,
	NewBrowsingHistory,
	NewModuleSettings,
	NewAdminLogs,
	cache.NewLevelStorage,
)
