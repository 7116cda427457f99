package service

import (
	"Nexus/dao"
	"Nexus/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Bind(new(MemberStore), new(*dao.Members)),
	wire.Bind(new(LedgerStore), new(*dao.PointsLog)),
	wire.Bind(new(LevelStore), new(*dao.MemberLevels)),
	wire.Bind(new(LevelCache), new(*cache.LevelStorage)),
	wire.Bind(new(FollowStore), new(*dao.MemberFollows)),
	wire.Bind(new(SubmissionStore), new(*dao.Submissions)),
	wire.Bind(new(RuleStore), new(*dao.PointsRules)),
	wire.Bind(new(HistoryStore), new(*dao.BrowsingHistory)),
	wire.Bind(new(ModuleStore), new(*dao.ModuleSettings)),
	wire.Bind(new(AdminLogStore), new(*dao.AdminLogs)),

	wire.Struct(new(LevelService), "*"),
	wire.Bind(new(ILevelService), new(*LevelService)),

	wire.Struct(new(PointService), "*"),
	wire.Bind(new(IPointService), new(*PointService)),

	wire.Struct(new(ReputationService), "*"),
	wire.Bind(new(IReputationService), new(*ReputationService)),

	wire.Struct(new(FollowService), "*"),
	wire.Bind(new(IFollowService), new(*FollowService)),

	wire.Struct(new(VisibilityService), "*"),
	wire.Bind(new(IVisibilityService), new(*VisibilityService)),

	wire.Struct(new(ProfileService), "*"),
	wire.Bind(new(IProfileService), new(*ProfileService)),

	wire.Struct(new(RuleService), "*"),
	wire.Bind(new(IRuleService), new(*RuleService)),

	wire.Struct(new(SubmissionService), "*"),
	wire.Bind(new(ISubmissionService), new(*SubmissionService)),

	wire.Struct(new(BrowsingService), "*"),
	wire.Bind(new(IBrowsingService), new(*BrowsingService)),

	wire.Struct(new(AdminService), "*"),
	wire.Bind(new(IAdminService), new(*AdminService)),

	NewModuleService,
	wire.Bind(new(IModuleService), new(*ModuleService)),
)
