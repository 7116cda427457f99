package main

import (
	"Nexus/config"
	"Nexus/dao"
	"Nexus/internal/reputation"
	"Nexus/models"
	"Nexus/pkg/database"
	"Nexus/pkg/log"
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

func int64Ptr(v int64) *int64 { return &v }

func defaultLevels() []models.MemberLevel {
	return []models.MemberLevel{
		{ID: 1, Name: "bronze", MinPoints: 0, MaxPoints: int64Ptr(99), BadgeColor: "#cd7f32",
			Benefits: datatypes.NewJSONType(models.LevelBenefits{Description: "新手会员", Features: []string{"浏览内容", "评论"}})},
		{ID: 2, Name: "silver", MinPoints: 100, MaxPoints: int64Ptr(499), BadgeColor: "#c0c0c0",
			Benefits: datatypes.NewJSONType(models.LevelBenefits{Description: "活跃会员", Features: []string{"个人主页", "投稿优先审核"}})},
		{ID: 3, Name: "gold", MinPoints: 500, BadgeColor: "#ffd700",
			Benefits: datatypes.NewJSONType(models.LevelBenefits{Description: "核心会员", Features: []string{"专属徽章", "资源下载加速"}})},
	}
}

func defaultRules() []models.PointsRule {
	return []models.PointsRule{
		{Action: models.ActionArticleApproved, Points: 50, Description: "文章审核通过", Enabled: true},
		{Action: models.ActionQuestionApproved, Points: 20, Description: "提问审核通过", Enabled: true},
		{Action: models.ActionAnswerAccepted, Points: 30, Description: "回答被采纳", Enabled: true},
	}
}

func migrate(ctx context.Context, cfg *config.Config) error {
	db := database.NewDB(cfg)
	if err := db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	levels := defaultLevels()
	if err := reputation.ValidateTiers(levels); err != nil {
		return err
	}
	if err := dao.NewMemberLevels(db).Seed(ctx, levels); err != nil {
		return fmt.Errorf("seed member levels: %w", err)
	}
	if err := dao.NewPointsRules(db).Seed(ctx, defaultRules()); err != nil {
		return fmt.Errorf("seed points rules: %w", err)
	}

	log.L.Info("migration finished", zap.Int("tables", len(models.All())))
	return nil
}
