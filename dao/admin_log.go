package dao

import (
	"Nexus/models"
	"Nexus/pkg/snowflake"
	"context"

	"gorm.io/gorm"
)

type AdminLogs struct {
	Repo[models.AdminOperationLog]
}

func NewAdminLogs(db *gorm.DB) *AdminLogs {
	return &AdminLogs{
		Repo: NewRepo[models.AdminOperationLog](db),
	}
}

func (a *AdminLogs) Write(ctx context.Context, log *models.AdminOperationLog) error {
	if log.ID == 0 {
		log.ID = snowflake.GenID()
	}
	return a.Repo.Create(ctx, log)
}

func (a *AdminLogs) Recent(ctx context.Context, limit int) ([]models.AdminOperationLog, error) {
	var logs []models.AdminOperationLog
	err := a.Db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
