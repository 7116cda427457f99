package database

import (
	"Nexus/config"
	"Nexus/pkg/log"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 打开 MySQL 连接池，连不上直接退出进程
func NewDB(conf *config.Config) *gorm.DB {
	mode := logger.Warn
	if conf.Debug() {
		mode = logger.Info
	}
	db, err := gorm.Open(mysql.Open(conf.MySQL.Dsn()), &gorm.Config{
		Logger:  logger.Default.LogMode(mode),
		NowFunc: func() time.Time { return time.Now().Local() },
	})
	if err != nil {
		log.L.Fatal("open mysql failed", zap.String("host", conf.MySQL.Host), zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.L.Fatal("get sql.DB failed", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(conf.MySQL.MaxOpenConns)
	sqlDB.SetMaxIdleConns(conf.MySQL.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(conf.MySQL.ConnMaxLifetime)

	log.L.Info("mysql connected",
		zap.String("host", conf.MySQL.Host),
		zap.String("database", conf.MySQL.Database),
		zap.Int("max_open_conns", conf.MySQL.MaxOpenConns),
	)
	return db
}
