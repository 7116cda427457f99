//go:build wireinject
// +build wireinject

package main

import (
	"Nexus/config"
	"Nexus/dao"
	"Nexus/handler"
	"Nexus/pkg/client"
	"Nexus/pkg/database"
	"Nexus/pkg/server"
	"Nexus/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		server.NewGinEngine,

		dao.ProviderSet,
		service.ProviderSet,
		handler.ProviderSet,

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),
	)
	return nil
}
