package main

import (
	"Nexus/config"
	"Nexus/pkg/log"
	"Nexus/pkg/server"
	"Nexus/pkg/snowflake"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "member reputation & access service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   path,
				Usage:   "config file path",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					cfg := config.New(ctx.String("config"))
					log.SetDebug(cfg.Debug())
					if err := snowflake.Init(cfg.Server.NodeID); err != nil {
						return err
					}
					return server.Run(ctx, InitServer(cfg))
				},
			},
			{
				Name:  "migrate",
				Usage: "create tables and seed default levels and points rules",
				Action: func(ctx *cli.Context) error {
					cfg := config.New(ctx.String("config"))
					log.SetDebug(cfg.Debug())
					return migrate(ctx.Context, cfg)
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
