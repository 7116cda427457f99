package server

import (
	"Nexus/config"
	"Nexus/middleware"
	"Nexus/pkg/log"
	"Nexus/pkg/response"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 3 * time.Second

type AppProvider struct {
	Config *config.Config
	Engine *gin.Engine
}

var (
	instanceOnce sync.Once
	instanceID   string
)

// InstanceID 形如 192.168.1.10:8083，取不到内网 IPv4 时用主机名
func InstanceID(port int) string {
	instanceOnce.Do(func() {
		host := privateIPv4()
		if host == "" {
			host, _ = os.Hostname()
		}
		instanceID = fmt.Sprintf("%s:%d", host, port)
	})
	return instanceID
}

func privateIPv4() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return ""
	}
	for _, addr := range addrs {
		ipnet, ok := addr.(*net.IPNet)
		if !ok || ipnet.IP.IsLoopback() {
			continue
		}
		if ip := ipnet.IP.To4(); ip != nil {
			return ip.String()
		}
	}
	return ""
}

func NewGinEngine(conf *config.Config, h *Handlers) *gin.Engine {
	if !conf.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(cors(), middleware.GinZap(), response.Recovery(), middleware.PrometheusMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	h.Health.RegisterRouter(r)

	api := r.Group("/api")
	for _, reg := range []interface{ RegisterRouter(gin.IRouter) }{
		h.Points, h.Profile, h.Follow, h.Submission, h.History, h.Module, h.Admin,
	} {
		reg.RegisterRouter(api)
	}
	return r
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Writer.Header()
		header.Set("Access-Control-Allow-Origin", "*")
		header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+middleware.RequestIDHeader)
		header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		header.Set("Access-Control-Expose-Headers", middleware.RequestIDHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Run 启动 http 服务，收到 SIGINT/SIGTERM/SIGQUIT 后在超时内优雅退出
func Run(ctx *cli.Context, app *AppProvider) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)
	defer signal.Stop(sig)

	port := app.Config.Server.Http
	log.L.Info("server starting",
		zap.String("instance", InstanceID(port)),
		zap.Int("port", port),
		zap.String("env", app.Config.App.Env),
	)
	return serve(ctx.Context, sig, app)
}

func serve(ctx context.Context, sig <-chan os.Signal, app *AppProvider) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.Config.Server.Http),
		Handler:           app.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	instance := InstanceID(app.Config.Server.Http)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		select {
		case <-egCtx.Done():
		case s := <-sig:
			log.L.Info("signal received", zap.String("signal", s.String()))
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.L.Warn("server shutdown incomplete", zap.String("instance", instance), zap.Error(err))
		}
		return nil
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.L.Error("server exited", zap.String("instance", instance), zap.Error(err))
		return err
	}
	log.L.Info("server stopped", zap.String("instance", instance))
	return nil
}
