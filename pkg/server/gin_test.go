package server

import (
	"Nexus/config"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(cors())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/x", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("missing allow-origin header")
	}
}

func TestServeStopsOnSignal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app := &AppProvider{
		Config: &config.Config{App: &config.App{Env: "test"}, Server: &config.Server{Http: 0}},
		Engine: gin.New(),
	}
	sig := make(chan os.Signal, 1)
	done := make(chan error, 1)
	go func() { done <- serve(context.Background(), sig, app) }()

	sig <- syscall.SIGTERM
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop")
	}
}

func TestServeStopsOnContextCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app := &AppProvider{
		Config: &config.Config{App: &config.App{Env: "test"}, Server: &config.Server{Http: 0}},
		Engine: gin.New(),
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, make(chan os.Signal), app) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop")
	}
}
