// cmd/mcp-router/main.go
// Server MCP mandiri: hanya /mcp/call, /mcp/tools & /healthz
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"oilgas-portfolio/internal/app"
	"oilgas-portfolio/internal/config"
	hh "oilgas-portfolio/internal/handlers/http"
	mcphandlers "oilgas-portfolio/internal/handlers/mcp"
	"oilgas-portfolio/internal/logger"
	"oilgas-portfolio/internal/mcp"
	"oilgas-portfolio/internal/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.WithError(err).Fatal("load config")
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	log := logger.Log

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rt := app.Bootstrap(ctx, cfg, log)
	defer rt.Close()

	reg := mcp.NewRegistry()
	mcphandlers.NewTools(rt.App.Repo).Register(reg)
	router := &mcp.Router{Registry: reg, Log: log}

	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Logging(log))
	r.HandleFunc("/healthz", hh.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/mcp/call", router.CallHandler).Methods(http.MethodPost)
	r.HandleFunc("/mcp/tools", router.ToolsHandler).Methods(http.MethodGet)

	srv := &http.Server{Addr: ":" + cfg.MCPPort, Handler: r, ReadTimeout: 15 * time.Second, WriteTimeout: 30 * time.Second}
	go func() {
		log.WithField("addr", srv.Addr).WithField("tools", len(reg.List())).Info("MCP Router listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("listen")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
