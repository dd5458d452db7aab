package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/thejerf/suture/v4"

	"github.com/shedrachokonofua/lute-graph-connector/internal/config"
	"github.com/shedrachokonofua/lute-graph-connector/internal/graph"
	"github.com/shedrachokonofua/lute-graph-connector/internal/ingest"
	"github.com/shedrachokonofua/lute-graph-connector/internal/logger"
	"github.com/shedrachokonofua/lute-graph-connector/internal/lute"
	"github.com/shedrachokonofua/lute-graph-connector/internal/server"
)

func main() {
	_ = godotenv.Load()

	if err := logger.Initialize(); err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Logger.Fatalw("Failed to load configuration", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := graph.NewStore(ctx, cfg.Neo4j.URL, cfg.Neo4j.User, cfg.Neo4j.Password)
	if err != nil {
		logger.Logger.Fatalw("Failed to connect to graph store", "error", err)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			logger.Logger.Warnw("Failed to close graph store", "error", err)
		}
	}()

	repo := graph.NewRepository(store)
	if err := repo.Setup(ctx); err != nil {
		logger.Logger.Fatalw("Failed to install graph schema", "error", err)
	}

	client := lute.NewClient(cfg.Lute.SubscriberPrefix)
	if err := client.Connect(cfg.Lute.URL); err != nil {
		logger.Logger.Fatalw("Failed to connect to lute", "error", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Logger.Warnw("Failed to close lute channel", "error", err)
		}
	}()

	gin.SetMode(gin.ReleaseMode)

	supervisor := suture.NewSimple("graph-connector")
	supervisor.Add(ingest.NewPump(client, repo))
	supervisor.Add(server.NewServer(client, repo, cfg.APIPort))

	if err := supervisor.Serve(ctx); err != nil && ctx.Err() == nil {
		logger.Logger.Fatalw("Supervisor exited", "error", err)
	}

	logger.Logger.Infow("Shutdown complete")
}
