package main

import (
	"flag"

	"go.uber.org/zap"

	httpapi "github.com/zecross-dev/hnefatafl/internal/api/http"
	"github.com/zecross-dev/hnefatafl/internal/api/ws"
	"github.com/zecross-dev/hnefatafl/internal/config"
	"github.com/zecross-dev/hnefatafl/internal/game"
	"github.com/zecross-dev/hnefatafl/internal/logs"
	"github.com/zecross-dev/hnefatafl/internal/room"
	"github.com/zecross-dev/hnefatafl/internal/store"

	// swagger registration
	_ "github.com/zecross-dev/hnefatafl/docs"
)

// @title Hnefatafl API
// @version 1.0
// @description REST API for the Hnefatafl rules engine (Go + Gin)
// @contact.name Backend Team
// @BasePath /
func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	log := logs.New("hnefatafl", cfg.Log)
	defer log.Sync()

	saves, err := store.OpenSaveStore(cfg.SavePath)
	if err != nil {
		log.Fatal("open save store", zap.Error(err))
	}
	defer saves.Close()

	mem := store.NewMemoryStore()
	hub := ws.NewHub(log)
	rm := room.NewManager(mem, saves, game.BoardSize(cfg.BoardSize), hub, log)
	hub.SetController(rm)

	r := httpapi.NewRouter(rm, hub)

	log.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
