package main

import (
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"roi-engine/internal/config"
	"roi-engine/internal/handler"
	"roi-engine/internal/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	h := handler.New(log)

	log.Info("ROI engine starting", zap.String("port", cfg.Port))
	if err := fasthttp.ListenAndServe(":"+cfg.Port, h.Handle); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}
