package main

import (
	"log"
	"net/http"
	"time"

	"securebank/internal/config"
	"securebank/internal/web"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadWebConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	apiClient := web.NewAPIClient(cfg.APIBaseURL)
	pages := web.NewAuthPages(logger, apiClient)
	router := web.NewRouter(logger, cfg.TemplateGlob, pages)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting web server", zap.String("port", cfg.HTTPPort), zap.String("api", cfg.APIBaseURL))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
