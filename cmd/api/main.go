package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"securebank/internal/config"
	"securebank/internal/db"
	"securebank/internal/email"
	apihttp "securebank/internal/http"
	"securebank/internal/repository"
	"securebank/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadAPIConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Sin secreto de firma el servicio no puede atender logins: abortar
	// temprano en lugar de fallar por request.
	tokenSvc, err := service.NewTokenService(
		cfg.JWTSecret,
		cfg.JWTIssuer,
		cfg.JWTAudience,
		time.Duration(cfg.JWTValidityDays)*24*time.Hour,
	)
	if err != nil {
		logger.Fatal("token service init", zap.Error(err))
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	accountRepo := repository.NewPgAccountRepository(pool)
	hasher := service.NewPasswordHasher(cfg.BcryptCost)

	mailSender := email.NewDisabledSender("smtp host not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			mailSender = sender
		}
	}

	limiter := service.NewLoginRateLimiter(cfg.LoginWindow, cfg.LoginMaxAttempts)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			limiter = service.NewRedisLoginRateLimiter(redisClient, cfg.LoginWindow, cfg.LoginMaxAttempts)
		}
		cancel()
	}

	accountSvc := service.NewAccountService(logger, accountRepo, hasher, tokenSvc, service.AccountServiceOptions{
		MailSender:   mailSender,
		Limiter:      limiter,
		StoreTimeout: cfg.StoreTimeout,
	})

	authHandler := apihttp.NewAuthHandler(logger, accountSvc)
	healthHandler := apihttp.NewHealthHandler(logger, pool)
	router := apihttp.NewRouter(logger, authHandler, healthHandler, tokenSvc)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting api server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
