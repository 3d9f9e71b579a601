package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"jobboard/internal/app"
	"jobboard/internal/auth"
	"jobboard/internal/config"
	"jobboard/internal/mailer"
	"jobboard/internal/ratelimit"
	"jobboard/internal/server"
	"jobboard/internal/storage"
	"jobboard/internal/store"
	"jobboard/internal/util"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(config.ConfigPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	jwtExpiry, err := config.ParseJWTExpiry(cfg.JWTExpiry)
	if err != nil {
		log.Fatalf("failed to parse jwt expiry: %v", err)
	}

	logger := util.InitLogger(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := store.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("failed to connect to mongo: %v", err)
	}

	assets, err := storage.NewMinioStore(storage.MinioConfig{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		Bucket:    cfg.MinioBucket,
		UseSSL:    cfg.MinioUseSSL,
		BaseURL:   cfg.AssetBaseURL,
	})
	if err != nil {
		log.Fatalf("failed to init asset store: %v", err)
	}

	files, err := storage.NewFileStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("failed to init upload dir: %v", err)
	}

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, jwtExpiry)
	if err != nil {
		log.Fatalf("failed to init token manager: %v", err)
	}

	var mail mailer.Mailer
	if cfg.SendGridAPIKey != "" {
		mail, err = mailer.NewSendGridMailer(cfg.SendGridAPIKey, cfg.MailFrom)
		if err != nil {
			log.Fatalf("failed to init mailer: %v", err)
		}
	} else {
		slog.Warn("sendgrid API key not set, OTP emails are logged only")
		mail = mailer.LogMailer{}
	}

	var signInLimiter, otpLimiter *ratelimit.FixedWindowLimiter
	if cfg.RedisAddr != "" {
		if cfg.SignInRateLimitPerMinute > 0 {
			signInLimiter, err = ratelimit.NewFixedWindowLimiter(
				cfg.RedisAddr, cfg.RedisPassword, "jobboard:ratelimit:signin",
				cfg.SignInRateLimitPerMinute, time.Minute)
			if err != nil {
				log.Fatalf("failed to init sign-in limiter: %v", err)
			}
		}
		if cfg.OTPRateLimitPerHour > 0 {
			otpLimiter, err = ratelimit.NewFixedWindowLimiter(
				cfg.RedisAddr, cfg.RedisPassword, "jobboard:ratelimit:otp",
				cfg.OTPRateLimitPerHour, time.Hour)
			if err != nil {
				log.Fatalf("failed to init otp limiter: %v", err)
			}
		}
	} else {
		slog.Warn("redis not configured, rate limiting disabled")
	}

	appCore, err := app.New(app.Config{
		Store:  db,
		Hasher: auth.NewPasswordHasher(cfg.BcryptCost),
		Tokens: tokens,
		Mailer: mail,
		Assets: assets,
		Files:  files,
	})
	if err != nil {
		log.Fatalf("failed to init app: %v", err)
	}

	httpServer := server.New(server.Config{
		App:           appCore,
		Tokens:        tokens,
		Files:         files,
		SignInLimiter: signInLimiter,
		OTPLimiter:    otpLimiter,
	})

	handler := util.WithRequestLog(util.WithRequestID(util.WithSecurityHeaders(util.WithCORS(httpServer.Router()))))

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("job board server listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
	}
}
