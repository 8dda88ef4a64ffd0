package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"career-mentor/internal/ai/gemini"
	"career-mentor/internal/config"
	"career-mentor/internal/database"
	"career-mentor/internal/database/migration"
	dbpostgres "career-mentor/internal/database/postgres"
	"career-mentor/internal/infrastructure/cache"
	"career-mentor/internal/infrastructure/persistence/postgres"
	"career-mentor/internal/mentor"
	"career-mentor/internal/pkg/jwt"
	ucauth "career-mentor/internal/usecase/auth"
	"career-mentor/internal/usecase/mentoring"
)

type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis

	Tokens    jwt.Service
	Auth      *ucauth.Service
	Mentoring *mentoring.Service
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := migration.Runner{Dir: cfg.Database.MigrationsDir}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	gen, err := gemini.NewClient(ctx, cfg.AI.GeminiAPIKey, cfg.AI.Model)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	redis := cache.NewRedis(logger)
	engine := mentor.NewEngine(gen, logger, cfg.AI.RequestTimeout)
	tokens := jwt.NewHMACService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	profiles := postgres.NewProfileRepository(db)

	return &Container{
		Config:    cfg,
		Logger:    logger,
		DB:        db,
		Cache:     redis,
		Tokens:    tokens,
		Auth:      ucauth.NewService(profiles, engine, tokens, logger),
		Mentoring: mentoring.NewService(profiles, engine, redis, logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
