package main

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/careerforge/api/adapters/event"
	"github.com/careerforge/api/adapters/persistence"
	"github.com/careerforge/api/internal/config"
	"github.com/careerforge/api/internal/render"
	"github.com/careerforge/api/pkg/logger"
)

// The worker listens for profile saves and pre-renders both portfolio
// layouts into the cache, so the first public view after a save is
// already warm.
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic(err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting CareerForge worker...")

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		appLogger.Fatal("Cannot connect Redis", err)
	}
	defer redisClient.Close()

	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	renderCache := persistence.NewRedisRenderCache(redisClient)

	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicProfileEvents,
		GroupID:  "render-warmer-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicProfileEvents))

	ctx := context.Background()
	for {
		msg, err := consumer.ReadMessage(ctx)
		if err != nil {
			appLogger.Error("Failed to read message", err)
			continue
		}

		var payload event.ProfileEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			appLogger.Warn("Skipping malformed event", zap.Error(err))
			continue
		}
		if payload.EventType != event.ProfileEventTypeSaved {
			continue
		}

		p, err := profileRepo.GetByUserID(ctx, payload.OwnerID)
		if err != nil {
			appLogger.Error("Failed to load profile for warmup", err, zap.String("owner_id", payload.OwnerID.String()))
			continue
		}

		for _, variant := range []render.PortfolioVariant{render.PortfolioModern, render.PortfolioClassic} {
			doc := render.Portfolio(p, variant)
			if err := renderCache.Set(ctx, payload.OwnerID, variant, &doc); err != nil {
				appLogger.Warn("Failed to warm render cache",
					zap.String("owner_id", payload.OwnerID.String()),
					zap.String("variant", string(variant)),
					zap.Error(err))
			}
		}
		appLogger.Info("Warmed render cache", zap.String("owner_id", payload.OwnerID.String()))
	}
}
