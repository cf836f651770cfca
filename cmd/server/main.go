package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rghazali/fitfinder/internal/auth"
	"github.com/rghazali/fitfinder/internal/config"
	"github.com/rghazali/fitfinder/internal/database"
	"github.com/rghazali/fitfinder/internal/exercise"
	"github.com/rghazali/fitfinder/internal/handler"
	"github.com/rghazali/fitfinder/internal/middleware"
	"github.com/rghazali/fitfinder/internal/queue"
	"github.com/rghazali/fitfinder/internal/repository"
	"github.com/rghazali/fitfinder/internal/router"
	"github.com/rghazali/fitfinder/internal/video"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(database.DSN(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName))
	if err != nil {
		log.Fatal(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatal(err)
	}
	cancel()

	// Redis is optional; a nil client disables catalog caching and rate
	// limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; catalog cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	workouts := repository.NewWorkoutRepo(db)
	lists := repository.NewSavedListRepo(db)
	posts := repository.NewPartnerPostRepo(db)
	messages := repository.NewMessageLogRepo(db)

	searcher := exercise.NewSearcher(
		exercise.NewClient(cfg, config.LoadCatalogCacheConfig(), rdb))

	videos, err := video.NewClient(context.Background(), cfg.YouTubeAPIKey)
	if err != nil {
		log.Fatal(err)
	}

	h := router.Handlers{
		Auth:      handler.NewAuthHandler(cfg, auth.NewProvider(cfg), users),
		Workouts:  handler.NewWorkoutHandler(workouts),
		Lists:     handler.NewSavedListHandler(lists),
		Exercises: handler.NewExerciseHandler(searcher),
		Videos:    handler.NewVideoHandler(videos),
		Partners:  handler.NewPartnerHandler(posts),
	}

	e := echo.New()
	router.Register(e, h, cfg.JWTSecret,
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	// Drain partner.posted events into the message log for the lifetime of
	// the process.
	go queue.StartPartnerConsumer(messages)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
