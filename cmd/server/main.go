package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/opencinema/booking-service/internal/booking"
	"github.com/opencinema/booking-service/internal/config"
	"github.com/opencinema/booking-service/internal/events"
	"github.com/opencinema/booking-service/internal/handler"
	"github.com/opencinema/booking-service/internal/router"
	"github.com/opencinema/booking-service/internal/seed"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()
	cacheCfg := config.LoadCacheConfig()
	rateLimitCfg := config.LoadRateLimitConfig()
	eventsCfg := config.LoadBookingEventsConfig()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable: response cache and rate limiting are disabled")
	}

	store := booking.NewStore()
	if err := seed.Populate(store, cfg); err != nil {
		log.Fatalf("seed: %v", err)
	}

	publisher := events.NewPublisher(eventsCfg)
	if eventsCfg.Enabled {
		go func() {
			if err := events.StartConsumer(eventsCfg); err != nil {
				log.Printf("events-consumer: exited: %v", err)
			}
		}()
	}

	bookingHandler := handler.NewBookingHandler(store, publisher)
	adminHandler := handler.NewAdminHandler(store)

	e := echo.New()
	router.RegisterRoutes(e, bookingHandler, adminHandler, rdb, cacheCfg, rateLimitCfg)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
