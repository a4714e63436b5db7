// Package router wires HTTP routes to handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/opencinema/booking-service/internal/config"
	"github.com/opencinema/booking-service/internal/handler"
	"github.com/opencinema/booking-service/internal/middleware"
)

// RegisterRoutes wires the health check, the booking read/write surface and
// the administrative catalog surface onto e. The response cache middleware
// covers the three listing endpoints (list_movies, list_theaters_for_movie
// and list_available_seats); healthz is not cached. The token-bucket rate limiter covers
// only the booking write endpoint, since that's the one write operation a
// client can hammer without side effects being self-limiting elsewhere.
func RegisterRoutes(e *echo.Echo, bookingHandler *handler.BookingHandler, adminHandler *handler.AdminHandler, rdb *redis.Client, cacheCfg config.CacheConfig, rateLimitCfg config.RateLimitConfig) {
	cache := middleware.NewRedisCache(cacheCfg, rdb)
	rateLimit := middleware.NewTokenBucket(rateLimitCfg, rdb)

	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1")
	v1.GET("/movies", bookingHandler.ListMovies, cache)
	v1.GET("/movies/:movie_id/theaters", bookingHandler.ListTheaters, cache)
	v1.GET("/movies/:movie_id/theaters/:theater_id/seats", bookingHandler.ListSeats, cache)
	v1.POST("/movies/:movie_id/theaters/:theater_id/book", bookingHandler.Book, rateLimit)

	admin := v1.Group("/admin")
	admin.POST("/movies", adminHandler.AddMovies)
	admin.POST("/theaters", adminHandler.AddTheaters)
	admin.POST("/movies/:movie_id/theaters", adminHandler.AssignTheaters)
	admin.POST("/reset", adminHandler.Reset)
}
