package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"ppa-analysis/internal/api/handlers"
	"ppa-analysis/internal/api/middleware"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Str("component", "api").Logger()

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery())

	store := handlers.NewSweepStore(1 * time.Hour)
	sweepHandler := handlers.NewSweepHandler(store)
	dispatchHandler := handlers.NewDispatchHandler()
	tariffHandler := handlers.NewTariffHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/sweep", sweepHandler.RunSweep)
		api.GET("/sweep/:id", sweepHandler.GetSweep)

		api.POST("/dispatch", dispatchHandler.RunDispatch)

		api.GET("/tariffs/:name", tariffHandler.GetTariff)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Info().Str("addr", addr).Msg("starting API server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
