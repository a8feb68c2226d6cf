package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"skyfare/cfg"
	"skyfare/internal/flight"
	"skyfare/pkg/amadeus"
	"skyfare/pkg/cache"
	"skyfare/pkg/idgen"
	"skyfare/pkg/logger"

	_ "skyfare/cmd/skyfare/docs" // swagger docs

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Skyfare Flight Search API
// @version         1.0
// @description     API service for searching and filtering flight offers.
// @BasePath        /
// @schemes         http
func main() {
	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}

	// ============
	// logger
	// ============
	zlogger := logger.NewZeroLog(config.AppEnv)

	// ============
	// Cache
	// ============
	redisAddr := config.RedisConfig.Host + ":" + config.RedisConfig.Port
	redis := cache.NewRedisCache(redisAddr, config.RedisConfig.Password)

	// ============
	// External Service
	// ============
	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}
	tokens := amadeus.NewTokenManager(
		httpClient,
		config.AmadeusConfig.BaseURL,
		config.AmadeusConfig.ClientID,
		config.AmadeusConfig.ClientSecret,
	)
	amadeusClient := amadeus.NewClient(httpClient, config.AmadeusConfig.BaseURL, tokens, zlogger)

	// ============
	// Internal Service
	// ============
	flightSvc := flight.NewService(amadeusClient, redis, config.CacheTTLMinutes, zlogger)
	flightHandler := flight.NewFlightHandler(flightSvc)

	requestIDs, err := idgen.NewSnowflakeGenerator(1)
	if err != nil {
		log.Fatal(err)
	}

	// ============
	// HTTP
	// ============
	r := gin.Default()
	r.Use(flight.RequestIDMiddleware(requestIDs, zlogger))

	flightHandler.RegisterRoutes(r)
	initSwagger(r)

	addr := fmt.Sprintf(":%s", config.AppPort)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func initSwagger(r *gin.Engine) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		html := `<!DOCTYPE html>
<html>
<head>
    <title>API Documentation</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
    <script id="api-reference" data-url="/swagger/doc.json"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`
		c.String(200, html)
	})
}
