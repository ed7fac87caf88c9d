package main

import (
	"context"
	"flag"
	"os"
	"strconv"
	"time"

	"debategame/config"
	"debategame/controllers"
	"debategame/db"
	"debategame/middlewares"
	"debategame/routes"
	"debategame/services"
	"debategame/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "./config/config.yml", "path to config file")
	flag.Parse()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	logger.Info().Msg("connected to MongoDB")

	store, err := db.NewMongoStore(db.MongoDatabase)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize store")
	}

	var judge services.Judge
	if cfg.Gemini.ApiKey != "" {
		geminiJudge, err := services.NewGeminiJudge(
			context.Background(),
			cfg.Gemini.ApiKey,
			cfg.Gemini.Model,
			time.Duration(cfg.Gemini.TimeoutSeconds)*time.Second,
			logger,
		)
		if err != nil {
			logger.Warn().Err(err).Msg("judge unavailable, argument scoring disabled")
		} else {
			judge = geminiJudge
			defer geminiJudge.Close()
		}
	} else {
		logger.Warn().Msg("no gemini api key configured, argument scoring disabled")
	}

	controllers.Init(store, judge, logger)

	// Seed demo accounts so a fresh deployment is usable right away
	utils.SeedDemoUsers(store, logger)

	router := setupRouter(logger)
	port := strconv.Itoa(cfg.Server.Port)
	logger.Info().Str("port", port).Msg("server starting")

	if err := router.Run(":" + port); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}

func setupRouter(logger zerolog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middlewares.RequestLogger(logger))
	router.Use(gin.Recovery())

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: true,
	}))

	router.POST("/users", routes.CreateUserRouteHandler)
	router.GET("/users/:username", routes.GetUserRouteHandler)

	router.POST("/debates/private", routes.CreatePrivateDebateRouteHandler)
	router.GET("/debates/private/:id", routes.GetPrivateDebateRouteHandler)
	router.POST("/debates/private/:id/arguments", routes.SubmitPrivateArgumentRouteHandler)

	router.POST("/debates/public", routes.CreatePublicDebateRouteHandler)
	router.GET("/debates/public/:id", routes.GetPublicDebateRouteHandler)
	router.POST("/debates/public/:id/arguments", routes.SubmitPublicArgumentRouteHandler)

	router.GET("/.well-known/ai-plugin.json", controllers.AIPluginManifest)
	router.GET("/legal", controllers.Legal)

	return router
}
