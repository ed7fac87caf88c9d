package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"debategame/config"
	"debategame/services"

	"github.com/rs/zerolog"
)

// judgecheck scores a sample exchange through the configured judge so the
// Gemini setup can be verified without running the server.
func main() {
	configPath := flag.String("config", "./config/config.yml", "path to config file")
	flag.Parse()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	judge, err := services.NewGeminiJudge(
		context.Background(),
		cfg.Gemini.ApiKey,
		cfg.Gemini.Model,
		time.Duration(cfg.Gemini.TimeoutSeconds)*time.Second,
		logger,
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize judge")
	}
	defer judge.Close()

	previous := "School uniforms suppress individuality and should be abolished."
	argument := "Uniforms remove visible markers of income inequality, reduce morning decision fatigue, and pilot schools report fewer dress-code disputes."

	score, err := judge.ScoreArgument(context.Background(), argument, previous)
	if err != nil {
		logger.Fatal().Err(err).Msg("scoring failed")
	}

	fmt.Printf("score: %d\n", score)
}
