package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/semcat/semcat/internal/auth"
	"github.com/semcat/semcat/internal/classifier"
	"github.com/semcat/semcat/internal/embedding"
	"github.com/semcat/semcat/internal/logger"
	"github.com/semcat/semcat/internal/metrics"
	"github.com/semcat/semcat/internal/pipeline"
	"github.com/semcat/semcat/internal/redisclient"
	"github.com/semcat/semcat/internal/search"
	"github.com/semcat/semcat/internal/server"
)

// Load reads an optional .env file and returns every component config,
// each assembled by its own package from the environment.
//
// A missing .env file is not an error; deployments set real environment
// variables and only local development uses the file.
func Load() (
	logger.Config,
	redisclient.Config,
	search.Config,
	embedding.Config,
	classifier.Config,
	pipeline.Config,
	auth.Config,
	metrics.Config,
	server.Config,
) {
	if path := os.Getenv("ENV_FILE"); path != "" {
		_ = godotenv.Load(path)
	} else {
		_ = godotenv.Load()
	}

	return logger.NewConfig(),
		redisclient.NewConfig(),
		search.NewConfig(),
		embedding.NewConfig(),
		classifier.NewConfig(),
		pipeline.NewConfig(),
		auth.NewConfig(),
		metrics.NewConfig(),
		server.NewConfig()
}
