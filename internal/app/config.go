package app

import (
	"strings"
	"time"

	"github.com/ovenly/bakeshop-backend/internal/pkg/logger"
	"github.com/ovenly/bakeshop-backend/internal/utils"
)

type Config struct {
	DatabaseURL    string
	SessionSecret  string
	SessionMaxAge  time.Duration
	Debug          bool
	Port           string
	AllowedOrigins []string
}

func LoadConfig(log *logger.Logger) Config {
	sessionMaxAgeMinutes := utils.GetEnvAsInt("SESSION_MAX_AGE_MINUTES", 60*24, log)
	origins := utils.GetEnv("ALLOWED_ORIGINS", "", log)

	cfg := Config{
		DatabaseURL:   utils.GetEnv("DATABASE_URL", "bakeshop.db", log),
		SessionSecret: utils.GetEnv("SESSION_SECRET", "", log),
		SessionMaxAge: time.Duration(sessionMaxAgeMinutes) * time.Minute,
		Debug:         utils.GetEnvAsBool("DEBUG", false, log),
		Port:          utils.GetEnv("PORT", "8000", log),
	}
	if origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	}
	if cfg.SessionSecret == "" {
		log.Warn("SESSION_SECRET is not set; using an insecure default")
		cfg.SessionSecret = "insecure-dev-secret"
	}
	return cfg
}
