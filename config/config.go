package config

import (
	"time"

	"main/storage"
	"main/utils"
)

type AppConfig struct {
	Port            string
	LoginDelay      time.Duration
	SessionDuration time.Duration
	RedisURL        string
}

func LoadAppConfig() AppConfig {
	return AppConfig{
		Port: utils.GetEnvAsString("PORT", "8080"),
		// The original login screen shows a cosmetic spinner before
		// redirecting; keep the delay configurable so tests can zero it.
		LoginDelay:      utils.GetEnvAsDuration("LOGIN_DELAY", 1500*time.Millisecond),
		SessionDuration: utils.GetEnvAsDuration("SESSION_DURATION", 24*time.Hour),
		RedisURL:        utils.GetEnvAsString("REDIS_URL", ""),
	}
}

func LoadStorageConfig() storage.Config {
	return storage.Config{
		Backend:  utils.GetEnvAsString("STORAGE_BACKEND", "bolt"),
		BoltPath: utils.GetEnvAsString("STORAGE_PATH", "recentnotes.db"),
		RedisURL: utils.GetEnvAsString("REDIS_URL", "redis://localhost:6379"),
		MongoURI: utils.GetEnvAsString("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  utils.GetEnvAsString("MONGO_DB", "recentnotes"),
	}
}
