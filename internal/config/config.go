package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the viewer-level defaults threaded into the transaction list
// service. Everything here used to live in ambient singletons upstream; it is
// loaded once and passed explicitly.
type Config struct {
	Viewer ViewerConfig
}

// ViewerConfig is the current viewer's locale/display context.
type ViewerConfig struct {
	DefaultCurrency  string
	FirstDayOfWeek   int
	UtcOffsetMinutes int
	PageSize         int
}

// Load reads configuration from the environment, with an optional .env file.
func Load() *Config {
	// .env is optional; missing file is not an error
	_ = godotenv.Load()

	config := &Config{
		Viewer: ViewerConfig{
			DefaultCurrency:  getEnv("VIEWER_DEFAULT_CURRENCY", "USD"),
			FirstDayOfWeek:   getIntEnv("VIEWER_FIRST_DAY_OF_WEEK", 0),
			UtcOffsetMinutes: getIntEnv("VIEWER_UTC_OFFSET_MINUTES", 0),
			PageSize:         getIntEnv("VIEWER_PAGE_SIZE", 50),
		},
	}

	if config.Viewer.FirstDayOfWeek < 0 || config.Viewer.FirstDayOfWeek > 6 {
		log.Printf("invalid VIEWER_FIRST_DAY_OF_WEEK %d, using 0", config.Viewer.FirstDayOfWeek)
		config.Viewer.FirstDayOfWeek = 0
	}

	if config.Viewer.PageSize <= 0 {
		log.Printf("invalid VIEWER_PAGE_SIZE %d, using 50", config.Viewer.PageSize)
		config.Viewer.PageSize = 50
	}

	return config
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("invalid integer value for %s: %s, using default %d", key, value, defaultValue)
		return defaultValue
	}

	return intValue
}
