package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DefaultFeedURL      = "https://famme.no/products.json"
	DefaultSyncInterval = 24 * time.Hour
)

type Config struct {
	Env    string
	DB     db
	Server server
	Feed   feed
	Logger logger
}

type db struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type feed struct {
	URL          string        `env:"FEED_URL"`
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()

	feedURL := viper.GetString("feed_url")
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}
	interval := viper.GetDuration("sync_interval")
	if interval <= 0 {
		interval = DefaultSyncInterval
	}
	runAddress := viper.GetString("run_address")
	if runAddress == "" {
		runAddress = ":8080"
	}
	migrations := viper.GetString("migrations_path")
	if migrations == "" {
		migrations = "migrations"
	}

	return &Config{
		Env: viper.GetString("app_env"),
		DB: db{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  migrations,
		},
		Server: server{RunAddress: runAddress},
		Feed: feed{
			URL:          feedURL,
			SyncInterval: interval,
		},
		Logger: logger{LogLevel: viper.GetString("log_level")},
	}
}
