package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	MongoURI    string `envconfig:"MONGO_URI"     required:"true"`
	MongoDBName string `envconfig:"MONGO_DB_NAME" default:"agrimart"`
	Port        string `envconfig:"PORT"          default:":8080"`
	LogLevel    string `envconfig:"LOG_LEVEL"     default:"info"`
	JWTSecret   string `envconfig:"JWT_SECRET"    required:"true"`
	UploadDir   string `envconfig:"UPLOAD_DIR"    default:"uploads"`
}

var (
	config Config
	once   sync.Once
)

func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		err = envconfig.Process("", &config)
		if err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}

		logger.Infof("Configuration loaded: Port=%s, LogLevel=%s, MongoDB=%s, UploadDir=%s",
			config.Port, config.LogLevel, config.MongoDBName, config.UploadDir)
	})
	return &config
}
