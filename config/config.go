package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// ExportFileName is the fixed well-known export target.
const ExportFileName = "ExportedData.xlsx"

type Config struct {
	ExportDir string `envconfig:"EXPORT_DIR" default:""`
	LogLevel  string `envconfig:"LOG_LEVEL"  default:"info"`
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

		if err := envconfig.Process("", &config); err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}

		logger.Infof("Configuration loaded: ExportDir=%q, LogLevel=%s", config.ExportDir, config.LogLevel)
	})
	return &config
}

// ExportPath returns the full path for the spreadsheet export. With no
// configured directory it targets the user's desktop, falling back to the
// working directory when the home directory cannot be resolved.
func (c *Config) ExportPath(logger *logrus.Logger) string {
	dir := c.ExportDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			logger.Warnf("Could not resolve home directory, exporting to working directory: %v", err)
			return ExportFileName
		}
		dir = filepath.Join(home, "Desktop")
	}
	return filepath.Join(dir, ExportFileName)
}
