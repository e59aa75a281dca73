package main

import (
	"os"

	"github.com/abelyaev/cardsim/internal/config"
	"github.com/abelyaev/cardsim/internal/demo"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	if cfg.LogFormat == "text" {
		logger.SetFormatter(&logrus.TextFormatter{})
	}

	// The report goes to stdout; logs stay on stderr.
	runner := demo.NewRunner(os.Stdout, logger)
	if err := runner.Run(); err != nil {
		logger.Fatalf("Demo failed: %v", err)
	}
}
