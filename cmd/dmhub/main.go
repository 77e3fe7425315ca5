package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/you/dmhub/internal/app"
	"github.com/you/dmhub/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		logrus.Fatalf("app: %v", err)
	}
}
