package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/omnidash/omnidash/internal/app"
	"github.com/omnidash/omnidash/internal/config"
)

func main() {
	// Provider keys commonly live in a local .env during development; a
	// missing file is not an error.
	_ = godotenv.Load()

	configPath := flag.String("config", "configs/config.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Fatal("failed to create app: ", err)
	}

	if err := a.Run(); err != nil {
		log.Fatal("server error: ", err)
	}
}
