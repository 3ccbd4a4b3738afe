package main

import (
	"log"

	"github.com/seabasket/seabasket-api/internal/app"
	"github.com/seabasket/seabasket-api/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("CONFIG_LOAD_FAILED: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("SERVER_FAILED: %v", err)
	}
}
