package main

import (
	"flag"
	"log"
	"os"

	"github.com/PaulReadCFA/impliedgrowth/internal/di"
	"github.com/PaulReadCFA/impliedgrowth/pkg/config"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	// Load config
	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s variant=%s horizon=%dy", cfg.Environment, cfg.Model.Variant, cfg.Model.HorizonYears)

	// Wire DI: Initialize all dependencies
	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	// Run application (blocks until signal)
	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
