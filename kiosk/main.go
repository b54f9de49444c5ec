package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"canteen-order-system/config"
	"canteen-order-system/console"
	"canteen-order-system/lifecycle"
	"canteen-order-system/stores"
)

const ServiceName = "canteen-kiosk"

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to a YAML config (default: $CANTEEN_CONFIG or the built-in kiosk seed)")
	firstID := flag.Int("first-order-id", 0, "First order ID to hand out (overrides config)")
	flag.Parse()

	cfg, err := config.FromEnv(*configPath, "kiosk")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *firstID > 0 {
		cfg.Orders.FirstID = *firstID
	}

	logger, closeLog, err := cfg.NewLogger(os.Stderr, ServiceName)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer closeLog()

	menu := stores.NewMenuStore()
	consumers := stores.NewConsumerStore()
	if err := cfg.Seed(menu, consumers, nil); err != nil {
		logger.Error("Failed to seed stores", "error", err)
		os.Exit(1)
	}

	// Queue and undo stack take their defaults
	ctrl := lifecycle.NewController(lifecycle.Deps{
		Menu:      menu,
		Consumers: consumers,
		IDs:       lifecycle.NewCounter(cfg.Orders.FirstID),
		Logger:    logger,
	})

	session := console.NewKioskSession(os.Stdin, os.Stdout, ctrl, menu, consumers, logger)
	if err := session.Run(); err != nil && !errors.Is(err, console.ErrEndOfInput) {
		logger.Error("Kiosk failed", "error", err)
		closeLog()
		os.Exit(1)
	}
}
