package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"canteen-order-system/config"
	"canteen-order-system/console"
	"canteen-order-system/lifecycle"
	"canteen-order-system/orders"
	"canteen-order-system/stores"
)

const ServiceName = "canteen-admin"

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to a YAML config (default: $CANTEEN_CONFIG or the built-in seed)")
	flag.Parse()

	cfg, err := config.FromEnv(*configPath, "canteen")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, closeLog, err := cfg.NewLogger(os.Stderr, ServiceName)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer closeLog()

	// Seed the record stores
	menu := stores.NewMenuStore()
	consumers := stores.NewConsumerStore()
	users := stores.NewUserStore(cfg.Orders.PasswordCost)
	if err := cfg.Seed(menu, consumers, users); err != nil {
		logger.Error("Failed to seed stores", "error", err)
		os.Exit(1)
	}

	ctrl := lifecycle.NewController(lifecycle.Deps{
		Menu:      menu,
		Consumers: consumers,
		Queue:     orders.NewQueue(),
		Undo:      orders.NewUndoStack(),
		IDs:       lifecycle.NewCounter(cfg.Orders.FirstID),
		Logger:    logger,
	})

	logger.Info("Canteen console started",
		"menu_items", len(menu.List()),
		"users", len(users.List()),
		"first_order_id", cfg.Orders.FirstID)

	session := console.NewAdminSession(os.Stdin, os.Stdout, ctrl, menu, consumers, users, logger)
	err = session.Run()
	switch {
	case err == nil, errors.Is(err, console.ErrEndOfInput):
	case errors.Is(err, console.ErrRoleNotSupported):
		logger.Warn("Console closed", "error", err)
	default:
		logger.Error("Console failed", "error", err)
		closeLog()
		os.Exit(1)
	}

	logger.Info("Canteen console stopped", "orders_outstanding", len(ctrl.Orders()))
}
