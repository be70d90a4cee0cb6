package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gunvolt24/shopify_cod/config"
	"github.com/Gunvolt24/shopify_cod/internal/app"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, cleanup, err := app.Bootstrap(ctx, &cfg)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	if err := a.Run(ctx); err != nil {
		a.Logger.Errorf(ctx, "app run: %v", err)
		os.Exit(1)
	}
}
