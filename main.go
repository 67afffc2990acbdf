// Command portfolio serves the Web, Mobile and VR portfolio pages.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/portfolio/internal/platform/config"
	"github.com/Zachkp/portfolio/internal/site"
)

func main() {
	var cfg site.Config
	if err := config.ParseEnv(&cfg); err != nil {
		config.Exitf("portfolio: %v", err)
	}
	log.SetPrefix("[PORTFOLIO] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := site.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
