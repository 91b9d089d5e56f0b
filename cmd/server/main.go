// Command server runs the Foodgram HTTP API.
//
// Configuration comes from the YAML file named by CONFIG_PATH (optional) and
// environment variables. SIGINT and SIGTERM trigger a graceful shutdown.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/foodgram-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := app.Run(ctx)
	stop()
	if err != nil {
		log.Fatalf("server: %v", err)
	}
}
