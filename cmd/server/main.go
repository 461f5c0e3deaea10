// Package main implements the entry point for the luach API server,
// which serves Hebrew calendar conversions, halachic times, and the
// day-aware siddur navigation tree.
package main

import (
	"context"
	"fmt"
	"log"
)

// main is the entry point for the luach-api server.
// It initializes configuration, sets up logging, loads the catalog,
// injects dependencies, and starts the HTTP server.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.run(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
func initializeApp() (*application, error) {
	app, err := newApplication()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return app, nil
}
