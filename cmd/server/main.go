// Package main implements the entry point for the quill-api server,
// a minimal blogging backend with token-based authentication.
package main

import (
	"context"
	"log"
)

// main is the entry point for the quill-api server. It initializes
// configuration, logging, the database connection, and the dependency
// graph, then runs the HTTP server until shutdown.
func main() {
	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.run(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
