package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"pet-adoption-board/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	// .env opcional para dev; en producción mandan las env vars.
	_ = godotenv.Load()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	var ttl time.Duration
	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h > 0 {
			ttl = time.Duration(h) * time.Hour
		}
	}

	h, err := router.NewRouter(router.Options{
		DataDir:    dataDir,
		SessionTTL: ttl,
	})
	if err != nil {
		log.Fatalf("router setup: %v", err)
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Printf("starting server on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
