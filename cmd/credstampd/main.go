package main

import (
	"log"

	"credstamp/internal/config"
	httpinfra "credstamp/internal/infra/http"
)

func main() {
	cfg := config.FromEnv()

	srv := httpinfra.NewServer(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
