package main

import (
	"log"
	"net/http"
	"os"

	"github.com/blyfoten/SankeySaldo/internal/api"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	router := api.NewRouter()

	log.Printf("SankeySaldo SIE parser")
	log.Printf("Listening on http://localhost:%s", port)
	log.Printf("")
	log.Printf("Endpoints:")
	log.Printf("  POST   /api/v1/files/parse")
	log.Printf("  GET    /healthz")

	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
