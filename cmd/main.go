package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"pdfquiz/internal/app"
	"pdfquiz/internal/service/agent"
	"pdfquiz/internal/service/session"
)

func main() {
	// .env is optional; real deployments set the variables directly.
	_ = godotenv.Load()

	gen, err := agent.NewAuto()
	if err != nil {
		log.Fatalf("init agent: %v", err)
	}

	srv := app.NewServer(gen, session.NewRegistry())

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Fatal(srv.Listen(":" + port))
}
