package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/harishd2007/CivicFlow-v11/config"
	"github.com/harishd2007/CivicFlow-v11/handlers"
	"github.com/harishd2007/CivicFlow-v11/router"
	"github.com/harishd2007/CivicFlow-v11/services"
)

func main() {
	godotenv.Load()

	cfg := config.Load()

	store := services.NewReportStore()
	sessions := services.NewSessionStore(cfg.SessionFile)
	hub := handlers.NewAlertHub(cfg.AllowedOrigins)

	var gemini *services.GeminiService
	if cfg.GeminiAPIKey != "" {
		var err error
		gemini, err = services.NewGeminiService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiTextModel, cfg.GeminiImgModel)
		if err != nil {
			log.Printf("gemini disabled: %v", err)
			gemini = nil
		}
	} else {
		log.Println("GEMINI_API_KEY not set, assistant features disabled")
	}

	// Event publishing only runs when a broker is configured.
	var events *services.EventService
	if len(cfg.KafkaBrokers) > 0 {
		events = services.NewEventService(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer events.Close()
	}

	app := handlers.NewApp(cfg, store, gemini, events, sessions, hub)

	r := gin.Default()
	router.Register(r, app, sessions)

	log.Printf("Starting server on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
