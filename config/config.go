package config

import (
	"os"
	"strings"
)

type Config struct {
	Port            string
	GeminiAPIKey    string
	GeminiTextModel string
	GeminiImgModel  string
	KafkaBrokers    []string
	KafkaTopic      string
	SessionFile     string
	AllowedOrigins  []string
}

func Load() Config {
	return Config{
		Port:            getenv("PORT", "8080"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiTextModel: getenv("GEMINI_TEXT_MODEL", "gemini-2.5-flash"),
		GeminiImgModel:  getenv("GEMINI_IMAGE_MODEL", "gemini-2.5-flash-image"),
		KafkaBrokers:    splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:      getenv("KAFKA_TOPIC", "civicflow.report-created"),
		SessionFile:     getenv("SESSION_FILE", "civicflow_session.json"),
		AllowedOrigins:  splitList(getenv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")),
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
