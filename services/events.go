package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/harishd2007/CivicFlow-v11/models"
)

// ReportCreatedEvent is the envelope published when a citizen files a report.
// Downstream city systems (dispatch, open-data feeds) consume it; this
// service is fire-and-forget and never blocks report creation.
type ReportCreatedEvent struct {
	ReportID  string    `json:"report_id"`
	Category  string    `json:"category"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type EventService struct {
	writer *kafka.Writer
}

func NewEventService(brokers []string, topic string) *EventService {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}
	return &EventService{writer: writer}
}

// PublishReportCreated emits the event with a short deadline. Failures are
// logged and swallowed so the citizen-facing path is never held hostage by
// the broker.
func (e *EventService) PublishReportCreated(ctx context.Context, report models.Report) {
	event := ReportCreatedEvent{
		ReportID:  report.ID,
		Category:  string(report.Category),
		Lat:       report.Location.Lat,
		Lng:       report.Location.Lng,
		Address:   report.Location.Address,
		CreatedAt: report.CreatedAt,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[EventService] failed to marshal event: %v", err)
		return
	}

	pubCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(report.ID),
		Value: data,
		Time:  report.CreatedAt,
	}
	if err := e.writer.WriteMessages(pubCtx, msg); err != nil {
		log.Printf("[EventService] failed to publish report.created for %s: %v", report.ID, err)
		return
	}
	log.Printf("[EventService] published report.created for %s", report.ID)
}

func (e *EventService) Close() error {
	if e.writer == nil {
		return nil
	}
	if err := e.writer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka writer: %w", err)
	}
	return nil
}
