package handlers

import (
	"context"
	"log"
	"time"

	"tade-autism-centre/backend/utils"
)

// publishEvent fires a domain event at the back-office pipeline. Event
// delivery is best-effort; the request has already been answered.
func publishEvent(producer utils.KafkaProducer, event interface{}) {
	if producer == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := producer.PublishEvent(ctx, utils.DirectoryEventsTopic, event); err != nil {
		log.Printf("Failed to publish event: %v", err)
	}
}
