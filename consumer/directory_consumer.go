package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/segmentio/kafka-go"

	"tade-autism-centre/backend/utils"
)

type directoryEvent struct {
	Event string          `json:"event"`
	ID    uint            `json:"id"`
	Data  json.RawMessage `json:"data"`
}

// DirectoryConsumer mirrors submission events into the back-office
// Elasticsearch index. Postgres stays the source of truth; the index is
// rebuildable from it, so handlers never wait on indexing.
type DirectoryConsumer struct {
	es       utils.ElasticsearchClient
	reader   *kafka.Reader
	shutdown chan struct{}
}

func NewDirectoryConsumer(es utils.ElasticsearchClient) *DirectoryConsumer {
	return &DirectoryConsumer{
		es: es,
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: []string{os.Getenv("KAFKA_BROKER")},
			Topic:   utils.DirectoryEventsTopic,
			GroupID: "tade-backoffice",
			MaxWait: 10 * time.Second,
		}),
		shutdown: make(chan struct{}),
	}
}

func (c *DirectoryConsumer) Start(ctx context.Context) {
	log.Println("Starting directory events consumer...")

	go func() {
		for {
			select {
			case <-c.shutdown:
				return
			default:
				c.processMessage(ctx)
			}
		}
	}()
}

func (c *DirectoryConsumer) Stop() {
	close(c.shutdown)
	if err := c.reader.Close(); err != nil {
		log.Printf("Error closing Kafka reader: %v", err)
	}
}

func (c *DirectoryConsumer) processMessage(ctx context.Context) {
	msg, err := c.reader.ReadMessage(ctx)
	if err != nil {
		if err == context.Canceled {
			return
		}
		log.Printf("Kafka read error: %v (will retry)", err)
		time.Sleep(5 * time.Second)
		return
	}

	var event directoryEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Printf("Failed to unmarshal event: %v", err)
		return
	}

	switch event.Event {
	case "specialist_created":
		c.index(ctx, "specialists", event)
	case "assessment_submitted":
		c.index(ctx, "assessments", event)
	default:
		log.Printf("Unknown event type: %s", event.Event)
	}
}

func (c *DirectoryConsumer) index(ctx context.Context, index string, event directoryEvent) {
	var doc map[string]interface{}
	if err := json.Unmarshal(event.Data, &doc); err != nil {
		log.Printf("Failed to unmarshal %s payload: %v", event.Event, err)
		return
	}

	if err := c.es.IndexDocument(ctx, index, fmt.Sprintf("%d", event.ID), doc); err != nil {
		log.Printf("Failed to index %s event in Elasticsearch: %v", event.Event, err)
		return
	}

	log.Printf("Indexed %s event (id %d)", event.Event, event.ID)
}
