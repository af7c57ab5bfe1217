package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gcbs/appointment-system/internal/core/service"
)

const collectionEvents = "appointment_events"

// EventRepository persists appointment lifecycle events to the audit
// collection. Writes are append-only; nothing in the serving path reads them.
type EventRepository struct {
	col *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{col: db.Collection(collectionEvents)}
}

func (r *EventRepository) Insert(ctx context.Context, e service.AppointmentEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"appointment_id": e.AppointmentID,
		"lecturer_id":    e.LecturerID,
		"action":         e.Action,
		"actor_id":       e.ActorID,
		"timestamp":      e.Timestamp.UTC(),
		"recorded_at":    time.Now().UTC(),
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}
