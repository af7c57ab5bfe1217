package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/gcbs/appointment-system/internal/api/metrics"
	"github.com/gcbs/appointment-system/internal/core/service"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// EventSink persists a single audit event.
type EventSink interface {
	Insert(ctx context.Context, event service.AppointmentEvent) error
}

// Dispatcher routes appointment lifecycle events to a fixed set of workers
// using consistent hashing on the appointment id, so events for one
// appointment are persisted in the order they were recorded. Delivery is
// fire-and-forget: a full channel drops the event with a warning rather than
// blocking the request path.
type Dispatcher struct {
	workers []chan service.AppointmentEvent
	sink    EventSink
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink EventSink, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan service.AppointmentEvent, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan service.AppointmentEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record implements service.Recorder. It never blocks the caller.
func (d *Dispatcher) Record(event service.AppointmentEvent) {
	select {
	case d.workers[d.shardIndex(event.AppointmentID)] <- event:
	default:
		d.log.Warn().Str("appointment_id", event.AppointmentID).Msg("audit queue full, event dropped")
	}
}

// shardIndex maps an appointment id deterministically to a worker index.
func (d *Dispatcher) shardIndex(appointmentID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(appointmentID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan service.AppointmentEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.sink.Insert(ctx, event); err != nil {
				metrics.AuditErrorsTotal.Inc()
				d.log.Error().Err(err).
					Str("appointment_id", event.AppointmentID).
					Int("worker_id", id).
					Msg("audit event write failed")
				continue
			}
			metrics.AuditEventsTotal.WithLabelValues(event.Action).Inc()
		}
	}
}
