package workers

import (
	"autochannel/contract"
	"autochannel/domain/event"
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Ensure *EventWorker implements the contract.Worker interface at compile time.
var _ contract.Worker = (*EventWorker)(nil)

// EventWorker is one unit of the pool consuming gateway events.
// Several units share the same channel, so handlers for different events run concurrently.
type EventWorker struct {
	events  <-chan event.Event
	handler contract.IEventHandler
	log     *slog.Logger
}

func NewEventWorker(events <-chan event.Event, handler contract.IEventHandler, log *slog.Logger) *EventWorker {
	return &EventWorker{events: events, handler: handler, log: log}
}

func (w *EventWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return nil
		case evt, ok := <-w.events:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			log := w.log.With("event_id", uuid.NewString(), "type", evt.Type())
			if err := w.handler.Handle(ctx, evt); err != nil {
				log.Error("Event handling failed", "err", err)
				continue
			}
			log.Debug("Event handled")
		}
	}
}
