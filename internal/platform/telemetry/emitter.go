// Package telemetry records operational events alongside character state.
package telemetry

import (
	"context"
	"time"

	"github.com/louisbranch/hearthbound/internal/platform/id"
	"github.com/louisbranch/hearthbound/internal/services/progression/storage"
)

// Event types emitted by the progression service.
const (
	EventLevelUpApplied  = "level_up.applied"
	EventLevelUpConflict = "level_up.conflict"
	EventCharacterCreate = "character.created"
)

// Emitter records operational telemetry events.
type Emitter struct {
	store storage.TelemetryStore
	clock func() time.Time
}

// NewEmitter creates a new telemetry emitter.
func NewEmitter(store storage.TelemetryStore) *Emitter {
	return &Emitter{store: store, clock: time.Now}
}

// Emit records a telemetry event. It is a no-op when the store is nil, so
// callers never need to guard emission.
func (e *Emitter) Emit(ctx context.Context, event storage.TelemetryEvent) error {
	if e == nil || e.store == nil {
		return nil
	}
	if event.ID == "" {
		generated, err := id.NewID()
		if err != nil {
			return err
		}
		event.ID = generated
	}
	if event.CreatedAt.IsZero() {
		if e.clock == nil {
			event.CreatedAt = time.Now().UTC()
		} else {
			event.CreatedAt = e.clock().UTC()
		}
	}
	return e.store.PutTelemetryEvent(ctx, event)
}
