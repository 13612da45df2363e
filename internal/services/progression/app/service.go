// Package app implements the progression service's operations over the
// storage and content layers.
package app

import (
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/hearthbound/internal/platform/telemetry"
	"github.com/louisbranch/hearthbound/internal/services/progression/content"
	"github.com/louisbranch/hearthbound/internal/services/progression/domain/daggerheart"
	"github.com/louisbranch/hearthbound/internal/services/progression/storage"
)

// Service coordinates character advancement: sheet reads, level-up drafts,
// validation, and transactional confirmation.
type Service struct {
	store     storage.Store
	catalog   *content.Catalog
	validator *daggerheart.Validator
	emitter   *telemetry.Emitter
	tracer    trace.Tracer
	clock     func() time.Time
}

// NewService wires a progression service over the given store and catalogue.
func NewService(store storage.Store, catalog *content.Catalog) *Service {
	return &Service{
		store:     store,
		catalog:   catalog,
		validator: daggerheart.NewValidator(catalog),
		emitter:   telemetry.NewEmitter(store),
		tracer:    otel.Tracer("hearthbound/progression"),
		clock:     time.Now,
	}
}

func (s *Service) now() time.Time {
	if s.clock == nil {
		return time.Now().UTC()
	}
	return s.clock().UTC()
}
