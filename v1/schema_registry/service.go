package schema_registry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Aleph-Alpha/std/v1/avro"
	"github.com/Aleph-Alpha/std/v1/logger"
	"github.com/Aleph-Alpha/std/v1/observability"
)

// SchemaRegisteredTopic is the internal topic Service publishes a
// SchemaRegisteredEvent to on every successful RegisterSchema call, so
// other components (consumers refreshing a codec cache, audit logging)
// can react without polling the registry.
const SchemaRegisteredTopic = "__schema_events"

// EventPublisher is the minimal interface Service needs to publish a
// SchemaRegisteredEvent. v1/kafka's Client satisfies it; Service depends
// on this narrower interface instead of importing v1/kafka directly,
// since v1/kafka already imports this package for the Registry
// interface Client/Service both implement.
type EventPublisher interface {
	Produce(ctx context.Context, key string, value interface{}, headers map[string]string) error
}

// SchemaRegisteredEvent is published to SchemaRegisteredTopic whenever a
// new schema version is persisted.
type SchemaRegisteredEvent struct {
	Subject    string `json:"subject"`
	Version    int    `json:"version"`
	SchemaID   int    `json:"schema_id"`
	SchemaType string `json:"schema_type"`
}

// CompatibilityMode is a per-subject policy selecting which direction(s)
// of avro.Compatible must hold before a new schema can be registered.
type CompatibilityMode int

const (
	// CompatibilityNone skips the compatibility check entirely.
	CompatibilityNone CompatibilityMode = iota
	// CompatibilityBackward requires the new schema, as reader, to be
	// able to read data written under the previous schema.
	CompatibilityBackward
	// CompatibilityForward requires the previous schema, as reader, to
	// be able to read data written under the new schema.
	CompatibilityForward
	// CompatibilityFull requires both directions to hold.
	CompatibilityFull
)

// Service is the in-process schema registry: it sanitizes and builds
// schemas with v1/avro and decides compatibility against the stored
// latest version without ever leaving the process to do so. This is the
// component that answers the core's "no I/O in the core" requirement —
// the core itself (v1/avro) is pure, and Service is the thin stateful
// shell around it that the core's Design Notes describe as where any
// caching belongs.
//
// Service implements the Registry interface, so it is a drop-in
// replacement for the HTTP-backed Client wherever a Registry is
// expected (e.g. v1/kafka's Avro serializer).
type Service struct {
	store    *Store
	events   EventPublisher
	observer observability.Observer
	log      logger.Logger

	modesMu sync.RWMutex
	modes   map[string]CompatibilityMode

	defaultMode CompatibilityMode
}

// NewService constructs a Service backed by store. observer, log, and
// events may all be nil; when nil, the corresponding side effect
// (observation, logging, event publication) is simply skipped.
func NewService(store *Store, events EventPublisher, observer observability.Observer, log logger.Logger, defaultMode CompatibilityMode) *Service {
	return &Service{
		store:       store,
		events:      events,
		observer:    observer,
		log:         log,
		modes:       make(map[string]CompatibilityMode),
		defaultMode: defaultMode,
	}
}

// publishRegistered best-effort publishes a SchemaRegisteredEvent: a
// failure to notify interested consumers must never undo or fail a
// registration that already committed to storage.
func (s *Service) publishRegistered(ctx context.Context, event SchemaRegisteredEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Produce(ctx, event.Subject, event, nil); err != nil {
		s.logError("publish schema registered event", event.Subject, err)
	}
}

// SetCompatibilityMode overrides the compatibility policy for subject.
func (s *Service) SetCompatibilityMode(subject string, mode CompatibilityMode) {
	s.modesMu.Lock()
	defer s.modesMu.Unlock()
	s.modes[subject] = mode
}

func (s *Service) modeFor(subject string) CompatibilityMode {
	s.modesMu.RLock()
	defer s.modesMu.RUnlock()
	if m, ok := s.modes[subject]; ok {
		return m
	}
	return s.defaultMode
}

// sanitizeAndBuild runs the engine's first two stages and classifies the
// result the way v1/avro's SchemaInvalidError is meant to surface: as an
// error the caller can present verbatim, never a panic.
func sanitizeAndBuild(schemaText string) (canonical []byte, node *avro.SchemaNode, err error) {
	canonical, err = avro.Sanitize([]byte(schemaText))
	if err != nil {
		return nil, nil, err
	}
	node, err = avro.Build(canonical)
	if err != nil {
		return nil, nil, err
	}
	return canonical, node, nil
}

// checkCompatibleWith applies mode to determine which avro.Compatible
// calls, in which direction(s), must succeed.
func checkCompatibleWith(mode CompatibilityMode, candidate, existing *avro.SchemaNode) bool {
	switch mode {
	case CompatibilityNone:
		return true
	case CompatibilityBackward:
		return avro.Compatible(candidate, existing)
	case CompatibilityForward:
		return avro.Compatible(existing, candidate)
	case CompatibilityFull:
		return avro.Compatible(candidate, existing) && avro.Compatible(existing, candidate)
	default:
		return avro.Compatible(candidate, existing)
	}
}

func (s *Service) observe(op, resource string, start time.Time, err error) {
	if s.observer == nil {
		return
	}
	s.observer.ObserveOperation(observability.OperationContext{
		Component: "schema_registry",
		Operation: op,
		Resource:  resource,
		Duration:  time.Since(start),
		Error:     err,
	})
}

// RegisterSchema sanitizes and builds schema, checks it against the
// subject's stored latest version under the subject's CompatibilityMode,
// and persists a new version on success. No network round trip is made
// to reach this verdict; avro.Compatible runs entirely in-process
// against the two built SchemaNode trees.
func (s *Service) RegisterSchema(subject, schema, schemaType string) (int, error) {
	start := time.Now()
	ctx := context.Background()

	canonical, candidate, err := sanitizeAndBuild(schema)
	if err != nil {
		s.logError("register schema rejected", subject, err)
		s.observe("register", subject, start, err)
		return 0, err
	}

	existing, err := s.store.Latest(ctx, subject)
	if err == nil {
		existingNode, buildErr := avro.Build([]byte(existing.CanonicalText))
		if buildErr != nil {
			s.observe("register", subject, start, buildErr)
			return 0, fmt.Errorf("rebuild stored schema for subject %q: %w", subject, buildErr)
		}
		if mode := s.modeFor(subject); !checkCompatibleWith(mode, candidate, existingNode) {
			err := fmt.Errorf("schema for subject %q is not compatible with the latest registered version", subject)
			s.observe("register", subject, start, err)
			return 0, err
		}
	}

	row, err := s.store.Create(ctx, subject, schemaType, schema, string(canonical))
	if err != nil {
		s.observe("register", subject, start, err)
		return 0, err
	}

	s.publishRegistered(ctx, SchemaRegisteredEvent{
		Subject:    subject,
		Version:    row.Version,
		SchemaID:   row.ID,
		SchemaType: schemaType,
	})

	s.observe("register", subject, start, nil)
	return row.ID, nil
}

// CheckCompatibility is the read-only counterpart of RegisterSchema: it
// answers whether schema could be registered right now without
// persisting anything.
func (s *Service) CheckCompatibility(subject, schema, schemaType string) (bool, error) {
	start := time.Now()
	_, candidate, err := sanitizeAndBuild(schema)
	if err != nil {
		s.observe("check_compatibility", subject, start, err)
		return false, err
	}

	existing, err := s.store.Latest(context.Background(), subject)
	if err != nil {
		// Nothing registered yet: anything valid is compatible.
		s.observe("check_compatibility", subject, start, nil)
		return true, nil
	}

	existingNode, err := avro.Build([]byte(existing.CanonicalText))
	if err != nil {
		s.observe("check_compatibility", subject, start, err)
		return false, fmt.Errorf("rebuild stored schema for subject %q: %w", subject, err)
	}

	result := checkCompatibleWith(s.modeFor(subject), candidate, existingNode)
	s.observe("check_compatibility", subject, start, nil)
	return result, nil
}

// GetSchemaByID returns the raw schema text registered under id.
func (s *Service) GetSchemaByID(id int) (string, error) {
	row, err := s.store.ByID(context.Background(), id)
	if err != nil {
		return "", err
	}
	return row.SchemaText, nil
}

// GetLatestSchema returns the latest registered version for subject as
// Metadata, matching the shape the HTTP-backed Client returns.
func (s *Service) GetLatestSchema(subject string) (*Metadata, error) {
	row, err := s.store.Latest(context.Background(), subject)
	if err != nil {
		return nil, err
	}
	return &Metadata{
		ID:      row.ID,
		Version: row.Version,
		Schema:  row.SchemaText,
		Subject: row.Subject,
		Type:    row.SchemaType,
	}, nil
}

func (s *Service) logError(msg, subject string, err error) {
	if s.log == nil {
		return
	}
	s.log.Error(msg, err, map[string]interface{}{"subject": subject})
}
