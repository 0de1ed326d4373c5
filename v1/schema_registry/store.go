package schema_registry

import (
	"context"
	"fmt"
	"time"

	"github.com/Aleph-Alpha/std/v1/postgres"
)

// SchemaVersion is one registered version of a subject's schema, the
// persisted counterpart of the in-memory schema handles v1/avro works
// with. Modeled as a GORM entity the way v1/postgres's other call sites
// do (see postgres/migrations.go), rather than hand-written SQL.
type SchemaVersion struct {
	ID            int    `gorm:"primaryKey;autoIncrement"`
	Subject       string `gorm:"index:idx_subject_version,unique,priority:1"`
	Version       int    `gorm:"index:idx_subject_version,unique,priority:2"`
	SchemaType    string
	SchemaText    string `gorm:"type:text"`
	CanonicalText string `gorm:"type:text"`
	CreatedAt     time.Time
}

func (SchemaVersion) TableName() string { return "schema_versions" }

// Store persists and retrieves SchemaVersion rows through v1/postgres's
// Client interface, so it benefits from the same query builder, error
// translation, and transaction support the rest of the stack uses.
type Store struct {
	db postgres.Client
}

// NewStore wraps db for schema-version persistence. Callers are expected
// to have already run Migrate(&SchemaVersion{}) against db (see
// v1/postgres/migrations.go) before using the returned Store.
func NewStore(db postgres.Client) *Store {
	return &Store{db: db}
}

// Latest returns the highest-versioned SchemaVersion for subject, or
// postgres.ErrRecordNotFound if none has been registered yet.
func (s *Store) Latest(ctx context.Context, subject string) (*SchemaVersion, error) {
	var row SchemaVersion
	err := s.db.Query(ctx).
		Where("subject = ?", subject).
		Order("version DESC").
		First(&row)
	if err != nil {
		return nil, s.db.TranslateError(err)
	}
	return &row, nil
}

// ByID returns the SchemaVersion registered under the given global ID.
func (s *Store) ByID(ctx context.Context, id int) (*SchemaVersion, error) {
	var row SchemaVersion
	err := s.db.Query(ctx).
		Where("id = ?", id).
		First(&row)
	if err != nil {
		return nil, s.db.TranslateError(err)
	}
	return &row, nil
}

// Create inserts a new version for subject, one past whatever version
// currently exists (0 if none does), and returns the persisted row with
// its assigned ID.
func (s *Store) Create(ctx context.Context, subject, schemaType, schemaText, canonicalText string) (*SchemaVersion, error) {
	nextVersion := 1
	if latest, err := s.Latest(ctx, subject); err == nil {
		nextVersion = latest.Version + 1
	} else if s.db.GetErrorCategory(err) != postgres.CategoryNotFound {
		return nil, fmt.Errorf("look up latest version for subject %q: %w", subject, err)
	}

	row := SchemaVersion{
		Subject:       subject,
		Version:       nextVersion,
		SchemaType:    schemaType,
		SchemaText:    schemaText,
		CanonicalText: canonicalText,
		CreatedAt:     time.Now(),
	}
	if err := s.db.Create(ctx, &row); err != nil {
		return nil, fmt.Errorf("insert schema version for subject %q: %w", subject, err)
	}
	return &row, nil
}
