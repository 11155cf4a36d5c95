// Package audit implements the form audit log using PostgreSQL.
// It provides append-only operations for lifecycle records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/dojo-forms/internal/adapter/postgres"
	"github.com/heartmarshall/dojo-forms/internal/domain"
)

// DefaultHistoryLimit caps ListByForm when the caller passes a non-positive limit.
const DefaultHistoryLimit = 50

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const createSQL = `
INSERT INTO form_audit (id, form_id, actor_id, action, changes, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, form_id, actor_id, action, changes, created_at`

const listByFormSQL = `
SELECT id, form_id, actor_id, action, changes, created_at
FROM form_audit
WHERE form_id = $1
ORDER BY created_at DESC, id
LIMIT $2`

type auditRow struct {
	ID        uuid.UUID  `db:"id"`
	FormID    uuid.UUID  `db:"form_id"`
	ActorID   *uuid.UUID `db:"actor_id"`
	Action    string     `db:"action"`
	Changes   []byte     `db:"changes"`
	CreatedAt time.Time  `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
// Zero ID and CreatedAt are filled in.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	changes := record.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
	}

	var row auditRow
	err = pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, createSQL,
		record.ID,
		record.FormID,
		record.ActorID,
		string(record.Action),
		changesJSON,
		record.CreatedAt,
	)
	if err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID)
	}

	return toDomain(row)
}

// Log creates an audit record without returning it.
// Satisfies form.auditLogger.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByForm returns the history of one form, newest first.
// Returns an empty slice (not nil) when the form has no history.
func (r *Repo) ListByForm(ctx context.Context, formID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	var rows []auditRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listByFormSQL, formID, limit); err != nil {
		return nil, fmt.Errorf("list audit_records by form: %w", err)
	}

	records := make([]domain.AuditRecord, len(rows))
	for i, row := range rows {
		rec, err := toDomain(row)
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}

	return records, nil
}

func toDomain(row auditRow) (domain.AuditRecord, error) {
	var changes map[string]any
	if len(row.Changes) > 0 {
		if err := json.Unmarshal(row.Changes, &changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record unmarshal changes: %w", err)
		}
	}

	return domain.AuditRecord{
		ID:        row.ID,
		FormID:    row.FormID,
		ActorID:   row.ActorID,
		Action:    domain.AuditAction(row.Action),
		Changes:   changes,
		CreatedAt: row.CreatedAt,
	}, nil
}
