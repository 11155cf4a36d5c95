package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord logs a lifecycle transition of a form.
// FormID is kept as a plain value so history outlives a hard delete.
type AuditRecord struct {
	ID        uuid.UUID
	FormID    uuid.UUID
	ActorID   *uuid.UUID
	Action    AuditAction
	Changes   map[string]any
	CreatedAt time.Time
}
