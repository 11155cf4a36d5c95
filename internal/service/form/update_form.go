package form

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dojo-forms/internal/domain"
)

// UpdateForm replaces the editable fields of an alive form.
// A missing or trashed form yields domain.ErrNotFound even when the payload
// is invalid; only an existing alive form gets its payload validated.
func (s *Service) UpdateForm(ctx context.Context, input UpdateFormInput) (*domain.Form, error) {
	if input.ID == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	current, err := s.findAlive(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	fields := input.Fields()
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	identity := fields.Identity()
	if identity != current.Identity() {
		exists, existsErr := s.forms.ExistsAlive(ctx, identity, input.ID)
		if existsErr != nil {
			return nil, fmt.Errorf("check duplicate: %w", existsErr)
		}
		if exists {
			s.metrics.duplicate()
			return nil, domain.NewDuplicateError(identity)
		}
	}

	var updated *domain.Form
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.forms.Update(txCtx, input.ID, fields)
		if updateErr != nil {
			return fmt.Errorf("update form: %w", updateErr)
		}

		// Skip audit if nothing actually changed.
		changes := buildFormChanges(current, updated)
		if len(changes) > 0 {
			if auditErr := s.logAudit(txCtx, input.ID, domain.AuditActionUpdate, changes); auditErr != nil {
				return fmt.Errorf("audit log: %w", auditErr)
			}
		}
		return nil
	})
	if err != nil {
		if domain.KindOf(err) == domain.KindDuplicate {
			s.metrics.duplicate()
		}
		return nil, err
	}

	s.metrics.transition(domain.AuditActionUpdate)
	s.log.InfoContext(ctx, "form updated",
		slog.String("form_id", input.ID.String()),
		slog.String("identity", identity.String()),
	)

	return updated, nil
}

// buildFormChanges returns only changed fields for audit.
func buildFormChanges(old, updated *domain.Form) map[string]any {
	changes := make(map[string]any)
	diff := func(field string, before, after any) {
		if before != after {
			changes[field] = map[string]any{"old": before, "new": after}
		}
	}

	diff("name", old.Name, updated.Name)
	diff("rankType", string(old.RankType), string(updated.RankType))
	diff("rankNumber", old.RankNumber, updated.RankNumber)
	diff("beltColor", deref(old.BeltColor), deref(updated.BeltColor))
	diff("category", string(old.Category), string(updated.Category))
	diff("description", old.Description, updated.Description)
	diff("referenceUrl", deref(old.ReferenceURL), deref(updated.ReferenceURL))
	diff("learned", old.Learned, updated.Learned)

	return changes
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
