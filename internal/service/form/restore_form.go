package form

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dojo-forms/internal/domain"
)

// RestoreForm brings a trashed form back to life. The identity is checked
// again first: if another alive form took it meanwhile, the result is a
// *domain.DuplicateError and the form stays in the trash.
// Restoring an alive form returns it unchanged.
func (s *Service) RestoreForm(ctx context.Context, id uuid.UUID) (*domain.Form, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	current, err := s.forms.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get form: %w", err)
	}
	if !current.IsDeleted() {
		return current, nil
	}

	identity := current.Identity()
	exists, err := s.forms.ExistsAlive(ctx, identity, id)
	if err != nil {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}
	if exists {
		s.metrics.duplicate()
		return nil, domain.NewDuplicateError(identity)
	}

	var restored *domain.Form
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var restoreErr error
		restored, restoreErr = s.forms.Restore(txCtx, id)
		if restoreErr != nil {
			return fmt.Errorf("restore form: %w", restoreErr)
		}
		if auditErr := s.logAudit(txCtx, id, domain.AuditActionRestore, identityChanges(identity)); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		if domain.KindOf(err) == domain.KindDuplicate {
			s.metrics.duplicate()
		}
		return nil, err
	}

	s.metrics.transition(domain.AuditActionRestore)
	s.log.InfoContext(ctx, "form restored",
		slog.String("form_id", id.String()),
		slog.String("identity", identity.String()),
	)

	return restored, nil
}
