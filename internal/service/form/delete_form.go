package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/dojo-forms/internal/domain"
)

// DeleteForm trashes a form, or removes it permanently when input.Hard is set.
// Trashing an unknown id is domain.ErrNotFound; removing one is a no-op.
func (s *Service) DeleteForm(ctx context.Context, input DeleteFormInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	current, err := s.forms.FindByID(ctx, input.ID)
	if err != nil {
		if input.Hard && errors.Is(err, domain.ErrNotFound) {
			s.log.DebugContext(ctx, "hard delete of unknown form", slog.String("form_id", input.ID.String()))
			return nil
		}
		return fmt.Errorf("get form: %w", err)
	}

	if input.Hard {
		return s.hardDelete(ctx, current)
	}
	return s.softDelete(ctx, current)
}

func (s *Service) softDelete(ctx context.Context, current *domain.Form) error {
	if current.IsDeleted() {
		return nil
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, deleteErr := s.forms.SoftDelete(txCtx, current.ID); deleteErr != nil {
			return fmt.Errorf("soft delete form: %w", deleteErr)
		}
		if auditErr := s.logAudit(txCtx, current.ID, domain.AuditActionSoftDelete, identityChanges(current.Identity())); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.metrics.transition(domain.AuditActionSoftDelete)
	s.log.InfoContext(ctx, "form trashed",
		slog.String("form_id", current.ID.String()),
		slog.String("identity", current.Identity().String()),
	)
	return nil
}

func (s *Service) hardDelete(ctx context.Context, current *domain.Form) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.forms.HardDelete(txCtx, current.ID); deleteErr != nil {
			return fmt.Errorf("hard delete form: %w", deleteErr)
		}
		changes := identityChanges(current.Identity())
		changes["state"] = current.State().String()
		if auditErr := s.logAudit(txCtx, current.ID, domain.AuditActionHardDelete, changes); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.metrics.transition(domain.AuditActionHardDelete)
	s.log.InfoContext(ctx, "form removed",
		slog.String("form_id", current.ID.String()),
		slog.String("identity", current.Identity().String()),
	)
	return nil
}
