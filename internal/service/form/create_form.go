package form

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dojo-forms/internal/domain"
)

// CreateForm validates the input, rejects an identity already held by an
// alive form, and stores the new form with a CREATE audit record.
func (s *Service) CreateForm(ctx context.Context, input CreateFormInput) (*domain.Form, error) {
	fields := input.Fields()
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	identity := fields.Identity()
	exists, err := s.forms.ExistsAlive(ctx, identity, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}
	if exists {
		s.metrics.duplicate()
		return nil, domain.NewDuplicateError(identity)
	}

	var created *domain.Form
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.forms.Create(txCtx, &domain.Form{
			Name:         fields.Name,
			RankType:     fields.RankType,
			RankNumber:   fields.RankNumber,
			BeltColor:    fields.BeltColor,
			Category:     fields.Category,
			Description:  fields.Description,
			ReferenceURL: fields.ReferenceURL,
			Learned:      fields.Learned,
		})
		if createErr != nil {
			return fmt.Errorf("create form: %w", createErr)
		}

		if auditErr := s.logAudit(txCtx, created.ID, domain.AuditActionCreate, identityChanges(identity)); auditErr != nil {
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

	s.metrics.transition(domain.AuditActionCreate)
	s.log.InfoContext(ctx, "form created",
		slog.String("form_id", created.ID.String()),
		slog.String("identity", identity.String()),
	)

	return created, nil
}
