package form

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/dojo-forms/internal/domain"
)

// ListForms returns alive forms ordered by rank type, rank number and name.
func (s *Service) ListForms(ctx context.Context, input ListFormsInput) ([]domain.Form, error) {
	filter, err := input.Filter()
	if err != nil {
		return nil, err
	}

	forms, err := s.forms.FindAlive(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}
	return forms, nil
}

// ListTrash returns trashed forms, most recently changed first.
func (s *Service) ListTrash(ctx context.Context) ([]domain.Form, error) {
	forms, err := s.forms.FindTrashed(ctx)
	if err != nil {
		return nil, fmt.Errorf("list trash: %w", err)
	}
	return forms, nil
}

// FormHistory returns the lifecycle records of a form, newest first.
// History is kept after a hard delete, so the form itself need not exist.
func (s *Service) FormHistory(ctx context.Context, id uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	records, err := s.audit.ListByForm(ctx, id, limit)
	if err != nil {
		return nil, fmt.Errorf("form history: %w", err)
	}
	return records, nil
}
