package form

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/dojo-forms/internal/domain"
)

// GetForm returns an alive form. Trashed forms are reported as not found.
func (s *Service) GetForm(ctx context.Context, id uuid.UUID) (*domain.Form, error) {
	return s.findAlive(ctx, id)
}

func (s *Service) findAlive(ctx context.Context, id uuid.UUID) (*domain.Form, error) {
	f, err := s.forms.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get form: %w", err)
	}
	if f.IsDeleted() {
		return nil, fmt.Errorf("form %s is trashed: %w", id, domain.ErrNotFound)
	}
	return f, nil
}
