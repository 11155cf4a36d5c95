package form

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/dojo-forms/internal/domain"
)

// CreateFormInput holds the parameters for creating a form.
type CreateFormInput struct {
	Name         string
	RankType     domain.RankType
	RankNumber   int
	BeltColor    *string
	Category     domain.Category
	Description  string
	ReferenceURL *string
	Learned      bool
}

// Fields returns the normalized form fields.
func (i CreateFormInput) Fields() domain.FormFields {
	return domain.FormFields{
		Name:         i.Name,
		RankType:     i.RankType,
		RankNumber:   i.RankNumber,
		BeltColor:    i.BeltColor,
		Category:     i.Category,
		Description:  i.Description,
		ReferenceURL: i.ReferenceURL,
		Learned:      i.Learned,
	}.Normalize()
}

// Validate checks all fields and collects all errors.
func (i CreateFormInput) Validate() error {
	return i.Fields().Validate()
}

// UpdateFormInput replaces every editable field of an alive form.
type UpdateFormInput struct {
	ID           uuid.UUID
	Name         string
	RankType     domain.RankType
	RankNumber   int
	BeltColor    *string
	Category     domain.Category
	Description  string
	ReferenceURL *string
	Learned      bool
}

// Fields returns the normalized form fields.
func (i UpdateFormInput) Fields() domain.FormFields {
	return CreateFormInput{
		Name:         i.Name,
		RankType:     i.RankType,
		RankNumber:   i.RankNumber,
		BeltColor:    i.BeltColor,
		Category:     i.Category,
		Description:  i.Description,
		ReferenceURL: i.ReferenceURL,
		Learned:      i.Learned,
	}.Fields()
}

// Validate checks all fields and collects all errors.
// The id is checked separately since a missing record wins over a bad payload.
func (i UpdateFormInput) Validate() error {
	return i.Fields().Validate()
}

// DeleteFormInput selects between trashing (default) and permanent removal.
type DeleteFormInput struct {
	ID   uuid.UUID
	Hard bool
}

// Validate checks all fields and collects all errors.
func (i DeleteFormInput) Validate() error {
	if i.ID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}

// ListFormsInput narrows the alive listing. Empty strings mean "any".
type ListFormsInput struct {
	RankType string
	Category string
	Learned  *bool
	Search   string
}

// Filter validates the input and converts it to a store filter.
func (i ListFormsInput) Filter() (domain.FormFilter, error) {
	var (
		filter = domain.FormFilter{Learned: i.Learned, Search: strings.TrimSpace(i.Search)}
		errs   []domain.FieldError
	)

	if rt := strings.ToLower(strings.TrimSpace(i.RankType)); rt != "" {
		rankType := domain.RankType(rt)
		if !rankType.IsValid() {
			errs = append(errs, domain.FieldError{Field: "rankType", Message: "must be one of: kyu, dan"})
		}
		filter.RankType = &rankType
	}

	if c := strings.TrimSpace(i.Category); c != "" {
		category := domain.Category(c)
		if !category.IsValid() {
			errs = append(errs, domain.FieldError{Field: "category", Message: "must be one of: Kata, Bunkai, Kumite, Weapon, Other"})
		}
		filter.Category = &category
	}

	if len(errs) > 0 {
		return domain.FormFilter{}, domain.NewValidationErrors(errs)
	}
	return filter, nil
}
