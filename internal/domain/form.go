package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Form is a curriculum entry: a kata, bunkai, kumite or weapon routine
// required for a belt rank.
type Form struct {
	ID           uuid.UUID  `db:"id"`
	Name         string     `db:"name"`
	RankType     RankType   `db:"rank_type"`
	RankNumber   int        `db:"rank_number"`
	BeltColor    *string    `db:"belt_color"`
	Category     Category   `db:"category"`
	Description  string     `db:"description"`
	ReferenceURL *string    `db:"reference_url"`
	Learned      bool       `db:"learned"`
	DeletedAt    *time.Time `db:"deleted_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// IsDeleted returns true if the form has been soft-deleted.
func (f *Form) IsDeleted() bool {
	return f.DeletedAt != nil
}

// State returns the lifecycle state derived from DeletedAt.
func (f *Form) State() FormState {
	if f.DeletedAt != nil {
		return FormStateTrashed
	}
	return FormStateAlive
}

// Identity returns the (name, rank type, rank number) uniqueness key.
func (f *Form) Identity() FormIdentity {
	return FormIdentity{Name: f.Name, RankType: f.RankType, RankNumber: f.RankNumber}
}

// Fields returns the user-editable part of the form.
func (f *Form) Fields() FormFields {
	return FormFields{
		Name:         f.Name,
		RankType:     f.RankType,
		RankNumber:   f.RankNumber,
		BeltColor:    f.BeltColor,
		Category:     f.Category,
		Description:  f.Description,
		ReferenceURL: f.ReferenceURL,
		Learned:      f.Learned,
	}
}

// FormIdentity is the key that must be unique among alive forms.
type FormIdentity struct {
	Name       string
	RankType   RankType
	RankNumber int
}

func (i FormIdentity) String() string {
	return fmt.Sprintf("%s/%s/%d", i.Name, i.RankType, i.RankNumber)
}

// FormFields holds every user-supplied attribute of a form. It is the
// payload for both create and update at the store boundary.
type FormFields struct {
	Name         string
	RankType     RankType
	RankNumber   int
	BeltColor    *string
	Category     Category
	Description  string
	ReferenceURL *string
	Learned      bool
}

// Identity returns the uniqueness key the fields would occupy.
func (f FormFields) Identity() FormIdentity {
	return FormIdentity{Name: f.Name, RankType: f.RankType, RankNumber: f.RankNumber}
}

// Normalize trims strings, turns blank optionals into nil and applies
// defaults for category. Inner spacing of the name is kept as typed.
func (f FormFields) Normalize() FormFields {
	f.Name = strings.TrimSpace(f.Name)
	f.RankType = RankType(strings.ToLower(strings.TrimSpace(string(f.RankType))))
	f.BeltColor = trimOrNil(f.BeltColor)
	f.ReferenceURL = trimOrNil(f.ReferenceURL)
	f.Category = Category(strings.TrimSpace(string(f.Category)))
	if f.Category == "" {
		f.Category = CategoryKata
	}
	return f
}

const (
	MinNameLength = 2
	MaxNameLength = 200
)

var referenceURLPattern = regexp.MustCompile(`^https?://`)

// Validate checks all field constraints and collects all errors.
// Fields are expected to be normalized first.
func (f FormFields) Validate() error {
	var errs []FieldError

	switch n := len([]rune(f.Name)); {
	case n == 0:
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	case n < MinNameLength:
		errs = append(errs, FieldError{Field: "name", Message: fmt.Sprintf("min %d characters", MinNameLength)})
	case n > MaxNameLength:
		errs = append(errs, FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", MaxNameLength)})
	}

	if !f.RankType.IsValid() {
		errs = append(errs, FieldError{Field: "rankType", Message: "must be one of: kyu, dan"})
	}

	if f.RankNumber < 1 {
		errs = append(errs, FieldError{Field: "rankNumber", Message: "must be at least 1"})
	}

	if !f.Category.IsValid() {
		errs = append(errs, FieldError{Field: "category", Message: "must be one of: Kata, Bunkai, Kumite, Weapon, Other"})
	}

	if f.ReferenceURL != nil && !referenceURLPattern.MatchString(*f.ReferenceURL) {
		errs = append(errs, FieldError{Field: "referenceUrl", Message: "must start with http:// or https://"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// FormFilter narrows alive listings. Zero values mean "no filter".
type FormFilter struct {
	RankType *RankType
	Category *Category
	Learned  *bool
	Search   string
}

// RankCount is the number of alive forms at one rank.
type RankCount struct {
	RankType   RankType `db:"rank_type"`
	RankNumber int      `db:"rank_number"`
	Count      int      `db:"count"`
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
