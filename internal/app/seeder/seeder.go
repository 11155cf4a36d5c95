// Package seeder loads a starter set of forms into an empty catalog.
// Forms go through the form service so validation, uniqueness and the
// audit trail apply exactly as for API writes.
package seeder

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/dojo-forms/internal/domain"
	formsvc "github.com/heartmarshall/dojo-forms/internal/service/form"
)

//go:embed starter.yaml
var defaultStarter []byte

// formCreator is the write path used for every seeded form.
type formCreator interface {
	CreateForm(ctx context.Context, input formsvc.CreateFormInput) (*domain.Form, error)
}

// formWiper clears the catalog before seeding.
type formWiper interface {
	DeleteAll(ctx context.Context) (int64, error)
}

// StarterForm is one entry of the starter YAML list.
type StarterForm struct {
	Name         string `yaml:"name"`
	RankType     string `yaml:"rank_type"`
	RankNumber   int    `yaml:"rank_number"`
	Category     string `yaml:"category"`
	BeltColor    string `yaml:"belt_color"`
	Description  string `yaml:"description"`
	ReferenceURL string `yaml:"reference_url"`
}

func (s StarterForm) input() formsvc.CreateFormInput {
	return formsvc.CreateFormInput{
		Name:         s.Name,
		RankType:     domain.RankType(s.RankType),
		RankNumber:   s.RankNumber,
		Category:     domain.Category(s.Category),
		BeltColor:    optional(s.BeltColor),
		Description:  s.Description,
		ReferenceURL: optional(s.ReferenceURL),
	}
}

// Result summarises one seed run.
type Result struct {
	Deleted  int64
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
}

// Seeder inserts starter forms.
type Seeder struct {
	log   *slog.Logger
	forms formCreator
	wiper formWiper
	cfg   Config
}

// New creates a Seeder.
func New(log *slog.Logger, forms formCreator, wiper formWiper, cfg Config) *Seeder {
	return &Seeder{log: log.With("component", "seeder"), forms: forms, wiper: wiper, cfg: cfg}
}

// LoadStarter parses the configured starter list, or the built-in one.
func (s *Seeder) LoadStarter() ([]StarterForm, error) {
	data := defaultStarter
	if s.cfg.StarterPath != "" {
		var err error
		if data, err = os.ReadFile(s.cfg.StarterPath); err != nil {
			return nil, fmt.Errorf("seeder: read %s: %w", s.cfg.StarterPath, err)
		}
	}
	return parseStarter(data)
}

func parseStarter(data []byte) ([]StarterForm, error) {
	var forms []StarterForm
	if err := yaml.Unmarshal(data, &forms); err != nil {
		return nil, fmt.Errorf("seeder: parse starter list: %w", err)
	}
	if len(forms) == 0 {
		return nil, errors.New("seeder: starter list is empty")
	}
	return forms, nil
}

// Run optionally wipes the catalog and creates every starter form. Forms
// that already exist are skipped; invalid entries are logged and counted.
// Infrastructure failures abort the run.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	var res Result

	starter, err := s.LoadStarter()
	if err != nil {
		return res, err
	}

	if s.cfg.DryRun {
		for _, f := range starter {
			if err := f.input().Validate(); err != nil {
				s.log.WarnContext(ctx, "invalid starter form", slog.String("name", f.Name), slog.String("error", err.Error()))
				res.Errors++
				continue
			}
			res.Inserted++
		}
		res.Duration = time.Since(start)
		s.log.InfoContext(ctx, "dry run complete", slog.Int("valid", res.Inserted), slog.Int("invalid", res.Errors))
		return res, nil
	}

	if s.cfg.Wipe {
		n, err := s.wiper.DeleteAll(ctx)
		if err != nil {
			return res, fmt.Errorf("seeder: wipe: %w", err)
		}
		res.Deleted = n
		s.log.InfoContext(ctx, "existing forms deleted", slog.Int64("count", n))
	}

	for _, f := range starter {
		created, err := s.forms.CreateForm(ctx, f.input())
		switch domain.KindOf(err) {
		case "":
			res.Inserted++
			s.log.DebugContext(ctx, "form seeded", slog.String("form_id", created.ID.String()), slog.String("name", created.Name))
		case domain.KindDuplicate:
			res.Skipped++
		case domain.KindValidation:
			res.Errors++
			s.log.WarnContext(ctx, "invalid starter form", slog.String("name", f.Name), slog.String("error", err.Error()))
		default:
			return res, fmt.Errorf("seeder: create %q: %w", f.Name, err)
		}
	}

	res.Duration = time.Since(start)
	s.log.InfoContext(ctx, "seed complete",
		slog.Int("inserted", res.Inserted),
		slog.Int("skipped", res.Skipped),
		slog.Int("errors", res.Errors),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
