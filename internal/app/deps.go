package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	postgres "github.com/heartmarshall/dojo-forms/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/dojo-forms/internal/adapter/postgres/audit"
	formrepo "github.com/heartmarshall/dojo-forms/internal/adapter/postgres/form"
	"github.com/heartmarshall/dojo-forms/internal/auth"
	"github.com/heartmarshall/dojo-forms/internal/config"
	"github.com/heartmarshall/dojo-forms/internal/reference"
	formsvc "github.com/heartmarshall/dojo-forms/internal/service/form"
)

// Deps holds the wired components shared by the HTTP server and formsctl.
type Deps struct {
	Pool     *pgxpool.Pool
	Forms    *formrepo.Repo
	Audit    *auditrepo.Repo
	Syllabus *reference.Syllabus
	Registry *prometheus.Registry
	Service  *formsvc.Service
	Tokens   *auth.JWTManager
}

// Build connects to the database and assembles the form service.
// The caller owns the returned Deps and must Close them.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Deps, error) {
	syllabus, err := reference.LoadFile(cfg.Forms.SyllabusPath)
	if err != nil {
		return nil, fmt.Errorf("load syllabus: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	return Assemble(pool, cfg, logger, syllabus), nil
}

// Assemble wires repositories, metrics and the service on an existing pool.
func Assemble(pool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger, syllabus *reference.Syllabus) *Deps {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	forms := formrepo.New(pool)
	audit := auditrepo.New(pool)
	svc := formsvc.NewService(
		logger,
		forms,
		audit,
		postgres.NewTxManager(pool),
		syllabus,
		formsvc.NewMetrics(reg),
	)

	return &Deps{
		Pool:     pool,
		Forms:    forms,
		Audit:    audit,
		Syllabus: syllabus,
		Registry: reg,
		Service:  svc,
		Tokens:   auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL),
	}
}

// Close releases the connection pool.
func (d *Deps) Close() {
	if d.Pool != nil {
		d.Pool.Close()
	}
}
