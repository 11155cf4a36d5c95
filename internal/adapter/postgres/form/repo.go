// Package form implements the Form record store using PostgreSQL.
// Alive uniqueness of (name, rank_type, rank_number) is enforced by the
// partial unique index forms_alive_identity_uq; violations come back as
// *domain.DuplicateError. The store validates fields itself, so it stays
// safe to call from tools that bypass the service layer.
package form

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/dojo-forms/internal/adapter/postgres"
	"github.com/heartmarshall/dojo-forms/internal/domain"
)

const aliveIdentityIndex = "forms_alive_identity_uq"

// checkFields maps the schema CHECK constraints to API field names.
var checkFields = map[string]string{
	"forms_name_check":          "name",
	"forms_rank_type_check":     "rankType",
	"forms_rank_number_check":   "rankNumber",
	"forms_category_check":      "category",
	"forms_reference_url_check": "referenceUrl",
}

var columns = []string{
	"id", "name", "rank_type", "rank_number", "belt_color", "category",
	"description", "reference_url", "learned", "deleted_at", "created_at", "updated_at",
}

var (
	psql          = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	returningCols = "RETURNING " + strings.Join(columns, ", ")
	selectCols    = strings.Join(columns, ", ")
)

// Repo provides form persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new form repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

var (
	insertSQL = `
INSERT INTO forms (id, name, rank_type, rank_number, belt_color, category, description, reference_url, learned)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
` + returningCols

	findByIDSQL = `SELECT ` + selectCols + ` FROM forms WHERE id = $1`

	findTrashedSQL = `SELECT ` + selectCols + ` FROM forms
WHERE deleted_at IS NOT NULL
ORDER BY updated_at DESC, id`

	softDeleteSQL = `
UPDATE forms SET
    deleted_at = COALESCE(deleted_at, now()),
    updated_at = CASE WHEN deleted_at IS NULL THEN now() ELSE updated_at END
WHERE id = $1
` + returningCols

	restoreSQL = `
UPDATE forms SET
    deleted_at = NULL,
    updated_at = now()
WHERE id = $1
` + returningCols
)

const (
	existsAliveSQL = `
SELECT EXISTS (
    SELECT 1 FROM forms
    WHERE name = $1 AND rank_type = $2 AND rank_number = $3
      AND deleted_at IS NULL AND id <> $4
)`

	hardDeleteSQL = `DELETE FROM forms WHERE id = $1`

	purgeTrashedSQL = `DELETE FROM forms WHERE deleted_at IS NOT NULL AND deleted_at < $1`

	deleteAllSQL = `DELETE FROM forms`

	aliveNamesSQL = `SELECT DISTINCT name FROM forms WHERE deleted_at IS NULL ORDER BY name`

	countAliveByRankSQL = `
SELECT rank_type, rank_number, count(*) AS count
FROM forms
WHERE deleted_at IS NULL
GROUP BY rank_type, rank_number
ORDER BY rank_type, rank_number`
)

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new alive form. A zero ID is replaced with a fresh one.
// Returns *domain.ValidationError for invalid fields and *domain.DuplicateError
// when an alive form already holds the identity.
func (r *Repo) Create(ctx context.Context, f *domain.Form) (*domain.Form, error) {
	if f == nil {
		return nil, domain.NewValidationError("form", "required")
	}

	fields := f.Fields().Normalize()
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	id := f.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var out domain.Form
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, insertSQL,
		id,
		fields.Name,
		string(fields.RankType),
		fields.RankNumber,
		fields.BeltColor,
		string(fields.Category),
		fields.Description,
		fields.ReferenceURL,
		fields.Learned,
	)
	if err != nil {
		return nil, mapWriteError(err, id, fields.Identity())
	}

	return &out, nil
}

// Update replaces the editable fields of an alive form.
// Trashed or missing forms yield domain.ErrNotFound.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, fields domain.FormFields) (*domain.Form, error) {
	fields = fields.Normalize()
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	query, args, err := psql.Update("forms").
		SetMap(map[string]any{
			"name":          fields.Name,
			"rank_type":     string(fields.RankType),
			"rank_number":   fields.RankNumber,
			"belt_color":    fields.BeltColor,
			"category":      string(fields.Category),
			"description":   fields.Description,
			"reference_url": fields.ReferenceURL,
			"learned":       fields.Learned,
		}).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		Suffix(returningCols).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update form query: %w", err)
	}

	var out domain.Form
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, mapWriteError(err, id, fields.Identity())
	}

	return &out, nil
}

// SoftDelete moves a form to the trash. Trashing an already trashed form keeps
// its original deleted_at. Returns domain.ErrNotFound if the id is unknown.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Form, error) {
	var out domain.Form
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, softDeleteSQL, id); err != nil {
		return nil, postgres.MapError(err, "form", id)
	}
	return &out, nil
}

// Restore brings a trashed form back. The unique index re-checks the identity,
// so a collision with an alive form yields *domain.DuplicateError carrying the
// identity read before the update. Restoring an alive form is a no-op.
func (r *Repo) Restore(ctx context.Context, id uuid.UUID) (*domain.Form, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	// A failed UPDATE aborts the surrounding transaction, so nothing can be
	// read after it.
	var current domain.Form
	if err := pgxscan.Get(ctx, querier, &current, findByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "form", id)
	}
	if !current.IsDeleted() {
		return &current, nil
	}

	var out domain.Form
	err := pgxscan.Get(ctx, querier, &out, restoreSQL, id)
	switch {
	case err == nil:
		return &out, nil
	case postgres.IsUniqueViolation(err, aliveIdentityIndex):
		return nil, domain.NewDuplicateError(current.Identity())
	default:
		return nil, postgres.MapError(err, "form", id)
	}
}

// HardDelete removes the row permanently. Deleting a missing id is not an error.
func (r *Repo) HardDelete(ctx context.Context, id uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, hardDeleteSQL, id); err != nil {
		return postgres.MapError(err, "form", id)
	}
	return nil
}

// PurgeTrashedBefore hard-deletes trashed forms whose deleted_at is older than
// threshold and returns how many were removed.
func (r *Repo) PurgeTrashedBefore(ctx context.Context, threshold time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, purgeTrashedSQL, threshold)
	if err != nil {
		return 0, fmt.Errorf("purge trashed forms: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteAll removes every form in any state. Used by the seed command's
// wipe; the audit trail is left in place.
func (r *Repo) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteAllSQL)
	if err != nil {
		return 0, fmt.Errorf("delete all forms: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// FindByID returns a form in any state.
// Returns domain.ErrNotFound if no row has the id.
func (r *Repo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Form, error) {
	var out domain.Form
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, findByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "form", id)
	}
	return &out, nil
}

// FindAlive lists alive forms matching the filter, ordered by rank type,
// rank number and name. Returns an empty slice (not nil) when nothing matches.
func (r *Repo) FindAlive(ctx context.Context, filter domain.FormFilter) ([]domain.Form, error) {
	qb := psql.Select(columns...).
		From("forms").
		Where(sq.Eq{"deleted_at": nil})

	if filter.RankType != nil {
		qb = qb.Where(sq.Eq{"rank_type": string(*filter.RankType)})
	}
	if filter.Category != nil {
		qb = qb.Where(sq.Eq{"category": string(*filter.Category)})
	}
	if filter.Learned != nil {
		qb = qb.Where(sq.Eq{"learned": *filter.Learned})
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		qb = qb.Where(sq.ILike{"name": "%" + escapeLike(s) + "%"})
	}

	query, args, err := qb.OrderBy("rank_type", "rank_number", "name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find alive query: %w", err)
	}

	var forms []domain.Form
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &forms, query, args...); err != nil {
		return nil, fmt.Errorf("find alive forms: %w", err)
	}
	if forms == nil {
		forms = []domain.Form{}
	}
	return forms, nil
}

// FindTrashed lists trashed forms, most recently changed first.
func (r *Repo) FindTrashed(ctx context.Context) ([]domain.Form, error) {
	var forms []domain.Form
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &forms, findTrashedSQL); err != nil {
		return nil, fmt.Errorf("find trashed forms: %w", err)
	}
	if forms == nil {
		forms = []domain.Form{}
	}
	return forms, nil
}

// ExistsAlive reports whether an alive form other than exclude holds the identity.
// Pass uuid.Nil to check against every alive form.
func (r *Repo) ExistsAlive(ctx context.Context, identity domain.FormIdentity, exclude uuid.UUID) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, existsAliveSQL, identity.Name, string(identity.RankType), identity.RankNumber, exclude).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check alive form %s: %w", identity, err)
	}
	return exists, nil
}

// AliveNames returns the distinct names of alive forms, sorted.
func (r *Repo) AliveNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &names, aliveNamesSQL); err != nil {
		return nil, fmt.Errorf("list alive form names: %w", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// CountAliveByRank returns the number of alive forms per (rank type, rank number).
// Ranks without forms are absent.
func (r *Repo) CountAliveByRank(ctx context.Context) ([]domain.RankCount, error) {
	var counts []domain.RankCount
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &counts, countAliveByRankSQL); err != nil {
		return nil, fmt.Errorf("count alive forms by rank: %w", err)
	}
	if counts == nil {
		counts = []domain.RankCount{}
	}
	return counts, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func mapWriteError(err error, id uuid.UUID, identity domain.FormIdentity) error {
	if postgres.IsUniqueViolation(err, aliveIdentityIndex) {
		return domain.NewDuplicateError(identity)
	}
	if name, ok := postgres.CheckViolation(err); ok {
		if field, known := checkFields[name]; known {
			return domain.NewValidationError(field, "invalid value")
		}
	}
	return postgres.MapError(err, "form", id)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
