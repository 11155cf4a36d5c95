package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/dojo-forms/internal/domain"
)

// UniqueName returns prefix plus a short random suffix so parallel tests
// sharing one database never collide on a form identity.
func UniqueName(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedForm inserts an alive form directly, bypassing the repository.
func SeedForm(t *testing.T, pool *pgxpool.Pool, name string, rankType domain.RankType, rankNumber int) domain.Form {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	f := domain.Form{
		ID:         uuid.New(),
		Name:       name,
		RankType:   rankType,
		RankNumber: rankNumber,
		Category:   domain.CategoryKata,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO forms (id, name, rank_type, rank_number, category, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		f.ID, f.Name, string(f.RankType), f.RankNumber, string(f.Category), f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedForm insert: %v", err)
	}

	return f
}

// SeedTrashedForm inserts a form that is already soft-deleted.
func SeedTrashedForm(t *testing.T, pool *pgxpool.Pool, name string, rankType domain.RankType, rankNumber int) domain.Form {
	t.Helper()

	f := SeedForm(t, pool, UniqueName("tmp"), rankType, rankNumber)
	deletedAt := time.Now().UTC().Truncate(time.Microsecond)

	_, err := pool.Exec(context.Background(),
		`UPDATE forms SET name = $2, deleted_at = $3 WHERE id = $1`,
		f.ID, name, deletedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTrashedForm update: %v", err)
	}

	f.Name = name
	f.DeletedAt = &deletedAt
	return f
}
