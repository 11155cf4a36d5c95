package form

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dojo-forms/internal/domain"
	"github.com/heartmarshall/dojo-forms/internal/reference"
	"github.com/heartmarshall/dojo-forms/pkg/ctxutil"
)

type formRepo interface {
	Create(ctx context.Context, f *domain.Form) (*domain.Form, error)
	Update(ctx context.Context, id uuid.UUID, fields domain.FormFields) (*domain.Form, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Form, error)
	Restore(ctx context.Context, id uuid.UUID) (*domain.Form, error)
	HardDelete(ctx context.Context, id uuid.UUID) error
	PurgeTrashedBefore(ctx context.Context, threshold time.Time) (int64, error)

	FindByID(ctx context.Context, id uuid.UUID) (*domain.Form, error)
	FindAlive(ctx context.Context, filter domain.FormFilter) ([]domain.Form, error)
	FindTrashed(ctx context.Context) ([]domain.Form, error)
	ExistsAlive(ctx context.Context, identity domain.FormIdentity, exclude uuid.UUID) (bool, error)
	AliveNames(ctx context.Context) ([]string, error)
	CountAliveByRank(ctx context.Context) ([]domain.RankCount, error)
}

type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	ListByForm(ctx context.Context, formID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service drives the form lifecycle: create, edit, trash, restore and purge,
// plus the read views built on top of the reference syllabus.
type Service struct {
	forms    formRepo
	audit    auditRepo
	tx       txManager
	syllabus *reference.Syllabus
	metrics  *Metrics
	log      *slog.Logger
}

// NewService creates a new Form service. metrics may be nil.
func NewService(
	log *slog.Logger,
	forms formRepo,
	audit auditRepo,
	tx txManager,
	syllabus *reference.Syllabus,
	metrics *Metrics,
) *Service {
	return &Service{
		forms:    forms,
		audit:    audit,
		tx:       tx,
		syllabus: syllabus,
		metrics:  metrics,
		log:      log.With("service", "form"),
	}
}

// actorFromCtx returns the instructor recorded on audit rows, if any.
func actorFromCtx(ctx context.Context) *uuid.UUID {
	id, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil
	}
	return &id
}

// logAudit appends a lifecycle record inside the caller's transaction.
func (s *Service) logAudit(ctx context.Context, formID uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	return s.audit.Log(ctx, domain.AuditRecord{
		FormID:  formID,
		ActorID: actorFromCtx(ctx),
		Action:  action,
		Changes: changes,
	})
}

func identityChanges(id domain.FormIdentity) map[string]any {
	return map[string]any{
		"name":       id.Name,
		"rankType":   string(id.RankType),
		"rankNumber": id.RankNumber,
	}
}
