package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/cocoon/internal/checklist"
	errorvalues "github.com/limbo/cocoon/internal/error_values"
	"github.com/limbo/cocoon/internal/repository"
	"github.com/limbo/cocoon/pkg/entity"
	"github.com/limbo/cocoon/pkg/logger"
)

type ChecklistService struct {
	repo repository.ChecklistsRepositoryI
	txm  repository.TxManagerI
	now  func() time.Time
}

func NewChecklistService(repo repository.ChecklistsRepositoryI, txm repository.TxManagerI, now func() time.Time) *ChecklistService {
	if now == nil {
		now = time.Now
	}
	return &ChecklistService{
		repo: repo,
		txm:  txm,
		now:  now,
	}
}

func (cs *ChecklistService) Get(ctx context.Context, uid uuid.UUID, checklistType entity.ChecklistType) (*checklist.Payload, error) {
	if _, ok := checklist.TemplateFor(checklistType); !ok {
		return nil, errorvalues.ErrUnknownChecklistType
	}
	cl, err := cs.repo.GetByUserAndType(ctx, uid, checklistType)
	switch {
	case err == nil:
		cs.correctProgress(ctx, cl)
		return checklist.ToPayload(cl), nil
	case errors.Is(err, errorvalues.ErrChecklistNotFound):
	default:
		return nil, errors.New("repository searching error: " + err.Error())
	}

	cl, err = cs.seed(ctx, uid, checklistType)
	if err == nil {
		return checklist.ToPayload(cl), nil
	}
	if !errors.Is(err, errorvalues.ErrChecklistExists) {
		return nil, err
	}
	// Lost the seeding race to a concurrent request: its checklist is the one to use.
	cl, err = cs.repo.GetByUserAndType(ctx, uid, checklistType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errorvalues.ErrChecklistInit, err)
	}
	return checklist.ToPayload(cl), nil
}

func (cs *ChecklistService) ToggleItem(ctx context.Context, uid, itemID uuid.UUID) (*checklist.Payload, error) {
	var cl *entity.Checklist
	err := cs.txm.RunInTx(ctx, func(ctx context.Context) error {
		checklistID, err := cs.repo.LockItemChecklist(ctx, itemID, uid)
		if err != nil {
			return err
		}
		cl, err = cs.repo.GetByID(ctx, checklistID, uid)
		if err != nil {
			return err
		}
		checked, err := checklist.Toggle(cl, itemID, cs.now())
		if err != nil {
			return err
		}
		if err = cs.repo.SetItemChecked(ctx, itemID, checked); err != nil {
			return err
		}
		return cs.repo.UpdateProgress(ctx, cl.ID, cl.Progress, cl.LastUpdated)
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotFoundOrUnauthorized) {
			return nil, errorvalues.ErrNotFoundOrUnauthorized
		}
		return nil, errors.New("toggling item error: " + err.Error())
	}
	return checklist.ToPayload(cl), nil
}

func (cs *ChecklistService) Reset(ctx context.Context, uid, checklistID uuid.UUID) (*checklist.Payload, error) {
	var cl *entity.Checklist
	err := cs.txm.RunInTx(ctx, func(ctx context.Context) error {
		if err := cs.repo.LockForUpdate(ctx, checklistID, uid); err != nil {
			return err
		}
		var err error
		cl, err = cs.repo.GetByID(ctx, checklistID, uid)
		if err != nil {
			return err
		}
		checklist.Reset(cl, cs.now())
		if err = cs.repo.UncheckAll(ctx, cl.ID); err != nil {
			return err
		}
		return cs.repo.UpdateProgress(ctx, cl.ID, cl.Progress, cl.LastUpdated)
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotFoundOrUnauthorized) {
			return nil, errorvalues.ErrNotFoundOrUnauthorized
		}
		return nil, errors.New("resetting checklist error: " + err.Error())
	}
	return checklist.ToPayload(cl), nil
}

// seed persists a fresh checklist and its whole tree in one transaction.
func (cs *ChecklistService) seed(ctx context.Context, uid uuid.UUID, checklistType entity.ChecklistType) (*entity.Checklist, error) {
	cl, err := checklist.Seed(uid, checklistType, cs.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errorvalues.ErrChecklistInit, err)
	}
	err = cs.txm.RunInTx(ctx, func(ctx context.Context) error {
		return cs.repo.Create(ctx, cl)
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrChecklistExists) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", errorvalues.ErrChecklistInit, err)
	}
	logger.FromContext(ctx).Info("checklist seeded",
		slog.String("checklist_id", cl.ID.String()),
		slog.String("type", string(checklistType)),
	)
	return cl, nil
}

// correctProgress fixes a stale cached progress. The write only lands if the row
// still holds the values that were read, so a concurrent toggle is never overwritten.
// Failures are only logged: the returned payload is computed from item state either way.
func (cs *ChecklistService) correctProgress(ctx context.Context, cl *entity.Checklist) {
	stored, storedAt := cl.Progress, cl.LastUpdated
	if !checklist.Recompute(cl, cs.now()) {
		return
	}
	log := logger.FromContext(ctx).With(
		slog.String("checklist_id", cl.ID.String()),
		slog.Int("stored", stored),
		slog.Int("computed", cl.Progress),
	)
	ok, err := cs.repo.CompareAndSetProgress(ctx, cl.ID, stored, storedAt, cl.Progress, cl.LastUpdated)
	if err != nil {
		log.Warn("stale checklist progress not corrected", slog.String("error", err.Error()))
		return
	}
	if !ok {
		log.Info("stale checklist progress already rewritten by a concurrent update")
		return
	}
	log.Info("stale checklist progress corrected")
}
