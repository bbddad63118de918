package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/cocoon/internal/checklist"
	errorvalues "github.com/limbo/cocoon/internal/error_values"
	"github.com/limbo/cocoon/internal/repository/mocks"
	"github.com/limbo/cocoon/internal/service"
	"github.com/limbo/cocoon/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.May, 20, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// passthroughTx runs fn directly, the way RunInTx does once the transaction is open.
func passthroughTx(txm *mocks.MockTxManagerI) *gomock.Call {
	return txm.EXPECT().RunInTx(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
		return fn(ctx)
	})
}

func seeded(t *testing.T, uid uuid.UUID) *entity.Checklist {
	t.Helper()
	cl, err := checklist.Seed(uid, entity.ChecklistTrousseau, fixedNow.Add(-time.Hour))
	require.NoError(t, err)
	return cl
}

func uncheckedItem(t *testing.T, cl *entity.Checklist) uuid.UUID {
	t.Helper()
	for _, s := range cl.Sections {
		for _, it := range s.Items {
			if !it.Checked {
				return it.ID
			}
		}
	}
	t.Fatal("no unchecked item")
	return uuid.Nil
}

func TestChecklistGet(t *testing.T) {
	t.Parallel()
	uid := uuid.New()
	testCases := []struct {
		Desc         string
		Type         entity.ChecklistType
		Error        error
		Progress     int
		MockPrepFunc func(repo *mocks.MockChecklistsRepositoryI, txm *mocks.MockTxManagerI)
	}{
		{
			Desc:     "existing checklist",
			Type:     entity.ChecklistTrousseau,
			Progress: 37,
			MockPrepFunc: func(repo *mocks.MockChecklistsRepositoryI, txm *mocks.MockTxManagerI) {
				repo.EXPECT().GetByUserAndType(gomock.Any(), uid, entity.ChecklistTrousseau).Return(seeded(t, uid), nil)
			},
		},
		{
			Desc:     "stale progress corrected on read",
			Type:     entity.ChecklistTrousseau,
			Progress: 37,
			MockPrepFunc: func(repo *mocks.MockChecklistsRepositoryI, txm *mocks.MockTxManagerI) {
				cl := seeded(t, uid)
				cl.Progress = 90
				repo.EXPECT().GetByUserAndType(gomock.Any(), uid, entity.ChecklistTrousseau).Return(cl, nil)
				repo.EXPECT().CompareAndSetProgress(gomock.Any(), cl.ID, 90, fixedNow.Add(-time.Hour), 37, fixedNow).Return(true, nil)
			},
		},
		{
			Desc:     "stale progress left to a concurrent toggle",
			Type:     entity.ChecklistTrousseau,
			Progress: 37,
			MockPrepFunc: func(repo *mocks.MockChecklistsRepositoryI, txm *mocks.MockTxManagerI) {
				cl := seeded(t, uid)
				cl.Progress = 90
				repo.EXPECT().GetByUserAndType(gomock.Any(), uid, entity.ChecklistTrousseau).Return(cl, nil)
				repo.EXPECT().CompareAndSetProgress(gomock.Any(), cl.ID, 90, fixedNow.Add(-time.Hour), 37, fixedNow).Return(false, nil)
			},
		},
		{
			Desc:     "stale progress correction failure is not returned",
			Type:     entity.ChecklistTrousseau,
			Progress: 37,
			MockPrepFunc: func(repo *mocks.MockChecklistsRepositoryI, txm *mocks.MockTxManagerI) {
				cl := seeded(t, uid)
				cl.Progress = 0
				repo.EXPECT().GetByUserAndType(gomock.Any(), uid, entity.ChecklistTrousseau).Return(cl, nil)
				repo.EXPECT().CompareAndSetProgress(gomock.Any(), cl.ID, 0, fixedNow.Add(-time.Hour), 37, fixedNow).Return(false, errors.New("db error"))
			},
		},
		{
			Desc:     "seeded on first access",
			Type:     entity.ChecklistTrousseau,
			Progress: 37,
			MockPrepFunc: func(repo *mocks.MockChecklistsRepositoryI, txm *mocks.MockTxManagerI) {
				repo.EXPECT().GetByUserAndType(gomock.Any(), uid, entity.ChecklistTrousseau).Return(nil, errorvalues.ErrChecklistNotFound)
				passthroughTx(txm)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cl *entity.Checklist) error {
					assert.Equal(t, uid, cl.UserID)
					assert.Len(t, cl.Sections, 4)
					assert.Equal(t, fixedNow, cl.LastUpdated)
					return nil
				})
			},
		},
		{
			Desc:     "concurrent seed reloads existing",
			Type:     entity.ChecklistTrousseau,
			Progress: 37,
			MockPrepFunc: func(repo *mocks.MockChecklistsRepositoryI, txm *mocks.MockTxManagerI) {
				gomock.InOrder(
					repo.EXPECT().GetByUserAndType(gomock.Any(), uid, entity.ChecklistTrousseau).Return(nil, errorvalues.ErrChecklistNotFound),
					passthroughTx(txm),
					repo.EXPECT().GetByUserAndType(gomock.Any(), uid, entity.ChecklistTrousseau).Return(seeded(t, uid), nil),
				)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.ErrChecklistExists)
			},
		},
		{
			Desc:  "seed persistence failure",
			Type:  entity.ChecklistDocuments,
			Error: errorvalues.ErrChecklistInit,
			MockPrepFunc: func(repo *mocks.MockChecklistsRepositoryI, txm *mocks.MockTxManagerI) {
				repo.EXPECT().GetByUserAndType(gomock.Any(), uid, entity.ChecklistDocuments).Return(nil, errorvalues.ErrChecklistNotFound)
				passthroughTx(txm)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
		},
		{
			Desc:         "unknown type",
			Type:         entity.ChecklistType("valise"),
			Error:        errorvalues.ErrUnknownChecklistType,
			MockPrepFunc: func(repo *mocks.MockChecklistsRepositoryI, txm *mocks.MockTxManagerI) {},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockChecklistsRepositoryI(ctrl)
			txm := mocks.NewMockTxManagerI(ctrl)
			cs := service.NewChecklistService(repo, txm, clock)
			tc.MockPrepFunc(repo, txm)
			payload, err := cs.Get(ctx, uid, tc.Type)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Type, payload.Type)
			assert.Equal(t, tc.Progress, payload.Progress)
		})
	}
}

func TestChecklistToggleItem(t *testing.T) {
	t.Parallel()
	uid := uuid.New()
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockChecklistsRepositoryI(ctrl)
		txm := mocks.NewMockTxManagerI(ctrl)
		cs := service.NewChecklistService(repo, txm, clock)
		cl := seeded(t, uid)
		itemID := uncheckedItem(t, cl)
		gomock.InOrder(
			passthroughTx(txm),
			repo.EXPECT().LockItemChecklist(gomock.Any(), itemID, uid).Return(cl.ID, nil),
			repo.EXPECT().GetByID(gomock.Any(), cl.ID, uid).Return(cl, nil),
			repo.EXPECT().SetItemChecked(gomock.Any(), itemID, true).Return(nil),
			repo.EXPECT().UpdateProgress(gomock.Any(), cl.ID, 41, fixedNow).Return(nil),
		)
		payload, err := cs.ToggleItem(ctx, uid, itemID)
		require.NoError(t, err)
		assert.Equal(t, 41, payload.Progress)
		assert.Equal(t, cl.ID.String(), payload.ID)
	})
	t.Run("foreign or missing item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockChecklistsRepositoryI(ctrl)
		txm := mocks.NewMockTxManagerI(ctrl)
		cs := service.NewChecklistService(repo, txm, clock)
		itemID := uuid.New()
		passthroughTx(txm)
		repo.EXPECT().LockItemChecklist(gomock.Any(), itemID, uid).Return(uuid.Nil, errorvalues.ErrNotFoundOrUnauthorized)
		_, err := cs.ToggleItem(ctx, uid, itemID)
		assert.ErrorIs(t, err, errorvalues.ErrNotFoundOrUnauthorized)
	})
	t.Run("persistence error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockChecklistsRepositoryI(ctrl)
		txm := mocks.NewMockTxManagerI(ctrl)
		cs := service.NewChecklistService(repo, txm, clock)
		cl := seeded(t, uid)
		itemID := uncheckedItem(t, cl)
		passthroughTx(txm)
		repo.EXPECT().LockItemChecklist(gomock.Any(), itemID, uid).Return(cl.ID, nil)
		repo.EXPECT().GetByID(gomock.Any(), cl.ID, uid).Return(cl, nil)
		repo.EXPECT().SetItemChecked(gomock.Any(), itemID, true).Return(errors.New("db error"))
		_, err := cs.ToggleItem(ctx, uid, itemID)
		assert.EqualError(t, err, "toggling item error: db error")
	})
}

func TestChecklistReset(t *testing.T) {
	t.Parallel()
	uid := uuid.New()
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockChecklistsRepositoryI(ctrl)
		txm := mocks.NewMockTxManagerI(ctrl)
		cs := service.NewChecklistService(repo, txm, clock)
		cl := seeded(t, uid)
		gomock.InOrder(
			passthroughTx(txm),
			repo.EXPECT().LockForUpdate(gomock.Any(), cl.ID, uid).Return(nil),
			repo.EXPECT().GetByID(gomock.Any(), cl.ID, uid).Return(cl, nil),
			repo.EXPECT().UncheckAll(gomock.Any(), cl.ID).Return(nil),
			repo.EXPECT().UpdateProgress(gomock.Any(), cl.ID, 0, fixedNow).Return(nil),
		)
		payload, err := cs.Reset(ctx, uid, cl.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, payload.Progress)
		for _, s := range payload.Sections {
			for _, it := range s.Items {
				assert.False(t, it.Completed)
			}
		}
	})
	t.Run("foreign checklist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockChecklistsRepositoryI(ctrl)
		txm := mocks.NewMockTxManagerI(ctrl)
		cs := service.NewChecklistService(repo, txm, clock)
		clID := uuid.New()
		passthroughTx(txm)
		repo.EXPECT().LockForUpdate(gomock.Any(), clID, uid).Return(errorvalues.ErrNotFoundOrUnauthorized)
		_, err := cs.Reset(ctx, uid, clID)
		assert.ErrorIs(t, err, errorvalues.ErrNotFoundOrUnauthorized)
	})
}
