package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/cocoon/internal/checklist"
	errorvalues "github.com/limbo/cocoon/internal/error_values"
	"github.com/limbo/cocoon/internal/repository"
	"github.com/limbo/cocoon/migrations"
	"github.com/limbo/cocoon/pkg/entity"
	"github.com/limbo/cocoon/pkg/optional"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupTestDB(t *testing.T) *testPGConfig {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test skipped in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()
	container, err := postgres.Run(ctx, "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("cocoon"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	if err = migrations.Up(ctx, conn); err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{connStr: connStr}
}

func TestRepositoriesIntegrational(t *testing.T) {
	cfg := setupTestDB(t)
	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg, 4)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	users := repository.NewUsersRepo(pool)
	checklists := repository.NewChecklistsRepo(pool)
	appointments := repository.NewAppointmentsRepo(pool)
	txm := repository.NewTxManager(pool)

	require.NoError(t, users.Create(ctx, &entity.User{Email: "anna@example.com", PasswordHash: "hash"}))
	user, err := users.FindByEmail(ctx, "anna@example.com")
	require.NoError(t, err)
	assert.ErrorIs(t, users.Create(ctx, &entity.User{Email: "anna@example.com", PasswordHash: "hash"}), errorvalues.ErrUserExists)

	t.Run("pregnancy dates", func(t *testing.T) {
		start := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
		require.NoError(t, users.UpdatePregnancyDates(ctx, user.ID, &start, nil))
		found, err := users.FindByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, found.PregnancyStart)
		assert.True(t, start.Equal(*found.PregnancyStart))
		assert.Nil(t, found.PregnancyDue)
	})

	t.Run("profile", func(t *testing.T) {
		firstName, phone := "Anna", "+33612345678"
		require.NoError(t, users.UpdateProfile(ctx, user.ID, &entity.UserProfile{FirstName: &firstName, EmergencyContactPhone: &phone}))
		found, err := users.FindByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, found.FirstName)
		assert.Equal(t, firstName, *found.FirstName)
		assert.Nil(t, found.LastName)
		assert.Nil(t, found.PregnancyRisk)
		require.NotNil(t, found.EmergencyContactPhone)
		assert.Equal(t, phone, *found.EmergencyContactPhone)
		assert.ErrorIs(t, users.UpdateProfile(ctx, uuid.New(), &entity.UserProfile{}), errorvalues.ErrUserNotFound)
	})

	now := time.Now().UTC().Truncate(time.Microsecond)
	var stored *entity.Checklist
	t.Run("seed and load checklist", func(t *testing.T) {
		cl, err := checklist.Seed(user.ID, entity.ChecklistTrousseau, now)
		require.NoError(t, err)
		err = txm.RunInTx(ctx, func(ctx context.Context) error {
			return checklists.Create(ctx, cl)
		})
		require.NoError(t, err)

		stored, err = checklists.GetByUserAndType(ctx, user.ID, entity.ChecklistTrousseau)
		require.NoError(t, err)
		assert.Equal(t, 37, stored.Progress)
		stats := checklist.ComputeProgress(stored.Sections)
		assert.Equal(t, 27, stats.Total)
		assert.Equal(t, 10, stats.Completed)
		for i := range stored.Sections {
			assert.Equal(t, cl.Sections[i].Title, stored.Sections[i].Title)
			assert.Len(t, stored.Sections[i].Items, len(cl.Sections[i].Items))
		}

		again, err := checklist.Seed(user.ID, entity.ChecklistTrousseau, now)
		require.NoError(t, err)
		err = txm.RunInTx(ctx, func(ctx context.Context) error {
			return checklists.Create(ctx, again)
		})
		assert.ErrorIs(t, err, errorvalues.ErrChecklistExists)
	})

	t.Run("compare and set progress", func(t *testing.T) {
		require.NotNil(t, stored)
		later := now.Add(time.Minute)
		ok, err := checklists.CompareAndSetProgress(ctx, stored.ID, stored.Progress, stored.LastUpdated, 99, later)
		require.NoError(t, err)
		assert.True(t, ok)
		// The row moved on, a second writer holding the old values loses.
		ok, err = checklists.CompareAndSetProgress(ctx, stored.ID, stored.Progress, stored.LastUpdated, 12, later)
		require.NoError(t, err)
		assert.False(t, ok)
		found, err := checklists.GetByID(ctx, stored.ID, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 99, found.Progress)
	})

	t.Run("toggle and reset", func(t *testing.T) {
		require.NotNil(t, stored)
		itemID := stored.Sections[0].Items[0].ID
		err := txm.RunInTx(ctx, func(ctx context.Context) error {
			clID, err := checklists.LockItemChecklist(ctx, itemID, user.ID)
			if err != nil {
				return err
			}
			assert.Equal(t, stored.ID, clID)
			if err = checklists.SetItemChecked(ctx, itemID, true); err != nil {
				return err
			}
			return checklists.UpdateProgress(ctx, clID, 41, now)
		})
		require.NoError(t, err)

		_, err = checklists.LockItemChecklist(ctx, itemID, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrNotFoundOrUnauthorized)

		err = txm.RunInTx(ctx, func(ctx context.Context) error {
			if err := checklists.LockForUpdate(ctx, stored.ID, user.ID); err != nil {
				return err
			}
			if err := checklists.UncheckAll(ctx, stored.ID); err != nil {
				return err
			}
			return checklists.UpdateProgress(ctx, stored.ID, 0, now)
		})
		require.NoError(t, err)
		reset, err := checklists.GetByID(ctx, stored.ID, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, reset.Progress)
		assert.Equal(t, 0, checklist.ComputeProgress(reset.Sections).Completed)

		_, err = checklists.GetByID(ctx, stored.ID, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrNotFoundOrUnauthorized)
	})

	t.Run("appointments", func(t *testing.T) {
		doctor := "Dr Martin"
		created, err := appointments.Create(ctx, &entity.Appointment{
			UserID: user.ID,
			Date:   now.Add(48 * time.Hour),
			Kind:   "consultation",
			Doctor: &doctor,
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.ID)

		updated, err := appointments.Update(ctx, created.ID, user.ID, &entity.AppointmentUpdate{
			Notes:  optional.Some("apporter la carte vitale"),
			Doctor: optional.Some(""),
		})
		require.NoError(t, err)
		require.NotNil(t, updated.Doctor)
		assert.Equal(t, "", *updated.Doctor)
		require.NotNil(t, updated.Notes)
		assert.Equal(t, "consultation", updated.Kind)

		_, err = appointments.Update(ctx, created.ID, uuid.New(), &entity.AppointmentUpdate{Kind: optional.Some("x")})
		assert.ErrorIs(t, err, errorvalues.ErrAppointmentNotFound)

		list, err := appointments.ListByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Len(t, list, 1)

		require.NoError(t, appointments.Delete(ctx, created.ID, user.ID))
		assert.ErrorIs(t, appointments.Delete(ctx, created.ID, user.ID), errorvalues.ErrAppointmentNotFound)
	})

	t.Run("delete user cascades", func(t *testing.T) {
		require.NoError(t, users.Delete(ctx, user.ID))
		_, err := checklists.GetByUserAndType(ctx, user.ID, entity.ChecklistTrousseau)
		assert.ErrorIs(t, err, errorvalues.ErrChecklistNotFound)
	})
}
