package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/cocoon/internal/error_values"
	"github.com/limbo/cocoon/internal/repository"
	"github.com/limbo/cocoon/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	userCols        = []string{"id", "email", "password_hash", "first_name", "last_name", "emergency_contact_name", "emergency_contact_phone", "pregnancy_start", "pregnancy_due", "pregnancy_risk", "created_at"}
	userSelectQuery = `SELECT id, email, password_hash, first_name, last_name, emergency_contact_name, emergency_contact_phone, pregnancy_start, pregnancy_due, pregnancy_risk, created_at FROM users`
)

func testUser() entity.User {
	start := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	firstName, risk := "Marie", "faible"
	return entity.User{
		ID:             uuid.New(),
		Email:          "test_user@example.com",
		PasswordHash:   "test_password_hash",
		FirstName:      &firstName,
		PregnancyStart: &start,
		PregnancyDue:   nil,
		PregnancyRisk:  &risk,
		CreatedAt:      time.Date(2024, time.December, 1, 8, 0, 0, 0, time.UTC),
	}
}

func userRow(u entity.User) *pgxmock.Rows {
	return pgxmock.NewRows(userCols).
		AddRow(u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.EmergencyContactName, u.EmergencyContactPhone,
			u.PregnancyStart, u.PregnancyDue, u.PregnancyRisk, u.CreatedAt)
}

func TestCreateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	user := testUser()
	query := regexp.QuoteMeta(`INSERT INTO users (email, password_hash) VALUES ($1, $2);`)
	ctx := context.Background()
	repo := repository.NewUsersRepo(conn)
	t.Run("successfully created", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(user.Email, user.PasswordHash).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		err := repo.Create(ctx, &user)
		assert.NoError(t, err)
	})
	t.Run("unique violation error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(user.Email, user.PasswordHash).WillReturnError(&pgconn.PgError{
			Code: "23505",
		})
		err := repo.Create(ctx, &user)
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(user.Email, user.PasswordHash).WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, &user)
		assert.EqualError(t, err, "creating user db error: db error")
	})
	t.Run("nil user", func(t *testing.T) {
		assert.Error(t, repo.Create(ctx, nil))
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestFindByEmail(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewUsersRepo(conn)
	user := testUser()
	query := regexp.QuoteMeta(userSelectQuery + ` WHERE email = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Email).
			WillReturnRows(userRow(user))
		result, err := repo.FindByEmail(ctx, user.Email)
		assert.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Email).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByEmail(ctx, user.Email)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Email).
			WillReturnError(errors.New("db error"))
		_, err := repo.FindByEmail(ctx, user.Email)
		assert.Error(t, err)
	})
}

func TestFindByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewUsersRepo(conn)
	user := testUser()
	query := regexp.QuoteMeta(userSelectQuery + ` WHERE id = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnRows(userRow(user))
		result, err := repo.FindByID(ctx, user.ID)
		assert.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnError(errors.New("db error"))
		_, err := repo.FindByID(ctx, user.ID)
		assert.Error(t, err)
	})
}

func TestUpdatePregnancyDates(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewUsersRepo(conn)
	uid := uuid.New()
	start := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	due := start.AddDate(0, 0, 280)
	query := regexp.QuoteMeta(`UPDATE users SET pregnancy_start = $1, pregnancy_due = $2 WHERE id = $3;`)
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "updated",
			Error: nil,
			MockPrepFunc: func() {
				conn.ExpectExec(query).WithArgs(&start, &due, uid).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrUserNotFound,
			MockPrepFunc: func() {
				conn.ExpectExec(query).WithArgs(&start, &due, uid).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("updating pregnancy dates error: db error"),
			MockPrepFunc: func() {
				conn.ExpectExec(query).WithArgs(&start, &due, uid).WillReturnError(errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := repo.UpdatePregnancyDates(ctx, uid, &start, &due)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateUserProfile(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()
	firstName, phone := "Marie", "+33612345678"
	profile := &entity.UserProfile{FirstName: &firstName, EmergencyContactPhone: &phone}
	query := regexp.QuoteMeta(`UPDATE users SET first_name = $1, last_name = $2, emergency_contact_name = $3, emergency_contact_phone = $4 WHERE id = $5;`)
	testCases := []struct {
		Desc         string
		Profile      *entity.UserProfile
		Error        error
		MockPrepFunc func(conn pgxmock.PgxPoolIface)
	}{
		{
			Desc:    "updated with cleared fields",
			Profile: profile,
			Error:   nil,
			MockPrepFunc: func(conn pgxmock.PgxPoolIface) {
				conn.ExpectExec(query).
					WithArgs(&firstName, (*string)(nil), (*string)(nil), &phone, uid).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			Desc:    "not found",
			Profile: profile,
			Error:   errorvalues.ErrUserNotFound,
			MockPrepFunc: func(conn pgxmock.PgxPoolIface) {
				conn.ExpectExec(query).
					WithArgs(&firstName, (*string)(nil), (*string)(nil), &phone, uid).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
		},
		{
			Desc:    "db error",
			Profile: profile,
			Error:   errors.New("updating user profile error: db error"),
			MockPrepFunc: func(conn pgxmock.PgxPoolIface) {
				conn.ExpectExec(query).
					WithArgs(&firstName, (*string)(nil), (*string)(nil), &phone, uid).
					WillReturnError(errors.New("db error"))
			},
		},
		{
			Desc:         "nil profile",
			Profile:      nil,
			Error:        errors.New("profile is nil"),
			MockPrepFunc: func(conn pgxmock.PgxPoolIface) {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			conn, err := pgxmock.NewPool()
			require.NoError(t, err)
			repo := repository.NewUsersRepo(conn)
			tc.MockPrepFunc(conn)
			err = repo.UpdateProfile(ctx, uid, tc.Profile)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, conn.ExpectationsWereMet())
		})
	}
}

func TestDeleteUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewUsersRepo(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM users WHERE id = $1;`)
	t.Run("deleted", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, uid)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid).
			WillReturnError(errors.New("db error"))
		err := repo.Delete(ctx, uid)
		assert.Error(t, err)
	})
}
