package db

import (
	"fmt"
	"testing"
	"time"

	"github.com/MathieuSchaff/tdah-habit-tracket/pkg/db/models"
	"github.com/MathieuSchaff/tdah-habit-tracket/pkg/enums"
	pkgerrors "github.com/MathieuSchaff/tdah-habit-tracket/pkg/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testUserID = "0c6f7a52-3b9e-4d1a-8f0e-5a2b7c9d1e34"

func seedUser(t *testing.T, client *Client) {
	t.Helper()
	require.NoError(t, client.DB().Create(models.NewUser{
		ID:    testUserID,
		Email: "seed@example.com",
		Name:  "Seed",
	}.ToModel()).Error)
}

func TestPostgresViolationsByCode(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "user_points_user_id_key"})
	assert.True(t, IsUniqueViolation(unique, ""))
	assert.True(t, IsUniqueViolation(unique, "user_points_user_id_key"))
	assert.False(t, IsUniqueViolation(unique, "users_email_key"))
	assert.False(t, IsForeignKeyViolation(unique))

	fk := &pq.Error{Code: "23503", Constraint: "fk_users_habits"}
	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsUniqueViolation(fk, ""))

	assert.True(t, IsCheckViolation(&pgconn.PgError{Code: "23514"}))
	assert.True(t, IsCheckViolation(&pgconn.PgError{Code: "22P02"}), "bad enum label")
	assert.True(t, IsNotNullViolation(&pq.Error{Code: "23502"}))
}

func TestViolationHelpersIgnoreNil(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil, ""))
	assert.False(t, IsForeignKeyViolation(nil))
	assert.False(t, IsCheckViolation(nil))
	assert.False(t, IsNotNullViolation(nil))
	assert.NoError(t, ClassifyWriteError(nil))
}

func TestSQLiteUniqueViolation(t *testing.T) {
	client := newTestClient(t)
	seedUser(t, client)

	require.NoError(t, client.DB().Create(models.NewUserPoints{UserID: testUserID}.ToModel()).Error)
	err := client.DB().Create(models.NewUserPoints{UserID: testUserID}.ToModel()).Error
	require.Error(t, err)

	assert.True(t, IsUniqueViolation(err, ""))
	assert.True(t, IsUniqueViolation(err, "user_points.user_id"))
	assert.False(t, IsForeignKeyViolation(err))
	assert.True(t, pkgerrors.IsCode(ClassifyWriteError(err), pkgerrors.CodeConflict))
}

func TestSQLiteForeignKeyViolation(t *testing.T) {
	client := newTestClient(t)

	err := client.DB().Create(models.NewTdahProfile{UserID: testUserID}.ToModel()).Error
	require.Error(t, err)

	assert.True(t, IsForeignKeyViolation(err))
	assert.True(t, pkgerrors.IsCode(ClassifyWriteError(err), pkgerrors.CodeConstraint))
}

func TestSQLiteCheckViolation(t *testing.T) {
	client := newTestClient(t)
	seedUser(t, client)

	habit := models.NewHabit{
		UserID:     testUserID,
		Name:       "Walk",
		Category:   enums.HabitCategoryPhysicalHealth,
		Difficulty: enums.DifficultyEasy,
	}.ToModel()
	require.NoError(t, client.DB().Create(habit).Error)

	err := client.DB().Create(&models.DailyCheck{
		HabitID: habit.ID,
		UserID:  testUserID,
		Date:    time.Now().UTC(),
		Status:  enums.CheckStatus("done"),
	}).Error
	require.Error(t, err)

	assert.True(t, IsCheckViolation(err))
	classified := pkgerrors.As(ClassifyWriteError(err))
	require.NotNil(t, classified)
	assert.Equal(t, pkgerrors.CodeConstraint, classified.Code())
}

func TestClassifyWriteError(t *testing.T) {
	notFound := ClassifyWriteError(gorm.ErrRecordNotFound)
	assert.True(t, pkgerrors.IsCode(notFound, pkgerrors.CodeNotFound))

	coded := pkgerrors.New(pkgerrors.CodeValidation, "bad input")
	assert.Same(t, coded, ClassifyWriteError(coded))

	unique := ClassifyWriteError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
	typed := pkgerrors.As(unique)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())
	assert.Equal(t, map[string]string{"constraint": "users_email_key"}, typed.Details())

	other := ClassifyWriteError(fmt.Errorf("connection reset"))
	assert.True(t, pkgerrors.IsCode(other, pkgerrors.CodeInternal))
}

func TestSQLiteFailureDumpCarriesExtendedCode(t *testing.T) {
	client := newTestClient(t)

	err := client.DB().Create(models.NewTdahProfile{UserID: testUserID}.ToModel()).Error
	require.Error(t, err)

	d := pkgerrors.Dump(ClassifyWriteError(err))
	assert.Equal(t, pkgerrors.CodeConstraint, d.Code)
	assert.Equal(t, "sqlite", d.Backend)
	assert.Equal(t, int(sqlite3.ErrConstraintForeignKey), d.SQLiteExtendedCode)
	assert.False(t, d.Retryable)
}
