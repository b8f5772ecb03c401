package schema

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/MathieuSchaff/tdah-habit-tracket/pkg/db/models"
	"github.com/MathieuSchaff/tdah-habit-tracket/pkg/enums"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T { return &v }

// newTestDB opens a private in-memory SQLite database with foreign keys on
// and the schema applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", name)
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(context.Background(), conn))
	return conn
}

func mustCreateUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	id := uuid.NewString()
	user := models.NewUser{ID: id, Email: id + "@example.com", Name: "Test User"}.ToModel()
	require.NoError(t, db.Create(user).Error)
	return user
}

func mustCreateHabit(t *testing.T, db *gorm.DB, userID string) *models.Habit {
	t.Helper()
	habit := models.NewHabit{
		UserID:     userID,
		Name:       "Five minute tidy",
		Category:   enums.HabitCategoryProductivity,
		Difficulty: enums.DifficultyEasy,
	}.ToModel()
	require.NoError(t, db.Create(habit).Error)
	return habit
}

func count(t *testing.T, db *gorm.DB, model any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Where(query, args...).Count(&n).Error)
	return n
}
