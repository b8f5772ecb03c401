package migrate_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/MathieuSchaff/tdah-habit-tracket/pkg/config"
	"github.com/MathieuSchaff/tdah-habit-tracket/pkg/db"
	"github.com/MathieuSchaff/tdah-habit-tracket/pkg/db/models"
	"github.com/MathieuSchaff/tdah-habit-tracket/pkg/enums"
	"github.com/MathieuSchaff/tdah-habit-tracket/pkg/migrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	envTestDSN        = "TDAH_TEST_DB_DSN"
	envTestContainers = "TDAH_TEST_CONTAINERS"
)

// postgresDSN returns a DSN for a disposable database: TDAH_TEST_DB_DSN when
// set, otherwise a throwaway container when TDAH_TEST_CONTAINERS=1.
func postgresDSN(t *testing.T) string {
	t.Helper()
	if dsn := os.Getenv(envTestDSN); dsn != "" {
		return dsn
	}
	if os.Getenv(envTestContainers) != "1" {
		t.Skipf("set %s or %s=1 to run Postgres integration tests", envTestDSN, envTestContainers)
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "tdah",
				"POSTGRES_PASSWORD": "tdah",
				"POSTGRES_DB":       "tdah",
			},
			WaitingFor: wait.ForAll(
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
				wait.ForListeningPort("5432/tcp"),
			).WithDeadline(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("postgres container unavailable: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://tdah:tdah@%s:%s/tdah?sslmode=disable", host, port.Port())
}

func TestPostgresSchemaMigration(t *testing.T) {
	dsn := postgresDSN(t)
	ctx := context.Background()

	client, err := db.New(ctx, config.DBConfig{DSN: dsn, MaxOpenConns: 4}, nil)
	require.NoError(t, err)
	defer client.Close()

	sqlDB, err := client.SQL()
	require.NoError(t, err)

	require.NoError(t, migrate.Run(ctx, sqlDB, "migrations", "reset"))
	require.NoError(t, migrate.Run(ctx, sqlDB, "migrations", "up"))
	t.Cleanup(func() { _ = migrate.Run(context.Background(), sqlDB, "migrations", "reset") })

	version, err := migrate.Version(ctx, sqlDB)
	require.NoError(t, err)
	assert.Positive(t, version)

	conn := client.DB()
	user := models.NewUser{ID: "3f0e9a4c-2d7b-4e1a-9c58-6b1d0f2e7a93", Email: "pg@example.com", Name: "Pg"}.ToModel()
	require.NoError(t, conn.Create(user).Error)

	t.Run("defaults", func(t *testing.T) {
		require.NoError(t, conn.Exec(
			"INSERT INTO tdah_profiles (user_id) VALUES (?)", user.ID,
		).Error)
		var profile models.TdahProfile
		require.NoError(t, conn.First(&profile, "user_id = ?", user.ID).Error)
		require.NotNil(t, profile.GamificationLevel)
		assert.Equal(t, 3, *profile.GamificationLevel)
		require.NotNil(t, profile.Medication)
		assert.False(t, *profile.Medication)
		assert.False(t, profile.CreatedAt.IsZero())

		require.NoError(t, conn.Create(models.NewUserPoints{UserID: user.ID}.ToModel()).Error)
		var points models.UserPoints
		require.NoError(t, conn.First(&points, "user_id = ?", user.ID).Error)
		assert.Equal(t, 0, *points.TotalPoints)
		assert.Equal(t, 1, *points.Level)
	})

	t.Run("unique points per user", func(t *testing.T) {
		err := conn.Create(models.NewUserPoints{UserID: user.ID}.ToModel()).Error
		require.Error(t, err)
		assert.True(t, db.IsUniqueViolation(err, "user_points_user_id_key"))
	})

	habit := models.NewHabit{
		UserID:        user.ID,
		Name:          "Meditate",
		Category:      enums.HabitCategoryMentalHealth,
		Difficulty:    enums.DifficultyMedium,
		LinkedHabitID: func() *int64 { v := int64(424242); return &v }(),
	}.ToModel()
	require.NoError(t, conn.Create(habit).Error)

	t.Run("status outside the enum", func(t *testing.T) {
		err := conn.Exec(
			"INSERT INTO daily_checks (habit_id, user_id, date, status) VALUES (?, ?, now(), 'done')",
			habit.ID, user.ID,
		).Error
		require.Error(t, err)
		assert.True(t, db.IsCheckViolation(err))
	})

	t.Run("habit delete cascades checks, keeps achievements", func(t *testing.T) {
		require.NoError(t, conn.Create(models.NewDailyCheck{
			HabitID: habit.ID, UserID: user.ID, Date: time.Now().UTC(), Status: enums.CheckStatusPartial,
		}.ToModel()).Error)
		achievement := models.NewAchievement{UserID: user.ID, BadgeType: enums.BadgeTypeFirstWeek, HabitID: &habit.ID}.ToModel()
		require.NoError(t, conn.Create(achievement).Error)

		require.NoError(t, conn.Delete(&models.Habit{}, habit.ID).Error)

		var checks int64
		require.NoError(t, conn.Model(&models.DailyCheck{}).Where("habit_id = ?", habit.ID).Count(&checks).Error)
		assert.Zero(t, checks)

		var kept models.Achievement
		require.NoError(t, conn.First(&kept, achievement.ID).Error)
		assert.Equal(t, habit.ID, *kept.HabitID)
	})

	t.Run("user delete cascades", func(t *testing.T) {
		require.NoError(t, conn.Delete(&models.User{}, "id = ?", user.ID).Error)
		for _, table := range []string{
			models.TableTdahProfiles, models.TableHabits, models.TableDailyChecks,
			models.TableUserPoints, models.TableAchievements,
		} {
			var n int64
			require.NoError(t, conn.Table(table).Where("user_id = ?", user.ID).Count(&n).Error)
			assert.Zerof(t, n, "rows left in %s", table)
		}
	})

	t.Run("missing parent", func(t *testing.T) {
		err := conn.Create(models.NewTdahProfile{UserID: "no-such-user"}.ToModel()).Error
		require.Error(t, err)
		assert.True(t, db.IsForeignKeyViolation(err))
	})

	require.NoError(t, migrate.Run(ctx, sqlDB, "migrations", "down"))
	assert.False(t, conn.Migrator().HasTable(models.TableUsers))
}
