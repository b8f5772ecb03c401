package models

const (
	TableUsers        = "users"
	TableTdahProfiles = "tdah_profiles"
	TableHabits       = "habits"
	TableDailyChecks  = "daily_checks"
	TableUserPoints   = "user_points"
	TableAchievements = "achievements"
)
