package enums

import "gorm.io/gorm"

// dialectType returns pgType on Postgres and text on every other dialect.
func dialectType(db *gorm.DB, pgType string) string {
	if db != nil && db.Dialector != nil && db.Dialector.Name() == "postgres" {
		return pgType
	}
	return "text"
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}
