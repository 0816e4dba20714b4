// Package dto defines request/response types and the derived fields computed
// at response time (age, days until due, file size in MB, absolute URLs).
// Derived values are never persisted.
package dto

import (
	"math"
	"time"

	"gorm.io/datatypes"
)

// AgeAt returns the age in whole years at the given reference date,
// decrementing by one when the birthday has not yet occurred that year.
func AgeAt(birthDate datatypes.Date, today time.Time) int {
	birth := time.Time(birthDate)
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() ||
		(today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}

// DaysUntilAt returns the signed number of calendar days from the reference
// date to the due date. Negative when the due date has passed.
func DaysUntilAt(dueDate datatypes.Date, today time.Time) int {
	due := time.Time(dueDate)
	dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	refDay := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(dueDay.Sub(refDay).Hours() / 24)
}

// FileSizeMB converts a byte count to megabytes rounded to two decimals
func FileSizeMB(size int64) float64 {
	return math.Round(float64(size)/(1024*1024)*100) / 100
}

// formatDate renders a date-only value as YYYY-MM-DD
func formatDate(d datatypes.Date) string {
	return time.Time(d).Format("2006-01-02")
}

// ParseDate parses a YYYY-MM-DD value into a date-only type
func ParseDate(value string) (datatypes.Date, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}
