package journal

import "time"

const DateKeyLayout = "2006-01-02"

var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// TodayKey returns the current local calendar date as YYYY-MM-DD. The local
// day boundary matters here: truncating a UTC instant instead shifts the key
// by a day near midnight in non-UTC zones.
func TodayKey() string {
	return time.Now().Format(DateKeyLayout)
}

// FormatDisplay renders a date key as e.g. "Monday, March 3, 2025". The key
// is parsed as local midnight so the weekday never shifts across zone
// boundaries. Malformed keys are returned unchanged.
func FormatDisplay(key string) string {
	t, err := time.ParseInLocation(DateKeyLayout, key, time.Local)
	if err != nil {
		return key
	}
	return t.Format("Monday, January 2, 2006")
}

func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the Gregorian day count for a zero-based month index.
func DaysInMonth(monthIndex, year int) int {
	if monthIndex == 1 && IsLeapYear(year) {
		return 29
	}
	standard := [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	return standard[monthIndex]
}

// DateKey builds a zero-padded key from a year and a zero-based month index.
func DateKey(year, monthIndex, day int) string {
	return time.Date(year, time.Month(monthIndex+1), day, 0, 0, 0, 0, time.Local).Format(DateKeyLayout)
}
