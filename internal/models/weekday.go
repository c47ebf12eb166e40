package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// weekdayNames follows calendar ordering: Sunday is index 1, Saturday is index 7.
var weekdayNames = []string{
	time.Sunday.String(),
	time.Monday.String(),
	time.Tuesday.String(),
	time.Wednesday.String(),
	time.Thursday.String(),
	time.Friday.String(),
	time.Saturday.String(),
}

// WeekdayNames returns the canonical weekday names in calendar order
func WeekdayNames() []string {
	names := make([]string, len(weekdayNames))
	copy(names, weekdayNames)
	return names
}

// WeekdayIndex resolves a canonical weekday name to its 1-based calendar index.
func WeekdayIndex(name string) (int, bool) {
	for i, n := range weekdayNames {
		if n == name {
			return i + 1, true
		}
	}
	return 0, false
}

// WeekdayName returns the canonical name for a 1-based calendar index
func WeekdayName(index int) (string, bool) {
	if index < 1 || index > len(weekdayNames) {
		return "", false
	}
	return weekdayNames[index-1], true
}

// ParseWeekday normalizes a weekday given as a full name, a three letter
// abbreviation or a number (0=Sunday, 6=Saturday) to its canonical name.
func ParseWeekday(s string) (string, error) {
	part := strings.TrimSpace(strings.ToLower(s))
	if part == "" {
		return "", fmt.Errorf("empty weekday")
	}
	for _, n := range weekdayNames {
		lower := strings.ToLower(n)
		if part == lower || part == lower[:3] {
			return n, nil
		}
	}
	if num, err := strconv.Atoi(part); err == nil && num >= 0 && num <= 6 {
		return weekdayNames[num], nil
	}
	return "", fmt.Errorf("invalid weekday: %s", s)
}

// ParseWeekdays parses a comma-separated list of weekdays. "daily" selects all seven.
func ParseWeekdays(s string) ([]string, error) {
	if strings.EqualFold(strings.TrimSpace(s), "daily") {
		return WeekdayNames(), nil
	}
	var names []string
	for _, part := range strings.Split(s, ",") {
		name, err := ParseWeekday(part)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return NormalizeWeekdays(names), nil
}

// NormalizeWeekdays removes duplicates and orders canonical names by calendar
// index. Unknown names are dropped.
func NormalizeWeekdays(names []string) []string {
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	out := make([]string, 0, len(seen))
	for _, n := range weekdayNames {
		if seen[n] {
			out = append(out, n)
		}
	}
	return out
}
