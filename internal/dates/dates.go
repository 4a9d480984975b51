// Package dates parses the date strings users type: ISO dates, the
// keywords today/tomorrow/yesterday, and offsets such as +3d or -2w.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"todolist/internal/domain"
)

var offsetPattern = regexp.MustCompile(`^([+-]?)(\d+)([dwMy])$`)

// Parse resolves value relative to the current time.
func Parse(value string) (time.Time, error) {
	return ParseAt(value, time.Now())
}

// ParseAt resolves value relative to now. Relative results are truncated to
// the start of the day in UTC.
func ParseAt(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("unable to parse date: empty value")
	}

	if t, ok := parseRelativeKeyword(strings.ToLower(value), now); ok {
		return t, nil
	}

	if t, err := parseRelativeOffset(value, now); err == nil {
		return t, nil
	}

	t, err := domain.ParseDueDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date: %s (expected ISO date, relative keyword, or offset)", value)
	}
	return *t, nil
}

// NormalizeDue parses user input and returns it in the stored layout.
// Empty input stays empty.
func NormalizeDue(value string, now time.Time) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	t, err := ParseAt(value, now)
	if err != nil {
		return "", err
	}
	return t.Format(domain.DueDateLayout), nil
}

// ParseRange parses an inclusive [start, end] day range.
func ParseRange(start, end string, now time.Time) (time.Time, time.Time, error) {
	from, err := ParseAt(start, now)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid range start: %w", err)
	}

	to, err := ParseAt(end, now)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid range end: %w", err)
	}

	// an end before the start is an empty range, not an error
	return StartOfDay(from), EndOfDay(to), nil
}

func parseRelativeKeyword(value string, now time.Time) (time.Time, bool) {
	switch value {
	case "today":
		return calendarDay(now), true
	case "tomorrow":
		return calendarDay(now.AddDate(0, 0, 1)), true
	case "yesterday":
		return calendarDay(now.AddDate(0, 0, -1)), true
	default:
		return time.Time{}, false
	}
}

func parseRelativeOffset(value string, now time.Time) (time.Time, error) {
	matches := offsetPattern.FindStringSubmatch(value)
	if matches == nil {
		return time.Time{}, fmt.Errorf("invalid offset format")
	}

	num, err := strconv.Atoi(matches[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid number in offset: %s", matches[2])
	}
	if matches[1] == "-" {
		num = -num
	}

	var result time.Time
	switch matches[3] {
	case "d":
		result = now.AddDate(0, 0, num)
	case "w":
		result = now.AddDate(0, 0, num*7)
	case "M":
		result = now.AddDate(0, num, 0)
	case "y":
		result = now.AddDate(num, 0, 0)
	default:
		return time.Time{}, fmt.Errorf("unknown unit: %s", matches[3])
	}

	return calendarDay(result), nil
}

// calendarDay keeps the local calendar date but moves it to UTC midnight,
// which is where time.Parse puts stored due dates.
func calendarDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, 999999999, t.Location())
}
