package timeslot

import (
	"regexp"
	"strconv"

	"github.com/hrkit/interviewd/pkg/errors"
)

// Granularity is the slot width in minutes. Every stored minute value
// is a multiple of it.
const Granularity = 15

var weekdays = [...]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// Slot is a value identifying one Granularity-wide interval of the week.
// Two slots are the same iff day, hour and minute are all equal.
type Slot struct {
	Day    string `json:"day"    bson:"day"`
	Hour   int    `json:"hour"   bson:"hour"`
	Minute int    `json:"minute" bson:"minute"`
}

var ErrBadFormat = errors.Error("time must look like HH:MM")

var timeRE = regexp.MustCompile(`^(\d\d):(\d\d)$`)

// ParseTime splits a HH:MM string into hour and minute. Both fields
// must be exactly two ASCII digits.
func ParseTime(text string) (hour, minute int, err error) {
	m := timeRE.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, ErrBadFormat
	}

	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	return hour, minute, nil
}

func ValidDay(day string) bool {
	_, ok := DayIndex(day)
	return ok
}

// DayIndex maps a canonical weekday name to its position in the week,
// Monday being 0. Names are case-sensitive.
func DayIndex(day string) (int, bool) {
	for i, name := range weekdays {
		if name == day {
			return i, true
		}
	}
	return 0, false
}

// ValidRange reports whether the pair fits the working week grid.
// Hour 23 is rejected on purpose: the upper bound is exclusive.
func ValidRange(hour, minute int) bool {
	return hour >= 0 && hour < 23 && minute >= 0 && minute <= 59
}

// RoundMinute floors a raw minute down to the slot grid, so 44 becomes
// 30, not 45.
func RoundMinute(minute int) int {
	return minute / Granularity * Granularity
}

// Compare orders slots by weekday index, then hour, then minute.
// Both slots must carry valid day names.
func Compare(a, b Slot) int {
	ai, _ := DayIndex(a.Day)
	bi, _ := DayIndex(b.Day)

	switch {
	case ai != bi:
		return ai - bi
	case a.Hour != b.Hour:
		return a.Hour - b.Hour
	default:
		return a.Minute - b.Minute
	}
}
