// Package datetime holds date helpers. Helpers that need the current time
// take a capability.Clock instead of reading the system clock.
package datetime

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/on-the-ground/oneliners_go/capability"
	"github.com/rickb777/date/v2"
	"github.com/rickb777/date/v2/gregorian"
)

const day = 24 * time.Hour

// SuffixAmPm renders an hour of the day on a 12-hour clock: 0 is "12am", 15 is "3pm".
func SuffixAmPm(h int) string {
	suffix := "pm"
	if h < 12 {
		suffix = "am"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return strconv.Itoa(h12) + suffix
}

// DiffDays is the distance between a and b in whole days, rounded up.
func DiffDays(a, b time.Time) int {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(float64(d) / float64(day)))
}

// MonthDiff counts calendar month boundaries from start to end, never below 0.
func MonthDiff(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 - int(start.Month()) + int(end.Month())
	return max(0, months)
}

// Compare reports whether a is later than b.
func Compare(a, b time.Time) bool {
	return a.After(b)
}

func FormatYmd(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

func FormatYmdHis(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05")
}

// FormatSeconds renders s seconds as hh:mm:ss, wrapping every 24 hours.
func FormatSeconds(s int64) string {
	return time.Unix(s, 0).UTC().Format(time.TimeOnly)
}

// Extract splits t in UTC into year, month, day, hour, minute, second and millisecond.
func Extract(t time.Time) []string {
	t = t.UTC()
	return []string{
		fmt.Sprintf("%04d", t.Year()),
		fmt.Sprintf("%02d", int(t.Month())),
		fmt.Sprintf("%02d", t.Day()),
		fmt.Sprintf("%02d", t.Hour()),
		fmt.Sprintf("%02d", t.Minute()),
		fmt.Sprintf("%02d", t.Second()),
		fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond)),
	}
}

func GetQuarter(t time.Time) int {
	return (int(t.Month()) + 2) / 3
}

func TimestampSeconds(clock capability.Clock) int64 {
	return clock.Now().Unix()
}

// DayOfYear is 1 on January 1st.
func DayOfYear(t time.Time) int {
	return date.NewAt(t).YearDay()
}

func FirstDateOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func LastDateOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), gregorian.DaysIn(t.Year(), t.Month()), 0, 0, 0, 0, t.Location())
}

func MonthName(t time.Time) string {
	return t.Month().String()
}

// DaysInMonth takes a 1-based month. Months outside 1..12 roll over into
// the neighbouring years, so month 0 is December of the year before.
func DaysInMonth(month, year int) int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return gregorian.DaysIn(first.Year(), first.Month())
}

func NumberOfDays(year int) int {
	return gregorian.DaysInYear(year)
}

func IsLeap(year int) bool {
	return gregorian.IsLeap(year)
}

func Weekday(t time.Time) string {
	return date.NewAt(t).Weekday().String()
}

// Timezone names the location of the clock's current time.
func Timezone(clock capability.Clock) string {
	return clock.Now().Location().String()
}

func Tomorrow(clock capability.Clock) time.Time {
	return clock.Now().AddDate(0, 0, 1)
}

func Yesterday(clock capability.Clock) time.Time {
	return clock.Now().AddDate(0, 0, -1)
}

func MidnightOfToday(clock capability.Clock) time.Time {
	now := clock.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// Today spans from this midnight to the next one.
func Today(clock capability.Clock) capability.TimeSpan {
	midnight := MidnightOfToday(clock)
	return capability.Between(midnight, midnight.AddDate(0, 0, 1))
}

// SortAscending returns a copy, earliest first.
func SortAscending(dates []time.Time) []time.Time {
	out := slices.Clone(dates)
	slices.SortStableFunc(out, func(a, b time.Time) int { return a.Compare(b) })
	return out
}

// SortDescending returns a copy, latest first.
func SortDescending(dates []time.Time) []time.Time {
	out := slices.Clone(dates)
	slices.SortStableFunc(out, func(a, b time.Time) int { return cmp.Compare(b.UnixNano(), a.UnixNano()) })
	return out
}
