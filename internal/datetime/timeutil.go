package datetime

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// PeriodUnit identifies a calendar unit for period arithmetic.
type PeriodUnit string

const (
	PeriodDay   PeriodUnit = "day"
	PeriodWeek  PeriodUnit = "week"
	PeriodMonth PeriodUnit = "month"
	PeriodYear  PeriodUnit = "year"
)

// YearMonth identifies a calendar month. Month is 1-based (time.Month).
type YearMonth struct {
	Year  int
	Month time.Month
}

// IsValid reports whether the year/month pair denotes a real calendar month.
func (ym YearMonth) IsValid() bool {
	return ym.Year > 0 && ym.Month >= time.January && ym.Month <= time.December
}

// String renders the year-month key as "YYYY-MM".
func (ym YearMonth) String() string {
	if !ym.IsValid() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// ParseYearMonth parses "YYYY-M" or "YYYY-MM" into a YearMonth.
// Returns false for anything malformed or out of range.
func ParseYearMonth(s string) (YearMonth, bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return YearMonth{}, false
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return YearMonth{}, false
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return YearMonth{}, false
	}

	ym := YearMonth{Year: year, Month: time.Month(month)}
	if !ym.IsValid() {
		return YearMonth{}, false
	}

	return ym, true
}

// CalendarParts is the calendar decomposition of an instant under a fixed offset.
type CalendarParts struct {
	Year    int
	Month   time.Month
	Day     int
	Weekday time.Weekday
}

// FixedOffsetLocation returns a location with the given UTC offset in minutes.
func FixedOffsetLocation(offsetMinutes int) *time.Location {
	return time.FixedZone(UtcOffsetString(offsetMinutes), offsetMinutes*60)
}

// TimeAt interprets a unix timestamp under a fixed UTC offset in minutes.
func TimeAt(unixTime int64, offsetMinutes int) time.Time {
	return time.Unix(unixTime, 0).In(FixedOffsetLocation(offsetMinutes))
}

// ToCalendarParts decomposes a unix timestamp under a fixed UTC offset.
func ToCalendarParts(unixTime int64, offsetMinutes int) CalendarParts {
	t := TimeAt(unixTime, offsetMinutes)
	return CalendarParts{
		Year:    t.Year(),
		Month:   t.Month(),
		Day:     t.Day(),
		Weekday: t.Weekday(),
	}
}

// UtcOffsetMinutes parses an offset string such as "+08:00" or "-05:30" into
// minutes. Malformed input yields 0.
func UtcOffsetMinutes(utcOffset string) int {
	if utcOffset == "" {
		return 0
	}

	parts := strings.Split(utcOffset, ":")
	if len(parts) != 2 {
		return 0
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}

	if hours < 0 || strings.HasPrefix(parts[0], "-") {
		return hours*60 - minutes
	}

	return hours*60 + minutes
}

// UtcOffsetString renders an offset in minutes as "+HH:MM" / "-HH:MM".
func UtcOffsetString(offsetMinutes int) string {
	sign := "+"
	if offsetMinutes < 0 {
		sign = "-"
		offsetMinutes = -offsetMinutes
	}

	return fmt.Sprintf("%s%02d:%02d", sign, offsetMinutes/60, offsetMinutes%60)
}

// DummyUnixForLocalUsage re-bases a timestamp recorded under its own UTC
// offset so that reading it under the viewer's offset yields the wall clock
// the record was originally entered at.
func DummyUnixForLocalUsage(unixTime int64, recordOffsetMinutes, viewerOffsetMinutes int) int64 {
	return unixTime + int64(recordOffsetMinutes-viewerOffsetMinutes)*60
}

// ActualUnixForStore is the inverse of DummyUnixForLocalUsage.
func ActualUnixForStore(unixTime int64, recordOffsetMinutes, viewerOffsetMinutes int) int64 {
	return unixTime - int64(recordOffsetMinutes-viewerOffsetMinutes)*60
}

// StartOfDay returns the first second of the timestamp's day in loc.
func StartOfDay(unixTime int64, loc *time.Location) int64 {
	return now.New(timeIn(unixTime, loc)).BeginningOfDay().Unix()
}

// EndOfDay returns the last second of the timestamp's day in loc.
func EndOfDay(unixTime int64, loc *time.Location) int64 {
	return now.New(timeIn(unixTime, loc)).EndOfDay().Unix()
}

// StartOfWeek returns the first second of the timestamp's week in loc, with
// the week starting on firstDayOfWeek (0=Sunday .. 6=Saturday).
func StartOfWeek(unixTime int64, firstDayOfWeek int, loc *time.Location) int64 {
	if firstDayOfWeek < 0 || firstDayOfWeek > 6 {
		firstDayOfWeek = 0
	}

	dayStart := now.New(timeIn(unixTime, loc)).BeginningOfDay()

	dayOfWeek := int(dayStart.Weekday()) - firstDayOfWeek
	if dayOfWeek < 0 {
		dayOfWeek += 7
	}

	return dayStart.AddDate(0, 0, -dayOfWeek).Unix()
}

// StartOfMonth returns the first second of the timestamp's month in loc.
func StartOfMonth(unixTime int64, loc *time.Location) int64 {
	return now.New(timeIn(unixTime, loc)).BeginningOfMonth().Unix()
}

// EndOfMonth returns the last second of the timestamp's month in loc.
func EndOfMonth(unixTime int64, loc *time.Location) int64 {
	return now.New(timeIn(unixTime, loc)).EndOfMonth().Unix()
}

// StartOfYear returns the first second of the timestamp's year in loc.
func StartOfYear(unixTime int64, loc *time.Location) int64 {
	return now.New(timeIn(unixTime, loc)).BeginningOfYear().Unix()
}

// EndOfYear returns the last second of the timestamp's year in loc.
func EndOfYear(unixTime int64, loc *time.Location) int64 {
	return now.New(timeIn(unixTime, loc)).EndOfYear().Unix()
}

func timeIn(unixTime int64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(unixTime, 0).In(loc)
}

// AddPeriod moves a unix timestamp by whole calendar units evaluated in loc.
// A nil loc means the host local zone.
func AddPeriod(unixTime int64, amount int, unit PeriodUnit, loc *time.Location) int64 {
	if loc == nil {
		loc = time.Local
	}

	t := time.Unix(unixTime, 0).In(loc)

	switch unit {
	case PeriodDay:
		return t.AddDate(0, 0, amount).Unix()
	case PeriodWeek:
		return t.AddDate(0, 0, amount*7).Unix()
	case PeriodMonth:
		return t.AddDate(0, amount, 0).Unix()
	case PeriodYear:
		return t.AddDate(amount, 0, 0).Unix()
	default:
		return unixTime
	}
}
