package datetime

import (
	"time"

	"github.com/jinzhu/now"
)

// DateRange is a pair of inclusive unix-second bounds. The zero value
// ({0, 0}) is the "all time" sentinel meaning unbounded.
type DateRange struct {
	MinTime int64
	MaxTime int64
}

// IsAllTime reports whether the range is the unbounded sentinel.
func (r DateRange) IsAllTime() bool {
	return r.MinTime == 0 && r.MaxTime == 0
}

// DateRangeType tags a symbolic date range preset. The numeric values match
// the upstream API so persisted filter settings stay compatible.
type DateRangeType int32

const (
	DateRangeAll                    DateRangeType = 0
	DateRangeToday                  DateRangeType = 1
	DateRangeYesterday              DateRangeType = 2
	DateRangeLastSevenDays          DateRangeType = 3
	DateRangeLastThirtyDays         DateRangeType = 4
	DateRangeThisWeek               DateRangeType = 5
	DateRangeLastWeek               DateRangeType = 6
	DateRangeThisMonth              DateRangeType = 7
	DateRangeLastMonth              DateRangeType = 8
	DateRangeThisYear               DateRangeType = 9
	DateRangeLastYear               DateRangeType = 10
	DateRangeRecentTwelveMonths     DateRangeType = 11
	DateRangeRecentTwentyFourMonths DateRangeType = 12
	DateRangeRecentThirtySixMonths  DateRangeType = 13
	DateRangeRecentTwoYears         DateRangeType = 14
	DateRangeRecentThreeYears       DateRangeType = 15
	DateRangeRecentFiveYears        DateRangeType = 16
	DateRangeCustom                 DateRangeType = 255
)

// Scene selects which presets a usage context offers.
type Scene int

const (
	SceneTransactionList Scene = iota
	SceneTrendAnalysis
)

type sceneSet uint8

const (
	sceneSetTransactionList sceneSet = 1 << iota
	sceneSetTrendAnalysis

	sceneSetAll = sceneSetTransactionList | sceneSetTrendAnalysis
)

func (s sceneSet) contains(scene Scene) bool {
	switch scene {
	case SceneTransactionList:
		return s&sceneSetTransactionList != 0
	case SceneTrendAnalysis:
		return s&sceneSetTrendAnalysis != 0
	default:
		return false
	}
}

type dateRangeSpec struct {
	dateType DateRangeType
	scenes   sceneSet
}

// allDateRangeSpecs fixes the classification order. Classify walks this slice
// top to bottom and the first structural match wins, so the order is part of
// the contract and must not be reshuffled.
var allDateRangeSpecs = []dateRangeSpec{
	{DateRangeAll, sceneSetAll},
	{DateRangeToday, sceneSetTransactionList},
	{DateRangeYesterday, sceneSetTransactionList},
	{DateRangeLastSevenDays, sceneSetTransactionList},
	{DateRangeLastThirtyDays, sceneSetTransactionList},
	{DateRangeThisWeek, sceneSetTransactionList},
	{DateRangeLastWeek, sceneSetTransactionList},
	{DateRangeThisMonth, sceneSetAll},
	{DateRangeLastMonth, sceneSetAll},
	{DateRangeThisYear, sceneSetAll},
	{DateRangeLastYear, sceneSetAll},
	{DateRangeRecentTwelveMonths, sceneSetAll},
	{DateRangeRecentTwentyFourMonths, sceneSetAll},
	{DateRangeRecentThirtySixMonths, sceneSetAll},
	{DateRangeRecentTwoYears, sceneSetAll},
	{DateRangeRecentThreeYears, sceneSetAll},
	{DateRangeRecentFiveYears, sceneSetAll},
	{DateRangeCustom, sceneSetAll},
}

// AvailableDateRangeTypes returns the preset tags offered for a scene, in
// classification order. Custom is excluded unless includeCustom is set.
func AvailableDateRangeTypes(scene Scene, includeCustom bool) []DateRangeType {
	types := make([]DateRangeType, 0, len(allDateRangeSpecs))

	for _, spec := range allDateRangeSpecs {
		if !spec.scenes.contains(scene) {
			continue
		}

		if spec.dateType == DateRangeCustom && !includeCustom {
			continue
		}

		types = append(types, spec.dateType)
	}

	return types
}

// Resolver maps symbolic date range tags to concrete unix-second boundaries.
// The clock and location are injectable so callers and tests can pin "now".
type Resolver struct {
	nowFunc func() time.Time
	loc     *time.Location
}

// NewResolver returns a resolver anchored at the host clock and local zone.
func NewResolver() *Resolver {
	return NewResolverAt(time.Now, time.Local)
}

// NewResolverAt returns a resolver with an explicit clock and location.
// Nil arguments fall back to time.Now and time.Local.
func NewResolverAt(nowFunc func() time.Time, loc *time.Location) *Resolver {
	if nowFunc == nil {
		nowFunc = time.Now
	}
	if loc == nil {
		loc = time.Local
	}

	return &Resolver{nowFunc: nowFunc, loc: loc}
}

func (r *Resolver) now() time.Time {
	return r.nowFunc().In(r.loc)
}

func (r *Resolver) todayStart() time.Time {
	return now.New(r.now()).BeginningOfDay()
}

func (r *Resolver) weekStart(firstDayOfWeek int) time.Time {
	today := r.todayStart()

	dayOfWeek := int(today.Weekday()) - firstDayOfWeek
	if dayOfWeek < 0 {
		dayOfWeek += 7
	}

	return today.AddDate(0, 0, -dayOfWeek)
}

func (r *Resolver) monthStart() time.Time {
	return now.New(r.now()).BeginningOfMonth()
}

func (r *Resolver) yearStart() time.Time {
	return now.New(r.now()).BeginningOfYear()
}

func rangeOf(start, endExclusive time.Time) *DateRange {
	return &DateRange{
		MinTime: start.Unix(),
		MaxTime: endExclusive.Add(-time.Second).Unix(),
	}
}

// Resolve computes the concrete boundaries for a preset tag, anchored at the
// resolver's clock. Custom and unknown tags have no derivation and yield nil.
// firstDayOfWeek outside [0, 6] is treated as Sunday.
func (r *Resolver) Resolve(dateType DateRangeType, firstDayOfWeek int) *DateRange {
	if firstDayOfWeek < 0 || firstDayOfWeek > 6 {
		firstDayOfWeek = 0
	}

	switch dateType {
	case DateRangeAll:
		return &DateRange{MinTime: 0, MaxTime: 0}
	case DateRangeToday:
		today := r.todayStart()
		return rangeOf(today, today.AddDate(0, 0, 1))
	case DateRangeYesterday:
		today := r.todayStart()
		return rangeOf(today.AddDate(0, 0, -1), today)
	case DateRangeLastSevenDays:
		today := r.todayStart()
		return rangeOf(today.AddDate(0, 0, -6), today.AddDate(0, 0, 1))
	case DateRangeLastThirtyDays:
		today := r.todayStart()
		return rangeOf(today.AddDate(0, 0, -29), today.AddDate(0, 0, 1))
	case DateRangeThisWeek:
		weekStart := r.weekStart(firstDayOfWeek)
		return rangeOf(weekStart, weekStart.AddDate(0, 0, 7))
	case DateRangeLastWeek:
		weekStart := r.weekStart(firstDayOfWeek).AddDate(0, 0, -7)
		return rangeOf(weekStart, weekStart.AddDate(0, 0, 7))
	case DateRangeThisMonth:
		monthStart := r.monthStart()
		return rangeOf(monthStart, monthStart.AddDate(0, 1, 0))
	case DateRangeLastMonth:
		monthStart := r.monthStart()
		return rangeOf(monthStart.AddDate(0, -1, 0), monthStart)
	case DateRangeThisYear:
		yearStart := r.yearStart()
		return rangeOf(yearStart, yearStart.AddDate(1, 0, 0))
	case DateRangeLastYear:
		yearStart := r.yearStart()
		return rangeOf(yearStart.AddDate(-1, 0, 0), yearStart)
	case DateRangeRecentTwelveMonths:
		return r.recentMonths(12)
	case DateRangeRecentTwentyFourMonths:
		return r.recentMonths(24)
	case DateRangeRecentThirtySixMonths:
		return r.recentMonths(36)
	case DateRangeRecentTwoYears:
		return r.recentYears(2)
	case DateRangeRecentThreeYears:
		return r.recentYears(3)
	case DateRangeRecentFiveYears:
		return r.recentYears(5)
	default:
		return nil
	}
}

func (r *Resolver) recentMonths(count int) *DateRange {
	monthStart := r.monthStart()
	return &DateRange{
		MinTime: monthStart.AddDate(0, -(count - 1), 0).Unix(),
		MaxTime: monthStart.AddDate(0, 1, 0).Add(-time.Second).Unix(),
	}
}

func (r *Resolver) recentYears(count int) *DateRange {
	yearStart := r.yearStart()
	return &DateRange{
		MinTime: yearStart.AddDate(-(count - 1), 0, 0).Unix(),
		MaxTime: yearStart.AddDate(1, 0, 0).Add(-time.Second).Unix(),
	}
}

// Classify maps explicit boundaries back to the first preset tag available in
// the scene whose resolved range equals them exactly. Falls back to Custom.
func (r *Resolver) Classify(minTime, maxTime int64, firstDayOfWeek int, scene Scene) DateRangeType {
	for _, spec := range allDateRangeSpecs {
		if !spec.scenes.contains(scene) {
			continue
		}

		dateRange := r.Resolve(spec.dateType, firstDayOfWeek)
		if dateRange != nil && dateRange.MinTime == minTime && dateRange.MaxTime == maxTime {
			return spec.dateType
		}
	}

	return DateRangeCustom
}

// normalizedBounds snaps the seconds component of the bounds to :00 / :59
// before boundary comparison, matching how ranges are originally produced.
func (r *Resolver) normalizedBounds(minTime, maxTime int64) (time.Time, time.Time) {
	minDateTime := time.Unix(minTime, 0).In(r.loc)
	minDateTime = minDateTime.Add(-time.Duration(minDateTime.Second()) * time.Second)

	maxDateTime := time.Unix(maxTime, 0).In(r.loc)
	maxDateTime = maxDateTime.Add(time.Duration(59-maxDateTime.Second()) * time.Second)

	return minDateTime, maxDateTime
}

// Shift translates a range by scale units. Ranges that span whole calendar
// months move by that many months with recomputed boundaries; anything else
// is translated by its fixed duration, which preserves length but not
// calendar alignment.
func (r *Resolver) Shift(minTime, maxTime int64, scale int) DateRange {
	minDateTime, maxDateTime := r.normalizedBounds(minTime, maxTime)

	firstDayOfMonth := now.New(minDateTime).BeginningOfMonth()
	lastDayOfMonth := now.New(maxDateTime).EndOfMonth()

	if firstDayOfMonth.Unix() == minDateTime.Unix() && lastDayOfMonth.Unix() == maxDateTime.Unix() {
		months := maxDateTime.Year()*12 + int(maxDateTime.Month()) -
			minDateTime.Year()*12 - int(minDateTime.Month()) + 1

		newMinDateTime := minDateTime.AddDate(0, months*scale, 0)
		newMaxDateTime := newMinDateTime.AddDate(0, months, 0).Add(-time.Second)

		return DateRange{MinTime: newMinDateTime.Unix(), MaxTime: newMaxDateTime.Unix()}
	}

	duration := (maxTime - minTime + 1) * int64(scale)

	return DateRange{MinTime: minTime + duration, MaxTime: maxTime + duration}
}

// ShiftAndClassify shifts a range and re-derives its preset tag so callers
// can show a recognized preset when calendar alignment survived the shift.
func (r *Resolver) ShiftAndClassify(minTime, maxTime int64, scale, firstDayOfWeek int, scene Scene) (DateRange, DateRangeType) {
	shifted := r.Shift(minTime, maxTime, scale)
	return shifted, r.Classify(shifted.MinTime, shifted.MaxTime, firstDayOfWeek, scene)
}

// MatchesFullYears reports whether the bounds land exactly on year boundaries.
func (r *Resolver) MatchesFullYears(minTime, maxTime int64) bool {
	minDateTime, maxDateTime := r.normalizedBounds(minTime, maxTime)

	firstDayOfYear := now.New(minDateTime).BeginningOfYear()
	lastDayOfYear := now.New(maxDateTime).EndOfYear()

	return firstDayOfYear.Unix() == minDateTime.Unix() && lastDayOfYear.Unix() == maxDateTime.Unix()
}

// MatchesFullMonths reports whether the bounds land exactly on month boundaries.
func (r *Resolver) MatchesFullMonths(minTime, maxTime int64) bool {
	minDateTime, maxDateTime := r.normalizedBounds(minTime, maxTime)

	firstDayOfMonth := now.New(minDateTime).BeginningOfMonth()
	lastDayOfMonth := now.New(maxDateTime).EndOfMonth()

	return firstDayOfMonth.Unix() == minDateTime.Unix() && lastDayOfMonth.Unix() == maxDateTime.Unix()
}

// MatchesOneMonth reports whether the bounds cover exactly one calendar month.
func (r *Resolver) MatchesOneMonth(minTime, maxTime int64) bool {
	minDateTime := time.Unix(minTime, 0).In(r.loc)
	maxDateTime := time.Unix(maxTime, 0).In(r.loc)

	if minDateTime.Year() != maxDateTime.Year() || minDateTime.Month() != maxDateTime.Month() {
		return false
	}

	return r.MatchesFullMonths(minTime, maxTime)
}
