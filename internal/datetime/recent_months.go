package datetime

import "time"

// RecentMonthRange is one of the last N calendar months, newest first.
// Entry 0 carries the ThisMonth tag and entry 1 LastMonth; older entries are
// Custom. IsPreset marks a generated month entry, as opposed to list entries
// (All, bare Custom) a caller may append for display purposes.
type RecentMonthRange struct {
	DateType     DateRangeType
	MinTime      int64
	MaxTime      int64
	Year         int
	Month        time.Month
	IsPreset     bool
	DisplayLabel string
}

// RecentMonthRanges generates the last monthCount calendar months, newest
// first, anchored at the resolver's clock. A non-positive count yields nil.
func (r *Resolver) RecentMonthRanges(monthCount int) []RecentMonthRange {
	if monthCount <= 0 {
		return nil
	}

	thisMonthStart := r.monthStart()
	ranges := make([]RecentMonthRange, 0, monthCount)

	for i := 0; i < monthCount; i++ {
		monthStart := thisMonthStart.AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Second)

		dateType := DateRangeCustom
		switch i {
		case 0:
			dateType = DateRangeThisMonth
		case 1:
			dateType = DateRangeLastMonth
		}

		ym := YearMonth{Year: monthStart.Year(), Month: monthStart.Month()}

		ranges = append(ranges, RecentMonthRange{
			DateType:     dateType,
			MinTime:      monthStart.Unix(),
			MaxTime:      monthEnd.Unix(),
			Year:         ym.Year,
			Month:        ym.Month,
			IsPreset:     true,
			DisplayLabel: ym.String(),
		})
	}

	return ranges
}

// recentMonthRangeIndexByType finds the first non-preset list entry carrying
// the given tag. Returns -1 when absent.
func recentMonthRangeIndexByType(ranges []RecentMonthRange, dateType DateRangeType) int {
	for i := range ranges {
		if !ranges[i].IsPreset && ranges[i].DateType == dateType {
			return i
		}
	}

	return -1
}

// RecentMonthRangeIndex locates the entry in ranges matching the given
// symbolic tag or explicit bounds. Preset month entries match on exact
// boundaries; All and unresolvable ranges fall through to the corresponding
// non-preset list entry. Returns -1 when nothing matches.
func (r *Resolver) RecentMonthRangeIndex(ranges []RecentMonthRange, dateType DateRangeType, minTime, maxTime int64, firstDayOfWeek int) int {
	resolved := r.Resolve(dateType, firstDayOfWeek)

	if resolved != nil && dateType == DateRangeAll {
		return recentMonthRangeIndexByType(ranges, DateRangeAll)
	}

	if resolved == nil && (minTime == 0 || maxTime == 0) {
		return recentMonthRangeIndexByType(ranges, DateRangeCustom)
	}

	if resolved == nil {
		resolved = &DateRange{MinTime: minTime, MaxTime: maxTime}
	}

	for i := range ranges {
		if ranges[i].IsPreset && ranges[i].MinTime == resolved.MinTime && ranges[i].MaxTime == resolved.MaxTime {
			return i
		}
	}

	return recentMonthRangeIndexByType(ranges, DateRangeCustom)
}
