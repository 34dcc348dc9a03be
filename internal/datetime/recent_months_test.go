package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_RecentMonthRanges(t *testing.T) {
	r := pinnedResolver()

	ranges := r.RecentMonthRanges(12)
	require.Len(t, ranges, 12)

	assert.Equal(t, DateRangeThisMonth, ranges[0].DateType)
	assert.Equal(t, 2024, ranges[0].Year)
	assert.Equal(t, time.March, ranges[0].Month)
	assert.Equal(t, "2024-03", ranges[0].DisplayLabel)
	assert.Equal(t, unixOf(2024, time.March, 1, 0, 0, 0), ranges[0].MinTime)
	assert.Equal(t, unixOf(2024, time.March, 31, 23, 59, 59), ranges[0].MaxTime)

	assert.Equal(t, DateRangeLastMonth, ranges[1].DateType)
	assert.Equal(t, time.February, ranges[1].Month)
	assert.Equal(t, unixOf(2024, time.February, 29, 23, 59, 59), ranges[1].MaxTime)

	for i := 2; i < 12; i++ {
		assert.Equal(t, DateRangeCustom, ranges[i].DateType, "entry %d", i)
		assert.True(t, ranges[i].IsPreset, "entry %d", i)
	}

	// newest first, mutually exclusive and adjacent
	for i := 1; i < 12; i++ {
		assert.Equal(t, ranges[i].MaxTime+1, ranges[i-1].MinTime, "entry %d", i)
	}
}

func TestResolver_RecentMonthRanges_YearRollover(t *testing.T) {
	r := resolverAt(2024, time.January, 10, 9)

	ranges := r.RecentMonthRanges(3)
	require.Len(t, ranges, 3)

	assert.Equal(t, 2024, ranges[0].Year)
	assert.Equal(t, time.January, ranges[0].Month)
	assert.Equal(t, 2023, ranges[1].Year)
	assert.Equal(t, time.December, ranges[1].Month)
	assert.Equal(t, "2023-12", ranges[1].DisplayLabel)
	assert.Equal(t, 2023, ranges[2].Year)
	assert.Equal(t, time.November, ranges[2].Month)
}

func TestResolver_RecentMonthRanges_NonPositiveCount(t *testing.T) {
	r := pinnedResolver()

	assert.Nil(t, r.RecentMonthRanges(0))
	assert.Nil(t, r.RecentMonthRanges(-3))
}

func TestResolver_RecentMonthRangeIndex(t *testing.T) {
	r := pinnedResolver()

	// display list shape: leading All entry, generated months, trailing Custom
	ranges := []RecentMonthRange{{DateType: DateRangeAll}}
	ranges = append(ranges, r.RecentMonthRanges(12)...)
	ranges = append(ranges, RecentMonthRange{DateType: DateRangeCustom})

	lastMonth := r.Resolve(DateRangeLastMonth, 0)
	require.NotNil(t, lastMonth)

	tests := []struct {
		name     string
		dateType DateRangeType
		minTime  int64
		maxTime  int64
		want     int
	}{
		{
			name:     "all time maps to the all entry",
			dateType: DateRangeAll,
			want:     0,
		},
		{
			name:     "this month preset",
			dateType: DateRangeThisMonth,
			want:     1,
		},
		{
			name:     "last month preset",
			dateType: DateRangeLastMonth,
			want:     2,
		},
		{
			name:     "custom bounds matching a generated month",
			dateType: DateRangeCustom,
			minTime:  unixOf(2024, time.January, 1, 0, 0, 0),
			maxTime:  unixOf(2024, time.January, 31, 23, 59, 59),
			want:     3,
		},
		{
			name:     "custom without bounds",
			dateType: DateRangeCustom,
			want:     13,
		},
		{
			name:     "custom bounds matching nothing",
			dateType: DateRangeCustom,
			minTime:  unixOf(2024, time.March, 3, 0, 0, 0),
			maxTime:  unixOf(2024, time.March, 9, 23, 59, 59),
			want:     13,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.RecentMonthRangeIndex(ranges, tt.dateType, tt.minTime, tt.maxTime, 0)
			assert.Equal(t, tt.want, got)
		})
	}
}
