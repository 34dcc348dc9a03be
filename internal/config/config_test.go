package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	config := Load()

	assert.Equal(t, "USD", config.Viewer.DefaultCurrency)
	assert.Equal(t, 0, config.Viewer.FirstDayOfWeek)
	assert.Equal(t, 0, config.Viewer.UtcOffsetMinutes)
	assert.Equal(t, 50, config.Viewer.PageSize)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("VIEWER_DEFAULT_CURRENCY", "EUR")
	t.Setenv("VIEWER_FIRST_DAY_OF_WEEK", "1")
	t.Setenv("VIEWER_UTC_OFFSET_MINUTES", "480")
	t.Setenv("VIEWER_PAGE_SIZE", "25")

	config := Load()

	assert.Equal(t, "EUR", config.Viewer.DefaultCurrency)
	assert.Equal(t, 1, config.Viewer.FirstDayOfWeek)
	assert.Equal(t, 480, config.Viewer.UtcOffsetMinutes)
	assert.Equal(t, 25, config.Viewer.PageSize)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("VIEWER_FIRST_DAY_OF_WEEK", "9")
	t.Setenv("VIEWER_PAGE_SIZE", "-10")
	t.Setenv("VIEWER_UTC_OFFSET_MINUTES", "not-a-number")

	config := Load()

	assert.Equal(t, 0, config.Viewer.FirstDayOfWeek)
	assert.Equal(t, 50, config.Viewer.PageSize)
	assert.Equal(t, 0, config.Viewer.UtcOffsetMinutes)
}
