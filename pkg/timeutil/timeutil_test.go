package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	// UTC 22:30，在 Kyiv 已经是第二天凌晨
	return time.Date(2026, 8, 24, 22, 30, 0, 0, time.UTC)
}

func TestResolverDays(t *testing.T) {
	r := NewResolverAt("Europe/Kyiv", fixedClock)

	today := r.Today()
	assert.Equal(t, "2026-08-25", FormatDay(today))
	assert.Equal(t, "2026-08-24", FormatDay(r.Yesterday()))
	assert.Equal(t, "2026-08-26", FormatDay(r.Tomorrow()))

	// 零点截断
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
}

func TestResolverInvalidTimezoneFallsBackToUTC(t *testing.T) {
	r := NewResolverAt("Not/AZone", fixedClock)
	assert.Equal(t, "2026-08-24", FormatDay(r.Today()))
}

func TestNextDay(t *testing.T) {
	d, err := ParseDay("2026-08-24")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-25", FormatDay(NextDay(d)))

	// 月末进位
	d, err = ParseDay("2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", FormatDay(NextDay(d)))
}
