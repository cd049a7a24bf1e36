package adminController

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfLocalDay(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Karachi")
	require.NoError(t, err)

	// 2 AM local is already "today" locally even though UTC is still on
	// the previous date.
	now := time.Date(2026, 8, 31, 2, 0, 0, 0, loc)
	start := startOfLocalDay(now)

	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, loc), start)
	assert.Equal(t, loc, start.Location())
	assert.True(t, start.Before(now))
	assert.True(t, now.Sub(start) < 24*time.Hour)
}
