package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoomHoldOverlaps(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
	}
	hold := RoomHold{Status: 1, FromDate: day(10), ToDate: day(13)}

	assert.True(t, hold.Overlaps(day(12), day(14)))
	assert.True(t, hold.Overlaps(day(9), day(11)))
	assert.True(t, hold.Overlaps(day(10), day(13)))
	assert.True(t, hold.Overlaps(day(11), day(12)))

	// Khoảng [from, to) nên chạm đúng biên không tính là trùng
	assert.False(t, hold.Overlaps(day(13), day(15)))
	assert.False(t, hold.Overlaps(day(8), day(10)))

	released := RoomHold{Status: 0, FromDate: day(10), ToDate: day(13)}
	assert.False(t, released.Overlaps(day(11), day(12)))
}
