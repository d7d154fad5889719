package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDayUsesLocalDate(t *testing.T) {
	hcm := time.FixedZone("ICT", 7*3600)

	// 01:30 sáng giờ Việt Nam vẫn thuộc ngày hôm đó, doanh thu hôm nay
	// phải tính từ 0h địa phương chứ không phải 7h
	at := time.Date(2026, 8, 31, 1, 30, 0, 0, hcm)

	got := startOfDay(at)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, hcm), got)
	assert.Equal(t, hcm, got.Location())

	// Truncate theo UTC cho ra mốc khác hẳn
	assert.NotEqual(t, got, at.Truncate(24*time.Hour))
}
