package controllers

import (
	"testing"

	"pms/dto"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingPageKeepsTotalThroughCache(t *testing.T) {
	// Trang cache chỉ chứa 20 booking đầu nhưng tổng số bản ghi phải
	// là tổng thật để client phân trang đúng
	page := bookingPage{
		Items: []dto.BookingResponse{
			{ID: 1, Code: "BK1"},
			{ID: 2, Code: "BK2"},
		},
		Total: 57,
	}

	raw, err := json.Marshal(page)
	require.NoError(t, err)

	var cached bookingPage
	require.NoError(t, json.Unmarshal(raw, &cached))

	assert.Len(t, cached.Items, 2)
	assert.Equal(t, 57, cached.Total)
}
