package validator

import (
	"testing"
	"time"

	"pms/models"
	"pms/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBookingDates(t *testing.T) {
	t.Run("đặt theo đêm hợp lệ", func(t *testing.T) {
		checkIn, checkOut, err := ValidateBookingDates("10/06/2025", "13/06/2025", pricing.ShiftTraditional)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), checkIn)
		assert.Equal(t, time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC), checkOut)
	})

	t.Run("đặt theo đêm cùng ngày bị chặn", func(t *testing.T) {
		_, _, err := ValidateBookingDates("10/06/2025", "10/06/2025", pricing.ShiftTraditional)
		assert.Error(t, err)
	})

	t.Run("đặt theo ca cùng ngày chuẩn hóa thành một ngày", func(t *testing.T) {
		checkIn, checkOut, err := ValidateBookingDates("10/06/2025", "10/06/2025", pricing.ShiftDay)
		require.NoError(t, err)
		assert.Equal(t, checkIn.AddDate(0, 0, 1), checkOut)
	})

	t.Run("trả phòng trước nhận phòng bị chặn", func(t *testing.T) {
		_, _, err := ValidateBookingDates("13/06/2025", "10/06/2025", pricing.ShiftFullDay)
		assert.Error(t, err)
	})

	t.Run("định dạng sai", func(t *testing.T) {
		_, _, err := ValidateBookingDates("2025-06-10", "2025-06-13", pricing.ShiftTraditional)
		assert.Error(t, err)
	})
}

func TestSameDayShiftBookingIsPriced(t *testing.T) {
	// Khách đặt ca ngày nhận và trả cùng ngày vẫn phải bị tính đủ
	// giá ca, không được ra hóa đơn 0 đồng
	checkIn, checkOut, err := ValidateBookingDates("10/06/2025", "10/06/2025", pricing.ShiftDay)
	require.NoError(t, err)

	dayShift := 500000.0
	got := pricing.Calculate(
		pricing.StayRequest{
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			Adults:       2,
			ShiftType:    pricing.ShiftDay,
		},
		pricing.RoomTypePricing{
			PricingMode:    pricing.ModeShift,
			DayShiftPrice:  &dayShift,
			StandardAdults: 2,
		},
		pricing.ChargeAdjustments{},
	)

	assert.InDelta(t, 500000, got.RoomCharge, 0.001)
	assert.InDelta(t, 500000, got.Total, 0.001)
	assert.InDelta(t, 150000, got.DepositRequired, 0.001)
}

func TestValidateShiftType(t *testing.T) {
	for _, valid := range []string{"", "traditional", "day_shift", "night_shift", "full_day"} {
		st, err := ValidateShiftType(valid)
		assert.NoError(t, err, valid)
		assert.True(t, st.Valid())
	}

	_, err := ValidateShiftType("morning")
	assert.Error(t, err)
}

func TestOccupancyWarnings(t *testing.T) {
	room := pricing.RoomTypePricing{
		MaxAdults:    3,
		MaxChildren:  2,
		MaxOccupancy: 4,
	}

	assert.Empty(t, OccupancyWarnings(2, 1, room))

	// Vượt cả ba mức thì có ba cảnh báo, nhưng không có lỗi
	warnings := OccupancyWarnings(4, 3, room)
	assert.Len(t, warnings, 3)

	// Vượt tổng sức chứa dù từng nhóm vẫn trong mức
	warnings = OccupancyWarnings(3, 2, room)
	assert.Len(t, warnings, 1)
}

func TestValidateRoomType(t *testing.T) {
	price := 500000.0
	negative := -1.0

	t.Run("cấu hình hợp lệ", func(t *testing.T) {
		rt := &models.RoomType{
			Name:        "Deluxe",
			PricingMode: "traditional",
			BasePrice:   &price,
			MaxAdults:   2,
		}
		assert.NoError(t, ValidateRoomType(rt))
	})

	t.Run("thiếu tên", func(t *testing.T) {
		rt := &models.RoomType{PricingMode: "traditional"}
		assert.Error(t, ValidateRoomType(rt))
	})

	t.Run("chế độ giá lạ", func(t *testing.T) {
		rt := &models.RoomType{Name: "Deluxe", PricingMode: "hourly"}
		assert.Error(t, ValidateRoomType(rt))
	})

	t.Run("giá âm", func(t *testing.T) {
		rt := &models.RoomType{Name: "Deluxe", PricingMode: "shift", DayShiftPrice: &negative}
		assert.Error(t, ValidateRoomType(rt))
	})
}

func TestValidateCustomer(t *testing.T) {
	assert.NoError(t, ValidateCustomer(&models.Customer{Name: "Nguyễn Văn An", PhoneNumber: "0912345678"}))
	assert.Error(t, ValidateCustomer(&models.Customer{PhoneNumber: "0912345678"}))
	assert.Error(t, ValidateCustomer(&models.Customer{Name: "An", Email: "not-an-email"}))
	assert.Error(t, ValidateCustomer(&models.Customer{Name: "An", PhoneNumber: "12345"}))
}

func TestValidateUser(t *testing.T) {
	user := &models.User{
		Email:       "letan@example.com",
		Password:    "secret123",
		PhoneNumber: "0912345678",
		Role:        3,
	}
	assert.NoError(t, ValidateUser(user))

	user.Role = 9
	assert.Error(t, ValidateUser(user))
}
