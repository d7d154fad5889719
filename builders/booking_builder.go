package builders

import (
	"pms/models"
	"pms/pricing"
)

// BookingBuilder giúp tạo booking theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{Status: models.BookingStatusPending},
	}
}

// WithCode gán mã booking
func (b *BookingBuilder) WithCode(code string) *BookingBuilder {
	b.booking.Code = code
	return b
}

// WithRoom thêm thông tin phòng
func (b *BookingBuilder) WithRoom(roomID uint) *BookingBuilder {
	b.booking.RoomID = roomID
	return b
}

// WithCustomer gắn hồ sơ khách, customerID 0 nghĩa là khách vãng lai
func (b *BookingBuilder) WithCustomer(customerID uint) *BookingBuilder {
	if customerID > 0 {
		b.booking.CustomerID = &customerID
	}
	return b
}

// WithGuestInfo thêm thông tin khách vãng lai
func (b *BookingBuilder) WithGuestInfo(guestName, guestPhone, guestEmail string) *BookingBuilder {
	b.booking.GuestName = guestName
	b.booking.GuestPhone = guestPhone
	b.booking.GuestEmail = guestEmail
	return b
}

// WithStay thêm thông tin lưu trú
func (b *BookingBuilder) WithStay(checkIn, checkOut string, shiftType string, shiftDate *string, adults, children int) *BookingBuilder {
	b.booking.CheckInDate = checkIn
	b.booking.CheckOutDate = checkOut
	b.booking.ShiftType = shiftType
	b.booking.ShiftDate = shiftDate
	b.booking.Adults = adults
	b.booking.Children = children
	return b
}

// WithAdjustments thêm các khoản lễ tân nhập
func (b *BookingBuilder) WithAdjustments(manualRate float64, adj pricing.ChargeAdjustments) *BookingBuilder {
	b.booking.ManualRate = manualRate
	b.booking.ServiceCharges = adj.ServiceCharges
	b.booking.DiscountType = string(adj.DiscountType)
	b.booking.DiscountValue = adj.DiscountValue
	b.booking.TaxPercentage = adj.TaxPercentage
	return b
}

// WithBreakdown chốt bảng giá đã tính vào booking
func (b *BookingBuilder) WithBreakdown(result pricing.CalculationResult) *BookingBuilder {
	b.booking.Nights = result.Nights
	b.booking.WeekdayNights = result.WeekdayNights
	b.booking.WeekendNights = result.WeekendNights
	b.booking.RoomCharge = result.RoomCharge
	b.booking.ExtraPersonTotal = result.ExtraPersonTotal
	b.booking.ExtraBedTotal = result.ExtraBedTotal
	b.booking.ExtraSingleBeds = result.ExtraSingleBeds
	b.booking.ExtraDoubleBeds = result.ExtraDoubleBeds
	b.booking.Subtotal = result.Subtotal
	b.booking.DiscountAmount = result.DiscountAmount
	b.booking.TaxAmount = result.TaxAmount
	b.booking.TotalPrice = result.Total
	b.booking.DepositRequired = result.DepositRequired
	return b
}

// WithCreatedBy gán lễ tân tạo booking
func (b *BookingBuilder) WithCreatedBy(userID uint) *BookingBuilder {
	b.booking.CreatedBy = userID
	return b
}

// Build tạo booking hoàn chỉnh
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
