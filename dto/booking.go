package dto

import (
	"time"

	"pms/pricing"
)

// QuoteBookingRequest là DTO xem giá trước khi đặt, không ghi gì cả
type QuoteBookingRequest struct {
	RoomTypeID   uint    `json:"roomTypeId" binding:"required"`
	CheckInDate  string  `json:"checkInDate" binding:"required"`
	CheckOutDate string  `json:"checkOutDate" binding:"required"`
	ShiftType    string  `json:"shiftType" binding:"omitempty,shift_type"`
	ShiftDate    string  `json:"shiftDate,omitempty"`
	Adults       int     `json:"adults" binding:"required,min=1"`
	Children     int     `json:"children"`
	ManualRate   float64 `json:"manualRate"`

	ServiceCharges float64 `json:"serviceCharges"`
	DiscountType   string  `json:"discountType" binding:"omitempty,discount_type"`
	DiscountValue  float64 `json:"discountValue"`
	TaxPercentage  float64 `json:"taxPercentage"`
}

// QuoteBookingResponse trả về bảng giá và cảnh báo sức chứa (nếu có).
// Cảnh báo không chặn việc đặt, quyết định thuộc về lễ tân.
type QuoteBookingResponse struct {
	RoomTypeID   uint                      `json:"roomTypeId"`
	RoomTypeName string                    `json:"roomTypeName"`
	Breakdown    pricing.CalculationResult `json:"breakdown"`
	Warnings     []string                  `json:"warnings,omitempty"`
}

// CreateBookingRequest là DTO tạo booking mới
type CreateBookingRequest struct {
	RoomID       uint    `json:"roomId" binding:"required"`
	CustomerID   uint    `json:"customerId"`
	CheckInDate  string  `json:"checkInDate" binding:"required"`
	CheckOutDate string  `json:"checkOutDate" binding:"required"`
	ShiftType    string  `json:"shiftType" binding:"omitempty,shift_type"`
	ShiftDate    string  `json:"shiftDate,omitempty"`
	Adults       int     `json:"adults" binding:"required,min=1"`
	Children     int     `json:"children"`
	ManualRate   float64 `json:"manualRate"`

	GuestName  string `json:"guestName,omitempty"`
	GuestEmail string `json:"guestEmail,omitempty"`
	GuestPhone string `json:"guestPhone,omitempty"`

	ServiceCharges float64 `json:"serviceCharges"`
	DiscountType   string  `json:"discountType" binding:"omitempty,discount_type"`
	DiscountValue  float64 `json:"discountValue"`
	TaxPercentage  float64 `json:"taxPercentage"`
}

type BookingRoomResponse struct {
	ID         uint   `json:"id"`
	RoomTypeID uint   `json:"roomTypeId"`
	RoomName   string `json:"roomName"`
	Floor      int    `json:"floor"`
}

type BookingResponse struct {
	ID           uint                `json:"id"`
	Code         string              `json:"code"`
	Customer     ActorResponse       `json:"customer"`
	Room         BookingRoomResponse `json:"room"`
	CheckInDate  string              `json:"checkInDate"`
	CheckOutDate string              `json:"checkOutDate"`
	ShiftType    string              `json:"shiftType"`
	ShiftDate    *string             `json:"shiftDate,omitempty"`
	Adults       int                 `json:"adults"`
	Children     int                 `json:"children"`
	Status       int                 `json:"status"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`

	Breakdown   pricing.CalculationResult `json:"breakdown"`
	InvoiceCode string                    `json:"invoiceCode,omitempty"`
}

// BookingStatusUpdateRequest là DTO đổi trạng thái booking
type BookingStatusUpdateRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}
