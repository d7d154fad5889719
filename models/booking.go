package models

import (
	"time"
)

// Booking status constants
const (
	BookingStatusPending    = 0
	BookingStatusConfirmed  = 1
	BookingStatusCheckedIn  = 2
	BookingStatusCheckedOut = 3
	BookingStatusCancelled  = 4
)

type Booking struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Code       string    `json:"code" gorm:"unique;size:20"`
	RoomID     uint      `json:"roomId"`
	Room       Room      `json:"room" gorm:"foreignKey:RoomID"`
	CustomerID *uint     `json:"customerId"`
	Customer   *Customer `json:"customer" gorm:"foreignKey:CustomerID"`

	CheckInDate  string  `json:"checkInDate"`  // dd/mm/yyyy
	CheckOutDate string  `json:"checkOutDate"` // dd/mm/yyyy
	ShiftType    string  `json:"shiftType" gorm:"default:traditional"`
	ShiftDate    *string `json:"shiftDate,omitempty"`
	Adults       int     `json:"adults" gorm:"default:1"`
	Children     int     `json:"children" gorm:"default:0"`

	GuestName  string `json:"guestName,omitempty"`
	GuestEmail string `json:"guestEmail,omitempty"`
	GuestPhone string `json:"guestPhone,omitempty"`

	// Các khoản lễ tân nhập khi đặt
	ManualRate     float64 `json:"manualRate"`
	ServiceCharges float64 `json:"serviceCharges"`
	DiscountType   string  `json:"discountType" gorm:"default:percentage"`
	DiscountValue  float64 `json:"discountValue"`
	TaxPercentage  float64 `json:"taxPercentage"`

	// Bảng giá đã chốt tại thời điểm đặt
	Nights           int     `json:"nights"`
	WeekdayNights    int     `json:"weekdayNights"`
	WeekendNights    int     `json:"weekendNights"`
	RoomCharge       float64 `json:"roomCharge"`
	ExtraPersonTotal float64 `json:"extraPersonTotal"`
	ExtraBedTotal    float64 `json:"extraBedTotal"`
	ExtraSingleBeds  int     `json:"extraSingleBeds"`
	ExtraDoubleBeds  int     `json:"extraDoubleBeds"`
	Subtotal         float64 `json:"subtotal"`
	DiscountAmount   float64 `json:"discountAmount"`
	TaxAmount        float64 `json:"taxAmount"`
	TotalPrice       float64 `json:"totalPrice"`
	DepositRequired  float64 `json:"depositRequired"`

	Status    int       `json:"status" gorm:"default:0"`
	CreatedBy uint      `json:"createdBy"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
