package pricing

import "time"

// ShiftType là kiểu đặt phòng theo ca
type ShiftType string

const (
	ShiftTraditional ShiftType = "traditional"
	ShiftDay         ShiftType = "day_shift"
	ShiftNight       ShiftType = "night_shift"
	ShiftFullDay     ShiftType = "full_day"
)

// PricingMode là chế độ tính giá của loại phòng
type PricingMode string

const (
	ModeTraditional PricingMode = "traditional"
	ModeShift       PricingMode = "shift"
)

// DiscountType là kiểu giảm giá
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountAmount     DiscountType = "amount"
)

// DepositRate là tỷ lệ đặt cọc đề xuất trên tổng tiền
const DepositRate = 0.30

// StayRequest là thông tin lưu trú cho một lần tính giá.
// ManualRate là giá nhập tay của lễ tân, chỉ dùng khi cấu hình giá thiếu.
type StayRequest struct {
	CheckInDate  time.Time
	CheckOutDate time.Time
	Adults       int
	Children     int
	ShiftType    ShiftType
	ShiftDate    *time.Time
	ManualRate   float64
}

// RoomTypePricing là cấu hình giá của một loại phòng. Các trường giá
// con trỏ là tùy chọn: nil nghĩa là chưa cấu hình, khác với giá 0.
type RoomTypePricing struct {
	PricingMode PricingMode

	// Giá theo đêm
	BasePrice    *float64
	WeekendPrice *float64

	// Giá theo ca
	DayShiftPrice   *float64
	NightShiftPrice *float64
	FullDayPrice    *float64

	// Sức chứa
	StandardAdults   int
	StandardChildren int
	MaxAdults        int
	MaxChildren      int
	MaxOccupancy     int

	// Phụ thu
	ExtraAdultCharge     float64
	ExtraChildCharge     float64
	ExtraSingleBedCharge float64
	ExtraDoubleBedCharge float64
}

// ChargeAdjustments là các khoản lễ tân nhập thêm khi tính giá
type ChargeAdjustments struct {
	ServiceCharges float64
	DiscountType   DiscountType
	DiscountValue  float64
	TaxPercentage  float64
}

// CalculationResult là bảng giá chi tiết cho một lần lưu trú
type CalculationResult struct {
	Nights        int `json:"nights"`
	WeekdayNights int `json:"weekdayNights"`
	WeekendNights int `json:"weekendNights"`

	RoomCharge       float64 `json:"roomCharge"`
	ExtraPersonTotal float64 `json:"extraPersonTotal"`
	ExtraBedTotal    float64 `json:"extraBedTotal"`
	ExtraSingleBeds  int     `json:"extraSingleBeds"`
	ExtraDoubleBeds  int     `json:"extraDoubleBeds"`

	Subtotal        float64 `json:"subtotal"`
	DiscountAmount  float64 `json:"discountAmount"`
	TaxAmount       float64 `json:"taxAmount"`
	Total           float64 `json:"total"`
	DepositRequired float64 `json:"depositRequired"`
}

// IsShift cho biết shift type có phải là một ca cố định hay không
func (s ShiftType) IsShift() bool {
	return s == ShiftDay || s == ShiftNight || s == ShiftFullDay
}

// Valid kiểm tra shift type hợp lệ
func (s ShiftType) Valid() bool {
	return s == ShiftTraditional || s.IsShift()
}
