package dto

import "encoding/json"

// CreateRoomTypeRequest là DTO tạo/cập nhật cấu hình loại phòng. Các
// trường giá con trỏ phân biệt "không gửi" với giá 0.
type CreateRoomTypeRequest struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	PricingMode string          `json:"pricingMode"`
	Img         json.RawMessage `json:"img"`

	BasePrice       *float64 `json:"basePrice"`
	WeekendPrice    *float64 `json:"weekendPrice"`
	DayShiftPrice   *float64 `json:"dayShiftPrice"`
	NightShiftPrice *float64 `json:"nightShiftPrice"`
	FullDayPrice    *float64 `json:"fullDayPrice"`

	StandardAdults   int `json:"standardAdultsOccupancy"`
	StandardChildren int `json:"standardChildrenOccupancy"`
	MaxAdults        int `json:"maxAdults"`
	MaxChildren      int `json:"maxChildren"`
	MaxOccupancy     int `json:"maxOccupancy"`

	ExtraAdultCharge     float64 `json:"extraAdultCharge"`
	ExtraChildCharge     float64 `json:"extraChildCharge"`
	ExtraSingleBedCharge float64 `json:"extraSingleBedCharge"`
	ExtraDoubleBedCharge float64 `json:"extraDoubleBedCharge"`
}
