package models

import (
	"encoding/json"
	"fmt"
	"time"

	"pms/pricing"
)

// RoomType là cấu hình loại phòng: sức chứa, phụ thu và bảng giá.
// Đây là dữ liệu tham chiếu cho bộ tính giá, calculator không sửa nó.
type RoomType struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description"`
	PricingMode string          `json:"pricingMode" gorm:"default:traditional"`
	Img         json.RawMessage `json:"img" gorm:"type:json"`

	// Giá theo đêm. WeekendPrice nil nghĩa là không có giá cuối tuần
	BasePrice    *float64 `json:"basePrice"`
	WeekendPrice *float64 `json:"weekendPrice"`

	// Giá theo ca, chỉ dùng khi PricingMode = shift
	DayShiftPrice   *float64 `json:"dayShiftPrice"`
	NightShiftPrice *float64 `json:"nightShiftPrice"`
	FullDayPrice    *float64 `json:"fullDayPrice"`

	StandardAdults   int `json:"standardAdultsOccupancy" gorm:"default:2"`
	StandardChildren int `json:"standardChildrenOccupancy" gorm:"default:0"`
	MaxAdults        int `json:"maxAdults" gorm:"default:2"`
	MaxChildren      int `json:"maxChildren" gorm:"default:0"`
	MaxOccupancy     int `json:"maxOccupancy" gorm:"default:2"`

	ExtraAdultCharge     float64 `json:"extraAdultCharge"`
	ExtraChildCharge     float64 `json:"extraChildCharge"`
	ExtraSingleBedCharge float64 `json:"extraSingleBedCharge"`
	ExtraDoubleBedCharge float64 `json:"extraDoubleBedCharge"`

	Status    int       `json:"status" gorm:"default:1"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Rooms []Room `json:"rooms,omitempty" gorm:"foreignKey:RoomTypeID"`
}

// ToPricing chuyển cấu hình sang struct input của package pricing
func (rt *RoomType) ToPricing() pricing.RoomTypePricing {
	return pricing.RoomTypePricing{
		PricingMode:          pricing.PricingMode(rt.PricingMode),
		BasePrice:            rt.BasePrice,
		WeekendPrice:         rt.WeekendPrice,
		DayShiftPrice:        rt.DayShiftPrice,
		NightShiftPrice:      rt.NightShiftPrice,
		FullDayPrice:         rt.FullDayPrice,
		StandardAdults:       rt.StandardAdults,
		StandardChildren:     rt.StandardChildren,
		MaxAdults:            rt.MaxAdults,
		MaxChildren:          rt.MaxChildren,
		MaxOccupancy:         rt.MaxOccupancy,
		ExtraAdultCharge:     rt.ExtraAdultCharge,
		ExtraChildCharge:     rt.ExtraChildCharge,
		ExtraSingleBedCharge: rt.ExtraSingleBedCharge,
		ExtraDoubleBedCharge: rt.ExtraDoubleBedCharge,
	}
}

// ValidatePricingMode kiểm tra chế độ giá hợp lệ
func (rt *RoomType) ValidatePricingMode() error {
	mode := pricing.PricingMode(rt.PricingMode)
	if mode != pricing.ModeTraditional && mode != pricing.ModeShift {
		return fmt.Errorf("pricingMode không hợp lệ: %s", rt.PricingMode)
	}
	return nil
}
