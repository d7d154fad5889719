package pricing

import (
	"math"
	"time"
)

// Calculate tính toàn bộ bảng giá cho một lần lưu trú: tiền phòng,
// phụ thu người/giường, giảm giá, thuế và tiền cọc đề xuất. Hàm thuần,
// không I/O, không giữ state; dữ liệu xấu trả về số 0 thay vì panic.
func Calculate(stay StayRequest, room RoomTypePricing, adj ChargeAdjustments) CalculationResult {
	nights := countNights(stay.CheckInDate, stay.CheckOutDate)
	if nights <= 0 {
		// Ngày trả phòng phải sau ngày nhận phòng, caller chịu trách
		// nhiệm validate; ở đây chỉ chặn số âm lọt vào bảng giá.
		return CalculationResult{}
	}

	charge := resolveRoomCharge(stay, room, nights)
	sur := resolveSurcharges(stay, room, unitsForSurcharge(stay, room, nights))

	subtotal := charge.roomCharge + sur.extraPersonTotal + sur.extraBedTotal + num(adj.ServiceCharges)
	discountAmount, taxAmount, total := applyDiscountAndTax(subtotal, adj)

	deposit := total * DepositRate
	if math.IsNaN(deposit) || math.IsInf(deposit, 0) {
		deposit = 0
	}

	return CalculationResult{
		Nights:           nights,
		WeekdayNights:    charge.weekdayNights,
		WeekendNights:    charge.weekendNights,
		RoomCharge:       charge.roomCharge,
		ExtraPersonTotal: sur.extraPersonTotal,
		ExtraBedTotal:    sur.extraBedTotal,
		ExtraSingleBeds:  sur.extraSingleBeds,
		ExtraDoubleBeds:  sur.extraDoubleBeds,
		Subtotal:         subtotal,
		DiscountAmount:   discountAmount,
		TaxAmount:        taxAmount,
		Total:            total,
		DepositRequired:  deposit,
	}
}

type roomCharge struct {
	roomCharge    float64
	weekdayNights int
	weekendNights int
}

type surcharges struct {
	extraPersonTotal float64
	extraBedTotal    float64
	extraSingleBeds  int
	extraDoubleBeds  int
}

// resolveRoomCharge tính tiền phòng. Loại phòng theo ca với shift được
// chọn tính giá trọn gói một lần, không nhân theo đêm và không phân
// biệt cuối tuần. Còn lại tính theo từng đêm trong [checkIn, checkOut).
func resolveRoomCharge(stay StayRequest, room RoomTypePricing, nights int) roomCharge {
	if room.PricingMode == ModeShift && stay.ShiftType.IsShift() {
		return roomCharge{roomCharge: shiftCharge(stay, room)}
	}

	var out roomCharge
	checkIn := dateOnly(stay.CheckInDate)
	for i := 0; i < nights; i++ {
		night := checkIn.AddDate(0, 0, i)
		wd := night.Weekday()
		if (wd == time.Friday || wd == time.Saturday) && room.WeekendPrice != nil {
			out.roomCharge += num(*room.WeekendPrice)
			out.weekendNights++
			continue
		}
		if room.BasePrice != nil {
			out.roomCharge += num(*room.BasePrice)
		} else {
			out.roomCharge += num(stay.ManualRate)
		}
		out.weekdayNights++
	}
	return out
}

// shiftCharge trả về giá trọn gói theo ca. Với full_day chuỗi fallback
// phải đúng thứ tự: fullDayPrice -> dayShift + nightShift -> basePrice
// -> giá nhập tay -> 0.
func shiftCharge(stay StayRequest, room RoomTypePricing) float64 {
	switch stay.ShiftType {
	case ShiftDay:
		if room.DayShiftPrice != nil {
			return num(*room.DayShiftPrice)
		}
		return 0
	case ShiftNight:
		if room.NightShiftPrice != nil {
			return num(*room.NightShiftPrice)
		}
		return 0
	case ShiftFullDay:
		if room.FullDayPrice != nil {
			return num(*room.FullDayPrice)
		}
		if room.DayShiftPrice != nil || room.NightShiftPrice != nil {
			var sum float64
			if room.DayShiftPrice != nil {
				sum += num(*room.DayShiftPrice)
			}
			if room.NightShiftPrice != nil {
				sum += num(*room.NightShiftPrice)
			}
			return sum
		}
		if room.BasePrice != nil {
			return num(*room.BasePrice)
		}
		return num(stay.ManualRate)
	}
	return 0
}

// unitsForSurcharge là số "đơn vị" để nhân phụ thu: full_day tính 2 ca,
// ca ngày/đêm tính 1, còn lại tính theo số đêm.
func unitsForSurcharge(stay StayRequest, room RoomTypePricing, nights int) int {
	if room.PricingMode == ModeShift && stay.ShiftType.IsShift() {
		if stay.ShiftType == ShiftFullDay {
			return 2
		}
		return 1
	}
	return nights
}

// resolveSurcharges tính phụ thu người vượt sức chứa chuẩn và tiền
// giường kê thêm. Khách vượt được xếp giường đôi trước, lẻ một người
// thì kê thêm giường đơn. Không chặn vượt sức chứa tối đa ở đây, việc
// đó thuộc về validator.
func resolveSurcharges(stay StayRequest, room RoomTypePricing, units int) surcharges {
	extraAdults := stay.Adults - room.StandardAdults
	if extraAdults < 0 {
		extraAdults = 0
	}
	extraChildren := stay.Children - room.StandardChildren
	if extraChildren < 0 {
		extraChildren = 0
	}
	if units < 1 {
		units = 1
	}

	totalExtra := extraAdults + extraChildren
	doubleBeds := totalExtra / 2
	singleBeds := totalExtra % 2

	personTotal := (float64(extraAdults)*num(room.ExtraAdultCharge) +
		float64(extraChildren)*num(room.ExtraChildCharge)) * float64(units)
	bedTotal := (float64(doubleBeds)*num(room.ExtraDoubleBedCharge) +
		float64(singleBeds)*num(room.ExtraSingleBedCharge)) * float64(units)

	return surcharges{
		extraPersonTotal: personTotal,
		extraBedTotal:    bedTotal,
		extraSingleBeds:  singleBeds,
		extraDoubleBeds:  doubleBeds,
	}
}

// applyDiscountAndTax áp một khoản giảm giá rồi tính thuế trên phần còn
// lại. Giảm theo số tiền cố ý không bị chặn trần theo subtotal (cho phép
// comp tay lớn hơn tiền phòng), chỉ phần tính thuế bị chặn sàn 0.
func applyDiscountAndTax(subtotal float64, adj ChargeAdjustments) (discountAmount, taxAmount, total float64) {
	if adj.DiscountType == DiscountPercentage {
		discountAmount = subtotal * num(adj.DiscountValue) / 100
	} else {
		discountAmount = num(adj.DiscountValue)
	}

	taxable := subtotal - discountAmount
	if taxable < 0 {
		taxable = 0
	}
	taxAmount = taxable * num(adj.TaxPercentage) / 100
	total = taxable + taxAmount
	return discountAmount, taxAmount, total
}

// countNights đếm số đêm giữa hai ngày, bỏ phần giờ phút
func countNights(checkIn, checkOut time.Time) int {
	in := dateOnly(checkIn)
	out := dateOnly(checkOut)
	return int(out.Sub(in).Hours() / 24)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// num chặn NaN/Inf từ input về 0 để không lan vào bảng giá
func num(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
