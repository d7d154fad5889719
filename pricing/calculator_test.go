package pricing

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// 2025-06-01 là Chủ nhật
var sunday = date(2025, time.June, 1)

func traditionalRoom() RoomTypePricing {
	return RoomTypePricing{
		PricingMode:          ModeTraditional,
		BasePrice:            fp(1_000_000),
		StandardAdults:       2,
		StandardChildren:     1,
		MaxAdults:            4,
		MaxChildren:          2,
		MaxOccupancy:         5,
		ExtraAdultCharge:     200_000,
		ExtraChildCharge:     100_000,
		ExtraSingleBedCharge: 150_000,
		ExtraDoubleBedCharge: 250_000,
	}
}

func TestCalculateTraditionalBase(t *testing.T) {
	// 3 đêm giá cơ bản, đúng sức chứa chuẩn, thuế 10%
	stay := StayRequest{
		CheckInDate:  sunday,
		CheckOutDate: sunday.AddDate(0, 0, 3),
		Adults:       2,
		Children:     0,
		ShiftType:    ShiftTraditional,
	}
	got := Calculate(stay, traditionalRoom(), ChargeAdjustments{TaxPercentage: 10})

	require.Equal(t, 3, got.Nights)
	assert.Equal(t, 3, got.WeekdayNights)
	assert.Equal(t, 0, got.WeekendNights)
	assert.InDelta(t, 3_000_000, got.RoomCharge, 0.001)
	assert.InDelta(t, 3_000_000, got.Subtotal, 0.001)
	assert.InDelta(t, 300_000, got.TaxAmount, 0.001)
	assert.InDelta(t, 3_300_000, got.Total, 0.001)
	assert.InDelta(t, 990_000, got.DepositRequired, 0.001)
}

func TestCalculateWeekendPricing(t *testing.T) {
	room := traditionalRoom()
	room.WeekendPrice = fp(1_500_000)

	// Thứ sáu 06/06/2025, ở 3 đêm: T6 + T7 cuối tuần, CN thường
	friday := date(2025, time.June, 6)
	stay := StayRequest{
		CheckInDate:  friday,
		CheckOutDate: friday.AddDate(0, 0, 3),
		Adults:       2,
		ShiftType:    ShiftTraditional,
	}
	got := Calculate(stay, room, ChargeAdjustments{})

	assert.Equal(t, 2, got.WeekendNights)
	assert.Equal(t, 1, got.WeekdayNights)
	assert.InDelta(t, 4_000_000, got.RoomCharge, 0.001)
}

func TestWeekendClassification(t *testing.T) {
	// 7 đêm bắt đầu Chủ nhật: đúng 2 đêm cuối tuần khi có giá cuối
	// tuần, 0 đêm khi không cấu hình
	stay := StayRequest{
		CheckInDate:  sunday,
		CheckOutDate: sunday.AddDate(0, 0, 7),
		Adults:       2,
		ShiftType:    ShiftTraditional,
	}

	room := traditionalRoom()
	room.WeekendPrice = fp(1_200_000)
	got := Calculate(stay, room, ChargeAdjustments{})
	assert.Equal(t, 2, got.WeekendNights)
	assert.Equal(t, 5, got.WeekdayNights)

	room.WeekendPrice = nil
	got = Calculate(stay, room, ChargeAdjustments{})
	assert.Equal(t, 0, got.WeekendNights)
	assert.Equal(t, 7, got.WeekdayNights)
	assert.InDelta(t, 7_000_000, got.RoomCharge, 0.001)
}

func TestZeroDurationSafety(t *testing.T) {
	room := traditionalRoom()
	shiftRoom := RoomTypePricing{PricingMode: ModeShift, DayShiftPrice: fp(500_000)}

	cases := []struct {
		name string
		stay StayRequest
		room RoomTypePricing
	}{
		{"cùng ngày", StayRequest{CheckInDate: sunday, CheckOutDate: sunday, Adults: 2}, room},
		{"trả trước nhận", StayRequest{CheckInDate: sunday, CheckOutDate: sunday.AddDate(0, 0, -2), Adults: 2}, room},
		{"cùng ngày theo ca", StayRequest{CheckInDate: sunday, CheckOutDate: sunday, Adults: 2, ShiftType: ShiftDay}, shiftRoom},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Calculate(tc.stay, tc.room, ChargeAdjustments{ServiceCharges: 100_000, TaxPercentage: 10})
			assert.Equal(t, CalculationResult{}, got)
		})
	}
}

func TestShiftFlatPricing(t *testing.T) {
	room := RoomTypePricing{
		PricingMode:     ModeShift,
		DayShiftPrice:   fp(500_000),
		NightShiftPrice: fp(600_000),
		StandardAdults:  2,
	}

	// Giá ca không phụ thuộc độ dài khoảng ngày
	for _, span := range []int{1, 3, 10} {
		stay := StayRequest{
			CheckInDate:  sunday,
			CheckOutDate: sunday.AddDate(0, 0, span),
			Adults:       2,
			ShiftType:    ShiftDay,
		}
		got := Calculate(stay, room, ChargeAdjustments{})
		assert.InDelta(t, 500_000, got.RoomCharge, 0.001, "span %d", span)
		assert.Equal(t, 0, got.WeekdayNights)
		assert.Equal(t, 0, got.WeekendNights)
	}

	stay := StayRequest{CheckInDate: sunday, CheckOutDate: sunday.AddDate(0, 0, 1), Adults: 2, ShiftType: ShiftNight}
	assert.InDelta(t, 600_000, Calculate(stay, room, ChargeAdjustments{}).RoomCharge, 0.001)
}

func TestFullDayFallbackChain(t *testing.T) {
	stay := StayRequest{
		CheckInDate:  sunday,
		CheckOutDate: sunday.AddDate(0, 0, 1),
		Adults:       2,
		ShiftType:    ShiftFullDay,
		ManualRate:   350_000,
	}

	cases := []struct {
		name string
		room RoomTypePricing
		want float64
	}{
		{"có giá full day", RoomTypePricing{PricingMode: ModeShift, FullDayPrice: fp(900_000), DayShiftPrice: fp(500_000), NightShiftPrice: fp(600_000), BasePrice: fp(1_000_000)}, 900_000},
		{"cộng ca ngày và đêm", RoomTypePricing{PricingMode: ModeShift, DayShiftPrice: fp(500_000), NightShiftPrice: fp(600_000), BasePrice: fp(1_000_000)}, 1_100_000},
		{"chỉ có một ca", RoomTypePricing{PricingMode: ModeShift, DayShiftPrice: fp(500_000), BasePrice: fp(1_000_000)}, 500_000},
		{"rơi về giá cơ bản", RoomTypePricing{PricingMode: ModeShift, BasePrice: fp(1_000_000)}, 1_000_000},
		{"rơi về giá nhập tay", RoomTypePricing{PricingMode: ModeShift}, 350_000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Calculate(stay, tc.room, ChargeAdjustments{})
			assert.InDelta(t, tc.want, got.RoomCharge, 0.001)
		})
	}

	// Không có cả giá nhập tay thì về 0
	stay.ManualRate = 0
	got := Calculate(stay, RoomTypePricing{PricingMode: ModeShift}, ChargeAdjustments{})
	assert.Zero(t, got.RoomCharge)
}

func TestShiftRoomWithoutShiftSelection(t *testing.T) {
	// Loại phòng theo ca nhưng khách đặt kiểu truyền thống: tính theo đêm
	room := RoomTypePricing{
		PricingMode:   ModeShift,
		BasePrice:     fp(800_000),
		DayShiftPrice: fp(500_000),
	}
	stay := StayRequest{
		CheckInDate:  sunday,
		CheckOutDate: sunday.AddDate(0, 0, 2),
		Adults:       1,
		ShiftType:    ShiftTraditional,
	}
	got := Calculate(stay, room, ChargeAdjustments{})
	assert.InDelta(t, 1_600_000, got.RoomCharge, 0.001)
	assert.Equal(t, 2, got.WeekdayNights)
}

func TestExtraPersonSurcharge(t *testing.T) {
	room := traditionalRoom()

	// 4 người lớn trên chuẩn 2, 2 đêm: 2 x 200k x 2
	stay := StayRequest{
		CheckInDate:  sunday,
		CheckOutDate: sunday.AddDate(0, 0, 2),
		Adults:       4,
		ShiftType:    ShiftTraditional,
	}
	got := Calculate(stay, room, ChargeAdjustments{})
	assert.InDelta(t, 800_000, got.ExtraPersonTotal, 0.001)

	// 2 khách vượt: 1 giường đôi, 0 giường đơn
	assert.Equal(t, 1, got.ExtraDoubleBeds)
	assert.Equal(t, 0, got.ExtraSingleBeds)
	assert.InDelta(t, 500_000, got.ExtraBedTotal, 0.001)
}

func TestOddOverageBedSplit(t *testing.T) {
	room := traditionalRoom()
	stay := StayRequest{
		CheckInDate:  sunday,
		CheckOutDate: sunday.AddDate(0, 0, 1),
		Adults:       5, // vượt 3
		ShiftType:    ShiftTraditional,
	}
	got := Calculate(stay, room, ChargeAdjustments{})
	assert.Equal(t, 1, got.ExtraDoubleBeds)
	assert.Equal(t, 1, got.ExtraSingleBeds)
	assert.InDelta(t, 400_000, got.ExtraBedTotal, 0.001)
}

func TestSurchargeUnitsInShiftMode(t *testing.T) {
	room := RoomTypePricing{
		PricingMode:      ModeShift,
		DayShiftPrice:    fp(500_000),
		NightShiftPrice:  fp(600_000),
		FullDayPrice:     fp(1_000_000),
		StandardAdults:   2,
		ExtraAdultCharge: 100_000,
	}
	stay := StayRequest{
		CheckInDate:  sunday,
		CheckOutDate: sunday.AddDate(0, 0, 5),
		Adults:       3,
	}

	// full_day tính 2 đơn vị, ca lẻ tính 1, bất kể số đêm
	stay.ShiftType = ShiftFullDay
	assert.InDelta(t, 200_000, Calculate(stay, room, ChargeAdjustments{}).ExtraPersonTotal, 0.001)

	stay.ShiftType = ShiftDay
	assert.InDelta(t, 100_000, Calculate(stay, room, ChargeAdjustments{}).ExtraPersonTotal, 0.001)
}

func TestDiscountAndTax(t *testing.T) {
	room := traditionalRoom()
	stay := StayRequest{
		CheckInDate:  sunday,
		CheckOutDate: sunday.AddDate(0, 0, 3),
		Adults:       2,
		ShiftType:    ShiftTraditional,
	}

	t.Run("giảm theo phần trăm", func(t *testing.T) {
		got := Calculate(stay, room, ChargeAdjustments{
			DiscountType:  DiscountPercentage,
			DiscountValue: 10,
			TaxPercentage: 10,
		})
		assert.InDelta(t, 300_000, got.DiscountAmount, 0.001)
		assert.InDelta(t, 270_000, got.TaxAmount, 0.001)
		assert.InDelta(t, 2_970_000, got.Total, 0.001)
	})

	t.Run("giảm số tiền vượt subtotal không bị chặn", func(t *testing.T) {
		got := Calculate(stay, room, ChargeAdjustments{
			DiscountType:  DiscountAmount,
			DiscountValue: 5_000_000,
			TaxPercentage: 10,
		})
		// DiscountAmount giữ nguyên, chỉ phần chịu thuế chặn sàn 0
		assert.InDelta(t, 5_000_000, got.DiscountAmount, 0.001)
		assert.Zero(t, got.TaxAmount)
		assert.Zero(t, got.Total)
		assert.Zero(t, got.DepositRequired)
	})
}

func TestServiceCharges(t *testing.T) {
	room := traditionalRoom()
	stay := StayRequest{
		CheckInDate:  sunday,
		CheckOutDate: sunday.AddDate(0, 0, 1),
		Adults:       2,
		ShiftType:    ShiftTraditional,
	}
	got := Calculate(stay, room, ChargeAdjustments{ServiceCharges: 250_000})
	assert.InDelta(t, 1_250_000, got.Subtotal, 0.001)
}

func TestNonFiniteInputsCoerced(t *testing.T) {
	room := traditionalRoom()
	room.BasePrice = fp(math.NaN())
	room.ExtraAdultCharge = math.Inf(1)

	stay := StayRequest{
		CheckInDate:  sunday,
		CheckOutDate: sunday.AddDate(0, 0, 2),
		Adults:       3,
		ShiftType:    ShiftTraditional,
	}
	got := Calculate(stay, room, ChargeAdjustments{
		ServiceCharges: math.Inf(1),
		DiscountValue:  math.NaN(),
		TaxPercentage:  10,
	})

	assert.False(t, math.IsNaN(got.Total) || math.IsInf(got.Total, 0))
	assert.False(t, math.IsNaN(got.DepositRequired) || math.IsInf(got.DepositRequired, 0))
	assert.Zero(t, got.RoomCharge)
	assert.Zero(t, got.ExtraPersonTotal)
}

func TestDiscountMonotonicity(t *testing.T) {
	room := traditionalRoom()
	stay := StayRequest{
		CheckInDate:  sunday,
		CheckOutDate: sunday.AddDate(0, 0, 3),
		Adults:       3,
		ShiftType:    ShiftTraditional,
	}

	for _, dt := range []DiscountType{DiscountPercentage, DiscountAmount} {
		prev := math.Inf(1)
		for _, v := range []float64{0, 5, 10, 25, 50, 100, 5_000_000} {
			got := Calculate(stay, room, ChargeAdjustments{
				DiscountType:  dt,
				DiscountValue: v,
				TaxPercentage: 8,
			})
			assert.LessOrEqual(t, got.Total, prev, "type=%s value=%v", dt, v)
			prev = got.Total
		}
	}
}

func TestRandomizedInvariants(t *testing.T) {
	// Các bất biến phải giữ trên input ngẫu nhiên: không âm, cọc = 30%
	// tổng, giường đôi/đơn cộng lại đúng số khách vượt
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		room := RoomTypePricing{
			PricingMode:          ModeTraditional,
			BasePrice:            fp(float64(rng.Intn(3_000_000))),
			StandardAdults:       rng.Intn(4),
			StandardChildren:     rng.Intn(3),
			ExtraAdultCharge:     float64(rng.Intn(500_000)),
			ExtraChildCharge:     float64(rng.Intn(300_000)),
			ExtraSingleBedCharge: float64(rng.Intn(200_000)),
			ExtraDoubleBedCharge: float64(rng.Intn(400_000)),
		}
		if rng.Intn(2) == 0 {
			room.WeekendPrice = fp(float64(rng.Intn(4_000_000)))
		}
		if rng.Intn(3) == 0 {
			room.PricingMode = ModeShift
			room.DayShiftPrice = fp(float64(rng.Intn(1_000_000)))
			room.NightShiftPrice = fp(float64(rng.Intn(1_000_000)))
		}

		shift := ShiftTraditional
		if room.PricingMode == ModeShift && rng.Intn(2) == 0 {
			shift = []ShiftType{ShiftDay, ShiftNight, ShiftFullDay}[rng.Intn(3)]
		}
		stay := StayRequest{
			CheckInDate:  sunday.AddDate(0, 0, rng.Intn(365)),
			Adults:       1 + rng.Intn(6),
			Children:     rng.Intn(4),
			ShiftType:    shift,
		}
		stay.CheckOutDate = stay.CheckInDate.AddDate(0, 0, 1+rng.Intn(14))

		adj := ChargeAdjustments{
			ServiceCharges: float64(rng.Intn(1_000_000)),
			DiscountType:   []DiscountType{DiscountPercentage, DiscountAmount}[rng.Intn(2)],
			DiscountValue:  float64(rng.Intn(100)),
			TaxPercentage:  float64(rng.Intn(100)),
		}

		got := Calculate(stay, room, adj)

		assert.GreaterOrEqual(t, got.RoomCharge, 0.0)
		assert.GreaterOrEqual(t, got.ExtraPersonTotal, 0.0)
		assert.GreaterOrEqual(t, got.ExtraBedTotal, 0.0)
		assert.GreaterOrEqual(t, got.Subtotal, 0.0)
		assert.GreaterOrEqual(t, got.TaxAmount, 0.0)
		assert.GreaterOrEqual(t, got.Total, 0.0)
		assert.GreaterOrEqual(t, got.DepositRequired, 0.0)
		assert.InDelta(t, got.Total*DepositRate, got.DepositRequired, 0.0001)

		extraAdults := stay.Adults - room.StandardAdults
		if extraAdults < 0 {
			extraAdults = 0
		}
		extraChildren := stay.Children - room.StandardChildren
		if extraChildren < 0 {
			extraChildren = 0
		}
		assert.Equal(t, extraAdults+extraChildren, got.ExtraDoubleBeds*2+got.ExtraSingleBeds)
		assert.Contains(t, []int{0, 1}, got.ExtraSingleBeds)
	}
}
