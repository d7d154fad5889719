package validator

import (
	"fmt"
	"regexp"
	"time"

	"pms/errors"
	"pms/models"
	"pms/pricing"
)

// DateLayout là định dạng ngày dùng chung cho request và model
const DateLayout = "02/01/2006"

// ValidateBookingDates parse và kiểm tra cặp ngày nhận/trả phòng.
// Đặt theo ca cho phép cùng ngày, đặt theo đêm thì check-out phải sau
// check-in.
func ValidateBookingDates(checkInDate, checkOutDate string, shiftType pricing.ShiftType) (time.Time, time.Time, error) {
	checkIn, err := time.Parse(DateLayout, checkInDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDates, "Ngày nhận phòng không hợp lệ, định dạng dd/mm/yyyy", err)
	}

	checkOut, err := time.Parse(DateLayout, checkOutDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDates, "Ngày trả phòng không hợp lệ, định dạng dd/mm/yyyy", err)
	}

	if checkOut.Before(checkIn) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDates, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	if !shiftType.IsShift() && !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDates, "Đặt theo đêm cần ít nhất một đêm", nil)
	}

	// Đặt theo ca dùng phòng trong ngày: chuẩn hóa thành khoảng một
	// ngày để tính giá và giữ phòng cùng thấy một [in, out)
	if shiftType.IsShift() && !checkOut.After(checkIn) {
		checkOut = checkIn.AddDate(0, 0, 1)
	}

	return checkIn, checkOut, nil
}

// ValidateShiftType kiểm tra giá trị shift type gửi lên. Chuỗi rỗng coi
// như đặt theo đêm.
func ValidateShiftType(shiftType string) (pricing.ShiftType, error) {
	if shiftType == "" {
		return pricing.ShiftTraditional, nil
	}

	st := pricing.ShiftType(shiftType)
	if !st.Valid() {
		return "", errors.NewAppError(errors.ErrCodeInvalidShift, "Loại ca không hợp lệ: "+shiftType, nil)
	}
	return st, nil
}

// OccupancyWarnings so số khách với sức chứa của loại phòng. Vượt sức
// chứa chỉ là cảnh báo cho lễ tân, không chặn việc đặt.
func OccupancyWarnings(adults, children int, room pricing.RoomTypePricing) []string {
	var warnings []string

	if room.MaxAdults > 0 && adults > room.MaxAdults {
		warnings = append(warnings, fmt.Sprintf("Số người lớn (%d) vượt mức tối đa %d của loại phòng", adults, room.MaxAdults))
	}
	if room.MaxChildren > 0 && children > room.MaxChildren {
		warnings = append(warnings, fmt.Sprintf("Số trẻ em (%d) vượt mức tối đa %d của loại phòng", children, room.MaxChildren))
	}
	if room.MaxOccupancy > 0 && adults+children > room.MaxOccupancy {
		warnings = append(warnings, fmt.Sprintf("Tổng số khách (%d) vượt sức chứa %d của loại phòng", adults+children, room.MaxOccupancy))
	}

	return warnings
}

// ValidateRoomType validate cấu hình loại phòng trước khi lưu
func ValidateRoomType(roomType *models.RoomType) error {
	if roomType.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên loại phòng không được để trống", nil)
	}

	if err := roomType.ValidatePricingMode(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}

	prices := []struct {
		name  string
		value *float64
	}{
		{"giá cơ bản", roomType.BasePrice},
		{"giá cuối tuần", roomType.WeekendPrice},
		{"giá ca ngày", roomType.DayShiftPrice},
		{"giá ca đêm", roomType.NightShiftPrice},
		{"giá nguyên ngày", roomType.FullDayPrice},
	}
	for _, p := range prices {
		if p.value != nil && *p.value < 0 {
			return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá không được âm: "+p.name, nil)
		}
	}

	if roomType.StandardAdults < 0 || roomType.StandardChildren < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Sức chứa tiêu chuẩn không được âm", nil)
	}
	if roomType.MaxAdults < roomType.StandardAdults {
		return errors.NewAppError(errors.ErrCodeValidation, "Số người lớn tối đa phải lớn hơn hoặc bằng mức tiêu chuẩn", nil)
	}
	if roomType.ExtraAdultCharge < 0 || roomType.ExtraChildCharge < 0 ||
		roomType.ExtraSingleBedCharge < 0 || roomType.ExtraDoubleBedCharge < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Phụ thu không được âm", nil)
	}

	return nil
}

// ValidateCustomer validate hồ sơ khách
func ValidateCustomer(customer *models.Customer) error {
	if customer.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
	}
	if customer.Email != "" && !isValidEmail(customer.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	if customer.PhoneNumber != "" && !isValidPhone(customer.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}
	return nil
}

// ValidateUser validate tài khoản nhân viên
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}
	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}
	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}
	if user.PhoneNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại không được để trống", nil)
	}
	if !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}
	if user.Role < 1 || user.Role > 3 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}
	return nil
}

// ValidateAmount validate số tiền thanh toán
func ValidateAmount(amount float64) error {
	if amount <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền phải lớn hơn 0", nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^0\d{9,10}$`)
	return phoneRegex.MatchString(phone)
}
