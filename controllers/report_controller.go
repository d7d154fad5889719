package controllers

import (
	"log"
	"time"

	"pms/config"
	"pms/constants"
	"pms/dto"
	"pms/models"
	"pms/response"
	"pms/validator"

	"github.com/gin-gonic/gin"
)

// GetRevenue báo cáo doanh thu theo khoảng ngày, gộp theo ngày tạo
// hóa đơn
func GetRevenue(c *gin.Context) {
	fromStr := c.DefaultQuery("fromDate", "")
	toStr := c.DefaultQuery("toDate", "")
	if fromStr == "" || toStr == "" {
		response.BadRequest(c, "fromDate và toDate là bắt buộc")
		return
	}

	fromDate, err := time.Parse(validator.DateLayout, fromStr)
	if err != nil {
		response.BadRequest(c, "fromDate không hợp lệ, định dạng dd/mm/yyyy")
		return
	}
	toDate, err := time.Parse(validator.DateLayout, toStr)
	if err != nil {
		response.BadRequest(c, "toDate không hợp lệ, định dạng dd/mm/yyyy")
		return
	}
	if toDate.Before(fromDate) {
		response.BadRequest(c, "toDate phải sau fromDate")
		return
	}

	var invoices []models.Invoice
	err = config.DB.
		Where("created_at >= ? AND created_at < ?", fromDate, toDate.AddDate(0, 0, 1)).
		Find(&invoices).Error
	if err != nil {
		log.Printf("Lỗi lấy hóa đơn cho báo cáo: %v", err)
		response.ServerError(c)
		return
	}

	byDay := make(map[string]*dto.RevenueByDay)
	var totalRevenue, totalPaid float64
	for _, invoice := range invoices {
		day := invoice.CreatedAt.Format(validator.DateLayout)
		entry, ok := byDay[day]
		if !ok {
			entry = &dto.RevenueByDay{Date: day}
			byDay[day] = entry
		}
		entry.Revenue += invoice.TotalAmount
		entry.Invoices++
		totalRevenue += invoice.TotalAmount
		totalPaid += invoice.PaidAmount
	}

	// Trả đủ các ngày trong khoảng để vẽ biểu đồ không bị hổng
	days := make([]dto.RevenueByDay, 0)
	for day := fromDate; !day.After(toDate); day = day.AddDate(0, 0, 1) {
		key := day.Format(validator.DateLayout)
		if entry, ok := byDay[key]; ok {
			days = append(days, *entry)
		} else {
			days = append(days, dto.RevenueByDay{Date: key})
		}
	}

	response.Success(c, dto.RevenueSummaryResponse{
		FromDate:     fromStr,
		ToDate:       toStr,
		TotalRevenue: totalRevenue,
		TotalPaid:    totalPaid,
		TotalUnpaid:  totalRevenue - totalPaid,
		Days:         days,
	})
}

// startOfDay trả về 0h của ngày đó theo múi giờ của t. Không dùng
// Truncate vì Truncate cắt theo UTC, lệch 7 tiếng với giờ Việt Nam.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// GetToday trả tình hình trong ngày cho dashboard lễ tân: khách đến,
// khách đi, số booking chờ và doanh thu thu được hôm nay
func GetToday(c *gin.Context) {
	today := time.Now().Format(validator.DateLayout)

	var arrivals []models.Booking
	err := config.DB.Preload("Room").Preload("Customer").
		Where("check_in_date = ? AND status IN ?", today,
			[]int{models.BookingStatusPending, models.BookingStatusConfirmed}).
		Find(&arrivals).Error
	if err != nil {
		log.Printf("Lỗi lấy danh sách khách đến: %v", err)
		response.ServerError(c)
		return
	}

	var departures []models.Booking
	err = config.DB.Preload("Room").Preload("Customer").
		Where("check_out_date = ? AND status = ?", today, models.BookingStatusCheckedIn).
		Find(&departures).Error
	if err != nil {
		log.Printf("Lỗi lấy danh sách khách đi: %v", err)
		response.ServerError(c)
		return
	}

	var pendingCount int64
	config.DB.Model(&models.Booking{}).
		Where("status = ?", models.BookingStatusPending).
		Count(&pendingCount)

	var occupiedCount int64
	config.DB.Model(&models.Room{}).
		Where("status = ?", constants.RoomStatusOccupied).
		Count(&occupiedCount)

	todayStart := startOfDay(time.Now())
	var revenue float64
	config.DB.Model(&models.Payment{}).
		Where("status = ? AND created_at >= ?", constants.PaymentStatusSuccess, todayStart).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&revenue)

	arrivalResponses := make([]dto.BookingResponse, 0, len(arrivals))
	for _, b := range arrivals {
		arrivalResponses = append(arrivalResponses, toBookingResponse(b, b.Room, ""))
	}
	departureResponses := make([]dto.BookingResponse, 0, len(departures))
	for _, b := range departures {
		departureResponses = append(departureResponses, toBookingResponse(b, b.Room, ""))
	}

	response.Success(c, dto.TodayReportResponse{
		Date:          today,
		Arrivals:      arrivalResponses,
		Departures:    departureResponses,
		PendingCount:  int(pendingCount),
		OccupiedCount: int(occupiedCount),
		Revenue:       revenue,
	})
}
