package controllers

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"pms/builders"
	"pms/commands"
	"pms/config"
	"pms/constants"
	"pms/dto"
	"pms/errors"
	"pms/models"
	"pms/pricing"
	"pms/response"
	"pms/services"
	"pms/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

var bookingCacheKey = "bookings:all"

// bookingPage là trang booking cache kèm tổng số bản ghi thật, không
// phải số phần tử của trang
type bookingPage struct {
	Items []dto.BookingResponse `json:"items"`
	Total int                   `json:"total"`
}

// WSMelody được routes gán khi khởi động để các controller broadcast
// event cho client PMS
var WSMelody *melody.Melody

func invalidateBookingCache() {
	if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, bookingCacheKey); err != nil {
		log.Printf("Lỗi khi xóa cache booking: %v", err)
	}
}

// buildStayRequest dựng input tính giá từ request đã validate
func buildStayRequest(checkIn, checkOut time.Time, shiftType pricing.ShiftType, shiftDateStr string, adults, children int, manualRate float64) (pricing.StayRequest, error) {
	stay := pricing.StayRequest{
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Adults:       adults,
		Children:     children,
		ShiftType:    shiftType,
		ManualRate:   manualRate,
	}

	if shiftDateStr != "" {
		shiftDate, err := time.Parse(validator.DateLayout, shiftDateStr)
		if err != nil {
			return pricing.StayRequest{}, fmt.Errorf("ngày ca không hợp lệ: %v", err)
		}
		stay.ShiftDate = &shiftDate
	}

	return stay, nil
}

// QuoteBooking tính giá cho một yêu cầu lưu trú, không ghi gì vào DB.
// Lễ tân gọi liên tục khi nhập liệu nên response phải gồm cả cảnh báo
// sức chứa thay vì trả lỗi.
func QuoteBooking(c *gin.Context) {
	var req dto.QuoteBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	shiftType, err := validator.ValidateShiftType(req.ShiftType)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	checkIn, checkOut, err := validator.ValidateBookingDates(req.CheckInDate, req.CheckOutDate, shiftType)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var roomType models.RoomType
	if err := config.DB.First(&roomType, req.RoomTypeID).Error; err != nil {
		response.NotFound(c)
		return
	}

	stay, err := buildStayRequest(checkIn, checkOut, shiftType, req.ShiftDate, req.Adults, req.Children, req.ManualRate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	adjustments := pricing.ChargeAdjustments{
		ServiceCharges: req.ServiceCharges,
		DiscountType:   pricing.DiscountType(req.DiscountType),
		DiscountValue:  req.DiscountValue,
		TaxPercentage:  req.TaxPercentage,
	}

	roomPricing := roomType.ToPricing()
	breakdown := pricing.Calculate(stay, roomPricing, adjustments)
	warnings := validator.OccupancyWarnings(req.Adults, req.Children, roomPricing)

	response.Success(c, dto.QuoteBookingResponse{
		RoomTypeID:   roomType.ID,
		RoomTypeName: roomType.Name,
		Breakdown:    breakdown,
		Warnings:     warnings,
	})
}

// CreateBooking tạo booking mới: kiểm tra phòng trống, chốt bảng giá
// tại thời điểm đặt, giữ phòng và mở hóa đơn trong một transaction
func CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	currentUserID, _ := c.Get("userID")
	createdBy, _ := currentUserID.(uint)

	shiftType, err := validator.ValidateShiftType(req.ShiftType)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	checkIn, checkOut, err := validator.ValidateBookingDates(req.CheckInDate, req.CheckOutDate, shiftType)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var room models.Room
	if err := config.DB.Preload("RoomType").First(&room, req.RoomID).Error; err != nil {
		response.NotFound(c)
		return
	}
	if room.Status == constants.RoomStatusMaintenance {
		response.Conflict(c, "Phòng đang bảo trì, không thể đặt")
		return
	}

	if req.CustomerID > 0 {
		var customer models.Customer
		if err := config.DB.First(&customer, req.CustomerID).Error; err != nil {
			response.BadRequest(c, "Không tìm thấy hồ sơ khách")
			return
		}
	}

	stay, err := buildStayRequest(checkIn, checkOut, shiftType, req.ShiftDate, req.Adults, req.Children, req.ManualRate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	adjustments := pricing.ChargeAdjustments{
		ServiceCharges: req.ServiceCharges,
		DiscountType:   pricing.DiscountType(req.DiscountType),
		DiscountValue:  req.DiscountValue,
		TaxPercentage:  req.TaxPercentage,
	}

	breakdown := pricing.Calculate(stay, room.RoomType.ToPricing(), adjustments)

	var shiftDate *string
	if req.ShiftDate != "" {
		shiftDate = &req.ShiftDate
	}

	booking := builders.NewBookingBuilder().
		WithCode(fmt.Sprintf("BK%d", time.Now().UnixNano()/1e6)).
		WithRoom(req.RoomID).
		WithCustomer(req.CustomerID).
		WithGuestInfo(req.GuestName, req.GuestPhone, req.GuestEmail).
		WithStay(req.CheckInDate, req.CheckOutDate, string(shiftType), shiftDate, req.Adults, req.Children).
		WithAdjustments(req.ManualRate, adjustments).
		WithBreakdown(breakdown).
		WithCreatedBy(createdBy).
		Build()

	hold := &models.RoomHold{
		RoomID:   req.RoomID,
		Status:   1,
		FromDate: checkIn,
		ToDate:   checkOut,
	}

	invoice := &models.Invoice{
		TotalAmount:     breakdown.Total,
		DepositRequired: breakdown.DepositRequired,
		PaidAmount:      0,
		RemainingAmount: breakdown.Total,
		Status:          constants.InvoiceStatusUnpaid,
	}

	// Kiểm tra trùng lịch nằm trong transaction, sau khi khóa dòng
	// phòng, để hai request đặt cùng lúc không lọt qua nhau
	if err := commands.NewCreateBookingCommand(booking, hold, invoice, config.DB).Execute(); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil && appErr.Code == errors.ErrCodeRoomUnavailable {
			response.Conflict(c, appErr.Message)
			return
		}
		log.Printf("Lỗi tạo booking: %v", err)
		response.ServerError(c)
		return
	}

	invalidateBookingCache()

	resp := toBookingResponse(*booking, room, invoice.InvoiceCode)
	resp.Breakdown = breakdown
	services.BroadcastEvent(WSMelody, services.EventBookingCreated, resp)

	response.Success(c, resp)
}

func toBookingResponse(booking models.Booking, room models.Room, invoiceCode string) dto.BookingResponse {
	actor := dto.ActorResponse{
		Name:        booking.GuestName,
		Email:       booking.GuestEmail,
		PhoneNumber: booking.GuestPhone,
	}
	if booking.Customer != nil {
		actor = dto.ActorResponse{
			Name:        booking.Customer.Name,
			Email:       booking.Customer.Email,
			PhoneNumber: booking.Customer.PhoneNumber,
		}
	}

	return dto.BookingResponse{
		ID:   booking.ID,
		Code: booking.Code,
		Room: dto.BookingRoomResponse{
			ID:         room.RoomId,
			RoomTypeID: room.RoomTypeID,
			RoomName:   room.RoomName,
			Floor:      room.Floor,
		},
		Customer:     actor,
		CheckInDate:  booking.CheckInDate,
		CheckOutDate: booking.CheckOutDate,
		ShiftType:    booking.ShiftType,
		ShiftDate:    booking.ShiftDate,
		Adults:       booking.Adults,
		Children:     booking.Children,
		Status:       booking.Status,
		CreatedAt:    booking.CreatedAt,
		UpdatedAt:    booking.UpdatedAt,
		Breakdown: pricing.CalculationResult{
			Nights:           booking.Nights,
			WeekdayNights:    booking.WeekdayNights,
			WeekendNights:    booking.WeekendNights,
			RoomCharge:       booking.RoomCharge,
			ExtraPersonTotal: booking.ExtraPersonTotal,
			ExtraBedTotal:    booking.ExtraBedTotal,
			ExtraSingleBeds:  booking.ExtraSingleBeds,
			ExtraDoubleBeds:  booking.ExtraDoubleBeds,
			Subtotal:         booking.Subtotal,
			DiscountAmount:   booking.DiscountAmount,
			TaxAmount:        booking.TaxAmount,
			Total:            booking.TotalPrice,
			DepositRequired:  booking.DepositRequired,
		},
		InvoiceCode: invoiceCode,
	}
}

// GetBookings trả danh sách booking có phân trang, lọc theo trạng thái
// và số điện thoại khách
func GetBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	statusStr := c.Query("status")
	phone := c.Query("phone")

	// Trang đầu không lọc là màn hình mở nhiều nhất, cache lại
	useCache := statusStr == "" && phone == "" && page == 1 && limit == 20
	if useCache {
		var cached bookingPage
		if err := services.GetFromRedis(config.Ctx, config.RedisClient, bookingCacheKey, &cached); err == nil && len(cached.Items) > 0 {
			response.SuccessWithPagination(c, cached.Items, page, limit, cached.Total)
			return
		}
	}

	query := config.DB.Model(&models.Booking{}).
		Preload("Room").Preload("Room.RoomType").Preload("Customer")

	if statusStr != "" {
		status, err := strconv.Atoi(statusStr)
		if err != nil {
			response.BadRequest(c, "Trạng thái không hợp lệ")
			return
		}
		query = query.Where("status = ?", status)
	}
	if phone != "" {
		query = query.Where("guest_phone LIKE ?", phone+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("Lỗi đếm booking: %v", err)
		response.ServerError(c)
		return
	}

	var bookings []models.Booking
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Lỗi lấy danh sách booking: %v", err)
		response.ServerError(c)
		return
	}

	// Map booking -> mã hóa đơn trong một query thay vì N+1
	bookingIDs := make([]uint, 0, len(bookings))
	for _, b := range bookings {
		bookingIDs = append(bookingIDs, b.ID)
	}
	invoiceCodes := make(map[uint]string)
	if len(bookingIDs) > 0 {
		var invoices []models.Invoice
		if err := config.DB.Where("booking_id IN ?", bookingIDs).Find(&invoices).Error; err == nil {
			for _, inv := range invoices {
				invoiceCodes[inv.BookingID] = inv.InvoiceCode
			}
		}
	}

	responses := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, toBookingResponse(b, b.Room, invoiceCodes[b.ID]))
	}

	if useCache {
		if err := services.SetToRedis(config.Ctx, config.RedisClient, bookingCacheKey, bookingPage{Items: responses, Total: int(total)}, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu cache booking: %v", err)
		}
	}

	response.SuccessWithPagination(c, responses, page, limit, int(total))
}

// GetBookingDetail trả chi tiết một booking
func GetBookingDetail(c *gin.Context) {
	id := c.Param("id")

	var booking models.Booking
	err := config.DB.Preload("Room").Preload("Room.RoomType").Preload("Customer").
		First(&booking, id).Error
	if err != nil {
		response.NotFound(c)
		return
	}

	var invoice models.Invoice
	invoiceCode := ""
	if err := config.DB.Where("booking_id = ?", booking.ID).First(&invoice).Error; err == nil {
		invoiceCode = invoice.InvoiceCode
	}

	response.Success(c, toBookingResponse(booking, booking.Room, invoiceCode))
}

// ChangeBookingStatus chuyển trạng thái booking. Hủy hoặc trả phòng
// thì nhả hold để phòng đặt lại được ngay.
func ChangeBookingStatus(c *gin.Context) {
	var req dto.BookingStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Room").First(&booking, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if booking.Status == models.BookingStatusCancelled || booking.Status == models.BookingStatusCheckedOut {
		response.Conflict(c, "Booking đã kết thúc, không thể đổi trạng thái")
		return
	}
	if req.Status < models.BookingStatusPending || req.Status > models.BookingStatusCancelled {
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}

	booking.Status = req.Status
	if err := commands.NewUpdateBookingCommand(&booking, config.DB).Execute(); err != nil {
		log.Printf("Lỗi cập nhật booking: %v", err)
		response.ServerError(c)
		return
	}

	switch req.Status {
	case models.BookingStatusCheckedIn:
		config.DB.Model(&models.Room{}).Where("room_id = ?", booking.RoomID).
			Update("status", constants.RoomStatusOccupied)
	case models.BookingStatusCheckedOut, models.BookingStatusCancelled:
		if err := commands.NewReleaseHoldsCommand(booking.ID, config.DB).Execute(); err != nil {
			log.Printf("Lỗi nhả hold phòng: %v", err)
		}
		config.DB.Model(&models.Room{}).Where("room_id = ?", booking.RoomID).
			Update("status", constants.RoomStatusAvailable)
	}

	invalidateBookingCache()
	services.BroadcastEvent(WSMelody, services.EventBookingUpdated, gin.H{
		"bookingId": booking.ID,
		"code":      booking.Code,
		"status":    booking.Status,
	})

	response.Success(c, toBookingResponse(booking, booking.Room, ""))
}
