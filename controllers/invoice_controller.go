package controllers

import (
	"log"
	"strconv"

	"pms/config"
	"pms/dto"
	"pms/models"
	"pms/response"
	"pms/validator"

	"github.com/gin-gonic/gin"
)

func toInvoiceResponse(invoice models.Invoice) dto.InvoiceResponse {
	booking := invoice.Booking

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

	return dto.InvoiceResponse{
		ID:              invoice.ID,
		InvoiceCode:     invoice.InvoiceCode,
		BookingID:       invoice.BookingID,
		BookingCode:     booking.Code,
		Customer:        actor,
		TotalAmount:     invoice.TotalAmount,
		DepositRequired: invoice.DepositRequired,
		PaidAmount:      invoice.PaidAmount,
		RemainingAmount: invoice.RemainingAmount,
		Status:          invoice.Status,
		CreatedAt:       invoice.CreatedAt.Format(validator.DateLayout),
		UpdatedAt:       invoice.UpdatedAt.Format(validator.DateLayout),
	}
}

// GetInvoices trả danh sách hóa đơn có phân trang, lọc theo trạng
// thái thanh toán và mã hóa đơn
func GetInvoices(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := config.DB.Model(&models.Invoice{}).
		Preload("Booking").Preload("Booking.Customer")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if code := c.Query("code"); code != "" {
		query = query.Where("invoice_code = ?", code)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("Lỗi đếm hóa đơn: %v", err)
		response.ServerError(c)
		return
	}

	var invoices []models.Invoice
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&invoices).Error
	if err != nil {
		log.Printf("Lỗi lấy danh sách hóa đơn: %v", err)
		response.ServerError(c)
		return
	}

	responses := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, invoice := range invoices {
		responses = append(responses, toInvoiceResponse(invoice))
	}

	response.SuccessWithPagination(c, responses, page, limit, int(total))
}

// GetDetailInvoice trả chi tiết hóa đơn kèm các khoản đã thanh toán
func GetDetailInvoice(c *gin.Context) {
	id := c.Param("id")

	var invoice models.Invoice
	err := config.DB.Preload("Booking").Preload("Booking.Customer").Preload("Payments").
		First(&invoice, id).Error
	if err != nil {
		response.NotFound(c)
		return
	}

	resp := toInvoiceResponse(invoice)
	response.Success(c, gin.H{
		"invoice":  resp,
		"payments": invoice.Payments,
	})
}
