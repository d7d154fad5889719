package controllers

import (
	"log"
	"time"

	"pms/config"
	"pms/constants"
	"pms/dto"
	"pms/errors"
	"pms/models"
	"pms/response"
	"pms/services"
	"pms/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreatePayment ghi nhận một khoản thanh toán lễ tân nhập tay (tiền
// mặt hoặc chuyển khoản đã tự xác nhận)
func CreatePayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateAmount(req.Amount); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.Method < models.PaymentMethodCash || req.Method > models.PaymentMethodQR {
		response.BadRequest(c, "Hình thức thanh toán không hợp lệ")
		return
	}

	currentUserID, _ := c.Get("userID")
	createdBy, _ := currentUserID.(uint)

	var invoice models.Invoice
	if err := config.DB.First(&invoice, req.InvoiceID).Error; err != nil {
		response.NotFound(c)
		return
	}
	if invoice.Status == constants.InvoiceStatusPaid {
		response.Conflict(c, "Hóa đơn đã thanh toán đủ")
		return
	}

	now := time.Now()
	payment := models.Payment{
		InvoiceID:   invoice.ID,
		Amount:      req.Amount,
		Method:      req.Method,
		Status:      constants.PaymentStatusSuccess,
		BankRef:     req.BankRef,
		PaymentDate: &now,
		CreatedBy:   createdBy,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		paid, remaining, status := services.AllocatePayment(invoice.PaidAmount, invoice.TotalAmount, req.Amount)
		invoice.PaidAmount = paid
		invoice.RemainingAmount = remaining
		invoice.Status = status
		return tx.Save(&invoice).Error
	})
	if err != nil {
		log.Printf("Lỗi ghi nhận thanh toán: %v", err)
		response.ServerError(c)
		return
	}

	services.BroadcastEvent(WSMelody, services.EventPaymentReceived, gin.H{
		"invoiceCode": invoice.InvoiceCode,
		"amount":      req.Amount,
		"paidAmount":  invoice.PaidAmount,
		"status":      invoice.Status,
	})

	response.Success(c, gin.H{
		"payment": payment,
		"invoice": toInvoiceResponse(invoice),
	})
}

// ReceiveBankTransfer nhận webhook chuyển khoản/QR từ ngân hàng và đối
// soát tự động với hóa đơn đang mở
func ReceiveBankTransfer(c *gin.Context) {
	var req dto.BankTransferNotification
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	transfer := services.BankTransfer{
		AccountNumber: req.AccountNumber,
		Amount:        req.Amount,
		Memo:          req.Memo,
		Reference:     req.Reference,
	}

	invoice, err := services.ReconcileTransfer(config.DB, transfer, 0)
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			log.Printf("Đối soát thất bại [%s]: %s", appErr.Code, appErr.Message)
			response.BadRequest(c, appErr.Message)
			return
		}
		log.Printf("Lỗi đối soát: %v", err)
		response.ServerError(c)
		return
	}

	services.BroadcastEvent(WSMelody, services.EventPaymentReceived, gin.H{
		"invoiceCode": invoice.InvoiceCode,
		"amount":      req.Amount,
		"paidAmount":  invoice.PaidAmount,
		"status":      invoice.Status,
	})

	response.Success(c, toInvoiceResponse(*invoice))
}

// UpdatePaymentStatus đổi trạng thái một payment, dùng khi hoàn tiền
// hoặc hủy khoản ghi nhầm
func UpdatePaymentStatus(c *gin.Context) {
	var req dto.PaymentStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var payment models.Payment
	if err := config.DB.First(&payment, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if req.Status < constants.PaymentStatusPending || req.Status > constants.PaymentStatusRefunded {
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}

	oldStatus := payment.Status
	payment.Status = req.Status

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&payment).Error; err != nil {
			return err
		}

		// Khoản đã tính vào hóa đơn mà bị hủy/hoàn thì trừ ngược lại
		if oldStatus == constants.PaymentStatusSuccess && req.Status != constants.PaymentStatusSuccess {
			var invoice models.Invoice
			if err := tx.First(&invoice, payment.InvoiceID).Error; err != nil {
				return err
			}
			paid, remaining, status := services.AllocatePayment(invoice.PaidAmount, invoice.TotalAmount, -payment.Amount)
			invoice.PaidAmount = paid
			invoice.RemainingAmount = remaining
			invoice.Status = status
			return tx.Save(&invoice).Error
		}
		return nil
	})
	if err != nil {
		log.Printf("Lỗi cập nhật payment: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, payment)
}

// GetBankAccounts trả danh sách tài khoản nhận tiền của khách sạn
func GetBankAccounts(c *gin.Context) {
	var accounts []models.BankAccount
	if err := config.DB.Find(&accounts).Error; err != nil {
		log.Printf("Lỗi lấy danh sách tài khoản: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, accounts)
}

// CreateBankAccount thêm tài khoản nhận tiền
func CreateBankAccount(c *gin.Context) {
	var account models.BankAccount
	if err := c.ShouldBindJSON(&account); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := account.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&account).Error; err != nil {
		log.Printf("Lỗi tạo tài khoản ngân hàng: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, account)
}
