package dto

// InvoiceResponse là DTO cho response của hóa đơn
type InvoiceResponse struct {
	ID              uint          `json:"id"`
	InvoiceCode     string        `json:"invoiceCode"`
	BookingID       uint          `json:"bookingId"`
	BookingCode     string        `json:"bookingCode"`
	Customer        ActorResponse `json:"customer"`
	TotalAmount     float64       `json:"totalAmount"`
	DepositRequired float64       `json:"depositRequired"`
	PaidAmount      float64       `json:"paidAmount"`
	RemainingAmount float64       `json:"remainingAmount"`
	Status          int           `json:"status"`
	CreatedAt       string        `json:"createdAt"`
	UpdatedAt       string        `json:"updatedAt"`
}

// CreatePaymentRequest là DTO ghi nhận thanh toán tay (tiền mặt hoặc
// chuyển khoản lễ tân tự xác nhận)
type CreatePaymentRequest struct {
	InvoiceID uint    `json:"invoiceId" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
	Method    int     `json:"method"`
	BankRef   string  `json:"bankRef"`
}

// BankTransferNotification là DTO webhook ngân hàng bắn sang khi có
// giao dịch chuyển đến
type BankTransferNotification struct {
	AccountNumber string  `json:"accountNumber" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	Memo          string  `json:"memo"`
	Reference     string  `json:"reference"`
}

// PaymentStatusUpdateRequest là DTO đổi trạng thái một payment
type PaymentStatusUpdateRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}
