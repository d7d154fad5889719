package models

import "time"

// Payment method constants
const (
	PaymentMethodCash         = 0
	PaymentMethodBankTransfer = 1
	PaymentMethodQR           = 2
)

type Payment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	InvoiceID uint      `json:"invoiceId" gorm:"index"`
	Invoice   Invoice   `json:"invoice" gorm:"foreignKey:InvoiceID"`
	Amount    float64   `json:"amount"`
	Method    int       `json:"method"`
	Status    int       `json:"status" gorm:"default:0"`
	// Nội dung và số tài khoản của giao dịch chuyển khoản/QR, dùng để
	// đối soát tự động
	BankRef       string     `json:"bankRef"`
	AccountNumber string     `json:"accountNumber"`
	PaymentDate   *time.Time `json:"paymentDate,omitempty"`
	CreatedBy     uint       `json:"createdBy"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}
