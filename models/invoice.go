package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Invoice struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	InvoiceCode     string    `json:"invoiceCode" gorm:"unique;size:20"`
	BookingID       uint      `json:"bookingId"`
	Booking         Booking   `json:"booking" gorm:"foreignKey:BookingID"`
	TotalAmount     float64   `json:"totalAmount"`
	DepositRequired float64   `json:"depositRequired"` // Cọc đề xuất, không bắt buộc
	PaidAmount      float64   `json:"paidAmount"`
	RemainingAmount float64   `json:"remainingAmount"`
	Status          int       `json:"status"` // 0: Chưa thanh toán, 1: Thanh toán một phần, 2: Đã thanh toán
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Payments        []Payment `json:"payments,omitempty" gorm:"foreignKey:InvoiceID"`
}

func (invoice *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	invoice.InvoiceCode = fmt.Sprintf("PMS%d", time.Now().Unix())

	var count int64
	if err := tx.Model(&Invoice{}).Where("invoice_code = ?", invoice.InvoiceCode).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("InvoiceCode đã tồn tại, hãy thử lại")
	}
	return nil
}
