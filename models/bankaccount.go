package models

import (
	"fmt"

	"github.com/lib/pq"
)

// BankAccount là tài khoản nhận chuyển khoản/QR của khách sạn. Số tài
// khoản trong AccountNumbers dùng để đối soát giao dịch chuyển đến.
type BankAccount struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	BankName       string         `json:"bankName" gorm:"not null"`
	BankShortName  string         `json:"bankShortName" gorm:"not null"`
	AccountNumbers pq.StringArray `json:"accountNumbers" gorm:"type:text[]"`
	AccountHolder  string         `json:"accountHolder"`
	QRTemplate     string         `json:"qrTemplate"` // URL mẫu VietQR
}

func (b *BankAccount) Validate() error {
	if b.BankName == "" || b.BankShortName == "" {
		return fmt.Errorf("tên ngân hàng không được để trống")
	}
	if len(b.AccountNumbers) == 0 {
		return fmt.Errorf("danh sách số tài khoản không được để trống")
	}
	for _, account := range b.AccountNumbers {
		if len(account) < 8 || len(account) > 17 {
			return fmt.Errorf("số tài khoản phải có từ 8 đến 17 chữ số: %s", account)
		}
	}
	return nil
}
