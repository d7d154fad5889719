package services

import (
	"regexp"
	"strings"
	"time"

	"pms/constants"
	"pms/errors"
	"pms/models"

	"gorm.io/gorm"
)

// Đối soát chuyển khoản/QR: ngân hàng bắn notification gồm số tài
// khoản nhận, số tiền và nội dung chuyển. Nội dung hợp lệ phải chứa
// mã hóa đơn dạng PMS<số>.

var invoiceCodeRe = regexp.MustCompile(`PMS\d+`)

// BankTransfer là một giao dịch chuyển đến cần đối soát
type BankTransfer struct {
	AccountNumber string  `json:"accountNumber"`
	Amount        float64 `json:"amount"`
	Memo          string  `json:"memo"`
	Reference     string  `json:"reference"`
}

// ExtractInvoiceCode tìm mã hóa đơn trong nội dung chuyển khoản
func ExtractInvoiceCode(memo string) string {
	return invoiceCodeRe.FindString(strings.ToUpper(memo))
}

// MatchAccount kiểm tra số tài khoản nhận có thuộc khách sạn không
func MatchAccount(accounts []models.BankAccount, accountNumber string) bool {
	for _, acc := range accounts {
		for _, number := range acc.AccountNumbers {
			if number == accountNumber {
				return true
			}
		}
	}
	return false
}

// AllocatePayment cộng một khoản thanh toán vào hóa đơn và trả về
// trạng thái mới. Không ghi DB, chỉ tính.
func AllocatePayment(paidAmount, totalAmount, amount float64) (newPaid, newRemaining float64, status int) {
	newPaid = paidAmount + amount
	newRemaining = totalAmount - newPaid
	if newRemaining < 0 {
		newRemaining = 0
	}

	switch {
	case newPaid <= 0:
		status = constants.InvoiceStatusUnpaid
	case newPaid < totalAmount:
		status = constants.InvoiceStatusPartial
	default:
		status = constants.InvoiceStatusPaid
	}
	return newPaid, newRemaining, status
}

// ReconcileTransfer đối soát một giao dịch chuyển đến với hóa đơn đang
// mở và ghi nhận thanh toán. Trả về hóa đơn đã cập nhật.
func ReconcileTransfer(db *gorm.DB, transfer BankTransfer, createdBy uint) (*models.Invoice, error) {
	if transfer.Amount <= 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền chuyển không hợp lệ", nil)
	}

	var accounts []models.BankAccount
	if err := db.Find(&accounts).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không đọc được danh sách tài khoản", err)
	}
	if !MatchAccount(accounts, transfer.AccountNumber) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidAccount, "Số tài khoản nhận không thuộc khách sạn", nil)
	}

	code := ExtractInvoiceCode(transfer.Memo)
	if code == "" {
		return nil, errors.NewAppError(errors.ErrCodeNoMatch, "Nội dung chuyển khoản không chứa mã hóa đơn", nil)
	}

	var invoice models.Invoice
	if err := db.Where("invoice_code = ?", code).First(&invoice).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeNoMatch, "Không tìm thấy hóa đơn "+code, err)
	}
	if invoice.Status == constants.InvoiceStatusPaid {
		return nil, errors.NewAppError(errors.ErrCodeNoMatch, "Hóa đơn "+code+" đã thanh toán đủ", nil)
	}

	now := time.Now()
	payment := models.Payment{
		InvoiceID:     invoice.ID,
		Amount:        transfer.Amount,
		Method:        models.PaymentMethodBankTransfer,
		Status:        constants.PaymentStatusSuccess,
		BankRef:       transfer.Reference,
		AccountNumber: transfer.AccountNumber,
		PaymentDate:   &now,
		CreatedBy:     createdBy,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		paid, remaining, status := AllocatePayment(invoice.PaidAmount, invoice.TotalAmount, transfer.Amount)
		invoice.PaidAmount = paid
		invoice.RemainingAmount = remaining
		invoice.Status = status
		return tx.Save(&invoice).Error
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi ghi nhận thanh toán", err)
	}

	return &invoice, nil
}
