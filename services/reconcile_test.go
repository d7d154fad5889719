package services

import (
	"testing"

	"pms/constants"
	"pms/models"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestExtractInvoiceCode(t *testing.T) {
	cases := []struct {
		memo string
		want string
	}{
		{"PMS1735000000 thanh toan tien phong", "PMS1735000000"},
		{"chuyen khoan pms1735000000", "PMS1735000000"},
		{"CK dat coc PMS99", "PMS99"},
		{"thanh toan tien phong 101", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ExtractInvoiceCode(tc.memo), "memo=%q", tc.memo)
	}
}

func TestMatchAccount(t *testing.T) {
	accounts := []models.BankAccount{
		{BankShortName: "VCB", AccountNumbers: pq.StringArray{"0123456789", "9876543210"}},
		{BankShortName: "MB", AccountNumbers: pq.StringArray{"1112223334"}},
	}

	assert.True(t, MatchAccount(accounts, "9876543210"))
	assert.True(t, MatchAccount(accounts, "1112223334"))
	assert.False(t, MatchAccount(accounts, "0000000000"))
	assert.False(t, MatchAccount(nil, "0123456789"))
}

func TestAllocatePayment(t *testing.T) {
	t.Run("thanh toán một phần", func(t *testing.T) {
		paid, remaining, status := AllocatePayment(0, 3_300_000, 990_000)
		assert.InDelta(t, 990_000, paid, 0.001)
		assert.InDelta(t, 2_310_000, remaining, 0.001)
		assert.Equal(t, constants.InvoiceStatusPartial, status)
	})

	t.Run("thanh toán đủ", func(t *testing.T) {
		paid, remaining, status := AllocatePayment(990_000, 3_300_000, 2_310_000)
		assert.InDelta(t, 3_300_000, paid, 0.001)
		assert.Zero(t, remaining)
		assert.Equal(t, constants.InvoiceStatusPaid, status)
	})

	t.Run("trả dư không ra số âm", func(t *testing.T) {
		paid, remaining, status := AllocatePayment(0, 1_000_000, 1_500_000)
		assert.InDelta(t, 1_500_000, paid, 0.001)
		assert.Zero(t, remaining)
		assert.Equal(t, constants.InvoiceStatusPaid, status)
	})
}

func TestSearchCustomersByPhonePrefix(t *testing.T) {
	customers := []models.Customer{
		{ID: 1, Name: "Nguyễn Văn An", PhoneNumber: "0901234567"},
		{ID: 2, Name: "Trần Thị Bình", PhoneNumber: "0912345678"},
		{ID: 3, Name: "Lê Hoàng Cường", PhoneNumber: "0901112223"},
	}

	got := SearchCustomers(customers, "090", 10)
	ids := make([]uint, 0, len(got))
	for _, cus := range got {
		ids = append(ids, cus.ID)
	}
	assert.Equal(t, []uint{1, 3}, ids)
}

func TestSearchCustomersFuzzyName(t *testing.T) {
	customers := []models.Customer{
		{ID: 1, Name: "Nguyễn Văn An", PhoneNumber: "0901234567"},
		{ID: 2, Name: "Trần Thị Bình", PhoneNumber: "0912345678"},
	}

	// Gõ không dấu vẫn tìm ra đúng khách
	got := SearchCustomers(customers, "nguyen van an", 5)
	if assert.NotEmpty(t, got) {
		assert.Equal(t, uint(1), got[0].ID)
	}

	assert.Nil(t, SearchCustomers(customers, "   ", 5))
	assert.Nil(t, SearchCustomers(nil, "an", 5))
}
