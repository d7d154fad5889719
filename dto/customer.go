package dto

// CreateCustomerRequest là DTO tạo/cập nhật hồ sơ khách
type CreateCustomerRequest struct {
	ID          uint   `json:"id"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	IDNumber    string `json:"idNumber"`
	Address     string `json:"address"`
	Note        string `json:"note"`
}
