package dto

import "time"

// UserResponse là DTO cho thông tin nhân viên
type UserResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Avatar      string    `json:"avatar"`
	Role        int       `json:"role"`
	Status      int       `json:"status"`
	AdminId     *uint     `json:"adminId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UserStatusRequest là DTO đổi trạng thái nhân viên
type UserStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}
