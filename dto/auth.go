package dto

// LoginRequest là DTO đăng nhập
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest là DTO tạo tài khoản nhân viên
type RegisterRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Role        int    `json:"role"`
	AdminId     *uint  `json:"adminId,omitempty"`
}

// GoogleAuthRequest là DTO đăng nhập bằng Google id token
type GoogleAuthRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// LoginResponse là DTO trả về sau đăng nhập
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
