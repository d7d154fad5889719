package controllers

import (
	"context"
	"log"
	"os"
	"strings"

	"pms/config"
	"pms/constants"
	"pms/dto"
	"pms/models"
	"pms/response"
	"pms/services"
	"pms/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
)

func toUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Avatar:      user.Avatar,
		Role:        user.Role,
		Status:      user.Status,
		AdminId:     user.AdminId,
		CreatedAt:   user.CreatedAt,
	}
}

// Login đăng nhập bằng email và mật khẩu
func Login(c *gin.Context) {
	var input dto.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Email = strings.ToLower(input.Email)

	var user models.User
	if err := config.DB.Where("email = ? OR phone_number = ?", input.Email, input.Email).First(&user).Error; err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	if user.Status != constants.UserStatusActive {
		response.Forbidden(c)
		return
	}

	token, err := services.GenerateToken(user.ID, user.Role)
	if err != nil {
		log.Printf("Lỗi tạo token: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, dto.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}

// Logout xóa cookie phiên
func Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}

// RegisterUser tạo tài khoản nhân viên mới. Lễ tân do quản lý tạo sẽ
// gắn AdminId về quản lý đó.
func RegisterUser(c *gin.Context) {
	var input dto.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.Role == 0 {
		input.Role = constants.RoleReceptionist
	}

	user := models.User{
		Name:        input.Name,
		Email:       strings.ToLower(input.Email),
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
		Role:        input.Role,
		Status:      constants.UserStatusActive,
		AdminId:     input.AdminId,
	}

	if err := validator.ValidateUser(&user); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var count int64
	config.DB.Model(&models.User{}).
		Where("email = ? OR phone_number = ?", user.Email, user.PhoneNumber).
		Count(&count)
	if count > 0 {
		response.Conflict(c, "Email hoặc số điện thoại đã được sử dụng")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Lỗi hash mật khẩu: %v", err)
		response.ServerError(c)
		return
	}
	user.Password = string(hashed)

	if err := config.DB.Create(&user).Error; err != nil {
		log.Printf("Lỗi tạo user: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, toUserResponse(user))
}

// AuthGoogle đăng nhập bằng Google, chỉ chấp nhận email đã có tài
// khoản nhân viên
func AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	payload, err := verifyGoogleIDToken(input.IDToken)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		response.BadRequest(c, "Token Google không có email")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		response.Forbidden(c)
		return
	}
	if user.Status != constants.UserStatusActive {
		response.Forbidden(c)
		return
	}

	token, err := services.GenerateToken(user.ID, user.Role)
	if err != nil {
		log.Printf("Lỗi tạo token: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, dto.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}

func verifyGoogleIDToken(tokenId string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	payload, err := idtoken.Validate(context.Background(), tokenId, clientID)
	if err != nil {
		return nil, err
	}
	return payload, nil
}
