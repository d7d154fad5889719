package controllers

import (
	"log"
	"strconv"

	"pms/config"
	"pms/constants"
	"pms/dto"
	"pms/models"
	"pms/response"

	"github.com/gin-gonic/gin"
)

// GetUsers trả danh sách nhân viên. Quản lý chỉ thấy lễ tân của mình,
// superadmin thấy tất cả.
func GetUsers(c *gin.Context) {
	currentRole, _ := c.Get("userRole")
	currentUserID, _ := c.Get("userID")

	query := config.DB.Model(&models.User{})
	if role, ok := currentRole.(int); ok && role == constants.RoleManager {
		query = query.Where("admin_id = ? OR id = ?", currentUserID, currentUserID)
	}

	if roleFilter := c.Query("role"); roleFilter != "" {
		query = query.Where("role = ?", roleFilter)
	}

	var users []models.User
	if err := query.Order("id").Find(&users).Error; err != nil {
		log.Printf("Lỗi lấy danh sách user: %v", err)
		response.ServerError(c)
		return
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, toUserResponse(user))
	}

	response.Success(c, responses)
}

// GetUserByID trả thông tin một nhân viên
func GetUserByID(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toUserResponse(user))
}

// GetProfile trả thông tin user đang đăng nhập
func GetProfile(c *gin.Context) {
	currentUserID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, currentUserID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toUserResponse(user))
}

// UpdateUser cập nhật thông tin nhân viên
func UpdateUser(c *gin.Context) {
	var input struct {
		ID          uint   `json:"id" binding:"required"`
		Name        string `json:"name"`
		PhoneNumber string `json:"phoneNumber"`
		Avatar      string `json:"avatar"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.PhoneNumber != "" {
		user.PhoneNumber = input.PhoneNumber
	}
	if input.Avatar != "" {
		user.Avatar = input.Avatar
	}

	if err := config.DB.Save(&user).Error; err != nil {
		log.Printf("Lỗi cập nhật user: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, toUserResponse(user))
}

// ChangeUserStatus khóa hoặc mở khóa tài khoản nhân viên
func ChangeUserStatus(c *gin.Context) {
	var req dto.UserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if user.Role == constants.RoleSuperAdmin {
		response.Forbidden(c)
		return
	}

	user.Status = req.Status
	if err := config.DB.Save(&user).Error; err != nil {
		log.Printf("Lỗi đổi trạng thái user: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, toUserResponse(user))
}

// GetReceptionistByID trả thông tin lễ tân của một quản lý
func GetReceptionistByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "id không hợp lệ")
		return
	}

	var receptionists []models.User
	err = config.DB.
		Where("admin_id = ? AND role = ?", id, constants.RoleReceptionist).
		Find(&receptionists).Error
	if err != nil {
		log.Printf("Lỗi lấy danh sách lễ tân: %v", err)
		response.ServerError(c)
		return
	}

	responses := make([]dto.UserResponse, 0, len(receptionists))
	for _, user := range receptionists {
		responses = append(responses, toUserResponse(user))
	}

	response.Success(c, responses)
}
