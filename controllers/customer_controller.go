package controllers

import (
	"log"
	"strconv"

	"pms/config"
	"pms/dto"
	"pms/models"
	"pms/response"
	"pms/services"
	"pms/validator"

	"github.com/gin-gonic/gin"
)

// GetCustomers trả danh sách khách có phân trang
func GetCustomers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := config.DB.Model(&models.Customer{}).Count(&total).Error; err != nil {
		log.Printf("Lỗi đếm khách hàng: %v", err)
		response.ServerError(c)
		return
	}

	var customers []models.Customer
	err := config.DB.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&customers).Error
	if err != nil {
		log.Printf("Lỗi lấy danh sách khách hàng: %v", err)
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, customers, page, limit, int(total))
}

// SearchCustomersHandler tìm khách theo tên (match mờ, bỏ dấu) hoặc số
// điện thoại (match prefix)
func SearchCustomersHandler(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "q là bắt buộc")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	var customers []models.Customer
	if err := config.DB.Find(&customers).Error; err != nil {
		log.Printf("Lỗi lấy danh sách khách hàng: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, services.SearchCustomers(customers, query, limit))
}

// GetCustomerDetail trả hồ sơ khách kèm lịch sử đặt phòng
func GetCustomerDetail(c *gin.Context) {
	id := c.Param("id")

	var customer models.Customer
	if err := config.DB.Preload("Bookings").First(&customer, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, customer)
}

// CreateCustomer tạo hồ sơ khách mới
func CreateCustomer(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	customer := models.Customer{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		IDNumber:    req.IDNumber,
		Address:     req.Address,
		Note:        req.Note,
	}

	if err := validator.ValidateCustomer(&customer); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		log.Printf("Lỗi tạo khách hàng: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, customer)
}

// UpdateCustomer cập nhật hồ sơ khách
func UpdateCustomer(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.ID == 0 {
		response.BadRequest(c, "Thiếu id khách hàng")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	customer.Name = req.Name
	customer.Email = req.Email
	customer.PhoneNumber = req.PhoneNumber
	customer.IDNumber = req.IDNumber
	customer.Address = req.Address
	customer.Note = req.Note

	if err := validator.ValidateCustomer(&customer); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&customer).Error; err != nil {
		log.Printf("Lỗi cập nhật khách hàng: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, customer)
}
