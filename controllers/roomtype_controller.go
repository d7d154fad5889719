package controllers

import (
	"log"
	"time"

	"pms/config"
	"pms/dto"
	"pms/models"
	"pms/response"
	"pms/services"
	"pms/validator"

	"github.com/gin-gonic/gin"
)

var roomTypeCacheKey = "roomtypes:all"

func invalidateRoomTypeCache() {
	if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, roomTypeCacheKey); err != nil {
		log.Printf("Lỗi khi xóa cache loại phòng: %v", err)
	}
}

func roomTypeFromRequest(req dto.CreateRoomTypeRequest) models.RoomType {
	pricingMode := req.PricingMode
	if pricingMode == "" {
		pricingMode = "traditional"
	}

	return models.RoomType{
		ID:                   req.ID,
		Name:                 req.Name,
		Description:          req.Description,
		PricingMode:          pricingMode,
		Img:                  req.Img,
		BasePrice:            req.BasePrice,
		WeekendPrice:         req.WeekendPrice,
		DayShiftPrice:        req.DayShiftPrice,
		NightShiftPrice:      req.NightShiftPrice,
		FullDayPrice:         req.FullDayPrice,
		StandardAdults:       req.StandardAdults,
		StandardChildren:     req.StandardChildren,
		MaxAdults:            req.MaxAdults,
		MaxChildren:          req.MaxChildren,
		MaxOccupancy:         req.MaxOccupancy,
		ExtraAdultCharge:     req.ExtraAdultCharge,
		ExtraChildCharge:     req.ExtraChildCharge,
		ExtraSingleBedCharge: req.ExtraSingleBedCharge,
		ExtraDoubleBedCharge: req.ExtraDoubleBedCharge,
	}
}

// GetRoomTypes trả danh sách loại phòng, cache 60 phút vì cấu hình
// giá hiếm khi đổi trong ngày
func GetRoomTypes(c *gin.Context) {
	var roomTypes []models.RoomType

	if err := services.GetFromRedis(config.Ctx, config.RedisClient, roomTypeCacheKey, &roomTypes); err == nil && len(roomTypes) > 0 {
		response.Success(c, roomTypes)
		return
	}

	if err := config.DB.Order("id").Find(&roomTypes).Error; err != nil {
		log.Printf("Lỗi lấy danh sách loại phòng: %v", err)
		response.ServerError(c)
		return
	}

	if err := services.SetToRedis(config.Ctx, config.RedisClient, roomTypeCacheKey, roomTypes, 60*time.Minute); err != nil {
		log.Printf("Lỗi khi lưu cache loại phòng: %v", err)
	}

	response.Success(c, roomTypes)
}

// GetRoomTypeDetail trả chi tiết loại phòng kèm danh sách phòng
func GetRoomTypeDetail(c *gin.Context) {
	id := c.Param("id")

	var roomType models.RoomType
	if err := config.DB.Preload("Rooms").First(&roomType, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, roomType)
}

// CreateRoomType tạo loại phòng mới
func CreateRoomType(c *gin.Context) {
	var req dto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	roomType := roomTypeFromRequest(req)
	roomType.ID = 0
	if err := validator.ValidateRoomType(&roomType); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&roomType).Error; err != nil {
		log.Printf("Lỗi tạo loại phòng: %v", err)
		response.ServerError(c)
		return
	}

	invalidateRoomTypeCache()
	response.Success(c, roomType)
}

// UpdateRoomType cập nhật cấu hình loại phòng. Bảng giá đã chốt trong
// các booking cũ không đổi theo.
func UpdateRoomType(c *gin.Context) {
	var req dto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.ID == 0 {
		response.BadRequest(c, "Thiếu id loại phòng")
		return
	}

	var existing models.RoomType
	if err := config.DB.First(&existing, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	roomType := roomTypeFromRequest(req)
	roomType.Status = existing.Status
	roomType.CreatedAt = existing.CreatedAt
	if err := validator.ValidateRoomType(&roomType); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&roomType).Error; err != nil {
		log.Printf("Lỗi cập nhật loại phòng: %v", err)
		response.ServerError(c)
		return
	}

	invalidateRoomTypeCache()
	response.Success(c, roomType)
}

// ChangeRoomTypeStatus bật tắt loại phòng
func ChangeRoomTypeStatus(c *gin.Context) {
	var req struct {
		ID     uint `json:"id" binding:"required"`
		Status int  `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var roomType models.RoomType
	if err := config.DB.First(&roomType, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	roomType.Status = req.Status
	if err := config.DB.Save(&roomType).Error; err != nil {
		log.Printf("Lỗi đổi trạng thái loại phòng: %v", err)
		response.ServerError(c)
		return
	}

	invalidateRoomTypeCache()
	response.Success(c, roomType)
}
