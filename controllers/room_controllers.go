package controllers

import (
	"log"
	"time"

	"pms/config"
	"pms/constants"
	"pms/dto"
	"pms/models"
	"pms/response"
	"pms/validator"

	"github.com/gin-gonic/gin"
)

// GetRooms trả danh sách phòng kèm loại phòng, lọc theo tầng, loại và
// trạng thái
func GetRooms(c *gin.Context) {
	query := config.DB.Model(&models.Room{}).Preload("RoomType")

	if floor := c.Query("floor"); floor != "" {
		query = query.Where("floor = ?", floor)
	}
	if roomTypeID := c.Query("roomTypeId"); roomTypeID != "" {
		query = query.Where("room_type_id = ?", roomTypeID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var rooms []models.Room
	if err := query.Order("floor, room_name").Find(&rooms).Error; err != nil {
		log.Printf("Lỗi lấy danh sách phòng: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, rooms)
}

// GetRoomDetail trả chi tiết một phòng
func GetRoomDetail(c *gin.Context) {
	id := c.Param("id")

	var room models.Room
	if err := config.DB.Preload("RoomType").First(&room, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, room)
}

// CreateRoom tạo phòng vật lý mới
func CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var roomType models.RoomType
	if err := config.DB.First(&roomType, req.RoomTypeID).Error; err != nil {
		response.BadRequest(c, "Không tìm thấy loại phòng")
		return
	}

	room := models.Room{
		RoomTypeID:  req.RoomTypeID,
		RoomName:    req.RoomName,
		Floor:       req.Floor,
		Description: req.Description,
		Avatar:      req.Avatar,
		Img:         req.Img,
		Status:      constants.RoomStatusAvailable,
	}

	if err := config.DB.Create(&room).Error; err != nil {
		log.Printf("Lỗi tạo phòng: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, room)
}

// UpdateRoom cập nhật thông tin phòng
func UpdateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.ID == 0 {
		response.BadRequest(c, "Thiếu id phòng")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	room.RoomTypeID = req.RoomTypeID
	room.RoomName = req.RoomName
	room.Floor = req.Floor
	room.Description = req.Description
	room.Avatar = req.Avatar
	room.Img = req.Img

	if err := config.DB.Save(&room).Error; err != nil {
		log.Printf("Lỗi cập nhật phòng: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, room)
}

// ChangeRoomStatus đổi trạng thái phòng (trống, có khách, bảo trì)
func ChangeRoomStatus(c *gin.Context) {
	var req dto.RoomStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var room models.Room
	if err := config.DB.First(&room, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	room.Status = req.Status
	if err := room.ValidateStatus(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		log.Printf("Lỗi đổi trạng thái phòng: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, room)
}

// GetRoomBookingDates trả các khoảng phòng đã bị giữ trong một tháng,
// cho màn hình lịch phòng
func GetRoomBookingDates(c *gin.Context) {
	roomID := c.DefaultQuery("id", "")
	date := c.DefaultQuery("date", "")

	if roomID == "" || date == "" {
		response.BadRequest(c, "id và date là bắt buộc")
		return
	}

	parsedDate, err := time.Parse("01/2006", date)
	if err != nil {
		response.BadRequest(c, "Ngày không hợp lệ, vui lòng sử dụng định dạng mm/yyyy")
		return
	}

	firstDay := time.Date(parsedDate.Year(), parsedDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, 0)

	var holds []models.RoomHold
	err = config.DB.
		Where("room_id = ? AND status = 1 AND from_date < ? AND to_date > ?", roomID, lastDay, firstDay).
		Order("from_date").
		Find(&holds).Error
	if err != nil {
		log.Printf("Lỗi lấy lịch phòng: %v", err)
		response.ServerError(c)
		return
	}

	dates := make([]dto.DateRange, 0, len(holds))
	for _, hold := range holds {
		dates = append(dates, dto.DateRange{
			FromDate: hold.FromDate.Format(validator.DateLayout),
			ToDate:   hold.ToDate.Format(validator.DateLayout),
		})
	}

	var room models.Room
	if err := config.DB.Where("room_id = ?", roomID).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, dto.RoomBookedDates{RoomID: room.RoomId, Dates: dates})
}
