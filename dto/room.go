package dto

import "encoding/json"

// CreateRoomRequest là DTO tạo/cập nhật phòng vật lý
type CreateRoomRequest struct {
	ID          uint            `json:"id"`
	RoomTypeID  uint            `json:"roomTypeId" binding:"required"`
	RoomName    string          `json:"roomName" binding:"required"`
	Floor       int             `json:"floor"`
	Description string          `json:"description"`
	Avatar      string          `json:"avatar"`
	Img         json.RawMessage `json:"img"`
}

// RoomStatusUpdateRequest là DTO đổi trạng thái phòng
type RoomStatusUpdateRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

// RoomBookedDates là các khoảng phòng đã bị giữ
type RoomBookedDates struct {
	RoomID uint        `json:"roomId"`
	Dates  []DateRange `json:"dates"`
}

type DateRange struct {
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
}
