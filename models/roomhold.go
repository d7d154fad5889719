package models

import "time"

// RoomHold giữ phòng cho một booking trong khoảng [FromDate, ToDate).
// Hold đang hiệu lực (Status = 1) chặn mọi booking mới trùng khoảng.
type RoomHold struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	RoomID    uint      `json:"roomId" gorm:"index"`
	BookingID uint      `json:"bookingId"`
	Status    int       `json:"status" gorm:"default:1"`
	FromDate  time.Time `json:"fromDate"`
	ToDate    time.Time `json:"toDate"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// Overlaps cho biết hold đang hiệu lực có chạm khoảng [from, to) không
func (h *RoomHold) Overlaps(from, to time.Time) bool {
	return h.Status == 1 && h.FromDate.Before(to) && h.ToDate.After(from)
}
