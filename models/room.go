package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type Room struct {
	RoomId      uint            `json:"id" gorm:"primaryKey"`
	RoomTypeID  uint            `json:"roomTypeId"`
	RoomName    string          `json:"roomName"`
	Floor       int             `json:"floor"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Status      int             `json:"status" gorm:"default:1"`
	Avatar      string          `json:"avatar"`
	Img         json.RawMessage `json:"img" gorm:"type:json"`
	RoomType    RoomType        `json:"roomType" gorm:"foreignKey:RoomTypeID"`
	Holds       []RoomHold      `json:"holds,omitempty" gorm:"foreignKey:RoomID"`
}

func (r *Room) ValidateStatus() error {
	if r.Status < 1 || r.Status > 3 {
		return fmt.Errorf("invalid status: %d, must be between 1 and 3", r.Status)
	}
	return nil
}
