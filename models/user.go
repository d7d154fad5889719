package models

import (
	"time"
)

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string    `gorm:"default:New User" json:"name"`
	Email       string    `gorm:"unique" json:"email"`
	Password    string    `json:"password"`
	PhoneNumber string    `gorm:"unique;type:varchar(11);not null" json:"phoneNumber"`
	Avatar      string    `json:"avatar"`
	Role        int       `gorm:"default:0" json:"role"`
	Status      int       `gorm:"default:1" json:"status"`
	// Lễ tân thuộc về một quản lý
	AdminId  *uint  `json:"adminId,omitempty"`
	Children []User `gorm:"foreignKey:AdminId" json:"children,omitempty"`
}
