package models

import "time"

type Customer struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber" gorm:"index"`
	IDNumber    string    `json:"idNumber"` // CMND/CCCD/hộ chiếu
	Address     string    `json:"address"`
	Note        string    `json:"note"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Bookings    []Booking `json:"bookings,omitempty" gorm:"foreignKey:CustomerID"`
}
