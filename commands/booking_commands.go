package commands

import (
	"pms/errors"
	"pms/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingCommand định nghĩa interface cho các command
type BookingCommand interface {
	Execute() error
}

// CreateBookingCommand command để tạo booking mới kèm hold phòng và
// hóa đơn trong một transaction
type CreateBookingCommand struct {
	booking *models.Booking
	hold    *models.RoomHold
	invoice *models.Invoice
	db      *gorm.DB
}

func NewCreateBookingCommand(booking *models.Booking, hold *models.RoomHold, invoice *models.Invoice, db *gorm.DB) *CreateBookingCommand {
	return &CreateBookingCommand{
		booking: booking,
		hold:    hold,
		invoice: invoice,
		db:      db,
	}
}

func (c *CreateBookingCommand) Execute() error {
	return c.db.Transaction(func(tx *gorm.DB) error {
		// Khóa dòng phòng để hai request đặt cùng lúc phải xếp hàng,
		// rồi mới kiểm tra trùng lịch bên trong transaction
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, c.hold.RoomID).Error; err != nil {
			return err
		}

		var holds []models.RoomHold
		if err := tx.Where("room_id = ? AND status = 1", c.hold.RoomID).Find(&holds).Error; err != nil {
			return err
		}
		for _, h := range holds {
			if h.Overlaps(c.hold.FromDate, c.hold.ToDate) {
				return errors.NewAppError(errors.ErrCodeRoomUnavailable, "Phòng đã có khách trong khoảng thời gian này", nil)
			}
		}

		if err := tx.Create(c.booking).Error; err != nil {
			return err
		}

		c.hold.BookingID = c.booking.ID
		if err := tx.Create(c.hold).Error; err != nil {
			return err
		}

		c.invoice.BookingID = c.booking.ID
		return tx.Create(c.invoice).Error
	})
}

// UpdateBookingCommand command để cập nhật booking
type UpdateBookingCommand struct {
	booking *models.Booking
	db      *gorm.DB
}

func NewUpdateBookingCommand(booking *models.Booking, db *gorm.DB) *UpdateBookingCommand {
	return &UpdateBookingCommand{
		booking: booking,
		db:      db,
	}
}

func (c *UpdateBookingCommand) Execute() error {
	return c.db.Save(c.booking).Error
}

// ReleaseHoldsCommand command để nhả mọi hold đang hiệu lực của một
// booking
type ReleaseHoldsCommand struct {
	bookingID uint
	db        *gorm.DB
}

func NewReleaseHoldsCommand(bookingID uint, db *gorm.DB) *ReleaseHoldsCommand {
	return &ReleaseHoldsCommand{
		bookingID: bookingID,
		db:        db,
	}
}

func (c *ReleaseHoldsCommand) Execute() error {
	return c.db.Model(&models.RoomHold{}).
		Where("booking_id = ? AND status = 1", c.bookingID).
		Update("status", 0).Error
}
