package jobs

import (
	"log"
	"time"

	"pms/config"
	"pms/constants"
	"pms/models"
	"pms/services"
	"pms/utils"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Mỗi giờ quét booking pending quá hạn giữ chỗ
	_, err := c.AddFunc("0 * * * *", func() {
		if err := ExpirePendingBookings(config.DB, m); err != nil {
			log.Printf("Lỗi hủy booking quá hạn: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

// ExpirePendingBookings hủy các booking pending chưa thanh toán quá
// hạn giữ chỗ, nhả hold để phòng bán lại được
func ExpirePendingBookings(db *gorm.DB, m *melody.Melody) error {
	cutoff := time.Now().Add(-time.Duration(constants.PendingBookingTTLHours) * time.Hour)

	var expired []models.Booking
	err := db.
		Where("status = ? AND created_at < ?", models.BookingStatusPending, cutoff).
		Find(&expired).Error
	if err != nil {
		return err
	}
	if len(expired) == 0 {
		return nil
	}

	for _, booking := range expired {
		// Đã thanh toán một phần thì giữ lại cho lễ tân tự xử lý
		var paid float64
		db.Model(&models.Payment{}).
			Joins("JOIN invoices ON invoices.id = payments.invoice_id").
			Where("invoices.booking_id = ? AND payments.status = ?", booking.ID, constants.PaymentStatusSuccess).
			Select("COALESCE(SUM(payments.amount), 0)").
			Scan(&paid)
		if paid > 0 {
			continue
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Booking{}).
				Where("id = ?", booking.ID).
				Update("status", models.BookingStatusCancelled).Error; err != nil {
				return err
			}
			return tx.Model(&models.RoomHold{}).
				Where("booking_id = ? AND status = 1", booking.ID).
				Update("status", 0).Error
		})
		if err != nil {
			utils.LogError("Lỗi hủy booking %s: %v", booking.Code, err)
			continue
		}

		// Ghi file log để đối chiếu khi khách khiếu nại mất chỗ
		utils.LogInfo("Đã hủy booking %s quá hạn giữ chỗ", booking.Code)
		services.BroadcastEvent(m, services.EventBookingExpired, map[string]interface{}{
			"bookingId": booking.ID,
			"code":      booking.Code,
		})
	}

	return nil
}
