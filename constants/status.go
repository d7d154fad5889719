package constants

// User roles
const (
	RoleSuperAdmin   = 1
	RoleManager      = 2
	RoleReceptionist = 3
)

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// Room status
const (
	RoomStatusAvailable   = 1
	RoomStatusOccupied    = 2
	RoomStatusMaintenance = 3
)

// Invoice status
const (
	InvoiceStatusUnpaid   = 0
	InvoiceStatusPartial  = 1
	InvoiceStatusPaid     = 2
	InvoiceStatusRefunded = 3
)

// Payment status
const (
	PaymentStatusPending  = 0
	PaymentStatusSuccess  = 1
	PaymentStatusFailed   = 2
	PaymentStatusRefunded = 3
)

// Số giờ một booking pending chưa thanh toán được giữ trước khi cron hủy
const PendingBookingTTLHours = 24
