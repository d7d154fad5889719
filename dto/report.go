package dto

// RevenueByDay là doanh thu gộp theo ngày từ các hóa đơn
type RevenueByDay struct {
	Date     string  `json:"date"`
	Revenue  float64 `json:"revenue"`
	Invoices int     `json:"invoices"`
}

// RevenueSummaryResponse là DTO báo cáo doanh thu theo khoảng ngày
type RevenueSummaryResponse struct {
	FromDate     string         `json:"fromDate"`
	ToDate       string         `json:"toDate"`
	TotalRevenue float64        `json:"totalRevenue"`
	TotalPaid    float64        `json:"totalPaid"`
	TotalUnpaid  float64        `json:"totalUnpaid"`
	Days         []RevenueByDay `json:"days"`
}

// TodayReportResponse là DTO tình hình trong ngày cho dashboard
type TodayReportResponse struct {
	Date          string            `json:"date"`
	Arrivals      []BookingResponse `json:"arrivals"`
	Departures    []BookingResponse `json:"departures"`
	PendingCount  int               `json:"pendingCount"`
	OccupiedCount int               `json:"occupiedCount"`
	Revenue       float64           `json:"revenue"`
}
