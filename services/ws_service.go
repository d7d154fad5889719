package services

import (
	"log"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// WSEvent là message đẩy qua WebSocket cho các client PMS đang mở
type WSEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

const (
	EventBookingCreated  = "booking_created"
	EventBookingExpired  = "booking_expired"
	EventBookingUpdated  = "booking_updated"
	EventPaymentReceived = "payment_received"
)

// BroadcastEvent đẩy một event tới tất cả client. Lỗi broadcast chỉ
// ghi log, không được làm fail nghiệp vụ gọi nó.
func BroadcastEvent(m *melody.Melody, event string, data interface{}) {
	if m == nil {
		return
	}

	payload, err := json.Marshal(WSEvent{Event: event, Data: data})
	if err != nil {
		log.Printf("Lỗi marshal WS event %s: %v", event, err)
		return
	}

	if err := m.Broadcast(payload); err != nil {
		log.Printf("Lỗi broadcast WS event %s: %v", event, err)
	}
}
