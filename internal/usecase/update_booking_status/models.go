package update_booking_status

// Request смена статуса администратором
type Request struct {
	BookingID int64
	Status    string
}

// Response итог смены статуса
type Response struct {
	ID       int64
	Status   string
	Notified bool // Было ли поставлено уведомление клиенту
}
