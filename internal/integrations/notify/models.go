package notify

// Message уведомление клиенту о смене статуса бронирования
type Message struct {
	Phone        string `json:"phone"`
	BookingID    int64  `json:"booking_id"`
	BookingName  string `json:"booking_name"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	FacilityCode string `json:"facility_code"`
}

// ErrorResponse модель ошибки от сервиса рассылки
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
