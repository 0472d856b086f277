package notify

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notify client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса рассылки
	ErrInvalidResponse = errors.New("notify client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что сервис рассылки недоступен; бронирование при этом
	// обрабатывается штатно, уведомление просто не отправлено
	ErrServiceDegraded = errors.New("notify service unavailable: graceful degradation applied")
)
