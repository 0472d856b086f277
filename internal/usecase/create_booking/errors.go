package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate возвращается при некорректной дате визита
	ErrInvalidDate = errors.New("create_booking: invalid visit date")

	// ErrCapacityExceeded возвращается, когда дневной лимит посетителей исчерпан
	ErrCapacityExceeded = errors.New("create_booking: daily capacity exceeded")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
