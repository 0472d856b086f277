package formconfig

import "errors"

var (
	ErrInvalidInput = errors.New("formconfig.service: invalid input")
	ErrInternal     = errors.New("formconfig.service: internal error")
)
