package reports

import "errors"

var (
	ErrAgencyNotFound = errors.New("reports.service: agency not found")
	ErrInvalidInput   = errors.New("reports.service: invalid input")
	ErrInternal       = errors.New("reports.service: internal error")
)
