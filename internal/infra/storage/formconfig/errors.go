package formconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация объекта не найдена
	ErrConfigNotFound = errors.New("formconfig.repository: config not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("formconfig.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("formconfig.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("formconfig.repository: failed to scan row")

	// ErrMarshal возвращается при ошибке сериализации JSONB полей
	ErrMarshal = errors.New("formconfig.repository: failed to marshal field")
)
