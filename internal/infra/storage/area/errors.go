package area

import "errors"

var (
	// ErrAreaNotFound возвращается, когда область не найдена
	ErrAreaNotFound = errors.New("area.repository: area not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("area.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("area.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("area.repository: failed to scan row")
)
