package blocker

import "errors"

var (
	// ErrBlockerNotFound возвращается, когда блокировка не найдена
	ErrBlockerNotFound = errors.New("blocker.repository: time blocker not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("blocker.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("blocker.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("blocker.repository: failed to scan row")
)
