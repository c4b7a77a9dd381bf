package catalogservice

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда мастер не найден в каталоге
	ErrProfessionalNotFound = errors.New("professional not found in catalog")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("service not found in catalog")

	// ErrCustomerNotFound возвращается, когда клиент не найден в каталоге
	ErrCustomerNotFound = errors.New("customer not found in catalog")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")

	// ErrServiceDegraded возвращается при недоступности CatalogService,
	// когда вызывающий код может продолжить с неполными данными
	ErrServiceDegraded = errors.New("catalogservice unavailable: graceful degradation applied")
)
