package catalogservice

// Professional модель мастера из CatalogService
type Professional struct {
	ID          int64   `json:"id"`
	VendorID    int64   `json:"vendor_id"`
	DisplayName string  `json:"display_name"`
	Title       *string `json:"title,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	IsActive    bool    `json:"is_active"`
}

// Service модель услуги из CatalogService
type Service struct {
	ID              int64   `json:"id"`
	VendorID        int64   `json:"vendor_id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	IsActive        bool    `json:"is_active"`
}

// Customer модель клиента из CatalogService
type Customer struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
