package models

// SessionResponse новая сессия
type SessionResponse struct {
	SessionID string `json:"sessionId"`
}

// RecentSearchesResponse последние поисковые запросы, новые первыми
type RecentSearchesResponse struct {
	Searches []string `json:"searches"`
}

// AddRecentSearchRequest запрос на добавление поискового запроса
type AddRecentSearchRequest struct {
	Query string `json:"query"`
}

// Prefill выбор пакета и услуг, сохраненный до перехода к бронированию
type Prefill struct {
	VendorID   int64   `json:"vendorProfileId"`
	PackageID  *int64  `json:"packageId,omitempty"`
	ServiceIDs []int64 `json:"serviceIds"`
}
