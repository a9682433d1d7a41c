package resolve_location

// Источник, из которого разобран адрес
const (
	SourcePlaces = "places"
	SourceText   = "text"
)

// Request модель запроса: place_id из автодополнения и/или введенный текст
type Request struct {
	PlaceID string
	Text    string
}

// Response разобранное место и налог провинции
type Response struct {
	PlaceID      string
	City         string
	Province     string
	ProvinceCode string
	Display      string
	TaxRate      float64
	TaxLabel     string
	Source       string

	// Провинция не определена, применена провинция по умолчанию
	DefaultProvince bool
	// Places API недоступен, адрес разобран из текста
	Degraded bool
}

// Settings настройки usecase
type Settings struct {
	DefaultProvince string
}
