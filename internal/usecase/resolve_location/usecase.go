package resolve_location

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/planbeau/booking-service/internal/domain"
	placesClient "github.com/planbeau/booking-service/internal/integrations/places"
	"github.com/planbeau/booking-service/internal/location"
)

// UseCase use case для разбора места события
type UseCase struct {
	placesClient PlacesClient
	settings     Settings
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(placesClient PlacesClient, settings Settings, logger Logger) *UseCase {
	return &UseCase{
		placesClient: placesClient,
		settings:     settings,
		logger:       logger,
	}
}

// Execute разбирает место по place_id, при недоступности Places API - по тексту
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	req.PlaceID = strings.TrimSpace(req.PlaceID)
	req.Text = strings.TrimSpace(req.Text)

	uc.logger.Info("ResolveLocation: place_id=%s, text=%q", req.PlaceID, req.Text)

	// 1. Валидация входных данных
	if req.PlaceID == "" && req.Text == "" {
		return nil, fmt.Errorf("%w: placeId or text is required", ErrInvalidInput)
	}

	resp := &Response{PlaceID: req.PlaceID, Source: SourceText}
	var loc location.Location

	// 2. Запрашиваем Places API
	if req.PlaceID != "" {
		place, err := uc.placesClient.GetPlaceDetailsWithGracefulDegradation(ctx, req.PlaceID)
		switch {
		case err == nil:
			loc = location.FromAddressComponents(toComponents(place.AddressComponents))
			resp.Source = SourcePlaces
		case errors.Is(err, placesClient.ErrPlaceNotFound):
			uc.logger.Warn("ResolveLocation: place_id=%s not found", req.PlaceID)
			return nil, ErrLocationNotFound
		case errors.Is(err, placesClient.ErrServiceDegraded):
			if req.Text == "" {
				uc.logger.Warn("ResolveLocation: places unavailable and no text to parse")
				return nil, ErrServiceUnavailable
			}
			resp.Degraded = true
		default:
			uc.logger.Error("ResolveLocation: failed to get place details: %v", err)
			return nil, fmt.Errorf("%w: failed to get place details: %v", ErrInternal, err)
		}
	}

	// 3. Разбираем текст, если Places API не использовался
	if resp.Source == SourceText {
		loc = location.ParseFreeText(req.Text)
	}

	// 4. Определяем провинцию и налог
	province, ok := domain.LookupProvince(loc.Province)
	if !ok {
		province, ok = location.ResolveProvince(strings.TrimSpace(loc.Province + " " + req.Text))
	}
	if !ok {
		province = domain.DefaultProvince(uc.settings.DefaultProvince)
		resp.DefaultProvince = true
	}

	resp.City = loc.City
	resp.Province = province.Name
	resp.ProvinceCode = province.Code
	resp.Display = location.Location{City: loc.City, Province: province.Name}.Display()
	resp.TaxRate = province.TaxRate
	resp.TaxLabel = province.TaxLabel

	uc.logger.Info("ResolveLocation: resolved %q (source=%s, province=%s, default=%t)",
		resp.Display, resp.Source, resp.ProvinceCode, resp.DefaultProvince)

	return resp, nil
}

func toComponents(components []placesClient.AddressComponent) []location.AddressComponent {
	result := make([]location.AddressComponent, 0, len(components))
	for _, c := range components {
		result = append(result, location.AddressComponent{
			LongName:  c.LongName,
			ShortName: c.ShortName,
			Types:     c.Types,
		})
	}
	return result
}
