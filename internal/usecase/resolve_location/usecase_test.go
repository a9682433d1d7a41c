package resolve_location

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planbeau/booking-service/internal/integrations/places"
	"github.com/planbeau/booking-service/pkg/logger"
)

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	montreal := &places.Place{
		PlaceID:          "ChIJmtl",
		FormattedAddress: "Montréal, QC, Canada",
		AddressComponents: []places.AddressComponent{
			{LongName: "Montréal", ShortName: "Montréal", Types: []string{"locality", "political"}},
			{LongName: "Québec", ShortName: "QC", Types: []string{"administrative_area_level_1", "political"}},
		},
	}

	tests := []struct {
		name         string
		req          *Request
		prepareMocks func(m *mockPlacesClient)
		wantErr      error
		want         *Response
	}{
		{
			name: "places_success",
			req:  &Request{PlaceID: "ChIJmtl"},
			prepareMocks: func(m *mockPlacesClient) {
				m.On("GetPlaceDetailsWithGracefulDegradation", ctx, "ChIJmtl").Return(montreal, nil).Once()
			},
			want: &Response{
				PlaceID: "ChIJmtl", City: "Montréal", Province: "Quebec", ProvinceCode: "QC",
				Display: "Montréal, Quebec", TaxRate: 0.14975, TaxLabel: "GST + QST (14.975%)", Source: SourcePlaces,
			},
		},
		{
			name:         "text_only",
			req:          &Request{Text: "12 Water St, Vancouver, BC V6B 1A1"},
			prepareMocks: func(m *mockPlacesClient) {},
			want: &Response{
				City: "Vancouver", Province: "British Columbia", ProvinceCode: "BC",
				Display: "Vancouver, British Columbia", TaxRate: 0.12, TaxLabel: "GST + PST (12%)", Source: SourceText,
			},
		},
		{
			name:         "text_without_province_uses_default",
			req:          &Request{Text: "Somewhere nice"},
			prepareMocks: func(m *mockPlacesClient) {},
			want: &Response{
				City: "Somewhere nice", Province: "Ontario", ProvinceCode: "ON",
				Display: "Somewhere nice, Ontario", TaxRate: 0.13, TaxLabel: "HST (13%)",
				Source: SourceText, DefaultProvince: true,
			},
		},
		{
			name: "degraded_falls_back_to_text",
			req:  &Request{PlaceID: "ChIJhfx", Text: "Halifax, Nova Scotia"},
			prepareMocks: func(m *mockPlacesClient) {
				m.On("GetPlaceDetailsWithGracefulDegradation", ctx, "ChIJhfx").
					Return(nil, fmt.Errorf("%w: timeout", places.ErrServiceDegraded)).Once()
			},
			want: &Response{
				PlaceID: "ChIJhfx", City: "Halifax", Province: "Nova Scotia", ProvinceCode: "NS",
				Display: "Halifax, Nova Scotia", TaxRate: 0.14, TaxLabel: "HST (14%)",
				Source: SourceText, Degraded: true,
			},
		},
		{
			name: "error_degraded_without_text",
			req:  &Request{PlaceID: "ChIJhfx"},
			prepareMocks: func(m *mockPlacesClient) {
				m.On("GetPlaceDetailsWithGracefulDegradation", ctx, "ChIJhfx").
					Return(nil, fmt.Errorf("%w: timeout", places.ErrServiceDegraded)).Once()
			},
			wantErr: ErrServiceUnavailable,
		},
		{
			name: "error_place_not_found",
			req:  &Request{PlaceID: "nope"},
			prepareMocks: func(m *mockPlacesClient) {
				m.On("GetPlaceDetailsWithGracefulDegradation", ctx, "nope").Return(nil, places.ErrPlaceNotFound).Once()
			},
			wantErr: ErrLocationNotFound,
		},
		{
			name: "error_unexpected",
			req:  &Request{PlaceID: "x"},
			prepareMocks: func(m *mockPlacesClient) {
				m.On("GetPlaceDetailsWithGracefulDegradation", ctx, "x").Return(nil, errors.New("boom")).Once()
			},
			wantErr: ErrInternal,
		},
		{
			name:         "error_empty_request",
			req:          &Request{PlaceID: "  "},
			prepareMocks: func(m *mockPlacesClient) {},
			wantErr:      ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockPlacesClient{}
			tt.prepareMocks(client)
			uc := NewUseCase(client, Settings{DefaultProvince: "ON"}, logger.NewNop())

			resp, err := uc.Execute(ctx, tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, resp)
			}

			client.AssertExpectations(t)
		})
	}
}
