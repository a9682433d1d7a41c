package normalize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planbeau/booking-service/internal/domain"
	"github.com/planbeau/booking-service/pkg/ptr"
)

func TestOffering_AliasChains(t *testing.T) {
	tests := []struct {
		name   string
		kind   domain.OfferingKind
		record Record
		want   domain.Offering
	}{
		{
			name: "package_with_capitalised_fields",
			kind: domain.KindPackage,
			record: Record{
				"PackageID":    float64(7),
				"PackageName":  "Gold",
				"Price":        float64(2000),
				"SalePrice":    float64(1800),
				"PriceType":    "fixed_price",
				"MinAttendees": float64(10),
				"MaxAttendees": float64(50),
			},
			want: domain.Offering{
				ID:           7,
				Kind:         domain.KindPackage,
				Name:         "Gold",
				Price:        2000,
				SalePrice:    ptr.Ptr(1800.0),
				PricingModel: domain.PricingFixed,
				MinAttendees: ptr.Ptr(10),
				MaxAttendees: ptr.Ptr(50),
			},
		},
		{
			name: "service_with_vendor_service_id_and_string_price",
			kind: domain.KindService,
			record: Record{
				"VendorServiceID": "12",
				"name":            "DJ",
				"BaseRate":        "$150.00",
				"pricingModel":    "time_based",
				"duration":        float64(240),
			},
			want: domain.Offering{
				ID:              12,
				Kind:            domain.KindService,
				Name:            "DJ",
				BaseRate:        150,
				PricingModel:    domain.PricingHourly,
				DurationMinutes: ptr.Ptr(240),
			},
		},
		{
			name: "lowercase_id_and_per_person",
			kind: domain.KindService,
			record: Record{
				"id":        float64(3),
				"title":     "Catering",
				"price":     float64(45),
				"priceType": "per_person",
			},
			want: domain.Offering{
				ID:           3,
				Kind:         domain.KindService,
				Name:         "Catering",
				Price:        45,
				PricingModel: domain.PricingPerAttendee,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Offering(tt.kind, tt.record)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOffering_Invalid(t *testing.T) {
	_, err := Offering(domain.KindService, Record{"name": "No id"})
	assert.ErrorIs(t, err, ErrInvalidRecord)

	_, err = Offering(domain.KindService, Record{"id": float64(1), "Price": float64(-5)})
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestOffering_NonFinitePrice(t *testing.T) {
	tests := []struct {
		name   string
		record Record
	}{
		{name: "nan_string", record: Record{"ServiceID": float64(1), "Price": "NaN"}},
		{name: "inf_string", record: Record{"ServiceID": float64(1), "Price": "Inf"}},
		{name: "negative_inf_base_rate", record: Record{"ServiceID": float64(1), "BaseRate": "-Inf"}},
		{name: "nan_sale_price", record: Record{"ServiceID": float64(1), "Price": float64(10), "SalePrice": "nan"}},
		{name: "inf_float", record: Record{"ServiceID": float64(1), "Price": math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Offerings(domain.KindService, []Record{tt.record})
			assert.ErrorIs(t, err, ErrInvalidRecord)
		})
	}
}

func TestOffering_NonFiniteFromJSON(t *testing.T) {
	records, err := DecodeRecords([]byte(`[{"ServiceID": 1, "Price": "NaN"}]`))
	require.NoError(t, err)

	_, err = Offerings(domain.KindService, records)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestBusinessHours_FromDecodedPayload(t *testing.T) {
	records, err := DecodeRecords([]byte(`[
		{"DayOfWeek": 1, "OpenTime": "09:00:00", "CloseTime": "17:00:00", "IsAvailable": true},
		{"day_of_week": 7, "open_time": "10:00", "close_time": "14:00", "is_available": "1"},
		{"DayOfWeek": 2, "OpenTime": "09:00", "CloseTime": "17:00", "IsAvailable": 0}
	]`))
	require.NoError(t, err)

	hours, err := BusinessHoursList(records)
	require.NoError(t, err)
	require.Len(t, hours, 3)

	assert.Equal(t, domain.BusinessHours{DayOfWeek: 1, OpenTime: "09:00:00", CloseTime: "17:00:00", IsAvailable: true}, hours[0])
	assert.Equal(t, 7, hours[1].DayOfWeek)
	assert.True(t, hours[1].IsAvailable)
	assert.False(t, hours[2].IsAvailable)
}

func TestBusinessHours_DayOutOfRange(t *testing.T) {
	_, err := BusinessHours(Record{"DayOfWeek": float64(9)})
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestDecodeRecords_Malformed(t *testing.T) {
	_, err := DecodeRecords([]byte(`{"not": "an array"}`))
	assert.ErrorIs(t, err, ErrDecode)
}
