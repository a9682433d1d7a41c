package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveProvince(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantCode string
		wantOK   bool
	}{
		{name: "full_name", text: "Toronto, Ontario", wantCode: "ON", wantOK: true},
		{name: "full_name_lowercase", text: "banff, alberta", wantCode: "AB", wantOK: true},
		{name: "abbreviation_token", text: "100 Queen St W, Toronto, ON M5H 2N2", wantCode: "ON", wantOK: true},
		{name: "two_word_name", text: "Victoria, British Columbia", wantCode: "BC", wantOK: true},
		{name: "accented_keyword", text: "Ville de Québec", wantCode: "QC", wantOK: true},
		{name: "keyword_newfoundland", text: "St. John's, Newfoundland", wantCode: "NL", wantOK: true},
		{name: "lowercase_abbreviation_ignored", text: "party on the lake", wantOK: false},
		{name: "unknown", text: "Somewhere over the rainbow", wantOK: false},
		{name: "empty", text: "   ", wantOK: false},
		{name: "ambiguous", text: "Ontario Street, Vancouver, BC", wantOK: false},
		{name: "keyword_inside_word_ignored", text: "Speirs Hall", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := ResolveProvince(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantCode, p.Code)
			}
		})
	}
}

func TestResolveProvinceOrDefault(t *testing.T) {
	p := ResolveProvinceOrDefault("Toronto, Ontario", "BC")
	assert.Equal(t, "ON", p.Code)
	assert.InDelta(t, 0.13, p.TaxRate, 1e-9)
	assert.Equal(t, "HST (13%)", p.TaxLabel)

	p = ResolveProvinceOrDefault("Nowhere", "BC")
	assert.Equal(t, "BC", p.Code)

	p = ResolveProvinceOrDefault("Nowhere", "XX")
	assert.Equal(t, "ON", p.Code)
}

func TestLocation_Display(t *testing.T) {
	tests := []struct {
		name string
		loc  Location
		want string
	}{
		{name: "city_and_code", loc: FromProfile("Toronto", "ON"), want: "Toronto, Ontario"},
		{name: "city_and_name", loc: FromProfile(" Halifax ", "Nova Scotia"), want: "Halifax, Nova Scotia"},
		{name: "only_city", loc: FromProfile("Calgary", ""), want: "Calgary"},
		{name: "only_province", loc: FromProfile("", "qc"), want: "Quebec"},
		{name: "unknown_province_kept", loc: FromProfile("Seattle", "WA"), want: "Seattle, WA"},
		{name: "empty", loc: Location{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.loc.Display())
		})
	}
}

func TestFromAddressComponents(t *testing.T) {
	components := []AddressComponent{
		{LongName: "100", ShortName: "100", Types: []string{"street_number"}},
		{LongName: "Old Toronto", ShortName: "Old Toronto", Types: []string{"sublocality", "political"}},
		{LongName: "Toronto", ShortName: "Toronto", Types: []string{"locality", "political"}},
		{LongName: "Ontario", ShortName: "ON", Types: []string{"administrative_area_level_1", "political"}},
		{LongName: "Canada", ShortName: "CA", Types: []string{"country", "political"}},
	}

	loc := FromAddressComponents(components)
	assert.Equal(t, Location{City: "Toronto", Province: "Ontario"}, loc)
	assert.Equal(t, "Toronto, Ontario", loc.Display())

	code, ok := loc.ProvinceCode()
	require.True(t, ok)
	assert.Equal(t, "ON", code)
}

func TestFromAddressComponents_CityFallbacks(t *testing.T) {
	loc := FromAddressComponents([]AddressComponent{
		{LongName: "Kings County", Types: []string{"administrative_area_level_2"}},
		{LongName: "", ShortName: "NS", Types: []string{"administrative_area_level_1"}},
	})
	assert.Equal(t, "Kings County", loc.City)
	assert.Equal(t, "NS", loc.Province)
	assert.Equal(t, "Kings County, Nova Scotia", loc.Display())

	assert.True(t, FromAddressComponents(nil).IsZero())
}

func TestParseFreeText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Location
	}{
		{name: "full_address", text: "100 Queen St W, Toronto, ON M5H 2N2, Canada", want: Location{City: "Toronto", Province: "Ontario"}},
		{name: "city_province", text: "Montreal, Quebec", want: Location{City: "Montreal", Province: "Quebec"}},
		{name: "province_only", text: "Alberta", want: Location{Province: "Alberta"}},
		{name: "no_province", text: "12 Main St, Springfield", want: Location{City: "Springfield"}},
		{name: "blank", text: " , ", want: Location{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFreeText(tt.text))
		})
	}
}
