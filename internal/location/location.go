// Package location normalises addresses into the "City, Province" form shown on
// vendor profiles and resolves the province used for sales tax.
package location

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/planbeau/booking-service/internal/domain"
)

// Google Places address component types
const (
	TypeLocality      = "locality"
	TypePostalTown    = "postal_town"
	TypeSublocality   = "sublocality"
	TypeAdminLevel1   = "administrative_area_level_1"
	TypeAdminLevel2   = "administrative_area_level_2"
	TypeCountry       = "country"
	displaySeparator  = ", "
	countryCanadaName = "canada"
)

// cityTypes in priority order
var cityTypes = []string{TypeLocality, TypePostalTown, TypeSublocality, TypeAdminLevel2}

// AddressComponent is one component of a geocoder response
type AddressComponent struct {
	LongName  string
	ShortName string
	Types     []string
}

func (c AddressComponent) hasType(t string) bool {
	for _, ct := range c.Types {
		if ct == t {
			return true
		}
	}
	return false
}

// Location is a city and a province (full name or abbreviation)
type Location struct {
	City     string
	Province string
}

// IsZero reports whether neither part is known
func (l Location) IsZero() bool {
	return l.City == "" && l.Province == ""
}

// Display renders "City, Province". Abbreviations are expanded and empty parts omitted.
func (l Location) Display() string {
	parts := make([]string, 0, 2)
	if city := strings.TrimSpace(l.City); city != "" {
		parts = append(parts, city)
	}
	if province := strings.TrimSpace(l.Province); province != "" {
		if p, ok := domain.LookupProvince(province); ok {
			province = p.Name
		}
		parts = append(parts, province)
	}
	return strings.Join(parts, displaySeparator)
}

// ProvinceCode returns the two-letter code of the province, if it is known
func (l Location) ProvinceCode() (string, bool) {
	p, ok := domain.LookupProvince(l.Province)
	if !ok {
		return "", false
	}
	return p.Code, true
}

// FromAddressComponents builds a location from geocoder components
func FromAddressComponents(components []AddressComponent) Location {
	var loc Location

	for _, t := range cityTypes {
		if c, ok := findComponent(components, t); ok {
			loc.City = c.LongName
			break
		}
	}

	if c, ok := findComponent(components, TypeAdminLevel1); ok {
		loc.Province = c.LongName
		if loc.Province == "" {
			loc.Province = c.ShortName
		}
	}

	return loc
}

func findComponent(components []AddressComponent, t string) (AddressComponent, bool) {
	for _, c := range components {
		if c.hasType(t) && (c.LongName != "" || c.ShortName != "") {
			return c, true
		}
	}
	return AddressComponent{}, false
}

// FromProfile builds a location from stored profile fields
func FromProfile(city, province string) Location {
	return Location{
		City:     strings.TrimSpace(city),
		Province: strings.TrimSpace(province),
	}
}

// provinceKeywords extra lowercase keywords besides the official name
var provinceKeywords = map[string][]string{
	"NL": {"newfoundland", "labrador"},
	"PE": {"pei", "p.e.i."},
	"QC": {"québec"},
	"YT": {"yukon territory"},
}

// ResolveProvince finds the single province mentioned in free text.
// Names match case-insensitively; abbreviations only as upper-case whole tokens.
// Zero or several distinct matches report false, callers fall back to a default.
func ResolveProvince(text string) (domain.Province, bool) {
	if strings.TrimSpace(text) == "" {
		return domain.Province{}, false
	}

	matches := matchProvinces(text)
	if len(matches) != 1 {
		return domain.Province{}, false
	}
	for code := range matches {
		return domain.LookupProvince(code)
	}
	return domain.Province{}, false
}

// ResolveProvinceOrDefault returns the resolved province or the default one
func ResolveProvinceOrDefault(text, defaultCode string) domain.Province {
	if p, ok := ResolveProvince(text); ok {
		return p
	}
	return domain.DefaultProvince(defaultCode)
}

func matchProvinces(text string) map[string]struct{} {
	matches := make(map[string]struct{})
	lower := strings.ToLower(text)

	for _, p := range domain.Provinces {
		if strings.Contains(lower, strings.ToLower(p.Name)) {
			matches[p.Code] = struct{}{}
			continue
		}
		for _, kw := range provinceKeywords[p.Code] {
			if containsWord(lower, kw) {
				matches[p.Code] = struct{}{}
				break
			}
		}
	}

	for _, token := range tokens(text) {
		if len(token) != 2 || strings.ToUpper(token) != token {
			continue
		}
		if p, ok := domain.LookupProvince(token); ok {
			matches[p.Code] = struct{}{}
		}
	}

	return matches
}

func tokens(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

func containsWord(lower, word string) bool {
	offset := 0
	for {
		idx := strings.Index(lower[offset:], word)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(word)

		prev, _ := utf8.DecodeLastRuneInString(lower[:start])
		next, _ := utf8.DecodeRuneInString(lower[end:])
		if (start == 0 || !unicode.IsLetter(prev)) && (end == len(lower) || !unicode.IsLetter(next)) {
			return true
		}
		offset = start + 1
	}
}

// ParseFreeText extracts a location from an address typed by the user,
// e.g. "100 Queen St W, Toronto, ON M5H 2N2, Canada"
func ParseFreeText(text string) Location {
	parts := make([]string, 0)
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" || strings.ToLower(part) == countryCanadaName {
			continue
		}
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		return Location{}
	}

	for i := len(parts) - 1; i >= 0; i-- {
		p, ok := ResolveProvince(parts[i])
		if !ok {
			continue
		}
		loc := Location{Province: p.Name}
		if i > 0 {
			loc.City = parts[i-1]
		}
		return loc
	}

	// Провинция не найдена: городом считаем последнюю часть без цифр
	for i := len(parts) - 1; i >= 0; i-- {
		if !strings.ContainsFunc(parts[i], unicode.IsDigit) {
			return Location{City: parts[i]}
		}
	}
	return Location{}
}
