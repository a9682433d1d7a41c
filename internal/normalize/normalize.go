// Package normalize maps loosely shaped vendor payloads into canonical domain records.
//
// Catalog payloads reach the service from several producers that disagree on field
// names (PackageName vs name, ServiceID vs VendorServiceID vs id, PriceType vs
// pricingModel). Everything is folded here, once, so the rest of the code only sees
// domain.Offering and domain.BusinessHours.
package normalize

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/planbeau/booking-service/internal/domain"
)

var (
	ErrInvalidRecord = errors.New("normalize: invalid record")
	ErrDecode        = errors.New("normalize: failed to decode payload")
)

// Record is a single JSON object with unknown field naming
type Record map[string]any

// Field alias chains, in priority order
var (
	packageIDKeys   = []string{"PackageID", "package_id", "id"}
	serviceIDKeys   = []string{"ServiceID", "VendorServiceID", "vendor_service_id", "service_id", "id"}
	nameKeys        = []string{"PackageName", "ServiceName", "name", "title"}
	priceKeys       = []string{"Price", "BasePrice", "base_price", "amount"}
	baseRateKeys    = []string{"BaseRate", "base_rate", "HourlyRate", "hourly_rate"}
	salePriceKeys   = []string{"SalePrice", "sale_price"}
	pricingKeys     = []string{"PriceType", "PricingModel", "pricing_model", "price_type"}
	minAttKeys      = []string{"MinAttendees", "min_attendees", "MinGuests"}
	maxAttKeys      = []string{"MaxAttendees", "max_attendees", "MaxGuests"}
	durationKeys    = []string{"DurationMinutes", "duration_minutes", "Duration", "duration"}
	vendorIDKeys    = []string{"VendorProfileID", "VendorID", "vendor_id"}
	dayOfWeekKeys   = []string{"DayOfWeek", "day_of_week", "day"}
	openTimeKeys    = []string{"OpenTime", "open_time", "open"}
	closeTimeKeys   = []string{"CloseTime", "close_time", "close"}
	isAvailableKeys = []string{"IsAvailable", "is_available", "available", "IsOpen"}
)

// Offering converts one package or service record
func Offering(kind domain.OfferingKind, r Record) (domain.Offering, error) {
	idKeys := serviceIDKeys
	if kind == domain.KindPackage {
		idKeys = packageIDKeys
	}

	id, ok := r.asInt64(idKeys...)
	if !ok || id <= 0 {
		return domain.Offering{}, fmt.Errorf("%w: %s has no positive id", ErrInvalidRecord, kind)
	}

	o := domain.Offering{
		ID:           id,
		Kind:         kind,
		Name:         r.asString(nameKeys...),
		PricingModel: domain.ParsePricingModel(r.asString(pricingKeys...)),
	}
	for _, keys := range [][]string{priceKeys, baseRateKeys, salePriceKeys} {
		if f, ok := r.rawFloat(keys...); ok && !isFinite(f) {
			return domain.Offering{}, fmt.Errorf("%w: %s id=%d has a non-finite price", ErrInvalidRecord, kind, id)
		}
	}

	o.VendorID, _ = r.asInt64(vendorIDKeys...)
	o.Price, _ = r.asFloat(priceKeys...)
	o.BaseRate, _ = r.asFloat(baseRateKeys...)

	if sale, ok := r.asFloat(salePriceKeys...); ok && sale > 0 {
		o.SalePrice = &sale
	}
	if v, ok := r.asInt(minAttKeys...); ok && v > 0 {
		o.MinAttendees = &v
	}
	if v, ok := r.asInt(maxAttKeys...); ok && v > 0 {
		o.MaxAttendees = &v
	}
	if v, ok := r.asInt(durationKeys...); ok && v > 0 {
		o.DurationMinutes = &v
	}

	if o.Price < 0 || o.BaseRate < 0 {
		return domain.Offering{}, fmt.Errorf("%w: %s id=%d has a negative price", ErrInvalidRecord, kind, id)
	}

	return o, nil
}

// Offerings converts a list of records of the same kind
func Offerings(kind domain.OfferingKind, records []Record) ([]domain.Offering, error) {
	result := make([]domain.Offering, 0, len(records))
	for i, r := range records {
		o, err := Offering(kind, r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		result = append(result, o)
	}
	return result, nil
}

// BusinessHours converts one schedule record. Open and close times are kept raw,
// the slot generator understands every accepted representation.
func BusinessHours(r Record) (domain.BusinessHours, error) {
	day, ok := r.asInt(dayOfWeekKeys...)
	if !ok || day < 0 || day > domain.SundayAltIndex {
		return domain.BusinessHours{}, fmt.Errorf("%w: day of week must be in 0..7", ErrInvalidRecord)
	}

	h := domain.BusinessHours{
		DayOfWeek: day,
		OpenTime:  r.asString(openTimeKeys...),
		CloseTime: r.asString(closeTimeKeys...),
	}
	h.VendorID, _ = r.asInt64(vendorIDKeys...)
	h.IsAvailable = r.asBool(isAvailableKeys...)

	return h, nil
}

// BusinessHoursList converts a weekly schedule
func BusinessHoursList(records []Record) ([]domain.BusinessHours, error) {
	result := make([]domain.BusinessHours, 0, len(records))
	for i, r := range records {
		h, err := BusinessHours(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		result = append(result, h)
	}
	return result, nil
}

// DecodeRecords parses a JSON array of objects, keeping numbers exact
func DecodeRecords(data []byte) ([]Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var records []Record
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return records, nil
}

// lookup returns the first present, non-null value among keys.
// Keys are matched case-insensitively.
func (r Record) lookup(keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := r[key]; ok && v != nil {
			return v, true
		}
		for k, v := range r {
			if v != nil && strings.EqualFold(k, key) {
				return v, true
			}
		}
	}
	return nil, false
}

func (r Record) asString(keys ...string) string {
	v, ok := r.lookup(keys...)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// asFloat отбрасывает NaN и бесконечности
func (r Record) asFloat(keys ...string) (float64, bool) {
	f, ok := r.rawFloat(keys...)
	if !ok || !isFinite(f) {
		return 0, false
	}
	return f, true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (r Record) rawFloat(keys ...string) (float64, bool) {
	v, ok := r.lookup(keys...)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		// Цены из некоторых источников приходят строкой: "150.00", "$1,200"
		cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(t)
		if cleaned == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func (r Record) asInt64(keys ...string) (int64, bool) {
	f, ok := r.asFloat(keys...)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

func (r Record) asInt(keys ...string) (int, bool) {
	f, ok := r.asFloat(keys...)
	if !ok {
		return 0, false
	}
	return int(f), true
}

func (r Record) asBool(keys ...string) bool {
	v, ok := r.lookup(keys...)
	if !ok {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			return t == "1" || strings.EqualFold(t, "yes")
		}
		return b
	default:
		return false
	}
}
