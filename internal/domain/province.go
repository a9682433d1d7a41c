package domain

import "strings"

// Province is a Canadian province or territory with its combined sales tax
type Province struct {
	Code     string
	Name     string
	TaxRate  float64
	TaxLabel string
}

// Provinces static sales tax table
var Provinces = []Province{
	{Code: "AB", Name: "Alberta", TaxRate: 0.05, TaxLabel: "GST (5%)"},
	{Code: "BC", Name: "British Columbia", TaxRate: 0.12, TaxLabel: "GST + PST (12%)"},
	{Code: "MB", Name: "Manitoba", TaxRate: 0.12, TaxLabel: "GST + PST (12%)"},
	{Code: "NB", Name: "New Brunswick", TaxRate: 0.15, TaxLabel: "HST (15%)"},
	{Code: "NL", Name: "Newfoundland and Labrador", TaxRate: 0.15, TaxLabel: "HST (15%)"},
	{Code: "NS", Name: "Nova Scotia", TaxRate: 0.14, TaxLabel: "HST (14%)"},
	{Code: "NT", Name: "Northwest Territories", TaxRate: 0.05, TaxLabel: "GST (5%)"},
	{Code: "NU", Name: "Nunavut", TaxRate: 0.05, TaxLabel: "GST (5%)"},
	{Code: "ON", Name: "Ontario", TaxRate: 0.13, TaxLabel: "HST (13%)"},
	{Code: "PE", Name: "Prince Edward Island", TaxRate: 0.15, TaxLabel: "HST (15%)"},
	{Code: "QC", Name: "Quebec", TaxRate: 0.14975, TaxLabel: "GST + QST (14.975%)"},
	{Code: "SK", Name: "Saskatchewan", TaxRate: 0.11, TaxLabel: "GST + PST (11%)"},
	{Code: "YT", Name: "Yukon", TaxRate: 0.05, TaxLabel: "GST (5%)"},
}

// LookupProvince finds a province by code or full name (case-insensitive)
func LookupProvince(value string) (Province, bool) {
	value = strings.TrimSpace(value)
	for _, p := range Provinces {
		if strings.EqualFold(p.Code, value) || strings.EqualFold(p.Name, value) {
			return p, true
		}
	}
	return Province{}, false
}

// DefaultProvince returns the province for code, or Ontario if code is unknown
func DefaultProvince(code string) Province {
	if p, ok := LookupProvince(code); ok {
		return p
	}
	p, _ := LookupProvince(DefaultProvinceCode)
	return p
}
