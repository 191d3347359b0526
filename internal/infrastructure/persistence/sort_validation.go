package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// PayableSortFields contains allowed sort fields for supplier payables
var PayableSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"supplier_id":   true,
	"supplier_name": true,
	"target_cost":   true,
	"total_paid":    true,
	"outstanding":   true,
	"status":        true,
	"mode":          true,
}

// UnitSortFields contains allowed sort fields for units
var UnitSortFields = map[string]bool{
	"id":               true,
	"created_at":       true,
	"updated_at":       true,
	"imei":             true,
	"brand":            true,
	"model":            true,
	"condition":        true,
	"origin":           true,
	"acquisition_cost": true,
	"list_price_cash":  true,
	"status":           true,
	"sold_at":          true,
}

// TradeSortFields contains allowed sort fields for trade-ins and sales
var TradeSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"customer_id": true,
}

// PartnerSortFields contains allowed sort fields for customers and suppliers
var PartnerSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"rut":        true,
}
