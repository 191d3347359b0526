package dto

import "net/http"

// Transport-level error codes. Domain errors keep the codes the domain
// assigns; these cover failures that never reach the domain.
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes absent from the map fall through to 500 so an unmapped new code
// shows up loudly instead of masquerading as a client fault.
var errorCodeHTTPStatus = map[string]int{
	// Resource errors
	"NOT_FOUND":             http.StatusNotFound,
	"INSTALLMENT_NOT_FOUND": http.StatusNotFound,
	"ALREADY_EXISTS":        http.StatusConflict,
	"DUPLICATE_IMEI":        http.StatusConflict,
	"CONCURRENCY_CONFLICT":  http.StatusConflict,

	// Input errors -> 400 Bad Request
	ErrCodeBadRequest:           http.StatusBadRequest,
	"INVALID_INPUT":             http.StatusBadRequest,
	"INVALID_AMOUNT":            http.StatusBadRequest,
	"INVALID_CONDITION":         http.StatusBadRequest,
	"INVALID_CUSTOMER":          http.StatusBadRequest,
	"INVALID_EXPIRY":            http.StatusBadRequest,
	"INVALID_IMEI":              http.StatusBadRequest,
	"INVALID_INSTALLMENT_COUNT": http.StatusBadRequest,
	"INVALID_MODE":              http.StatusBadRequest,
	"INVALID_MODEL":             http.StatusBadRequest,
	"INVALID_NAME":              http.StatusBadRequest,
	"INVALID_ORIGIN":            http.StatusBadRequest,
	"INVALID_PRICING_MODE":      http.StatusBadRequest,
	"INVALID_RUT":               http.StatusBadRequest,
	"INVALID_STATUS":            http.StatusBadRequest,
	"INVALID_SUPPLIER":          http.StatusBadRequest,
	"INVALID_SUPPLIER_NAME":     http.StatusBadRequest,
	"INVALID_UNIT":              http.StatusBadRequest,
	"MISSING_WIRE_REFERENCE":    http.StatusBadRequest,
	"NON_POSITIVE_TOTAL":        http.StatusBadRequest,
	"UNKNOWN_MODEL":             http.StatusBadRequest,

	// Business rule errors -> 422 Unprocessable Entity
	"INVALID_STATE":            http.StatusUnprocessableEntity,
	"INSTALLMENT_ALREADY_PAID": http.StatusUnprocessableEntity,
	"EXCEEDS_INSTALLMENT":      http.StatusUnprocessableEntity,
	"WRONG_PAYMENT_MODE":       http.StatusUnprocessableEntity,
	"SCHEDULE_HAS_PAYMENTS":    http.StatusUnprocessableEntity,
	"UNIT_NOT_AVAILABLE":       http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Returns 500 Internal Server Error if the error code is not mapped.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
