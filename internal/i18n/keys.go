// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	KeyInternalError = "internal_error"
	KeyRateLimited   = "rate_limited"

	// Products
	KeyProductNotFound     = "product.not_found"
	KeyProductInvalidID    = "product.invalid_id"
	KeyProductInvalidPrice = "product.invalid_price_filter"

	// Validation
	KeyValidationInvalid = "validation.invalid"
	KeyInvalidRequest    = "validation.invalid_request"

	// Health
	KeyHealthUnavailable = "health.unavailable"
)
