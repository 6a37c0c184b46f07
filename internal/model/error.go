package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeMissingField       = "MISSING_FIELD"
	ErrCodeInvalidValue       = "INVALID_VALUE"
	ErrCodeInvalidPrice       = "INVALID_PRICE"
	ErrCodeInvalidQuantity    = "INVALID_QUANTITY"
	ErrCodeProductUnavailable = "PRODUCT_UNAVAILABLE"
	ErrCodeInsufficientMoney  = "INSUFFICIENT_MONEY"
	ErrCodeInsufficientChange = "INSUFFICIENT_CHANGE"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors. Operations wrap these with context, so match them
// with errors.Is.
var (
	ErrInvalidValue       = NewDomainError(ErrCodeInvalidValue, "Coin value is not an accepted denomination")
	ErrInvalidPrice       = NewDomainError(ErrCodeInvalidPrice, "Price must be a positive amount in minor units")
	ErrInvalidQuantity    = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrMissingField       = NewDomainError(ErrCodeMissingField, "A required field is missing")
	ErrProductUnavailable = NewDomainError(ErrCodeProductUnavailable, "Product is currently unavailable")
	ErrInsufficientMoney  = NewDomainError(ErrCodeInsufficientMoney, "Inserted money does not cover the product price")
	ErrInsufficientChange = NewDomainError(ErrCodeInsufficientChange, "There is not enough change in the machine")
)
