package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP status codes used across handlers and services.
const (
	// Success (2xx)
	StatusOK        = 200
	StatusCreated   = 201
	StatusNoContent = 204

	// Client errors (4xx)
	StatusBadRequest      = 400
	StatusUnauthorized    = 401
	StatusForbidden       = 403
	StatusNotFound        = 404
	StatusConflict        = 409
	StatusTooManyRequests = 429

	// Server errors (5xx)
	StatusInternalServerError = 500
	StatusServiceUnavailable  = 503
)

// Response messages.
const (
	MsgSuccess = "Operation completed successfully"
	MsgCreated = "Resource created successfully"

	MsgBadRequest         = "Invalid request"
	MsgUnauthorized       = "Authentication required"
	MsgForbidden          = "Access denied"
	MsgNotFound           = "Resource not found"
	MsgConflict           = "Resource conflict"
	MsgTooManyRequests    = "Too many requests, please try again later"
	MsgInternalError      = "Internal server error"
	MsgServiceUnavailable = "Service unavailable"

	MsgTokenMissing = "Missing authentication token"
	MsgTokenInvalid = "Invalid authentication token"
	MsgTokenExpired = "Authentication token has expired"

	MsgValidationError = "Request data failed validation"
	MsgDatabaseError   = "Database operation failed"
)

// ErrorCode identifies a class of error. The Code string is what clients
// see in error responses; Category/SubCategory are for logs.
type ErrorCode struct {
	Code        string
	Category    string
	SubCategory string
	Description string
}

var (
	// System (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Unexpected internal error",
	}

	// Authentication (AUTH_xxx)
	ErrCodeAuthToken = ErrorCode{
		Code:        "AUTH_001",
		Category:    "Authentication",
		SubCategory: "Token",
		Description: "Token missing, invalid or expired",
	}

	ErrCodeAuthCredentials = ErrorCode{
		Code:        "AUTH_002",
		Category:    "Authentication",
		SubCategory: "Credentials",
		Description: "Invalid login credentials",
	}

	// Validation (VAL_xxx)
	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Request body or parameters failed validation",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Malformed request data",
	}

	// Database (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "General database error",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Database connection error",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Database query error",
	}

	// Business (BIZ_xxx)
	ErrCodeBusinessState = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "State",
		Description: "Operation not valid for the current state",
	}

	ErrCodeBusinessOperation = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Operation",
		Description: "Operation rejected by business rules",
	}
)

// Error is the error type every layer of the API returns. StatusCode is
// the HTTP status the handler layer responds with.
type Error struct {
	Code       ErrorCode
	Message    string
	StatusCode int
	Details    any
}

func (e *Error) Error() string {
	return e.Message
}

// Is supports errors.Is against sentinel *Error values by comparing the
// error code and message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code.Code == t.Code.Code && e.Message == t.Message
}

// NewError builds an *Error with the full set of fields.
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Sentinel errors. Services return these (or wrap them with NewError and
// extra details); handlers map them to HTTP responses.
var (
	// Authentication
	ErrInvalidCredentials = NewError(ErrCodeAuthCredentials, "Invalid username or password", StatusUnauthorized, nil)
	ErrTokenExpired       = NewError(ErrCodeAuthToken, MsgTokenExpired, StatusUnauthorized, nil)
	ErrTokenInvalid       = NewError(ErrCodeAuthToken, MsgTokenInvalid, StatusUnauthorized, nil)
	ErrTokenMissing       = NewError(ErrCodeAuthToken, MsgTokenMissing, StatusUnauthorized, nil)

	// Validation
	ErrInvalidInput  = NewError(ErrCodeValidationInput, MsgValidationError, StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, "Malformed request data", StatusBadRequest, nil)
	ErrInvalidID     = NewError(ErrCodeValidationFormat, "Invalid document id", StatusBadRequest, nil)

	// Database
	ErrNotFound   = NewError(ErrCodeDatabaseQuery, MsgNotFound, StatusNotFound, nil)
	ErrDuplicate  = NewError(ErrCodeDatabaseQuery, "Resource already exists", StatusConflict, nil)
	ErrConnection = NewError(ErrCodeDatabaseConnection, MsgServiceUnavailable, StatusServiceUnavailable, nil)

	// Business
	ErrInvalidState     = NewError(ErrCodeBusinessState, "Invalid state for this operation", StatusBadRequest, nil)
	ErrInvalidOperation = NewError(ErrCodeBusinessOperation, "Operation not allowed", StatusBadRequest, nil)
)

// Mongo driver errors mapped onto the taxonomy.
var (
	ErrMongoConnection = NewError(ErrCodeDatabaseConnection, "MongoDB connection failed", StatusServiceUnavailable, nil)
	ErrMongoNetwork    = NewError(ErrCodeDatabaseConnection, "MongoDB network error", StatusServiceUnavailable, nil)
	ErrMongoTimeout    = NewError(ErrCodeDatabaseConnection, "MongoDB operation timed out", StatusServiceUnavailable, nil)
	ErrMongoDuplicate  = NewError(ErrCodeDatabaseQuery, "Duplicate value for a unique field", StatusConflict, nil)
	ErrMongoQuery      = NewError(ErrCodeDatabaseQuery, MsgDatabaseError, StatusInternalServerError, nil)
)

// ConvertMongoError maps a mongo driver error onto the taxonomy.
// Errors already carrying taxonomy information pass through untouched so
// services can pre-translate (e.g. ErrNoDocuments to ErrNotFound) without
// double wrapping.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrMongoDuplicate
	}
	if mongo.IsNetworkError(err) {
		return ErrMongoNetwork
	}
	if mongo.IsTimeout(err) {
		return ErrMongoTimeout
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return NewError(ErrCodeDatabaseQuery, MsgDatabaseError, StatusInternalServerError, cmdErr.Message)
	}

	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err.Error())
}

// StatusCodeOf extracts the HTTP status for an error, defaulting to 500.
func StatusCodeOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.StatusCode != 0 {
		return appErr.StatusCode
	}
	return StatusInternalServerError
}
