package errors

import (
	"net/http"

	"tienda/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. User-facing messages are in Spanish, matching the
// storefront the API serves.
var (
	// Client-related errors
	ErrClientNotFound = NewBaseError(
		http.StatusNotFound,
		"CLIENT_NOT_FOUND",
		"Cliente no encontrado",
		"",
	)

	ErrClientAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CLIENT_ALREADY_EXISTS",
		"Este correo electrónico ya está registrado",
		"",
	)

	ErrClientCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"CLIENT_CREATION_FAILED",
		"No se pudo crear el cliente",
		"",
	)

	ErrClientUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"CLIENT_UPDATE_FAILED",
		"No se pudo actualizar el cliente",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Credenciales incorrectas",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Token de sesión inválido o expirado",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Error al procesar la contraseña",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"La contraseña no cumple los requisitos de seguridad",
		"",
	)

	ErrCurrentPasswordMismatch = NewBaseError(
		http.StatusUnprocessableEntity,
		"CURRENT_PASSWORD_MISMATCH",
		"La contraseña actual es incorrecta",
		"",
	)

	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Producto no encontrado",
		"",
	)

	ErrTipoNotFound = NewBaseError(
		http.StatusNotFound,
		"TIPO_NOT_FOUND",
		"Tipo de producto no encontrado",
		"",
	)

	// Purchase-related errors
	ErrPurchaseNotFound = NewBaseError(
		http.StatusNotFound,
		"PURCHASE_NOT_FOUND",
		"Compra no encontrada",
		"",
	)

	ErrInvoiceNotFound = NewBaseError(
		http.StatusBadRequest,
		"INVOICE_NOT_FOUND",
		"La factura ha expirado o no existe",
		"",
	)

	ErrInvoiceExpired = NewBaseError(
		http.StatusBadRequest,
		"INVOICE_EXPIRED",
		"La factura ha expirado. Por favor, cree una nueva",
		"",
	)

	ErrEmptyInvoice = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_INVOICE",
		"Ningún producto del carrito está disponible",
		"",
	)

	// Password-reset errors
	ErrResetNotFound = NewBaseError(
		http.StatusNotFound,
		"RESET_NOT_FOUND",
		"No existe una solicitud de recuperación para este correo",
		"",
	)

	ErrResetExpired = NewBaseError(
		http.StatusBadRequest,
		"RESET_EXPIRED",
		"El código de recuperación ha expirado",
		"",
	)

	ErrResetCodeMismatch = NewBaseError(
		http.StatusUnprocessableEntity,
		"RESET_CODE_MISMATCH",
		"Código de verificación incorrecto",
		"",
	)

	ErrResetTokenMismatch = NewBaseError(
		http.StatusUnprocessableEntity,
		"RESET_TOKEN_MISMATCH",
		"Token de recuperación inválido",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"VALIDATION_FAILED",
		"Los datos enviados no son válidos",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Error en la transacción de base de datos",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acceso denegado",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso no encontrado",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Conflicto de recursos",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Error al ejecutar la consulta"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
