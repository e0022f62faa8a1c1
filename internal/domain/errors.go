package domain

import (
	"errors"
	"fmt"
)

// Code identifica un error de dominio. El conjunto es cerrado: los llamadores
// comparan con errors.Is contra los valores Err* de este archivo.
type Code string

const (
	CodeAlreadyLogged         Code = "ALREADY_LOGGED"
	CodeNotLogged             Code = "NOT_LOGGED"
	CodeInvalidCredentials    Code = "INVALID_CREDENTIALS"
	CodeAccountInactive       Code = "ACCOUNT_INACTIVE"
	CodePermissionDenied      Code = "PERMISSION_DENIED"
	CodeInvalidPaymentMethod  Code = "INVALID_PAYMENT_METHOD"
	CodePaymentMethodInactive Code = "PAYMENT_METHOD_INACTIVE"
	CodeEmptySale             Code = "EMPTY_SALE"
	CodeProductNotFound       Code = "PRODUCT_NOT_FOUND"
	CodeProductInactive       Code = "PRODUCT_INACTIVE"
	CodeInvalidQuantity       Code = "INVALID_QUANTITY"
	CodeInsufficientStock     Code = "INSUFFICIENT_STOCK"
	CodeTransactionFailed     Code = "TRANSACTION_FAILED"
	CodeSessionUnavailable    Code = "SESSION_UNAVAILABLE"
	CodeTotalsMismatch        Code = "TOTALS_MISMATCH"
	CodeSaleNotFound          Code = "SALE_NOT_FOUND"
	CodeInvalidInput          Code = "INVALID_INPUT"
)

// Kind agrupa los códigos según lo que el llamador puede hacer con ellos.
type Kind int

const (
	// KindValidation: el llamador debe corregir la entrada.
	KindValidation Kind = iota
	// KindAuth: sesión, credenciales o permisos.
	KindAuth
	// KindTransient: reintentar más tarde (contención del candado de sesión).
	KindTransient
	// KindInternal: fallo de infraestructura durante la fase de escritura.
	KindInternal
)

// Error es un error de dominio con código estable y mensaje legible.
type Error struct {
	Code    Code
	Message string
	kind    Kind
}

func (e *Error) Error() string { return e.Message }

// Kind devuelve la clasificación del error.
func (e *Error) Kind() Kind { return e.kind }

func newError(code Code, kind Kind, msg string) *Error {
	return &Error{Code: code, Message: msg, kind: kind}
}

// Errores de dominio (sin dependencias externas).
var (
	ErrAlreadyLogged         = newError(CodeAlreadyLogged, KindAuth, "ya existe una sesión activa, cierre sesión primero")
	ErrNotLogged             = newError(CodeNotLogged, KindAuth, "no hay una sesión activa, inicie sesión")
	ErrInvalidCredentials    = newError(CodeInvalidCredentials, KindAuth, "usuario o contraseña incorrectos")
	ErrAccountInactive       = newError(CodeAccountInactive, KindAuth, "su cuenta está inactiva, contacte al administrador")
	ErrPermissionDenied      = newError(CodePermissionDenied, KindAuth, "no tiene permisos para realizar esta acción")
	ErrInvalidPaymentMethod  = newError(CodeInvalidPaymentMethod, KindValidation, "método de pago no válido")
	ErrPaymentMethodInactive = newError(CodePaymentMethodInactive, KindValidation, "el método de pago seleccionado no está disponible")
	ErrEmptySale             = newError(CodeEmptySale, KindValidation, "la venta debe tener al menos un producto")
	ErrProductNotFound       = newError(CodeProductNotFound, KindValidation, "producto no encontrado")
	ErrProductInactive       = newError(CodeProductInactive, KindValidation, "el producto no está disponible")
	ErrInvalidQuantity       = newError(CodeInvalidQuantity, KindValidation, "las cantidades deben ser positivas")
	ErrInsufficientStock     = newError(CodeInsufficientStock, KindValidation, "stock insuficiente")
	ErrTransactionFailed     = newError(CodeTransactionFailed, KindInternal, "no se pudo completar la venta, no se guardó ningún cambio")
	ErrSessionUnavailable    = newError(CodeSessionUnavailable, KindTransient, "la sesión está ocupada, intente nuevamente")
	ErrTotalsMismatch        = newError(CodeTotalsMismatch, KindValidation, "los totales no coinciden con el detalle de la venta")
	ErrSaleNotFound          = newError(CodeSaleNotFound, KindValidation, "venta no encontrada")
	ErrInvalidInput          = newError(CodeInvalidInput, KindValidation, "entrada inválida")
)

// AsError extrae el *Error de una cadena de errores. ok es false si err no es de dominio.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// ProductError asocia un error de producto (no encontrado, inactivo, cantidad) con el ID de la línea.
type ProductError struct {
	Err       *Error
	ProductID int64
	Name      string
}

func (e *ProductError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: '%s'", e.Err.Message, e.Name)
	}
	return fmt.Sprintf("%s (producto %d)", e.Err.Message, e.ProductID)
}

func (e *ProductError) Unwrap() error { return e.Err }

// InsufficientStockError reporta disponible vs. solicitado para un producto.
type InsufficientStockError struct {
	ProductID int64
	Name      string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para '%s'. Disponible: %d, Solicitado: %d", e.Name, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// TransactionError envuelve la causa de infraestructura de una transacción fallida.
// errors.Is(err, ErrTransactionFailed) es true; la causa queda disponible para logs.
type TransactionError struct {
	Cause error
}

func (e *TransactionError) Error() string {
	return ErrTransactionFailed.Message
}

func (e *TransactionError) Unwrap() []error { return []error{ErrTransactionFailed, e.Cause} }

// NewTransactionError construye el error único que se expone ante fallos de escritura.
func NewTransactionError(cause error) error {
	return &TransactionError{Cause: cause}
}
