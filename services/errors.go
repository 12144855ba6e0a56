package services

import "errors"

// ServiceError is a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

// ErrInvalidAmount marks a stored totalAmount string that could not be
// parsed as currency. An order must fail on it rather than charge zero.
var ErrInvalidAmount = errors.New("invalid amount string")

// ErrNoTransactions is returned when the gateway has no payments to report.
var ErrNoTransactions = errors.New("no transactions found")

// ErrNoCharges is returned when the latest payment intent exists but
// carries no charge yet.
var ErrNoCharges = errors.New("no charges found for the latest transaction")
