package domain

import (
	"errors"
	"fmt"
)

// Nomes dos serviços de origem, usados em DependencyError e nos logs
const (
	ServiceSales        = "sales"
	ServiceCostImporter = "cost-importer"
)

var (
	ErrInvalidDateRange = errors.New("startDate must be before or equal to endDate")
	ErrMissingDate      = errors.New("date is required")
	ErrInvalidDate      = errors.New("date must be ISO-8601")
)

// ValidationError representa uma consulta malformada ou logicamente inválida.
// Nunca é re-tentada e vira 4xx para o cliente.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field != "" && !errors.Is(e.Err, ErrInvalidDateRange) {
		return fmt.Sprintf("%s: %s", e.Field, e.Err.Error())
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

// DependencyError indica falha em um serviço upstream (vendas ou custos)
type DependencyError struct {
	Service string
	Err     error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s service: %s", e.Service, e.Err.Error())
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

func NewDependencyError(service string, err error) *DependencyError {
	return &DependencyError{Service: service, Err: err}
}

// IsValidationError verifica se o erro (ou algum erro encadeado) é de validação
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// AsDependencyError extrai o DependencyError da cadeia, se existir
func AsDependencyError(err error) (*DependencyError, bool) {
	var depErr *DependencyError
	if errors.As(err, &depErr) {
		return depErr, true
	}
	return nil, false
}
