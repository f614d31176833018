package adsetting

import (
	"fmt"

	"github.com/pkg/errors"
)

// Erros específicos para o controle de conjuntos de anúncios
var (
	// Erros de validação
	ErrNoAdSetIDs       = errors.New("no ad set ids provided")
	ErrInvalidStatus    = errors.New("invalid ad set status")
	ErrSearchQueryEmpty = errors.New("search query is required")

	// Erros de configuração
	ErrConfigurationIncomplete = errors.New("meta credentials are not configured")
)

// AdSetError é um erro com contexto adicional para a API
type AdSetError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *AdSetError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AdSetError) Unwrap() error {
	return e.Err
}

func NewAdSetError(err error, code string, details string) *AdSetError {
	return &AdSetError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
