package dna

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de Client DNA
var (
	// Erros de validação
	ErrDNAIDRequired         = errors.New("client DNA ID is required")
	ErrDNANotFound           = errors.New("client DNA not found")
	ErrMissingRequiredFields = errors.New("missing required fields")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")

	// Erros internos
	ErrGenerateID = errors.New("error generating ID")
)

// DNAError é um erro com contexto adicional para perfis de cliente
type DNAError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	DNAID   string // ID do DNA envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DNAError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *DNAError) Unwrap() error {
	return e.Err
}

// NewDNAError cria um novo DNAError
func NewDNAError(err error, code string, details string) *DNAError {
	return &DNAError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewDNAErrorWithID cria um novo DNAError com o ID do DNA
func NewDNAErrorWithID(err error, code string, dnaID string, details string) *DNAError {
	return &DNAError{
		Err:     err,
		Code:    code,
		DNAID:   dnaID,
		Details: details,
	}
}
