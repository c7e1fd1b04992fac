package seeds

import "fmt"

// SeedingError representa um erro de seeding
type SeedingError struct {
	Message string                 `json:"message"`
	Type    string                 `json:"type"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error implementa a interface error
func (e *SeedingError) Error() string {
	return e.Message
}

// NewSeedingError cria um novo erro de seeding
func NewSeedingError(message, errorType string, details map[string]interface{}) *SeedingError {
	return &SeedingError{
		Message: message,
		Type:    errorType,
		Details: details,
	}
}

// Erros predefinidos do seeding
var (
	ErrCountFailed = func(collection string, err error) error {
		return NewSeedingError(
			fmt.Sprintf("falha ao contar a coleção %s: %v", collection, err),
			"count_error",
			map[string]interface{}{"collection": collection, "error": err.Error()},
		)
	}

	ErrSeedWrite = func(collection string, err error) error {
		return NewSeedingError(
			fmt.Sprintf("falha ao popular a coleção %s: %v", collection, err),
			"seed_write_error",
			map[string]interface{}{"collection": collection, "error": err.Error()},
		)
	}
)
