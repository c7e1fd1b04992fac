package apperrors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validação", NewValidation("campo obrigatório"), http.StatusBadRequest},
		{"importação", NewImportFormat("patients", fmt.Errorf("linha 2")), http.StatusBadRequest},
		{"não encontrado", NewNotFound("paciente", "p999"), http.StatusNotFound},
		{"provedor", NewProvider("gemini", "chave ausente", nil), http.StatusBadGateway},
		{"storage", NewStorage("put patients", fmt.Errorf("disk full")), http.StatusInternalServerError},
		{"desconhecido", fmt.Errorf("qualquer coisa"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestHTTPStatusUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("falha ao salvar: %w", NewValidation("nome obrigatório"))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(wrapped))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "nome obrigatório", NewValidation("nome obrigatório").Error())
	assert.Equal(t, "paciente não encontrado: p999", NewNotFound("paciente", "p999").Error())
	assert.Contains(t, NewImportFormat("patients", fmt.Errorf("linha 2")).Error(), "patients")
}
