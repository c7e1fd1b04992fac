// Package apperrors define a taxonomia de erros do MedSMS.
//
// Nenhum erro é fatal para o processo: toda falha é capturada na borda da
// action (controller) e vira notificação visível para o usuário. Falhas de
// validação são locais e não deixam efeito parcial; falhas de storage
// propagam sem retry automático.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError indica entrada obrigatória ausente ou inválida
type ValidationError struct {
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func NewValidationWithDetails(message string, details map[string]interface{}) *ValidationError {
	return &ValidationError{Message: message, Details: details}
}

// StorageError indica que o store subjacente está indisponível ou rejeitou
// a escrita. O chamador deve reexibir e deixar o usuário tentar de novo.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("erro de armazenamento em %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func NewStorage(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// ProviderError indica credencial ausente, falha de rede ou resposta
// improcessável de um provedor de IA. Não há fallback entre provedores.
type ProviderError struct {
	Provider string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error { return e.Err }

func NewProvider(provider, message string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Message: message, Err: err}
}

// NotFoundError indica que o identificador não corresponde a nenhum
// registro da coleção
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s não encontrado: %s", e.Resource, e.ID)
}

func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ImportFormatError indica arquivo de importação malformado; a importação
// inteira é abortada, sem aplicação parcial.
type ImportFormatError struct {
	Collection string
	Err        error
}

func (e *ImportFormatError) Error() string {
	return fmt.Sprintf("arquivo de importação inválido para %q: %v", e.Collection, e.Err)
}

func (e *ImportFormatError) Unwrap() error { return e.Err }

func NewImportFormat(collection string, err error) *ImportFormatError {
	return &ImportFormatError{Collection: collection, Err: err}
}

// HTTPStatus mapeia a taxonomia para o status HTTP da resposta de erro
func HTTPStatus(err error) int {
	var ve *ValidationError
	var nfe *NotFoundError
	var ife *ImportFormatError
	var pe *ProviderError
	var se *StorageError

	switch {
	case errors.As(err, &ve), errors.As(err, &ife):
		return http.StatusBadRequest
	case errors.As(err, &nfe):
		return http.StatusNotFound
	case errors.As(err, &pe):
		return http.StatusBadGateway
	case errors.As(err, &se):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
