package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusAgendado.Valid())
	assert.True(t, StatusCanceladoMedico.Valid())
	assert.False(t, AppointmentStatus("confirmado").Valid())
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusAgendado.IsTerminal())
	assert.False(t, StatusEmEspera.IsTerminal())
	assert.True(t, StatusAtendido.IsTerminal())
	assert.True(t, StatusNaoCompareceu.IsTerminal())
	assert.True(t, StatusCanceladoPaciente.IsTerminal())
	assert.True(t, StatusCanceladoMedico.IsTerminal())
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusAgendado.CanTransitionTo(StatusEmEspera))
	assert.True(t, StatusAgendado.CanTransitionTo(StatusAtendido))
	assert.True(t, StatusAgendado.CanTransitionTo(StatusNaoCompareceu))
	assert.True(t, StatusEmEspera.CanTransitionTo(StatusAtendido))
	assert.True(t, StatusEmEspera.CanTransitionTo(StatusNaoCompareceu))

	// Nunca para trás
	assert.False(t, StatusEmEspera.CanTransitionTo(StatusAgendado))

	// Cancelamentos não são transições diretas
	assert.False(t, StatusAgendado.CanTransitionTo(StatusCanceladoPaciente))
	assert.False(t, StatusEmEspera.CanTransitionTo(StatusCanceladoMedico))

	// Nada sai de um status terminal
	assert.False(t, StatusAtendido.CanTransitionTo(StatusEmEspera))
	assert.False(t, StatusCanceladoPaciente.CanTransitionTo(StatusAgendado))
}

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "Cancelado (Equipe)", StatusLabels[StatusCanceladoMedico])
	assert.Equal(t, "Cancelado (Paciente)", StatusLabels[StatusCanceladoPaciente])
	assert.Equal(t, "Não Compareceu", StatusLabels[StatusNaoCompareceu])
}
