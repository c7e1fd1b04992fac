package domain

// AppointmentStatus é a máquina de estados do agendamento:
//
//	agendado → em_espera → atendido
//	agendado | em_espera → nao_compareceu
//	agendado | em_espera → cancelado_paciente | cancelado_medico
//
// Os cancelamentos só são alcançáveis via registro de cancelamento (que
// exige motivo). Nenhuma transição sai de um status terminal.
type AppointmentStatus string

const (
	StatusAgendado          AppointmentStatus = "agendado"
	StatusEmEspera          AppointmentStatus = "em_espera"
	StatusAtendido          AppointmentStatus = "atendido"
	StatusNaoCompareceu     AppointmentStatus = "nao_compareceu"
	StatusCanceladoPaciente AppointmentStatus = "cancelado_paciente"
	StatusCanceladoMedico   AppointmentStatus = "cancelado_medico"
)

var appointmentStatuses = map[AppointmentStatus]bool{
	StatusAgendado:          true,
	StatusEmEspera:          true,
	StatusAtendido:          true,
	StatusNaoCompareceu:     true,
	StatusCanceladoPaciente: true,
	StatusCanceladoMedico:   true,
}

func (s AppointmentStatus) Valid() bool {
	return appointmentStatuses[s]
}

func (s AppointmentStatus) IsTerminal() bool {
	switch s {
	case StatusAtendido, StatusNaoCompareceu, StatusCanceladoPaciente, StatusCanceladoMedico:
		return true
	}
	return false
}

func (s AppointmentStatus) IsCancellation() bool {
	return s == StatusCanceladoPaciente || s == StatusCanceladoMedico
}

// statusTransitions cobre apenas as transições diretas; cancelamentos passam
// obrigatoriamente pelo registro de cancelamento.
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusAgendado: {StatusEmEspera, StatusAtendido, StatusNaoCompareceu},
	StatusEmEspera: {StatusAtendido, StatusNaoCompareceu},
}

// CanTransitionTo informa se a transição direta s → target é permitida.
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	for _, t := range statusTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// StatusLabels mapeia status → rótulo exibido nos relatórios
var StatusLabels = map[AppointmentStatus]string{
	StatusAgendado:          "Agendado",
	StatusEmEspera:          "Em Espera",
	StatusAtendido:          "Atendido",
	StatusNaoCompareceu:     "Não Compareceu",
	StatusCanceladoPaciente: "Cancelado (Paciente)",
	StatusCanceladoMedico:   "Cancelado (Equipe)",
}
