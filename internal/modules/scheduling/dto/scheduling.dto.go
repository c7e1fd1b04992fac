package dto

import "medsms-core/internal/domain"

// CreateAppointmentRequest exige as cinco referências obrigatórias; o
// status inicial é sempre "agendado".
type CreateAppointmentRequest struct {
	PatientID    string `json:"patientId"`
	ProcedureID  string `json:"procedureId"`
	DoctorID     string `json:"doctorId"`
	LocationID   string `json:"locationId"`
	CampaignID   string `json:"campaignId"`
	Date         string `json:"date"`
	OccurrenceID string `json:"occurrenceId"`
}

// UpdateAppointmentRequest é uma atualização parcial: só os campos
// presentes no payload são sobrepostos. Status e cancelamento têm
// endpoints próprios e nunca passam por aqui.
type UpdateAppointmentRequest struct {
	PatientID    *string `json:"patientId"`
	ProcedureID  *string `json:"procedureId"`
	DoctorID     *string `json:"doctorId"`
	LocationID   *string `json:"locationId"`
	CampaignID   *string `json:"campaignId"`
	Date         *string `json:"date"`
	OccurrenceID *string `json:"occurrenceId"`
}

// Apply sobrepõe os campos presentes no agendamento existente
func (r UpdateAppointmentRequest) Apply(app domain.Appointment) domain.Appointment {
	if r.PatientID != nil {
		app.PatientID = *r.PatientID
	}
	if r.ProcedureID != nil {
		app.ProcedureID = *r.ProcedureID
	}
	if r.DoctorID != nil {
		app.DoctorID = *r.DoctorID
	}
	if r.LocationID != nil {
		app.LocationID = *r.LocationID
	}
	if r.CampaignID != nil {
		app.CampaignID = *r.CampaignID
	}
	if r.Date != nil {
		app.Date = *r.Date
	}
	if r.OccurrenceID != nil {
		app.OccurrenceID = *r.OccurrenceID
	}
	return app
}

type UpdateStatusRequest struct {
	Status domain.AppointmentStatus `json:"status"`
}

type UpdateOccurrenceRequest struct {
	OccurrenceID string `json:"occurrenceId"`
}

// CancellationRequest registra quem cancelou ("patient" | "doctor") e o
// motivo, obrigatório.
type CancellationRequest struct {
	CancelledBy string `json:"cancelledBy"`
	Reason      string `json:"reason"`
}
