package ai

import (
	"encoding/json"
	"fmt"

	"medsms-core/internal/domain"
)

// Resumos enviados ao modelo no lugar das entidades completas: menos tokens
// e nenhum dado de endereço/contato do paciente sai da clínica.

type patientSummary struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Age            int              `json:"age"`
	Gender         domain.Gender    `json:"gender"`
	Ethnicity      domain.Ethnicity `json:"ethnicity"`
	Conditions     []string         `json:"conditions"`
	MunicipalityID string           `json:"municipalityId"`
	Phone          string           `json:"phone"`
}

type appointmentSummary struct {
	PatientName   string                   `json:"patientName"`
	ProcedureName string                   `json:"procedureName"`
	DoctorName    string                   `json:"doctorName"`
	Date          string                   `json:"date"`
	Status        domain.AppointmentStatus `json:"status"`
	Occurrence    string                   `json:"occurrence"`
}

// BuildSummarizedContext monta o bloco de dataset injetado na instrução de
// sistema do chat. Referências penduradas viram "Desconhecido".
func BuildSummarizedContext(ctx domain.ChatContext) string {
	patientNames := map[string]string{}
	for _, p := range ctx.Patients {
		patientNames[p.ID] = p.Name
	}
	procedureNames := map[string]string{}
	for _, p := range ctx.Procedures {
		procedureNames[p.ID] = p.Name
	}
	doctorNames := map[string]string{}
	for _, d := range ctx.Doctors {
		doctorNames[d.ID] = d.Name
	}
	occurrenceNames := map[string]string{}
	for _, o := range ctx.Occurrences {
		occurrenceNames[o.ID] = o.Name
	}

	lookup := func(names map[string]string, id string) string {
		if name, ok := names[id]; ok {
			return name
		}
		return "Desconhecido"
	}

	patients := make([]patientSummary, 0, len(ctx.Patients))
	for _, p := range ctx.Patients {
		patients = append(patients, patientSummary{
			ID:             p.ID,
			Name:           p.Name,
			Age:            domain.CalculateAge(p.DateOfBirth),
			Gender:         p.Gender,
			Ethnicity:      p.Ethnicity,
			Conditions:     p.Conditions,
			MunicipalityID: p.MunicipalityID,
			Phone:          p.Phone,
		})
	}

	appointments := make([]appointmentSummary, 0, len(ctx.Appointments))
	for _, a := range ctx.Appointments {
		occurrence := ""
		if a.OccurrenceID != "" {
			if name, ok := occurrenceNames[a.OccurrenceID]; ok {
				occurrence = name
			}
		}
		appointments = append(appointments, appointmentSummary{
			PatientName:   lookup(patientNames, a.PatientID),
			ProcedureName: lookup(procedureNames, a.ProcedureID),
			DoctorName:    lookup(doctorNames, a.DoctorID),
			Date:          a.Date,
			Status:        a.Status,
			Occurrence:    occurrence,
		})
	}

	patientsJSON, _ := json.Marshal(patients)
	appointmentsJSON, _ := json.Marshal(appointments)
	doctorsJSON, _ := json.Marshal(ctx.Doctors)
	proceduresJSON, _ := json.Marshal(ctx.Procedures)
	procedureTypesJSON, _ := json.Marshal(ctx.ProcedureTypes)

	return fmt.Sprintf(`
--- INÍCIO DO DATASET ---
### Pacientes (resumo): %s
### Agendamentos (resumo): %s
### Médicos: %s
### Procedimentos: %s
### Tipos de Procedimento: %s
--- FIM DO DATASET ---
`, patientsJSON, appointmentsJSON, doctorsJSON, proceduresJSON, procedureTypesJSON)
}
