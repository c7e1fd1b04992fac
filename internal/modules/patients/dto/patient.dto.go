package dto

import "medsms-core/internal/domain"

// PatientRequest é o formulário de cadastro/edição do paciente. Os campos
// gerados pelo servidor (id, avatarUrl, lastVisit, registeredDate) nunca
// vêm do cliente.
type PatientRequest struct {
	Name                     string           `json:"name"`
	DateOfBirth              string           `json:"dateOfBirth"`
	MotherName               string           `json:"motherName"`
	CNSOrCPF                 string           `json:"cnsOrCpf"`
	Email                    string           `json:"email"`
	Phone                    string           `json:"phone"`
	MunicipalityID           string           `json:"municipalityId"`
	Addresses                []domain.Address `json:"addresses"`
	Contacts                 []domain.Contact `json:"contacts"`
	HealthPost               string           `json:"healthPost"`
	HealthAgent              string           `json:"healthAgent"`
	ParticipatingCampaignIDs []string         `json:"participatingCampaignIds"`
	Gender                   domain.Gender    `json:"gender"`
	Ethnicity                domain.Ethnicity `json:"ethnicity"`
	Conditions               []string         `json:"conditions"`
}

// Apply sobrepõe os campos do formulário em um paciente existente,
// preservando os campos gerados pelo servidor.
func (r PatientRequest) Apply(patient domain.Patient) domain.Patient {
	patient.Name = r.Name
	patient.DateOfBirth = r.DateOfBirth
	patient.MotherName = r.MotherName
	patient.CNSOrCPF = r.CNSOrCPF
	patient.Email = r.Email
	patient.Phone = r.Phone
	patient.MunicipalityID = r.MunicipalityID
	patient.Addresses = r.Addresses
	patient.Contacts = r.Contacts
	patient.HealthPost = r.HealthPost
	patient.HealthAgent = r.HealthAgent
	patient.ParticipatingCampaignIDs = r.ParticipatingCampaignIDs
	patient.Gender = r.Gender
	patient.Ethnicity = r.Ethnicity
	patient.Conditions = r.Conditions
	return patient
}
