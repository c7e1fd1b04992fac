package seeds

import (
	"time"

	"medsms-core/internal/domain"
)

// Conjunto de demonstração gravado no primeiro arranque. Os identificadores
// fixos (mun01, doc01, proc001...) são referenciados entre coleções, então
// alterações aqui precisam manter os vínculos coerentes.

func intPtr(v int) *int { return &v }

var DefaultMunicipalities = []domain.Municipality{
	{ID: "mun01", Name: "Crateús", HealthSecretariat: "Secretaria Municipal de Saúde de Crateús"},
	{ID: "mun02", Name: "Independência", HealthSecretariat: "Secretaria de Saúde de Independência"},
	{ID: "mun03", Name: "Novo Oriente", HealthSecretariat: "SMS de Novo Oriente"},
}

var DefaultDoctors = []domain.Doctor{
	{ID: "doc01", Name: "Dra. Evelyn Reed", Specialty: "Cardiologia", CRM: "12345-CE"},
	{ID: "doc02", Name: "Dr. João Smith", Specialty: "Clínica Geral", CRM: "67890-CE"},
	{ID: "doc03", Name: "Dra. Maria Garcia", Specialty: "Pediatria", CRM: "11223-CE"},
}

var DefaultLocations = []domain.Location{
	{ID: "loc01", Name: "Consultório 1", Description: "Sala de atendimento geral, primeiro andar."},
	{ID: "loc02", Name: "Consultório 2", Description: "Sala de atendimento geral, primeiro andar."},
	{ID: "loc03", Name: "Sala de Exames A", Description: "Sala para ultrassonografias e ECG."},
	{ID: "loc04", Name: "Centro Cirúrgico", Description: "Sala para pequenos procedimentos cirúrgicos."},
}

var DefaultProcedureTypes = []domain.ProcedureType{
	{ID: "ptype01", Name: "Consulta"},
	{ID: "ptype02", Name: "Exame"},
	{ID: "ptype03", Name: "Cirurgia"},
	{ID: "ptype04", Name: "Procedimento"},
	{ID: "ptype05", Name: "Retorno"},
	{ID: "ptype06", Name: "Avaliação"},
	{ID: "ptype07", Name: "Terapia"},
	{ID: "ptype08", Name: "Vacinação"},
}

var DefaultOccurrences = []domain.Occurrence{
	{ID: "occ01", Name: domain.OccurrencePatientArrived},
	{ID: "occ02", Name: "Paciente adiantado"},
	{ID: "occ03", Name: "Paciente atrasado"},
	{ID: "occ04", Name: "Aguardando na recepção"},
	{ID: "occ05", Name: "Acompanhante presente"},
	{ID: "occ06", Name: "Em atendimento"},
	{ID: "occ07", Name: "Aguardando exames"},
	{ID: "occ08", Name: "Exames finalizados"},
	{ID: "occ09", Name: "Retornou ao consultório"},
	{ID: "occ10", Name: "Atendimento finalizado"},
	{ID: "occ11", Name: "Paciente liberado"},
	{ID: "occ12", Name: "Receita/Atestado emitido"},
	{ID: "occ13", Name: "Encaminhado para especialista"},
	{ID: "occ14", Name: "Retorno agendado"},
	{ID: "occ15", Name: "Já realizou o procedimento"},
	{ID: "occ16", Name: "Paciente remarcou"},
	{ID: "occ17", Name: "Paciente solicitou reagendamento"},
	{ID: "occ18", Name: "Conflito de horário"},
	{ID: "occ19", Name: "Atraso na agenda do médico"},
	{ID: "occ20", Name: "Médico impedido (deslocamento) / Remarcado"},
	{ID: "occ21", Name: "Falta de documentação"},
	{ID: "occ22", Name: "Cadastro do paciente desatualizado"},
	{ID: "occ23", Name: "Aguardando autorização do convênio"},
	{ID: "occ24", Name: "Guia de autorização vencida"},
	{ID: "occ25", Name: "Pendência financeira"},
	{ID: "occ26", Name: "Equipamento em manutenção"},
	{ID: "occ27", Name: "Realizado contato telefônico"},
	{ID: "occ28", Name: "Necessita de atenção especial"},
	{ID: "occ29", Name: "Observação"},
	{ID: "occ30", Name: "Outro"},
}

var DefaultProcedures = []domain.Procedure{
	{ID: "proc001", Name: "Consulta Geral", Description: "Uma consulta padrão com um clínico geral.", Duration: 30, ProcedureTypeID: "ptype01", SlotsAvailable: intPtr(500)},
	{ID: "proc002", Name: "Acompanhamento Cardiológico", Description: "Consulta de retorno para pacientes com condições cardíacas.", Duration: 30, ProcedureTypeID: "ptype01", SlotsAvailable: intPtr(250)},
	{ID: "proc003", Name: "Consulta Pediátrica", Description: "Consulta de rotina para crianças e adolescentes.", Duration: 40, ProcedureTypeID: "ptype01", SlotsAvailable: intPtr(300)},
	{ID: "proc004", Name: "US ABDOMINAL", Description: "Ultrassonografia Abdominal.", Duration: 15, ProcedureTypeID: "ptype02", SlotsAvailable: intPtr(400)},
	{ID: "proc005", Name: "Eletrocardiograma (ECG)", Description: "Exame que mede a atividade elétrica do coração.", Duration: 20, ProcedureTypeID: "ptype02", SlotsAvailable: intPtr(150)},
	{ID: "proc006", Name: "Pequena Sutura", Description: "Realização de sutura para ferimentos simples.", Duration: 30, ProcedureTypeID: "ptype03"},
	{ID: "proc007", Name: "US TIREOIDE", Description: "Ultrassonografia da Tireoide.", Duration: 15, ProcedureTypeID: "ptype02", SlotsAvailable: intPtr(180)},
	{ID: "proc008", Name: "Retorno de Consulta", Description: "Consulta de retorno para acompanhamento.", Duration: 20, ProcedureTypeID: "ptype05", SlotsAvailable: intPtr(400)},
	{ID: "proc009", Name: "Sessão de Fisioterapia", Description: "Sessão de fisioterapia motora.", Duration: 50, ProcedureTypeID: "ptype07", SlotsAvailable: intPtr(80)},
}

var DefaultCampaigns = []domain.HealthCampaign{
	{
		ID:             "camp01",
		Name:           "Campanha de Vacinação contra a Gripe 2024",
		TargetAudience: "Idosos (acima de 60 anos) e crianças (abaixo de 5 anos)",
		StartDate:      "2024-07-01",
		EndDate:        "2024-08-30",
		ProcedureIDs:   []string{"proc001"}, // consulta de triagem
	},
}

var DefaultPatients = []domain.Patient{
	{
		ID: "p001", Name: "Artur Silva", DateOfBirth: "1988-04-10", MotherName: "Helena Silva", CNSOrCPF: "700508376121251", LastVisit: "2024-07-15", AvatarURL: "https://picsum.photos/id/433/100/100", Email: "a.silva@example.com", Phone: "5588987654321", RegisteredDate: "2023-01-20",
		MunicipalityID: "mun01",
		Addresses:      []domain.Address{{Street: "Rua das Flores", Number: "123", Neighborhood: "Centro", City: "Crateús", State: "CE", ZipCode: "63700-000"}},
		Contacts:       []domain.Contact{{Name: "Mariana Silva", Relationship: "Esposa", Phone: "5588987654322"}},
		HealthPost:     "UBS Centro",
		HealthAgent:    "Agente Silva",
		Gender:         domain.GenderMasculino,
		Ethnicity:      domain.EthnicityPardo,
		Conditions:     []string{"Ansiedade"},
	},
	{
		ID: "p002", Name: "Sofia Almeida", DateOfBirth: "1996-09-22", MotherName: "Clara Almeida", CNSOrCPF: "702809668024064", LastVisit: "2024-07-12", AvatarURL: "https://picsum.photos/id/564/100/100", Email: "s.almeida@example.com", Phone: "5588912345678", RegisteredDate: "2023-03-11",
		MunicipalityID: "mun02",
		Addresses:      []domain.Address{{Street: "Avenida da Independência", Number: "456", Neighborhood: "Centro", City: "Independência", State: "CE", ZipCode: "63760-000"}},
		Contacts:       []domain.Contact{{Name: "Roberto Almeida", Relationship: "Pai", Phone: "5588912345679"}},
		HealthPost:     "Clínica da Família Independência",
		HealthAgent:    "Agente Costa",
		Gender:         domain.GenderFeminino,
		Ethnicity:      domain.EthnicityBranco,
		Conditions:     []string{"Neurotípico"},
	},
	{
		ID: "p003", Name: "João Pereira", DateOfBirth: "1983-01-15", MotherName: "Lúcia Pereira", CNSOrCPF: "700003567086302", LastVisit: "2024-07-20", AvatarURL: "https://picsum.photos/id/628/100/100", Email: "j.pereira@example.com", Phone: "5588988887777", RegisteredDate: "2022-11-05",
		MunicipalityID: "mun03",
		Addresses:      []domain.Address{{Street: "Rua Principal", Number: "789", Neighborhood: "Lourdes", City: "Novo Oriente", State: "CE", ZipCode: "63740-000"}},
		Contacts:       []domain.Contact{{Name: "Ana Pereira", Relationship: "Irmã", Phone: "5588988887776"}},
		HealthPost:     "Centro de Saúde Novo Oriente",
		HealthAgent:    "Agente Souza",
		Gender:         domain.GenderMasculino,
		Ethnicity:      domain.EthnicityPardo,
		Conditions:     []string{"Depressão", "Ansiedade"},
	},
	{
		ID: "p004", Name: "Maria Oliveira", DateOfBirth: "1964-07-20", MotherName: "Beatriz Oliveira", CNSOrCPF: "702100821473670", LastVisit: "2024-06-25", AvatarURL: "https://picsum.photos/id/1027/100/100", Email: "m.oliveira@example.com", Phone: "5588999991111", RegisteredDate: "2024-01-10",
		MunicipalityID:           "mun01",
		Addresses:                []domain.Address{{Street: "Rua do Sol", Number: "101", Neighborhood: "Fátima I", City: "Crateús", State: "CE", ZipCode: "63700-000"}},
		Contacts:                 []domain.Contact{{Name: "Carlos Oliveira", Relationship: "Filho", Phone: "5588999991112"}},
		HealthPost:               "UBS Fátima",
		HealthAgent:              "Agente Silva",
		ParticipatingCampaignIDs: []string{"camp01"},
		Gender:                   domain.GenderFeminino,
		Ethnicity:                domain.EthnicityNaoDeclarado,
		Conditions:               []string{"Neurotípico"},
	},
	{
		ID: "p005", Name: "Pedro Martins", DateOfBirth: "2020-02-02", MotherName: "Vanessa Martins", CNSOrCPF: "44546475349", LastVisit: "N/A", AvatarURL: "https://picsum.photos/id/1005/100/100", Email: "p.martins@example.com", Phone: "5588981812222", RegisteredDate: "2024-05-15",
		MunicipalityID:           "mun02",
		Addresses:                []domain.Address{{Street: "Rua Nova", Number: "202", Neighborhood: "Planalto", City: "Independência", State: "CE", ZipCode: "63760-000"}},
		Contacts:                 []domain.Contact{{Name: "Julia Martins", Relationship: "Mãe", Phone: "5588981812223"}},
		HealthPost:               "UBS Planalto",
		HealthAgent:              "Agente Costa",
		ParticipatingCampaignIDs: []string{"camp01"},
		Gender:                   domain.GenderMasculino,
		Ethnicity:                domain.EthnicityBranco,
		Conditions:               []string{"TDAH"},
	},
}

var DefaultPriceTables = []domain.PriceTable{
	{ID: "pt01", Name: "Tabela SUS", Description: "Valores baseados na tabela do Sistema Único de Saúde."},
	{ID: "pt02", Name: "Tabela Particular", Description: "Valores para atendimento particular."},
}

var DefaultPriceTableEntries = []domain.PriceTableEntry{
	// Tabela SUS
	{ID: "pte01-001", PriceTableID: "pt01", ProcedureID: "proc001", Code: "03.01.01.007-2", Value: 22.50},
	{ID: "pte01-004", PriceTableID: "pt01", ProcedureID: "proc004", Code: "02.11.02.003-8", Value: 35.41},
	{ID: "pte01-005", PriceTableID: "pt01", ProcedureID: "proc005", Code: "02.05.01.002-9", Value: 15.00},
	{ID: "pte01-007", PriceTableID: "pt01", ProcedureID: "proc007", Code: "02.04.03.013-0", Value: 41.50},
	{ID: "pte01-008", PriceTableID: "pt01", ProcedureID: "proc008", Code: "03.01.01.007-2R", Value: 15.00},
	{ID: "pte01-009", PriceTableID: "pt01", ProcedureID: "proc009", Code: "03.01.06.002-9", Value: 10.75},

	// Tabela Particular
	{ID: "pte02-001", PriceTableID: "pt02", ProcedureID: "proc001", Code: "CONS-GERAL", Value: 150.00},
	{ID: "pte02-002", PriceTableID: "pt02", ProcedureID: "proc002", Code: "CONS-CARDIO", Value: 250.00},
	{ID: "pte02-003", PriceTableID: "pt02", ProcedureID: "proc003", Code: "CONS-PED", Value: 180.00},
	{ID: "pte02-004", PriceTableID: "pt02", ProcedureID: "proc004", Code: "US-ABD", Value: 120.00},
	{ID: "pte02-005", PriceTableID: "pt02", ProcedureID: "proc005", Code: "EX-ECG", Value: 120.00},
	{ID: "pte02-006", PriceTableID: "pt02", ProcedureID: "proc006", Code: "CIR-SUTURA", Value: 300.00},
	{ID: "pte02-007", PriceTableID: "pt02", ProcedureID: "proc007", Code: "US-TIR", Value: 140.00},
	{ID: "pte02-008", PriceTableID: "pt02", ProcedureID: "proc008", Code: "CONS-RETORNO", Value: 100.00},
	{ID: "pte02-009", PriceTableID: "pt02", ProcedureID: "proc009", Code: "FISIO-SESSAO", Value: 90.00},
}

var DefaultChatHistory = []domain.ChatMessage{
	{ID: "msg-000001", Text: "Olá! Sou seu assistente clínico de IA. Selecione um provedor no menu e pergunte-me sobre o histórico de um paciente, a agenda de um médico, finanças e muito mais.", Sender: "ai"},
}

// DefaultAppointments gera a agenda de demonstração relativa à data atual:
// atendimentos de hoje, ocorrências de hoje, futuros e passados
func DefaultAppointments(now time.Time) []domain.Appointment {
	at := func(base time.Time, hour int) string {
		return time.Date(base.Year(), base.Month(), base.Day(), hour, 0, 0, 0, base.Location()).Format(time.RFC3339)
	}

	today := now
	tomorrow := now.AddDate(0, 0, 1)
	yesterday := now.AddDate(0, 0, -1)

	return []domain.Appointment{
		// Atendimentos de hoje
		{ID: "app01", PatientID: "p001", ProcedureID: "proc002", DoctorID: "doc01", LocationID: "loc01", Date: at(today, 8), Status: domain.StatusAtendido},
		{ID: "app02", PatientID: "p002", ProcedureID: "proc003", DoctorID: "doc03", LocationID: "loc02", Date: at(today, 9), Status: domain.StatusEmEspera},
		{ID: "app03", PatientID: "p004", ProcedureID: "proc001", DoctorID: "doc02", LocationID: "loc01", Date: at(today, 10), Status: domain.StatusEmEspera, CampaignID: "camp01"},
		{ID: "app04", PatientID: "p005", ProcedureID: "proc005", DoctorID: "doc01", LocationID: "loc03", Date: at(today, 11), Status: domain.StatusAgendado, CampaignID: "camp01"},
		{ID: "app05", PatientID: "p001", ProcedureID: "proc001", DoctorID: "doc02", LocationID: "loc02", Date: at(today, 14), Status: domain.StatusAgendado},

		// Ocorrências de hoje
		{ID: "app06", PatientID: "p003", ProcedureID: "proc004", DoctorID: "doc02", LocationID: "loc03", Date: at(today, 13), Status: domain.StatusNaoCompareceu},
		{ID: "app07", PatientID: "p002", ProcedureID: "proc001", DoctorID: "doc01", LocationID: "loc01", Date: at(today, 15), Status: domain.StatusCanceladoPaciente, CancellationReason: "Conflito de horário"},
		{ID: "app08", PatientID: "p004", ProcedureID: "proc001", DoctorID: "doc03", LocationID: "loc02", Date: at(today, 16), Status: domain.StatusCanceladoMedico},

		// Agendamentos futuros
		{ID: "app09", PatientID: "p001", ProcedureID: "proc002", DoctorID: "doc01", LocationID: "loc01", Date: at(tomorrow, 9), Status: domain.StatusAgendado},
		{ID: "app10", PatientID: "p003", ProcedureID: "proc001", DoctorID: "doc02", LocationID: "loc02", Date: at(tomorrow, 10), Status: domain.StatusAgendado},

		// Agendamentos passados (follow-up)
		{ID: "app11", PatientID: "p005", ProcedureID: "proc003", DoctorID: "doc03", LocationID: "loc02", Date: at(yesterday, 11), Status: domain.StatusAtendido, CampaignID: "camp01"},
		{ID: "app12", PatientID: "p002", ProcedureID: "proc002", DoctorID: "doc01", LocationID: "loc01", Date: at(yesterday, 14), Status: domain.StatusAtendido},
		{ID: "app13", PatientID: "p001", ProcedureID: "proc001", DoctorID: "doc02", LocationID: "loc01", Date: at(yesterday, 15), Status: domain.StatusCanceladoPaciente, CancellationReason: "Paciente adoeceu"},
		{ID: "app14", PatientID: "p004", ProcedureID: "proc004", DoctorID: "doc02", LocationID: "loc03", Date: at(yesterday, 16), Status: domain.StatusCanceladoPaciente, CancellationReason: "Conflito de horário"},
	}
}
