package domain

// Entidades persistidas do MedSMS. As tags JSON seguem exatamente o layout
// do documento de export/import (um array por coleção), então qualquer
// mudança de nome de campo quebra a compatibilidade dos backups.

// Identifiable é implementada por toda entidade persistida no Entity Store.
type Identifiable interface {
	EntityID() string
}

// Address representa um endereço ordenado do paciente
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
}

// Contact representa um contato de emergência do paciente
type Contact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

type Gender string

const (
	GenderMasculino    Gender = "Masculino"
	GenderFeminino     Gender = "Feminino"
	GenderNaoDeclarado Gender = "Não Declarado"
)

type Ethnicity string

const (
	EthnicityBranco       Ethnicity = "Branco"
	EthnicityPardo        Ethnicity = "Pardo"
	EthnicityPreto        Ethnicity = "Preto"
	EthnicityIndigena     Ethnicity = "Indígena"
	EthnicityAmarelo      Ethnicity = "Amarelo"
	EthnicityNaoDeclarado Ethnicity = "Não Declarado"
)

// Conditions é o vocabulário fechado de condições marcáveis no cadastro
var Conditions = []string{
	"Neurotípico",
	"Intelectual",
	"Múltiplas",
	"TEA",
	"TDAH",
	"TOD",
	"Ansiedade",
	"Depressão",
	"Outras",
	"SDAH",
}

// Patient é o cadastro central do sistema
type Patient struct {
	ID                      string    `json:"id"`
	Name                    string    `json:"name"`
	DateOfBirth             string    `json:"dateOfBirth"` // data ISO (YYYY-MM-DD)
	MotherName              string    `json:"motherName"`
	CNSOrCPF                string    `json:"cnsOrCpf"`
	LastVisit               string    `json:"lastVisit"`
	AvatarURL               string    `json:"avatarUrl"`
	Email                   string    `json:"email"`
	Phone                   string    `json:"phone"`
	RegisteredDate          string    `json:"registeredDate"`
	MunicipalityID          string    `json:"municipalityId"`
	Addresses               []Address `json:"addresses"`
	Contacts                []Contact `json:"contacts"`
	HealthPost              string    `json:"healthPost"`
	HealthAgent             string    `json:"healthAgent"`
	ParticipatingCampaignIDs []string `json:"participatingCampaignIds,omitempty"`
	Gender                  Gender    `json:"gender,omitempty"`
	Ethnicity               Ethnicity `json:"ethnicity,omitempty"`
	Conditions              []string  `json:"conditions,omitempty"`
}

func (p Patient) EntityID() string { return p.ID }

// DocumentType distingue CNS de CPF pelo comprimento do número (CNS tem 15
// dígitos). Não existe discriminador armazenado.
func (p Patient) DocumentType() string {
	if len(p.CNSOrCPF) == 15 {
		return "CNS"
	}
	return "CPF"
}

// ProcedureType é uma etiqueta categórica simples (Consulta, Exame, ...)
type ProcedureType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (t ProcedureType) EntityID() string { return t.ID }

// Occurrence é o vocabulário livre de eventos anexáveis a um agendamento
type Occurrence struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (o Occurrence) EntityID() string { return o.ID }

// OccurrencePatientArrived é a ocorrência distinta que força o status do
// agendamento para em_espera (ver SchedulingService.UpdateOccurrence).
const OccurrencePatientArrived = "Paciente chegou"

// Procedure descreve um procedimento ofertado pela clínica
type Procedure struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	ProcedureTypeID string `json:"procedureTypeId"`
	Duration        int    `json:"duration"` // minutos
	SlotsAvailable  *int   `json:"slotsAvailable,omitempty"`
}

func (p Procedure) EntityID() string { return p.ID }

type Doctor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	CRM       string `json:"crm"`
}

func (d Doctor) EntityID() string { return d.ID }

// Location é um local físico de atendimento (consultório, sala de exames)
type Location struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (l Location) EntityID() string { return l.ID }

// Municipality agrupa pacientes por município/secretaria de saúde
type Municipality struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	HealthSecretariat string `json:"healthSecretariat"`
}

func (m Municipality) EntityID() string { return m.ID }

type HealthCampaign struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	TargetAudience string   `json:"targetAudience"`
	StartDate      string   `json:"startDate"` // data ISO
	EndDate        string   `json:"endDate"`   // data ISO
	ProcedureIDs   []string `json:"procedureIds"`
}

func (h HealthCampaign) EntityID() string { return h.ID }

// PriceTable é um esquema de cobrança nomeado (ex: SUS vs particular)
type PriceTable struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (t PriceTable) EntityID() string { return t.ID }

// PriceTableEntry liga (tabela, procedimento) a um código de faturamento e
// valor. No máximo uma entrada por par; entradas sem código e sem valor
// positivo são consideradas ausentes e podadas no save.
type PriceTableEntry struct {
	ID           string  `json:"id"`
	PriceTableID string  `json:"priceTableId"`
	ProcedureID  string  `json:"procedureId"`
	Code         string  `json:"code"`
	Value        float64 `json:"value"`
}

func (e PriceTableEntry) EntityID() string { return e.ID }

// Appointment é o registro transacional central. Integridade referencial é
// consultiva: referências penduradas são toleradas e renderizadas como "N/A".
type Appointment struct {
	ID                 string            `json:"id"`
	PatientID          string            `json:"patientId"`
	ProcedureID        string            `json:"procedureId"`
	DoctorID           string            `json:"doctorId"`
	LocationID         string            `json:"locationId"`
	CampaignID         string            `json:"campaignId,omitempty"`
	Date               string            `json:"date"` // timestamp ISO
	Status             AppointmentStatus `json:"status"`
	CancellationReason string            `json:"cancellationReason,omitempty"`
	OccurrenceID       string            `json:"occurrenceId,omitempty"`
}

func (a Appointment) EntityID() string { return a.ID }

// ChatMessage é o histórico do assistente, persistido só por conveniência:
// o save substitui a coleção inteira, nunca anexa.
type ChatMessage struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Sender string `json:"sender"` // "user" | "ai"
}

func (m ChatMessage) EntityID() string { return m.ID }

// FullDatabase é o documento de export/import completo: um campo por coleção
type FullDatabase struct {
	Patients          []Patient         `json:"patients"`
	Appointments      []Appointment     `json:"appointments"`
	Doctors           []Doctor          `json:"doctors"`
	Locations         []Location        `json:"locations"`
	Procedures        []Procedure       `json:"procedures"`
	ProcedureTypes    []ProcedureType   `json:"procedureTypes"`
	Campaigns         []HealthCampaign  `json:"campaigns"`
	Municipalities    []Municipality    `json:"municipalities"`
	PriceTables       []PriceTable      `json:"priceTables"`
	PriceTableEntries []PriceTableEntry `json:"priceTableEntries"`
	Occurrences       []Occurrence      `json:"occurrences"`
	ChatHistory       []ChatMessage     `json:"chatHistory"`
}
