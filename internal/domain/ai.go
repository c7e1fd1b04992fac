package domain

import "time"

// AIProvider identifica o provedor de IA selecionado pela sessão
type AIProvider string

const (
	ProviderGemini       AIProvider = "gemini"
	ProviderHuggingFace  AIProvider = "huggingface"
	ProviderLMStudio     AIProvider = "lm-studio"
	ProviderGroqGemma    AIProvider = "groq-gemma"
	ProviderGroqDeepseek AIProvider = "groq-deepseek"
)

func (p AIProvider) Valid() bool {
	switch p {
	case ProviderGemini, ProviderHuggingFace, ProviderLMStudio, ProviderGroqGemma, ProviderGroqDeepseek:
		return true
	}
	return false
}

// ChatContext é o recorte do snapshot entregue ao adaptador de IA
type ChatContext struct {
	Patients          []Patient         `json:"patients"`
	Appointments      []Appointment     `json:"appointments"`
	Doctors           []Doctor          `json:"doctors"`
	Locations         []Location        `json:"locations"`
	Procedures        []Procedure       `json:"procedures"`
	ProcedureTypes    []ProcedureType   `json:"procedureTypes"`
	Occurrences       []Occurrence      `json:"occurrences"`
	Campaigns         []HealthCampaign  `json:"campaigns"`
	Municipalities    []Municipality    `json:"municipalities"`
	PriceTables       []PriceTable      `json:"priceTables"`
	PriceTableEntries []PriceTableEntry `json:"priceTableEntries"`
}

// AutomationSuggestion é uma sugestão de mensagem gerada pela automação
type AutomationSuggestion struct {
	PatientID    string `json:"patientId"`
	PatientName  string `json:"patientName"`
	PatientPhone string `json:"patientPhone"`
	Type         string `json:"type"` // reminder | follow-up | campaign | preparation
	Message      string `json:"message"`
	Reasoning    string `json:"reasoning,omitempty"`
}

// SwotAnalysis é o resultado de quatro quadrantes produzido pelo adaptador
type SwotAnalysis struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
}

func (s SwotAnalysis) Empty() bool {
	return len(s.Strengths) == 0 && len(s.Weaknesses) == 0 &&
		len(s.Opportunities) == 0 && len(s.Threats) == 0
}

// CalculateAge calcula a idade em anos a partir de uma data 'YYYY-MM-DD'
func CalculateAge(dob string) int {
	if dob == "" {
		return 0
	}
	birth, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return 0
	}
	now := time.Now()
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}
