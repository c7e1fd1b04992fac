package dto

// Filter restringe o painel por médico, município do paciente, tipo de
// procedimento e campanha. Campos vazios não filtram.
type Filter struct {
	DoctorID        string `form:"doctorId" json:"doctorId"`
	MunicipalityID  string `form:"municipalityId" json:"municipalityId"`
	ProcedureTypeID string `form:"procedureTypeId" json:"procedureTypeId"`
	CampaignID      string `form:"campaignId" json:"campaignId"`
}

// NameValue é um ponto de gráfico genérico (contagem por rótulo)
type NameValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// NameAmount é um ponto de gráfico monetário
type NameAmount struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// MunicipalityProduction compara oferta e execução por tipo de
// procedimento dentro de um município. Os mapas carregam uma chave por
// tipo mais a chave "total".
type MunicipalityProduction struct {
	Name     string         `json:"name"`
	Offered  map[string]int `json:"offered"`
	Executed map[string]int `json:"executed"`
}

// SlotAnalysisRow confronta vagas ofertadas e execuções de um
// procedimento. Offered nulo significa procedimento sem controle de
// vagas.
type SlotAnalysisRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Offered  *int   `json:"offered"`
	Executed int    `json:"executed"`
	Balance  *int   `json:"balance"`
}

// FinancialAnalysis estima a receita dos atendimentos concluídos pela
// tabela particular.
type FinancialAnalysis struct {
	TotalRevenue           float64      `json:"totalRevenue"`
	AverageRevenue         float64      `json:"averageRevenue"`
	RevenueByProcedureType []NameAmount `json:"revenueByProcedureType"`
}

type DoctorPerformanceRow struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Attended      int     `json:"attended"`
	NoShows       int     `json:"noShows"`
	Cancellations int     `json:"cancellations"`
	Revenue       float64 `json:"revenue"`
}

type MunicipalityPerformanceRow struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	PatientCount     int     `json:"patientCount"`
	AppointmentCount int     `json:"appointmentCount"`
	AttendedCount    int     `json:"attendedCount"`
	NoShowCount      int     `json:"noShowCount"`
	Revenue          float64 `json:"revenue"`
}

// DashboardReport agrega todas as análises do painel em uma resposta
type DashboardReport struct {
	ProductionAnalysis      []MunicipalityProduction     `json:"productionAnalysis"`
	ExecutedByType          []NameValue                  `json:"executedByType"`
	StatusOverview          []NameValue                  `json:"statusOverview"`
	SlotAnalysis            []SlotAnalysisRow            `json:"slotAnalysis"`
	FinancialAnalysis       FinancialAnalysis            `json:"financialAnalysis"`
	DoctorPerformance       []DoctorPerformanceRow       `json:"doctorPerformance"`
	AgeDistribution         []NameValue                  `json:"ageDistribution"`
	MunicipalityPerformance []MunicipalityPerformanceRow `json:"municipalityPerformance"`
}
