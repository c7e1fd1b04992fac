package services

import (
	"sort"

	"medsms-core/internal/domain"
	"medsms-core/internal/modules/reports/dto"
	"medsms-core/internal/storage/datacache"
)

// particularPriceTableID é a tabela usada como referência de receita nas
// análises financeiras (a "Tabela Particular" da carga inicial).
const particularPriceTableID = "pt02"

// ReportsService agrega o snapshot do cache nas análises do painel.
// Agendamentos com referências penduradas (paciente ou procedimento
// inexistente) ficam de fora de todas as contagens.
type ReportsService struct {
	cache *datacache.Cache
}

func NewReportsService(cache *datacache.Cache) *ReportsService {
	return &ReportsService{cache: cache}
}

// Dashboard calcula todas as análises de uma vez, sobre o mesmo snapshot
func (s *ReportsService) Dashboard(filter dto.Filter) dto.DashboardReport {
	snap := s.cache.Snapshot()
	return dto.DashboardReport{
		ProductionAnalysis:      s.productionAnalysis(snap, filter),
		ExecutedByType:          s.executedByType(snap, filter),
		StatusOverview:          s.statusOverview(snap, filter),
		SlotAnalysis:            s.slotAnalysis(snap, filter),
		FinancialAnalysis:       s.financialAnalysis(snap, filter),
		DoctorPerformance:       s.doctorPerformance(snap, filter),
		AgeDistribution:         s.ageDistribution(snap, filter),
		MunicipalityPerformance: s.municipalityPerformance(snap, filter),
	}
}

func (s *ReportsService) ProductionAnalysis(filter dto.Filter) []dto.MunicipalityProduction {
	return s.productionAnalysis(s.cache.Snapshot(), filter)
}

func (s *ReportsService) ExecutedByType(filter dto.Filter) []dto.NameValue {
	return s.executedByType(s.cache.Snapshot(), filter)
}

func (s *ReportsService) StatusOverview(filter dto.Filter) []dto.NameValue {
	return s.statusOverview(s.cache.Snapshot(), filter)
}

func (s *ReportsService) SlotAnalysis(filter dto.Filter) []dto.SlotAnalysisRow {
	return s.slotAnalysis(s.cache.Snapshot(), filter)
}

func (s *ReportsService) FinancialAnalysis(filter dto.Filter) dto.FinancialAnalysis {
	return s.financialAnalysis(s.cache.Snapshot(), filter)
}

func (s *ReportsService) DoctorPerformance(filter dto.Filter) []dto.DoctorPerformanceRow {
	return s.doctorPerformance(s.cache.Snapshot(), filter)
}

func (s *ReportsService) AgeDistribution(filter dto.Filter) []dto.NameValue {
	return s.ageDistribution(s.cache.Snapshot(), filter)
}

func (s *ReportsService) MunicipalityPerformance(filter dto.Filter) []dto.MunicipalityPerformanceRow {
	return s.municipalityPerformance(s.cache.Snapshot(), filter)
}

// --- seleção ---

func patientIndex(snap datacache.Snapshot) map[string]domain.Patient {
	idx := make(map[string]domain.Patient, len(snap.Patients))
	for _, p := range snap.Patients {
		idx[p.ID] = p
	}
	return idx
}

func procedureIndex(snap datacache.Snapshot) map[string]domain.Procedure {
	idx := make(map[string]domain.Procedure, len(snap.Procedures))
	for _, p := range snap.Procedures {
		idx[p.ID] = p
	}
	return idx
}

func procedureTypeIndex(snap datacache.Snapshot) map[string]domain.ProcedureType {
	idx := make(map[string]domain.ProcedureType, len(snap.ProcedureTypes))
	for _, t := range snap.ProcedureTypes {
		idx[t.ID] = t
	}
	return idx
}

// priceIndex indexa as entradas da tabela particular por procedimento
func priceIndex(snap datacache.Snapshot) map[string]float64 {
	idx := make(map[string]float64)
	for _, e := range snap.PriceTableEntries {
		if e.PriceTableID == particularPriceTableID {
			idx[e.ProcedureID] = e.Value
		}
	}
	return idx
}

func (s *ReportsService) filteredAppointments(snap datacache.Snapshot, filter dto.Filter) []domain.Appointment {
	patients := patientIndex(snap)
	procedures := procedureIndex(snap)

	var filtered []domain.Appointment
	for _, app := range snap.Appointments {
		patient, okPatient := patients[app.PatientID]
		procedure, okProcedure := procedures[app.ProcedureID]
		if !okPatient || !okProcedure {
			continue
		}
		if filter.DoctorID != "" && app.DoctorID != filter.DoctorID {
			continue
		}
		if filter.MunicipalityID != "" && patient.MunicipalityID != filter.MunicipalityID {
			continue
		}
		if filter.ProcedureTypeID != "" && procedure.ProcedureTypeID != filter.ProcedureTypeID {
			continue
		}
		if filter.CampaignID != "" && app.CampaignID != filter.CampaignID {
			continue
		}
		filtered = append(filtered, app)
	}
	return filtered
}

func (s *ReportsService) filteredPatients(snap datacache.Snapshot, filter dto.Filter) []domain.Patient {
	if filter.MunicipalityID == "" {
		return snap.Patients
	}
	var filtered []domain.Patient
	for _, p := range snap.Patients {
		if p.MunicipalityID == filter.MunicipalityID {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// --- análises ---

func (s *ReportsService) productionAnalysis(snap datacache.Snapshot, filter dto.Filter) []dto.MunicipalityProduction {
	patients := patientIndex(snap)
	procedures := procedureIndex(snap)
	procedureTypes := procedureTypeIndex(snap)

	newCounts := func() map[string]int {
		counts := map[string]int{"total": 0}
		for _, t := range snap.ProcedureTypes {
			counts[t.Name] = 0
		}
		return counts
	}

	byMunicipality := make(map[string]*dto.MunicipalityProduction)
	var ordered []string
	for _, mun := range snap.Municipalities {
		if filter.MunicipalityID != "" && mun.ID != filter.MunicipalityID {
			continue
		}
		byMunicipality[mun.ID] = &dto.MunicipalityProduction{
			Name:     mun.Name,
			Offered:  newCounts(),
			Executed: newCounts(),
		}
		ordered = append(ordered, mun.ID)
	}

	for _, app := range s.filteredAppointments(snap, filter) {
		patient := patients[app.PatientID]
		procedure := procedures[app.ProcedureID]
		procType, ok := procedureTypes[procedure.ProcedureTypeID]
		if !ok {
			continue
		}
		mun, ok := byMunicipality[patient.MunicipalityID]
		if !ok {
			continue
		}
		mun.Offered[procType.Name]++
		mun.Offered["total"]++
		if app.Status == domain.StatusAtendido {
			mun.Executed[procType.Name]++
			mun.Executed["total"]++
		}
	}

	result := make([]dto.MunicipalityProduction, 0, len(ordered))
	for _, id := range ordered {
		if byMunicipality[id].Offered["total"] > 0 {
			result = append(result, *byMunicipality[id])
		}
	}
	return result
}

func (s *ReportsService) executedByType(snap datacache.Snapshot, filter dto.Filter) []dto.NameValue {
	procedures := procedureIndex(snap)
	procedureTypes := procedureTypeIndex(snap)

	counts := make(map[string]int)
	for _, app := range s.filteredAppointments(snap, filter) {
		if app.Status != domain.StatusAtendido {
			continue
		}
		if procType, ok := procedureTypes[procedures[app.ProcedureID].ProcedureTypeID]; ok {
			counts[procType.Name]++
		}
	}

	result := make([]dto.NameValue, 0)
	for _, t := range snap.ProcedureTypes {
		if counts[t.Name] > 0 {
			result = append(result, dto.NameValue{Name: t.Name, Value: counts[t.Name]})
		}
	}
	return result
}

func (s *ReportsService) statusOverview(snap datacache.Snapshot, filter dto.Filter) []dto.NameValue {
	counts := make(map[domain.AppointmentStatus]int)
	for _, app := range s.filteredAppointments(snap, filter) {
		counts[app.Status]++
	}

	orderedStatuses := []domain.AppointmentStatus{
		domain.StatusAgendado,
		domain.StatusEmEspera,
		domain.StatusAtendido,
		domain.StatusNaoCompareceu,
		domain.StatusCanceladoPaciente,
		domain.StatusCanceladoMedico,
	}

	result := make([]dto.NameValue, 0)
	for _, status := range orderedStatuses {
		if counts[status] > 0 {
			result = append(result, dto.NameValue{Name: domain.StatusLabels[status], Value: counts[status]})
		}
	}
	return result
}

func (s *ReportsService) slotAnalysis(snap datacache.Snapshot, filter dto.Filter) []dto.SlotAnalysisRow {
	procedureTypes := procedureTypeIndex(snap)
	filtered := s.filteredAppointments(snap, filter)

	executed := make(map[string]int)
	relevant := make(map[string]bool)
	for _, app := range filtered {
		relevant[app.ProcedureID] = true
		if app.Status == domain.StatusAtendido {
			executed[app.ProcedureID]++
		}
	}

	result := make([]dto.SlotAnalysisRow, 0)
	for _, proc := range snap.Procedures {
		if !relevant[proc.ID] || proc.SlotsAvailable == nil {
			continue
		}
		typeName := "N/A"
		if procType, ok := procedureTypes[proc.ProcedureTypeID]; ok {
			typeName = procType.Name
		}
		offered := *proc.SlotsAvailable
		balance := offered - executed[proc.ID]
		result = append(result, dto.SlotAnalysisRow{
			ID:       proc.ID,
			Name:     proc.Name,
			Type:     typeName,
			Offered:  &offered,
			Executed: executed[proc.ID],
			Balance:  &balance,
		})
	}
	return result
}

func (s *ReportsService) financialAnalysis(snap datacache.Snapshot, filter dto.Filter) dto.FinancialAnalysis {
	procedures := procedureIndex(snap)
	procedureTypes := procedureTypeIndex(snap)
	prices := priceIndex(snap)

	var totalRevenue float64
	var attendedCount int
	revenueByType := make(map[string]float64)

	for _, app := range s.filteredAppointments(snap, filter) {
		if app.Status != domain.StatusAtendido {
			continue
		}
		attendedCount++
		price := prices[app.ProcedureID]
		totalRevenue += price
		if procType, ok := procedureTypes[procedures[app.ProcedureID].ProcedureTypeID]; ok {
			revenueByType[procType.Name] += price
		}
	}

	byType := make([]dto.NameAmount, 0)
	for _, t := range snap.ProcedureTypes {
		if revenueByType[t.Name] > 0 {
			byType = append(byType, dto.NameAmount{Name: t.Name, Value: revenueByType[t.Name]})
		}
	}

	average := 0.0
	if attendedCount > 0 {
		average = totalRevenue / float64(attendedCount)
	}
	return dto.FinancialAnalysis{
		TotalRevenue:           totalRevenue,
		AverageRevenue:         average,
		RevenueByProcedureType: byType,
	}
}

func (s *ReportsService) doctorPerformance(snap datacache.Snapshot, filter dto.Filter) []dto.DoctorPerformanceRow {
	prices := priceIndex(snap)
	filtered := s.filteredAppointments(snap, filter)

	result := make([]dto.DoctorPerformanceRow, 0, len(snap.Doctors))
	for _, doctor := range snap.Doctors {
		row := dto.DoctorPerformanceRow{ID: doctor.ID, Name: doctor.Name}
		for _, app := range filtered {
			if app.DoctorID != doctor.ID {
				continue
			}
			switch {
			case app.Status == domain.StatusAtendido:
				row.Attended++
				row.Revenue += prices[app.ProcedureID]
			case app.Status == domain.StatusNaoCompareceu:
				row.NoShows++
			case app.Status.IsCancellation():
				row.Cancellations++
			}
		}
		result = append(result, row)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Revenue > result[j].Revenue
	})
	return result
}

func (s *ReportsService) ageDistribution(snap datacache.Snapshot, filter dto.Filter) []dto.NameValue {
	brackets := []dto.NameValue{
		{Name: "0-17"}, {Name: "18-30"}, {Name: "31-45"}, {Name: "46-60"}, {Name: "61+"},
	}
	for _, patient := range s.filteredPatients(snap, filter) {
		age := domain.CalculateAge(patient.DateOfBirth)
		switch {
		case age <= 17:
			brackets[0].Value++
		case age <= 30:
			brackets[1].Value++
		case age <= 45:
			brackets[2].Value++
		case age <= 60:
			brackets[3].Value++
		default:
			brackets[4].Value++
		}
	}
	return brackets
}

func (s *ReportsService) municipalityPerformance(snap datacache.Snapshot, filter dto.Filter) []dto.MunicipalityPerformanceRow {
	prices := priceIndex(snap)
	filteredApps := s.filteredAppointments(snap, filter)
	filteredPatients := s.filteredPatients(snap, filter)

	result := make([]dto.MunicipalityPerformanceRow, 0)
	for _, mun := range snap.Municipalities {
		patientIDs := make(map[string]bool)
		row := dto.MunicipalityPerformanceRow{ID: mun.ID, Name: mun.Name}
		for _, p := range filteredPatients {
			if p.MunicipalityID == mun.ID {
				patientIDs[p.ID] = true
				row.PatientCount++
			}
		}

		for _, app := range filteredApps {
			if !patientIDs[app.PatientID] {
				continue
			}
			row.AppointmentCount++
			switch app.Status {
			case domain.StatusAtendido:
				row.AttendedCount++
				row.Revenue += prices[app.ProcedureID]
			case domain.StatusNaoCompareceu:
				row.NoShowCount++
			}
		}

		if row.AppointmentCount > 0 {
			result = append(result, row)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Revenue > result[j].Revenue
	})
	return result
}
