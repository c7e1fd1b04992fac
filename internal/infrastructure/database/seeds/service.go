package seeds

import (
	"context"
	"fmt"
	"time"

	"medsms-core/internal/storage/entitystore"
)

// seedingService implementa SeedingService sobre o armazenamento de entidades
type seedingService struct {
	store *entitystore.Store
}

// NewSeedingService cria um novo serviço de seeding
func NewSeedingService(store *entitystore.Store) SeedingService {
	return &seedingService{store: store}
}

// CheckSeedDataExists verifica a sentinela de banco vazio. A coleção de
// pacientes decide por todas: se ela tem registros, nada é semeado.
func (s *seedingService) CheckSeedDataExists(ctx context.Context) (*SeedDataStatus, error) {
	count, err := s.store.Count(ctx, entitystore.Patients)
	if err != nil {
		return nil, ErrCountFailed(string(entitystore.Patients), err)
	}

	status := &SeedDataStatus{
		PatientsExist: count > 0,
	}
	status.AllDataExists = status.PatientsExist

	return status, nil
}

// EnsureSeedData aplica o conjunto padrão apenas no primeiro arranque
func (s *seedingService) EnsureSeedData(ctx context.Context) error {
	status, err := s.CheckSeedDataExists(ctx)
	if err != nil {
		return err
	}

	if status.IsComplete() {
		fmt.Printf("[SEEDING] ⏭️  Dados já presentes - Seeding ignorado\n")
		return nil
	}

	fmt.Printf("[SEEDING] 📦 Banco vazio - Populando conjunto de demonstração\n")
	return s.SeedAll(ctx)
}

// SeedAll grava o conjunto de demonstração inteiro, coleção por coleção
func (s *seedingService) SeedAll(ctx context.Context) error {
	writes := []struct {
		col     entitystore.Collection
		records interface{}
	}{
		{entitystore.Municipalities, DefaultMunicipalities},
		{entitystore.Doctors, DefaultDoctors},
		{entitystore.Locations, DefaultLocations},
		{entitystore.ProcedureTypes, DefaultProcedureTypes},
		{entitystore.Occurrences, DefaultOccurrences},
		{entitystore.Procedures, DefaultProcedures},
		{entitystore.Campaigns, DefaultCampaigns},
		{entitystore.Patients, DefaultPatients},
		{entitystore.Appointments, DefaultAppointments(time.Now())},
		{entitystore.PriceTables, DefaultPriceTables},
		{entitystore.PriceTableEntries, DefaultPriceTableEntries},
		{entitystore.ChatHistory, DefaultChatHistory},
	}

	for _, w := range writes {
		if err := s.store.BulkPut(ctx, w.col, w.records); err != nil {
			return ErrSeedWrite(string(w.col), err)
		}
		fmt.Printf("[SEEDING] ✅ Coleção %s populada\n", w.col)
	}

	return nil
}
