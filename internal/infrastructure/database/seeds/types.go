package seeds

import (
	"context"
)

// SeedDataStatus representa o estado dos dados de seeding
type SeedDataStatus struct {
	PatientsExist bool `json:"patients_exist"`
	AllDataExists bool `json:"all_data_exists"`
}

// SeedingService popula o armazenamento com o conjunto de demonstração
// quando a coleção de pacientes está vazia
type SeedingService interface {
	// Verificações de estado
	CheckSeedDataExists(ctx context.Context) (*SeedDataStatus, error)

	// SeedAll grava o conjunto padrão inteiro
	SeedAll(ctx context.Context) error

	// EnsureSeedData aplica SeedAll apenas se a sentinela indicar banco vazio
	EnsureSeedData(ctx context.Context) error
}

// IsComplete verifica se o seeding já aconteceu
func (s *SeedDataStatus) IsComplete() bool {
	return s.PatientsExist
}
