package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"medsms-core/internal/domain"
	"medsms-core/internal/modules/patients/dto"
	"medsms-core/internal/shared/apperrors"
	"medsms-core/internal/shared/utils"
	"medsms-core/internal/storage/datacache"
	"medsms-core/internal/storage/entitystore"
)

type PatientService struct {
	store *entitystore.Store
	cache *datacache.Cache
}

func NewPatientService(store *entitystore.Store, cache *datacache.Cache) *PatientService {
	return &PatientService{store: store, cache: cache}
}

func (s *PatientService) List() []domain.Patient {
	return s.cache.Snapshot().Patients
}

func (s *PatientService) Get(id string) (domain.Patient, error) {
	for _, p := range s.cache.Snapshot().Patients {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Patient{}, apperrors.NewNotFound("paciente", id)
}

// Create cadastra um paciente novo. O servidor gera id, avatar, a data de
// cadastro e o marcador de última visita; o restante vem do formulário.
func (s *PatientService) Create(ctx context.Context, req dto.PatientRequest) (domain.Patient, error) {
	if err := validatePatient(req); err != nil {
		return domain.Patient{}, err
	}

	newID := utils.GenerateID(entitystore.Patients.IDPrefix())
	patient := req.Apply(domain.Patient{
		ID:             newID,
		AvatarURL:      fmt.Sprintf("https://picsum.photos/seed/%s/100/100", newID),
		LastVisit:      "N/A",
		RegisteredDate: time.Now().Format("2006-01-02"),
	})

	if err := s.store.Put(ctx, entitystore.Patients, patient); err != nil {
		return domain.Patient{}, err
	}
	if err := s.cache.Reload(ctx, entitystore.Patients); err != nil {
		return domain.Patient{}, err
	}
	return patient, nil
}

// Update sobrepõe o formulário no cadastro existente; id e campos gerados
// pelo servidor são preservados.
func (s *PatientService) Update(ctx context.Context, id string, req dto.PatientRequest) (domain.Patient, error) {
	if err := validatePatient(req); err != nil {
		return domain.Patient{}, err
	}

	existing, err := s.Get(id)
	if err != nil {
		return domain.Patient{}, err
	}

	patient := req.Apply(existing)
	if err := s.store.Put(ctx, entitystore.Patients, patient); err != nil {
		return domain.Patient{}, err
	}
	if err := s.cache.Reload(ctx, entitystore.Patients); err != nil {
		return domain.Patient{}, err
	}
	return patient, nil
}

func (s *PatientService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.NewValidation("O identificador é obrigatório.")
	}
	if err := s.store.Delete(ctx, entitystore.Patients, id); err != nil {
		return err
	}
	return s.cache.Reload(ctx, entitystore.Patients)
}

func validatePatient(req dto.PatientRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidation("O nome do paciente é obrigatório.")
	}
	if req.DateOfBirth != "" {
		if _, err := time.Parse("2006-01-02", req.DateOfBirth); err != nil {
			return apperrors.NewValidation("Data de nascimento inválida. Use o formato AAAA-MM-DD.")
		}
	}
	if req.Gender != "" {
		switch req.Gender {
		case domain.GenderMasculino, domain.GenderFeminino, domain.GenderNaoDeclarado:
		default:
			return apperrors.NewValidation(fmt.Sprintf("Gênero inválido: %s", req.Gender))
		}
	}
	return nil
}
