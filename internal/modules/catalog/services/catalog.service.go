package services

import (
	"context"
	"strings"

	"medsms-core/internal/domain"
	"medsms-core/internal/shared/apperrors"
	"medsms-core/internal/shared/utils"
	"medsms-core/internal/storage/datacache"
	"medsms-core/internal/storage/entitystore"
)

// CatalogService cobre os cadastros simples da clínica: médicos, locais,
// municípios, tipos de procedimento, ocorrências, procedimentos e campanhas.
// Todos seguem o mesmo ciclo: upsert por id, delete por id, listagem via
// snapshot do cache.
type CatalogService struct {
	store *entitystore.Store
	cache *datacache.Cache
}

func NewCatalogService(store *entitystore.Store, cache *datacache.Cache) *CatalogService {
	return &CatalogService{store: store, cache: cache}
}

// saveEntity valida o nome, persiste e recarrega a coleção no cache
func (s *CatalogService) saveEntity(ctx context.Context, col entitystore.Collection, name string, record domain.Identifiable) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewValidation("O nome é obrigatório.")
	}
	if err := s.store.Put(ctx, col, record); err != nil {
		return err
	}
	return s.cache.Reload(ctx, col)
}

func (s *CatalogService) deleteEntity(ctx context.Context, col entitystore.Collection, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.NewValidation("O identificador é obrigatório.")
	}
	if err := s.store.Delete(ctx, col, id); err != nil {
		return err
	}
	return s.cache.Reload(ctx, col)
}

// --- Médicos ---

func (s *CatalogService) ListDoctors() []domain.Doctor {
	return s.cache.Snapshot().Doctors
}

func (s *CatalogService) SaveDoctor(ctx context.Context, doctor domain.Doctor) (domain.Doctor, error) {
	if doctor.ID == "" {
		doctor.ID = utils.GenerateID(entitystore.Doctors.IDPrefix())
	}
	if err := s.saveEntity(ctx, entitystore.Doctors, doctor.Name, doctor); err != nil {
		return domain.Doctor{}, err
	}
	return doctor, nil
}

func (s *CatalogService) DeleteDoctor(ctx context.Context, id string) error {
	return s.deleteEntity(ctx, entitystore.Doctors, id)
}

// --- Locais de atendimento ---

func (s *CatalogService) ListLocations() []domain.Location {
	return s.cache.Snapshot().Locations
}

func (s *CatalogService) SaveLocation(ctx context.Context, location domain.Location) (domain.Location, error) {
	if location.ID == "" {
		location.ID = utils.GenerateID(entitystore.Locations.IDPrefix())
	}
	if err := s.saveEntity(ctx, entitystore.Locations, location.Name, location); err != nil {
		return domain.Location{}, err
	}
	return location, nil
}

func (s *CatalogService) DeleteLocation(ctx context.Context, id string) error {
	return s.deleteEntity(ctx, entitystore.Locations, id)
}

// --- Municípios ---

func (s *CatalogService) ListMunicipalities() []domain.Municipality {
	return s.cache.Snapshot().Municipalities
}

func (s *CatalogService) SaveMunicipality(ctx context.Context, municipality domain.Municipality) (domain.Municipality, error) {
	if municipality.ID == "" {
		municipality.ID = utils.GenerateID(entitystore.Municipalities.IDPrefix())
	}
	if err := s.saveEntity(ctx, entitystore.Municipalities, municipality.Name, municipality); err != nil {
		return domain.Municipality{}, err
	}
	return municipality, nil
}

func (s *CatalogService) DeleteMunicipality(ctx context.Context, id string) error {
	return s.deleteEntity(ctx, entitystore.Municipalities, id)
}

// --- Tipos de procedimento ---

func (s *CatalogService) ListProcedureTypes() []domain.ProcedureType {
	return s.cache.Snapshot().ProcedureTypes
}

func (s *CatalogService) SaveProcedureType(ctx context.Context, procedureType domain.ProcedureType) (domain.ProcedureType, error) {
	if procedureType.ID == "" {
		procedureType.ID = utils.GenerateID(entitystore.ProcedureTypes.IDPrefix())
	}
	if err := s.saveEntity(ctx, entitystore.ProcedureTypes, procedureType.Name, procedureType); err != nil {
		return domain.ProcedureType{}, err
	}
	return procedureType, nil
}

func (s *CatalogService) DeleteProcedureType(ctx context.Context, id string) error {
	return s.deleteEntity(ctx, entitystore.ProcedureTypes, id)
}

// --- Ocorrências ---

func (s *CatalogService) ListOccurrences() []domain.Occurrence {
	return s.cache.Snapshot().Occurrences
}

func (s *CatalogService) SaveOccurrence(ctx context.Context, occurrence domain.Occurrence) (domain.Occurrence, error) {
	if occurrence.ID == "" {
		occurrence.ID = utils.GenerateID(entitystore.Occurrences.IDPrefix())
	}
	if err := s.saveEntity(ctx, entitystore.Occurrences, occurrence.Name, occurrence); err != nil {
		return domain.Occurrence{}, err
	}
	return occurrence, nil
}

func (s *CatalogService) DeleteOccurrence(ctx context.Context, id string) error {
	return s.deleteEntity(ctx, entitystore.Occurrences, id)
}

// --- Procedimentos ---

func (s *CatalogService) ListProcedures() []domain.Procedure {
	return s.cache.Snapshot().Procedures
}

func (s *CatalogService) SaveProcedure(ctx context.Context, procedure domain.Procedure) (domain.Procedure, error) {
	if procedure.ID == "" {
		procedure.ID = utils.GenerateID(entitystore.Procedures.IDPrefix())
	}
	if procedure.Duration < 0 {
		return domain.Procedure{}, apperrors.NewValidation("A duração não pode ser negativa.")
	}
	if err := s.saveEntity(ctx, entitystore.Procedures, procedure.Name, procedure); err != nil {
		return domain.Procedure{}, err
	}
	return procedure, nil
}

func (s *CatalogService) DeleteProcedure(ctx context.Context, id string) error {
	return s.deleteEntity(ctx, entitystore.Procedures, id)
}

// --- Campanhas de saúde ---

func (s *CatalogService) ListCampaigns() []domain.HealthCampaign {
	return s.cache.Snapshot().Campaigns
}

func (s *CatalogService) SaveCampaign(ctx context.Context, campaign domain.HealthCampaign) (domain.HealthCampaign, error) {
	if campaign.ID == "" {
		campaign.ID = utils.GenerateID(entitystore.Campaigns.IDPrefix())
	}
	if err := s.saveEntity(ctx, entitystore.Campaigns, campaign.Name, campaign); err != nil {
		return domain.HealthCampaign{}, err
	}
	return campaign, nil
}

func (s *CatalogService) DeleteCampaign(ctx context.Context, id string) error {
	return s.deleteEntity(ctx, entitystore.Campaigns, id)
}
