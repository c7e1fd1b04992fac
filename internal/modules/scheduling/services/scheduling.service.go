package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"medsms-core/internal/domain"
	"medsms-core/internal/modules/scheduling/dto"
	"medsms-core/internal/shared/apperrors"
	"medsms-core/internal/shared/utils"
	"medsms-core/internal/storage/datacache"
	"medsms-core/internal/storage/entitystore"
)

// SchedulingService é o dono da máquina de estados do agendamento.
// Transições diretas passam por UpdateStatus; cancelamentos passam
// obrigatoriamente por Cancel, que exige motivo.
type SchedulingService struct {
	store *entitystore.Store
	cache *datacache.Cache
}

func NewSchedulingService(store *entitystore.Store, cache *datacache.Cache) *SchedulingService {
	return &SchedulingService{store: store, cache: cache}
}

func (s *SchedulingService) List() []domain.Appointment {
	return s.cache.Snapshot().Appointments
}

func (s *SchedulingService) Get(id string) (domain.Appointment, error) {
	for _, app := range s.cache.Snapshot().Appointments {
		if app.ID == id {
			return app, nil
		}
	}
	return domain.Appointment{}, apperrors.NewNotFound("agendamento", id)
}

func (s *SchedulingService) Create(ctx context.Context, req dto.CreateAppointmentRequest) (domain.Appointment, error) {
	if req.PatientID == "" || req.ProcedureID == "" || req.DoctorID == "" || req.LocationID == "" || req.Date == "" {
		return domain.Appointment{}, apperrors.NewValidation(
			"Erro: Para criar o agendamento, selecione Paciente, Procedimento, Médico, Local e Data.")
	}
	if _, err := time.Parse(time.RFC3339, req.Date); err != nil {
		return domain.Appointment{}, apperrors.NewValidation("Data do agendamento inválida. Use o formato ISO 8601.")
	}

	app := domain.Appointment{
		ID:           utils.GenerateID(entitystore.Appointments.IDPrefix()),
		PatientID:    req.PatientID,
		ProcedureID:  req.ProcedureID,
		DoctorID:     req.DoctorID,
		LocationID:   req.LocationID,
		CampaignID:   req.CampaignID,
		Date:         req.Date,
		Status:       domain.StatusAgendado,
		OccurrenceID: req.OccurrenceID,
	}

	if err := s.persist(ctx, app); err != nil {
		return domain.Appointment{}, err
	}
	return app, nil
}

func (s *SchedulingService) Update(ctx context.Context, id string, req dto.UpdateAppointmentRequest) (domain.Appointment, error) {
	existing, err := s.Get(id)
	if err != nil {
		return domain.Appointment{}, err
	}

	app := req.Apply(existing)
	if req.Date != nil {
		if _, err := time.Parse(time.RFC3339, app.Date); err != nil {
			return domain.Appointment{}, apperrors.NewValidation("Data do agendamento inválida. Use o formato ISO 8601.")
		}
	}

	if err := s.persist(ctx, app); err != nil {
		return domain.Appointment{}, err
	}
	return app, nil
}

// UpdateStatus aplica uma transição direta da máquina de estados.
// Cancelamentos são rejeitados aqui: só entram pelo registro de
// cancelamento.
func (s *SchedulingService) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (domain.Appointment, error) {
	if !status.Valid() {
		return domain.Appointment{}, apperrors.NewValidation(fmt.Sprintf("Status inválido: %s", status))
	}
	if status.IsCancellation() {
		return domain.Appointment{}, apperrors.NewValidation(
			"Cancelamentos exigem um registro de cancelamento com motivo.")
	}

	app, err := s.Get(id)
	if err != nil {
		return domain.Appointment{}, err
	}
	if app.Status == status {
		return domain.Appointment{}, apperrors.NewValidation("O agendamento já está neste status.")
	}
	if app.Status.IsTerminal() {
		return domain.Appointment{}, apperrors.NewValidation(
			fmt.Sprintf("O status %q é terminal e não pode ser alterado.", app.Status))
	}
	if !app.Status.CanTransitionTo(status) {
		return domain.Appointment{}, apperrors.NewValidation(
			fmt.Sprintf("Transição de status não permitida: %s → %s", app.Status, status))
	}

	app.Status = status
	if err := s.persist(ctx, app); err != nil {
		return domain.Appointment{}, err
	}
	return app, nil
}

// UpdateOccurrence anexa (ou limpa, com id vazio) uma ocorrência. A
// ocorrência "Paciente chegou" força o status para em_espera sem passar
// pelas regras de transição.
func (s *SchedulingService) UpdateOccurrence(ctx context.Context, id string, occurrenceID string) (domain.Appointment, error) {
	app, err := s.Get(id)
	if err != nil {
		return domain.Appointment{}, err
	}

	if occurrenceID != "" {
		found := false
		for _, occ := range s.cache.Snapshot().Occurrences {
			if occ.ID == occurrenceID {
				found = true
				if occ.Name == domain.OccurrencePatientArrived {
					app.Status = domain.StatusEmEspera
				}
				break
			}
		}
		if !found {
			return domain.Appointment{}, apperrors.NewNotFound("ocorrência", occurrenceID)
		}
	}

	app.OccurrenceID = occurrenceID
	if err := s.persist(ctx, app); err != nil {
		return domain.Appointment{}, err
	}
	return app, nil
}

// Cancel registra o cancelamento com motivo obrigatório e aplica o status
// terminal correspondente a quem cancelou.
func (s *SchedulingService) Cancel(ctx context.Context, id string, req dto.CancellationRequest) (domain.Appointment, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return domain.Appointment{}, apperrors.NewValidation("O motivo do cancelamento é obrigatório.")
	}

	var status domain.AppointmentStatus
	switch req.CancelledBy {
	case "patient":
		status = domain.StatusCanceladoPaciente
	case "doctor":
		status = domain.StatusCanceladoMedico
	default:
		return domain.Appointment{}, apperrors.NewValidation(
			fmt.Sprintf("Origem do cancelamento inválida: %q (use \"patient\" ou \"doctor\").", req.CancelledBy))
	}

	app, err := s.Get(id)
	if err != nil {
		return domain.Appointment{}, err
	}
	if app.Status.IsTerminal() {
		return domain.Appointment{}, apperrors.NewValidation(
			fmt.Sprintf("O status %q é terminal e não pode ser alterado.", app.Status))
	}

	app.Status = status
	app.CancellationReason = req.Reason
	if err := s.persist(ctx, app); err != nil {
		return domain.Appointment{}, err
	}
	return app, nil
}

func (s *SchedulingService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.NewValidation("O identificador é obrigatório.")
	}
	if err := s.store.Delete(ctx, entitystore.Appointments, id); err != nil {
		return err
	}
	return s.cache.Reload(ctx, entitystore.Appointments)
}

func (s *SchedulingService) persist(ctx context.Context, app domain.Appointment) error {
	if err := s.store.Put(ctx, entitystore.Appointments, app); err != nil {
		return err
	}
	return s.cache.Reload(ctx, entitystore.Appointments)
}
