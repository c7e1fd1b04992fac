package bootstrap

import (
	"context"
	"fmt"
	"time"

	"medsms-core/internal/app/config"
	"medsms-core/internal/infrastructure/database/seeds"
	"medsms-core/internal/storage/datacache"
	"medsms-core/internal/storage/entitystore"

	"go.uber.org/fx"
)

// BootstrapSystem orquestra o processo de arranque automático.
// Versão enxuta: 3 fases sequenciais, sem sobrecomplexidade.
type BootstrapSystem struct {
	store   *entitystore.Store
	seeding seeds.SeedingService
	cache   *datacache.Cache
	config  *config.Config
	timeout time.Duration
}

// BootstrapResult contém o resultado da execução do bootstrap
type BootstrapResult struct {
	Success        bool          `json:"success"`
	TotalDuration  time.Duration `json:"total_duration"`
	PhasesExecuted []PhaseResult `json:"phases_executed"`
	ErrorMessage   string        `json:"error_message,omitempty"`
}

// PhaseResult contém o resultado de uma fase do bootstrap
type PhaseResult struct {
	Phase       string        `json:"phase"`
	Success     bool          `json:"success"`
	Duration    time.Duration `json:"duration"`
	Description string        `json:"description"`
	Error       string        `json:"error,omitempty"`
}

// NewBootstrapSystem cria uma nova instância do sistema de bootstrap
func NewBootstrapSystem(
	store *entitystore.Store,
	seeding seeds.SeedingService,
	cache *datacache.Cache,
	cfg *config.Config,
) *BootstrapSystem {
	return &BootstrapSystem{
		store:   store,
		seeding: seeding,
		cache:   cache,
		config:  cfg,
		timeout: 2 * time.Minute,
	}
}

// Execute dispara o processo completo com as 3 fases
func (bs *BootstrapSystem) Execute() (*BootstrapResult, error) {
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), bs.timeout)
	defer cancel()

	fmt.Printf("[BOOTSTRAP] Iniciando BootstrapSystem (timeout: %v)\n", bs.timeout)

	result := &BootstrapResult{
		Success:        true,
		PhasesExecuted: []PhaseResult{},
	}

	phases := []struct {
		name        string
		description string
		run         func(context.Context) error
	}{
		{
			name:        "Fase 0: Esquema do armazenamento",
			description: "Criação das tabelas de coleções",
			run:         bs.store.Init,
		},
		{
			name:        "Fase 1: Seeding de dados",
			description: "População do conjunto de demonstração em banco vazio",
			run:         bs.seeding.EnsureSeedData,
		},
		{
			name:        "Fase 2: Carga do cache",
			description: "Espelhamento das coleções em memória",
			run:         bs.cache.Load,
		},
	}

	for _, phase := range phases {
		phaseResult := bs.executePhase(ctx, phase.name, phase.description, phase.run)
		result.PhasesExecuted = append(result.PhasesExecuted, phaseResult)

		if !phaseResult.Success {
			result.Success = false
			result.ErrorMessage = fmt.Sprintf("%s falhou: %s", phase.name, phaseResult.Error)
			result.TotalDuration = time.Since(startTime)
			return result, fmt.Errorf("bootstrap failed at %s: %s", phase.name, phaseResult.Error)
		}
	}

	result.TotalDuration = time.Since(startTime)
	fmt.Printf("[BOOTSTRAP] ✅ BootstrapSystem concluído com sucesso em %v\n", result.TotalDuration)
	fmt.Printf("[BOOTSTRAP] 🎯 Aplicação pronta para o servidor HTTP\n")

	return result, nil
}

func (bs *BootstrapSystem) executePhase(ctx context.Context, phase, description string, run func(context.Context) error) PhaseResult {
	startTime := time.Now()

	fmt.Printf("[BOOTSTRAP] 🔧 Iniciando %s\n", phase)

	err := run(ctx)
	duration := time.Since(startTime)

	if err != nil {
		fmt.Printf("[BOOTSTRAP] ❌ %s falhou em %v: %v\n", phase, duration, err)
		return PhaseResult{
			Phase:       phase,
			Success:     false,
			Duration:    duration,
			Description: description,
			Error:       err.Error(),
		}
	}

	fmt.Printf("[BOOTSTRAP] ✅ %s concluída em %v\n", phase, duration)
	return PhaseResult{
		Phase:       phase,
		Success:     true,
		Duration:    duration,
		Description: description,
	}
}

// GetTimeout retorna o timeout configurado
func (bs *BootstrapSystem) GetTimeout() time.Duration {
	return bs.timeout
}

// SetTimeout configura um novo timeout (útil em testes)
func (bs *BootstrapSystem) SetTimeout(timeout time.Duration) {
	bs.timeout = timeout
}

// RegisterBootstrapLifecycle registra o bootstrap no ciclo de vida Fx
func RegisterBootstrapLifecycle(
	lc fx.Lifecycle,
	bootstrap *BootstrapSystem,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			fmt.Printf("[LIFECYCLE] 🚀 Executando BootstrapSystem ANTES do servidor HTTP\n")

			result, err := bootstrap.Execute()
			if err != nil {
				fmt.Printf("[LIFECYCLE] ❌ Bootstrap falhou: %v\n", err)
				return fmt.Errorf("bootstrap system failed: %w", err)
			}

			fmt.Printf("[LIFECYCLE] ✅ Bootstrap concluído em %v\n", result.TotalDuration)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			fmt.Printf("[LIFECYCLE] 🛑 Encerrando BootstrapSystem\n")
			return nil
		},
	})
}
