package app

import (
	"medsms-core/internal/app/bootstrap"
	"medsms-core/internal/app/config"
	"medsms-core/internal/infrastructure/ai"
	"medsms-core/internal/infrastructure/database"
	"medsms-core/internal/infrastructure/logger"
	"medsms-core/internal/modules/assistant"
	"medsms-core/internal/modules/billing"
	"medsms-core/internal/modules/catalog"
	"medsms-core/internal/modules/datamanager"
	"medsms-core/internal/modules/patients"
	"medsms-core/internal/modules/reports"
	"medsms-core/internal/modules/scheduling"
	"medsms-core/internal/modules/session"
	"medsms-core/internal/storage/datacache"
	"medsms-core/internal/storage/entitystore"

	"go.uber.org/fx"
)

var AppModule = fx.Options(
	// Configuração (deve ser fornecida primeiro)
	fx.Provide(config.NewConfig),
	fx.Provide(config.NewRedisConfig),
	fx.Provide(config.NewRedisKeyGenerator),

	// Infraestrutura
	database.Module,
	entitystore.Module,
	datacache.Module,
	logger.Module,
	ai.Module,

	// Módulos de negócio
	catalog.Module,
	patients.Module,
	scheduling.Module,
	billing.Module,
	reports.Module,
	assistant.Module,
	datamanager.Module,
	session.Module,

	// Bootstrap (esquema → seeding → cache)
	fx.Provide(bootstrap.NewBootstrapSystem),

	// Router
	fx.Provide(NewRouter),

	// Application
	fx.Provide(NewApplication),

	// Lifecycle: bootstrap antes do servidor HTTP
	fx.Invoke(bootstrap.RegisterBootstrapLifecycle),
	fx.Invoke((*Application).Start),
)
