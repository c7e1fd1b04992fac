package database

import (
	"go.uber.org/fx"

	"medsms-core/internal/infrastructure/database/redis"
	"medsms-core/internal/infrastructure/database/seeds"
)

var Module = fx.Options(

	// Módulos database
	redis.Module,

	// Seeding
	fx.Provide(seeds.NewSeedingService),
)
