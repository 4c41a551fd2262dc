package repository

import (
	"context"

	"standcap-service/internal/domain/entity"
)

// ConfigurationRepository defines the interface to the configuration store.
// Reads are idempotent; the engine treats the returned data as immutable.
type ConfigurationRepository interface {
	ListStands(ctx context.Context) ([]entity.Stand, error)
	ListAircraftTypes(ctx context.Context) ([]entity.AircraftType, error)
	ListAdjacencyRules(ctx context.Context) ([]entity.AdjacencyRule, error)
	GetOperatingSettings(ctx context.Context) (*entity.OperatingSettings, error)
}
