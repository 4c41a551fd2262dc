package repository

import (
	"context"
	"time"

	"standcap-service/internal/domain/entity"
)

// MaintenanceRepository defines the interface to the maintenance store.
type MaintenanceRepository interface {
	// FindOverlapping returns every maintenance request whose interval
	// intersects the half-open window [from, to), ordered by ID.
	FindOverlapping(ctx context.Context, from, to time.Time) ([]entity.MaintenanceRequest, error)
}
