package usecase

import (
	"sort"

	"standcap-service/internal/domain/entity"
	"standcap-service/pkg/logger"
)

// CompatibilityResolver produces, per stand, the set of aircraft type codes
// the stand may accept.
type CompatibilityResolver struct {
	typesByID map[int64]entity.AircraftType
	all       []entity.AircraftType
	logger    logger.Logger
}

// NewCompatibilityResolver indexes the fleet for stand resolution
func NewCompatibilityResolver(types []entity.AircraftType, log logger.Logger) *CompatibilityResolver {
	byID := make(map[int64]entity.AircraftType, len(types))
	for _, t := range types {
		byID[t.ID] = t
	}
	return &CompatibilityResolver{
		typesByID: byID,
		all:       types,
		logger:    log,
	}
}

// Resolve returns the sorted compatible type codes for a stand. An explicit
// compatibility list wins over the size limit; a stand with neither
// contributes zero capacity.
func (r *CompatibilityResolver) Resolve(stand entity.Stand) []string {
	if len(stand.CompatibleTypeIDs) > 0 {
		codes := make([]string, 0, len(stand.CompatibleTypeIDs))
		for _, id := range stand.CompatibleTypeIDs {
			if t, ok := r.typesByID[id]; ok {
				codes = append(codes, t.ICAOCode)
			}
		}
		sort.Strings(codes)
		return codes
	}

	if entity.NormalizeSizeCode(stand.MaxSizeCode) != "" {
		maxRank, ok := entity.SizeRank(stand.MaxSizeCode)
		if !ok {
			// Unknown size letters are treated as incompatible
			r.logger.Info("stand has unknown max size letter", "reason", entity.WarnNoCompatibilityData,
				"stand", stand.Code, "maxSize", stand.MaxSizeCode)
			return nil
		}
		var codes []string
		for _, t := range r.all {
			rank, ok := entity.SizeRank(t.SizeCode)
			if ok && rank <= maxRank {
				codes = append(codes, t.ICAOCode)
			}
		}
		sort.Strings(codes)
		return codes
	}

	r.logger.Info("stand has no compatibility data", "reason", entity.WarnNoCompatibilityData,
		"stand", stand.Code)
	return nil
}
