package usecase

import (
	"context"
	"time"

	"standcap-service/internal/domain/entity"
	"standcap-service/internal/domain/repository"
	"standcap-service/pkg/cache"
	"standcap-service/pkg/logger"
	"standcap-service/pkg/metrics"
)

// SnapshotService loads the configuration snapshot through the reference
// cache and drops malformed elements before the engine sees them.
type SnapshotService struct {
	configRepo repository.ConfigurationRepository
	cache      *cache.Cache
	ttl        time.Duration
	zone       *time.Location
	metrics    *metrics.Metrics
	logger     logger.Logger
}

// NewSnapshotService creates a new snapshot service
func NewSnapshotService(
	configRepo repository.ConfigurationRepository,
	c *cache.Cache,
	ttl time.Duration,
	zone *time.Location,
	m *metrics.Metrics,
	log logger.Logger,
) *SnapshotService {
	return &SnapshotService{
		configRepo: configRepo,
		cache:      c,
		ttl:        ttl,
		zone:       zone,
		metrics:    m,
		logger:     log,
	}
}

const snapshotCacheKey = "config:snapshot"

// Load returns the current configuration snapshot, cached with the
// configuration-class TTL.
func (s *SnapshotService) Load(ctx context.Context) (*entity.Snapshot, error) {
	if s.cache != nil {
		if v, ok := s.cache.Get(snapshotCacheKey); ok {
			return v.(*entity.Snapshot), nil
		}
	}

	stands, err := s.configRepo.ListStands(ctx)
	if err != nil {
		return nil, err
	}
	types, err := s.configRepo.ListAircraftTypes(ctx)
	if err != nil {
		return nil, err
	}
	rules, err := s.configRepo.ListAdjacencyRules(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.configRepo.GetOperatingSettings(ctx)
	if err != nil {
		return nil, err
	}

	snap := &entity.Snapshot{
		Stands:         s.sanitizeStands(stands),
		AircraftTypes:  s.sanitizeTypes(types),
		AdjacencyRules: s.sanitizeRules(rules),
		Settings:       *settings,
		Zone:           s.zone,
	}

	if s.cache != nil {
		s.cache.Set(snapshotCacheKey, snap, s.ttl)
	}
	return snap, nil
}

func (s *SnapshotService) sanitizeStands(stands []entity.Stand) []entity.Stand {
	out := make([]entity.Stand, 0, len(stands))
	for _, st := range stands {
		if st.Code == "" {
			s.warnDropped("stand", "empty code")
			continue
		}
		out = append(out, st)
	}
	return out
}

func (s *SnapshotService) sanitizeTypes(types []entity.AircraftType) []entity.AircraftType {
	out := make([]entity.AircraftType, 0, len(types))
	for _, t := range types {
		if t.ICAOCode == "" {
			s.warnDropped("aircraft type", "empty ICAO code")
			continue
		}
		if _, ok := entity.SizeRank(t.SizeCode); !ok {
			s.warnDropped("aircraft type", "unknown size category "+t.SizeCode)
			continue
		}
		if t.TurnaroundMinutes < 0 {
			// Negative turnaround falls back to the size default
			s.logger.Warn("resetting negative turnaround", "type", t.ICAOCode)
			t.TurnaroundMinutes = 0
		}
		out = append(out, t)
	}
	return out
}

func (s *SnapshotService) sanitizeRules(rules []entity.AdjacencyRule) []entity.AdjacencyRule {
	out := make([]entity.AdjacencyRule, 0, len(rules))
	for _, r := range rules {
		if r.StandID == r.AffectedStandID {
			s.warnDropped("adjacency rule", "self-referencing stand")
			continue
		}
		switch r.Kind {
		case entity.RestrictionNoUse, entity.RestrictionMaxSizeReduced, entity.RestrictionTypeProhibited:
		default:
			s.warnDropped("adjacency rule", "unknown restriction kind "+string(r.Kind))
			continue
		}
		out = append(out, r)
	}
	return out
}

func (s *SnapshotService) warnDropped(element, detail string) {
	err := &entity.DataShapeError{Element: element, Detail: detail}
	s.logger.Warn("dropping malformed snapshot element", "error", err.Error())
	if s.metrics != nil {
		s.metrics.Warning("DataShapeError")
	}
}
