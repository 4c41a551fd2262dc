package usecase

import (
	"context"
	"time"

	"standcap-service/internal/domain/entity"
	"standcap-service/pkg/cache"
	"standcap-service/pkg/logger"
	"standcap-service/pkg/metrics"
)

// TemplateService computes the per-day capacity template from a
// configuration snapshot. Templates are a function of configuration only and
// are memoised in the reference cache keyed by the snapshot hash.
type TemplateService struct {
	cache   *cache.Cache
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  logger.Logger
}

// NewTemplateService creates a new template service
func NewTemplateService(c *cache.Cache, ttl time.Duration, m *metrics.Metrics, log logger.Logger) *TemplateService {
	return &TemplateService{
		cache:   c,
		ttl:     ttl,
		metrics: m,
		logger:  log,
	}
}

// ComputeTemplate builds the slot-keyed best/worst-case capacity maps for
// one operating day.
func (s *TemplateService) ComputeTemplate(ctx context.Context, snap *entity.Snapshot) (*entity.Template, error) {
	key := "derived:template:" + snap.Hash()
	if s.cache != nil {
		if v, ok := s.cache.Get(key); ok {
			return v.(*entity.Template), nil
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tpl, err := s.build(snap)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.TemplateBuilds.Inc()
	}
	if s.cache != nil {
		s.cache.Set(key, tpl, s.ttl)
	}
	return tpl, nil
}

func (s *TemplateService) build(snap *entity.Snapshot) (*entity.Template, error) {
	slots, err := BuildTimeSlots(snap.Settings)
	if err != nil {
		return nil, err
	}

	resolver := NewCompatibilityResolver(snap.AircraftTypes, s.logger)
	table := NewTurnaroundTable(snap.AircraftTypes)
	graph := NewAdjacencyGraph(snap.AdjacencyRules, snap.AircraftTypes)

	typeByCode := make(map[string]entity.AircraftType, len(snap.AircraftTypes))
	for _, t := range snap.AircraftTypes {
		typeByCode[t.ICAOCode] = t
	}

	// Per-stand compatibility, base and adjacency-restricted
	type standCompat struct {
		base  []string
		worst map[string]bool
	}
	compat := make(map[int64]standCompat)
	for _, stand := range snap.Stands {
		if !stand.IsActive {
			continue
		}
		base := resolver.Resolve(stand)
		worst := make(map[string]bool)
		for _, c := range graph.Restrict(stand.ID, base) {
			worst[c] = true
		}
		compat[stand.ID] = standCompat{base: base, worst: worst}
	}

	tpl := &entity.Template{
		Slots:      slots,
		BestCase:   make(map[string]entity.SlotCapacity, len(slots)),
		WorstCase:  make(map[string]entity.SlotCapacity, len(slots)),
		BodyByCode: make(map[string]entity.BodyType),
	}

	for _, slot := range slots {
		best := entity.SlotCapacity{}
		worst := entity.SlotCapacity{}
		slotMinutes := slot.Minutes()

		for _, stand := range snap.Stands {
			sc, ok := compat[stand.ID]
			if !ok {
				continue
			}
			for _, code := range sc.base {
				occupation := table.Minutes(code) + snap.Settings.GapMinutes
				if occupation <= 0 {
					return nil, entity.NewConfigError("zero occupation for aircraft type %s", code)
				}
				count := slotMinutes / occupation
				if count < 0 {
					count = 0
				}
				best[code] += count
				if sc.worst[code] {
					worst[code] += count
				} else {
					worst[code] += 0
				}
				if t, ok := typeByCode[code]; ok {
					tpl.BodyByCode[code] = t.BodyType()
				} else {
					tpl.BodyByCode[code] = entity.BodyNarrow
				}
			}
		}

		tpl.BestCase[slot.Name] = best
		tpl.WorstCase[slot.Name] = worst
	}

	return tpl, nil
}
