package usecase

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"standcap-service/internal/domain/entity"
	"standcap-service/pkg/logger"
	"standcap-service/pkg/metrics"
	"standcap-service/pkg/utils"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ImpactService projects maintenance intervals onto the capacity template
// and produces the per-date net capacity with definite/potential attribution.
type ImpactService struct {
	templates   *TemplateService
	partition   entity.StatusPartition
	maxParallel int
	metrics     *metrics.Metrics
	logger      logger.Logger
}

// NewImpactService creates a new impact service
func NewImpactService(
	templates *TemplateService,
	partition entity.StatusPartition,
	maxParallel int,
	m *metrics.Metrics,
	log logger.Logger,
) *ImpactService {
	if maxParallel <= 0 {
		maxParallel = 4
	}
	return &ImpactService{
		templates:   templates,
		partition:   partition,
		maxParallel: maxParallel,
		metrics:     m,
		logger:      log,
	}
}

// impactRun is the read-only state shared by all dates of one run. Each date
// owns its own scratch capacity copy, so dates can be computed in parallel.
type impactRun struct {
	template      *entity.Template
	standsByID    map[int64]entity.Stand
	standsByCode  map[string]entity.Stand
	codePrefixes  []string
	compatByStand map[int64][]string
	typeByCode    map[string]entity.AircraftType
	sortedCodes   []string
	maintenance   []entity.MaintenanceRequest
	original      entity.BodyCounts
}

// ComputeDailyImpact is the main entry of the engine. It walks every date of
// the inclusive [startDate, endDate] range, subtracts one capacity unit per
// maintained stand per overlapped slot, and rolls the deltas up into daily
// reductions. tpl may be nil, in which case it is computed from the snapshot.
func (s *ImpactService) ComputeDailyImpact(
	ctx context.Context,
	snap *entity.Snapshot,
	tpl *entity.Template,
	startDate, endDate string,
	maintenance []entity.MaintenanceRequest,
) ([]entity.DailyImpact, error) {
	began := time.Now()
	runLog := s.logger.With("runId", uuid.NewString())

	zone := snap.Zone
	if zone == nil {
		zone = time.UTC
	}
	start, err := utils.ParseDate(startDate, zone)
	if err != nil {
		return nil, entity.NewConfigError("bad start date %q", startDate)
	}
	end, err := utils.ParseDate(endDate, zone)
	if err != nil {
		return nil, entity.NewConfigError("bad end date %q", endDate)
	}
	if end.Before(start) {
		return nil, entity.NewConfigError("end date %s before start date %s", endDate, startDate)
	}

	if tpl == nil {
		tpl, err = s.templates.ComputeTemplate(ctx, snap)
		if err != nil {
			return nil, err
		}
	}

	run := s.prepareRun(snap, tpl, maintenance)

	days := int(end.Sub(start).Hours()/24) + 1
	dates := make([]time.Time, 0, days)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}

	results := make([]entity.DailyImpact, len(dates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxParallel)
	for i, date := range dates {
		i, date := i, date
		g.Go(func() error {
			impact, err := s.computeDate(gctx, run, date)
			if err != nil {
				return err
			}
			results[i] = impact
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// Partial results are discarded on cancellation or deadline
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.ImpactRuns.Inc()
		s.metrics.RunDuration.Observe(time.Since(began).Seconds())
	}
	runLog.Info("daily impact computed",
		"startDate", startDate, "endDate", endDate,
		"days", len(results), "maintenance", len(run.maintenance),
		"elapsed", time.Since(began).String())
	return results, nil
}

func (s *ImpactService) prepareRun(snap *entity.Snapshot, tpl *entity.Template, maintenance []entity.MaintenanceRequest) *impactRun {
	run := &impactRun{
		template:      tpl,
		standsByID:    make(map[int64]entity.Stand, len(snap.Stands)),
		standsByCode:  make(map[string]entity.Stand, len(snap.Stands)),
		compatByStand: make(map[int64][]string, len(snap.Stands)),
		typeByCode:    make(map[string]entity.AircraftType, len(snap.AircraftTypes)),
		sortedCodes:   tpl.Codes(),
		original:      tpl.DailyTotals(),
	}

	for _, t := range snap.AircraftTypes {
		run.typeByCode[t.ICAOCode] = t
	}

	resolver := NewCompatibilityResolver(snap.AircraftTypes, s.logger)
	prefixSeen := make(map[string]bool)
	for _, stand := range snap.Stands {
		run.standsByID[stand.ID] = stand
		run.standsByCode[stand.Code] = stand
		run.compatByStand[stand.ID] = resolver.Resolve(stand)
		if p := letterPrefix(stand.Code); !prefixSeen[p] {
			prefixSeen[p] = true
			run.codePrefixes = append(run.codePrefixes, p)
		}
	}
	sort.Strings(run.codePrefixes)

	// Drop inverted intervals, keep stable ID order for determinism
	kept := make([]entity.MaintenanceRequest, 0, len(maintenance))
	for _, m := range maintenance {
		if !m.StartAt.Before(m.EndAt) {
			s.warn("DataShapeError", "dropping maintenance with inverted interval", "maintenanceId", m.ID)
			continue
		}
		kept = append(kept, m)
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].ID < kept[j].ID })
	run.maintenance = kept

	return run
}

func (s *ImpactService) computeDate(ctx context.Context, run *impactRun, date time.Time) (entity.DailyImpact, error) {
	if err := ctx.Err(); err != nil {
		return entity.DailyImpact{}, err
	}

	dayStart, dayEnd := utils.DayBounds(date)

	var overlapping []entity.MaintenanceRequest
	for _, m := range run.maintenance {
		if m.Overlaps(dayStart, dayEnd) {
			overlapping = append(overlapping, m)
		}
	}

	scratch := run.template.CloneBestCase()
	var definite, potential entity.ImpactDetail
	definiteSeen := make(map[int64]bool)
	potentialSeen := make(map[int64]bool)

	for _, slot := range run.template.Slots {
		if err := ctx.Err(); err != nil {
			return entity.DailyImpact{}, err
		}

		slotStart := dayStart.Add(time.Duration(slot.StartSec) * time.Second)
		slotEnd := dayStart.Add(time.Duration(slot.EndSec) * time.Second)
		slotCaps := scratch[slot.Name]

		for _, m := range overlapping {
			if !m.Overlaps(slotStart, slotEnd) {
				continue
			}
			class := s.partition.Class(m.StatusID)
			if class == entity.ImpactIgnored {
				continue
			}

			stand, ok := s.resolveStand(run, m)
			if !ok {
				s.warn(entity.WarnUnresolvedStand, "maintenance names unknown stand",
					"maintenanceId", m.ID, "standId", m.StandID, "standName", m.StandName)
				continue
			}

			applied := false
			for _, code := range run.compatByStand[stand.ID] {
				target, ok := s.resolveCell(run, slotCaps, code)
				if !ok {
					s.warn(entity.WarnNoCapacityForType, "no capacity entry for type",
						"maintenanceId", m.ID, "stand", stand.Code, "type", code, "slot", slot.Name)
					continue
				}
				if slotCaps[target] > 0 {
					// One stand removes exactly one unit per slot and type,
					// clamped at zero
					slotCaps[target]--
					body := run.template.BodyByCode[target]
					if class == entity.ImpactDefinite {
						definite.Reduction.Add(body, 1)
					} else {
						potential.Reduction.Add(body, 1)
					}
					applied = true
				}
			}

			if applied {
				req := entity.ImpactedRequest{
					ID:         m.ID,
					Title:      m.Title,
					StandCode:  stand.Code,
					StatusName: m.StatusName,
					StartAt:    m.StartAt,
					EndAt:      m.EndAt,
				}
				if class == entity.ImpactDefinite && !definiteSeen[m.ID] {
					definiteSeen[m.ID] = true
					definite.Requests = append(definite.Requests, req)
				} else if class == entity.ImpactPotential && !potentialSeen[m.ID] {
					potentialSeen[m.ID] = true
					potential.Requests = append(potential.Requests, req)
				}
			}
		}
	}

	var final entity.BodyCounts
	for _, slot := range run.template.Slots {
		for code, n := range scratch[slot.Name] {
			final.Add(run.template.BodyByCode[code], n)
		}
	}

	return entity.DailyImpact{
		Date:          utils.FormatDate(date),
		Original:      run.original,
		AfterDefinite: run.original.Minus(definite.Reduction),
		Final:         final,
		Definite:      definite,
		Potential:     potential,
	}, nil
}

// resolveStand maps a maintenance record onto the stand inventory. Unknown
// stand IDs go through a bounded name-to-code recovery: the trailing number
// of the display name is tried against every code prefix in the inventory.
func (s *ImpactService) resolveStand(run *impactRun, m entity.MaintenanceRequest) (entity.Stand, bool) {
	if stand, ok := run.standsByID[m.StandID]; ok {
		return stand, true
	}
	n, ok := utils.TrailingNumber(m.StandName)
	if !ok {
		return entity.Stand{}, false
	}
	num := strconv.Itoa(n)
	if stand, ok := run.standsByCode[num]; ok {
		return stand, true
	}
	for _, prefix := range run.codePrefixes {
		if stand, ok := run.standsByCode[prefix+num]; ok {
			return stand, true
		}
	}
	return entity.Stand{}, false
}

// resolveCell picks the capacity cell a decrement lands in: the exact type
// code when present, otherwise the first cell of the same body type.
func (s *ImpactService) resolveCell(run *impactRun, slotCaps entity.SlotCapacity, code string) (string, bool) {
	if _, ok := slotCaps[code]; ok {
		return code, true
	}
	body := entity.BodyNarrow
	if t, ok := run.typeByCode[code]; ok {
		body = t.BodyType()
	} else if b, ok := run.template.BodyByCode[code]; ok {
		body = b
	}
	for _, c := range run.sortedCodes {
		if _, ok := slotCaps[c]; ok && run.template.BodyByCode[c] == body {
			return c, true
		}
	}
	return "", false
}

func (s *ImpactService) warn(reason, msg string, keysAndValues ...interface{}) {
	s.logger.Info(msg, append([]interface{}{"reason", reason}, keysAndValues...)...)
	if s.metrics != nil {
		s.metrics.Warning(reason)
	}
}

// letterPrefix strips the trailing digits off a stand code, e.g. "S23" -> "S".
func letterPrefix(code string) string {
	return strings.TrimRight(code, "0123456789")
}
